package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"messenger_flow/config"
	"messenger_flow/internal/database"
	"messenger_flow/internal/global"
	"messenger_flow/internal/jobs"
	"messenger_flow/internal/scheduler"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.InitColNames()
	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo db và các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection (unique email, khóa tự nhiên hội thoại, dedup tin nhắn)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.CreateIndexes(ctx, global.GetDB()); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Created indexes")
}

// InitScheduler đăng ký các job chạy nền và khởi động scheduler.
// Delta poll là lưới an toàn cho webhook: kéo về các hội thoại mới nhất theo chu kỳ.
func InitScheduler() {
	if !global.ServerConfig.SyncDeltaEnabled {
		logrus.Info("Delta sync disabled, scheduler not started")
		return
	}

	sched := scheduler.NewScheduler()

	syncJob, err := jobs.NewSyncDeltaJob(global.ServerConfig.SyncDeltaCron)
	if err != nil {
		logrus.Fatalf("Failed to create sync delta job: %v", err)
	}
	if err := sched.AddJobObject(syncJob); err != nil {
		logrus.Fatalf("Failed to register sync delta job: %v", err)
	}

	sched.Start()
	logrus.WithFields(logrus.Fields{"schedule": global.ServerConfig.SyncDeltaCron}).Info("Scheduler started with delta sync job")
}
