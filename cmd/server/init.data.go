package main

import (
	"context"
	"time"

	authsvc "messenger_flow/internal/api/auth/service"
	"messenger_flow/internal/global"
	"messenger_flow/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống.
// Chỉ chạy khi INITMODE=true: tạo tài khoản SUPER_ADMIN đầu tiên nếu chưa có agent nào.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data initialization")
		return
	}

	agentService, err := authsvc.NewAgentService()
	if err != nil {
		log.Fatalf("Failed to initialize agent service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := agentService.EnsureDefaultAdmin(ctx, global.ServerConfig.AdminEmail, global.ServerConfig.AdminPassword); err != nil {
		// Không fatal: server vẫn chạy được, admin có thể được tạo lại ở lần khởi động sau
		log.WithError(err).Error("Failed to ensure default admin")
		return
	}

	log.Info("Default data initialized")
}
