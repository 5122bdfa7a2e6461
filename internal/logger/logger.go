package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Hệ thống có hai kênh log: "app" cho luồng hoạt động bình thường
// (khởi động, sync Graph API, scheduler) và "error" cho lỗi request
// chưa được handler nào xử lý.

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	config *LogConfig

	// rootDir là gốc project, dùng để resolve đường dẫn logs tương đối
	rootDir string
)

// Init khởi tạo hệ thống logging. cfg nil dùng cấu hình mặc định.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := initRootDir(); err != nil {
		return fmt.Errorf("failed to initialize root directory: %w", err)
	}

	if err := os.MkdirAll(logDir(), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	return nil
}

// initRootDir tìm gốc project: ưu tiên LOG_ROOT_DIR, sau đó đi lên từ
// working directory tới khi gặp thư mục logs hoặc config.
func initRootDir() error {
	if rootDir != "" {
		return nil
	}

	if env := os.Getenv("LOG_ROOT_DIR"); env != "" {
		// Resolve symlinks (quan trọng khi chạy qua systemd)
		if resolved, err := filepath.EvalSymlinks(env); err == nil {
			rootDir = resolved
		} else {
			rootDir = env
		}
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not get working directory: %v", err)
	}

	dir := wd
	for i := 0; i < 5; i++ {
		if _, err := os.Stat(filepath.Join(dir, "logs")); err == nil {
			rootDir = dir
			return nil
		}
		if _, err := os.Stat(filepath.Join(dir, "config")); err == nil {
			rootDir = dir
			return nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	rootDir = wd
	return nil
}

// logDir trả về thư mục chứa file log.
func logDir() string {
	if filepath.IsAbs(config.LogPath) {
		return config.LogPath
	}
	return filepath.Join(rootDir, config.LogPath)
}

// GetAppLogger trả về logger chính của ứng dụng.
func GetAppLogger() *logrus.Logger {
	return getLogger("app", func() string { return config.AppFile })
}

// GetErrorLogger trả về logger cho lỗi request chưa được xử lý.
func GetErrorLogger() *logrus.Logger {
	return getLogger("error", func() string { return config.ErrorFile })
}

func getLogger(name string, filename func() string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	if logger, ok := loggers[name]; ok {
		return logger
	}

	logger := newLogger(name, filepath.Join(logDir(), filename()))
	loggers[name] = logger
	return logger
}

func newLogger(name, logFile string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				funcName := s[len(s)-1]
				return funcName, fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	var writers []io.Writer
	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	// RedactHook phải đứng trước AsyncHook: field nhạy cảm bị che
	// trước khi entry được format và ghi ra writers.
	logger.AddHook(NewRedactHook(config))

	if len(writers) > 0 {
		logger.AddHook(NewAsyncHook(writers, 1000))
		// Output discard: hook xử lý toàn bộ việc ghi, tránh duplicate.
		logger.SetOutput(io.Discard)
	}

	logger.SetReportCaller(true)
	logger = logger.WithField("service", name).Logger

	logger.WithFields(logrus.Fields{
		"log_file": logFile,
		"level":    logger.GetLevel().String(),
		"format":   config.Format,
		"output":   config.Output,
	}).Info("Logger initialized successfully")

	return logger
}
