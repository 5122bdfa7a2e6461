// Package router - đăng ký route cho domain library.
package router

import (
	"github.com/gofiber/fiber/v3"

	handler "messenger_flow/internal/api/library/handler"
	apirouter "messenger_flow/internal/api/router"
)

// Register đăng ký các route cho domain library.
// Kho link và media mở cho mọi agent đã đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	linkHandler, err := handler.NewLinkHandler()
	if err != nil {
		return err
	}
	mediaHandler, err := handler.NewMediaHandler()
	if err != nil {
		return err
	}

	r.RegisterCRUDRoutes(v1, "/links", linkHandler, apirouter.ReadWriteConfig, "")
	r.RegisterCRUDRoutes(v1, "/media", mediaHandler, apirouter.ReadWriteConfig, "")

	return nil
}
