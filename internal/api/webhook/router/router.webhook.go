// Package router - đăng ký route cho webhook Facebook.
package router

import (
	"github.com/gofiber/fiber/v3"

	handler "messenger_flow/internal/api/webhook/handler"
	apirouter "messenger_flow/internal/api/router"
)

// Register đăng ký route webhook. Facebook gọi trực tiếp nên không có auth;
// POST được bảo vệ bằng kiểm tra object, GET bằng verify token.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	webhookHandler, err := handler.NewWebhookHandler()
	if err != nil {
		return err
	}

	v1.Get("/webhook", webhookHandler.HandleVerify)
	v1.Post("/webhook", webhookHandler.HandleReceive)

	return nil
}
