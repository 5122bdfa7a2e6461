// Package router - đăng ký route cho domain fb.
package router

import (
	"github.com/gofiber/fiber/v3"

	authmodels "messenger_flow/internal/api/auth/models"
	handler "messenger_flow/internal/api/fb/handler"
	"messenger_flow/internal/api/middleware"
	apirouter "messenger_flow/internal/api/router"
)

// Register đăng ký các route cho domain fb.
// Quản lý trang (kết nối/ngắt kết nối/phân công) dành cho SUPER_ADMIN;
// hội thoại và tin nhắn dành cho mọi agent đã đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pageHandler, err := handler.NewPageHandler()
	if err != nil {
		return err
	}
	conversationHandler, err := handler.NewConversationHandler()
	if err != nil {
		return err
	}
	messageHandler, err := handler.NewMessageHandler()
	if err != nil {
		return err
	}

	authMiddleware := middleware.AuthMiddleware("")
	adminMiddleware := middleware.AuthMiddleware(authmodels.RoleSuperAdmin)

	// Trang: ghi yêu cầu SUPER_ADMIN
	r.RegisterCRUDRoutes(v1, "/pages", pageHandler, apirouter.ReadWriteConfig, authmodels.RoleSuperAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/pages", "POST", "/:id/assign-agent", []fiber.Handler{adminMiddleware}, pageHandler.HandleAssignAgents)
	apirouter.RegisterRouteWithMiddleware(v1, "/pages", "PUT", "/:id/set-sync", []fiber.Handler{adminMiddleware}, pageHandler.HandleSetSync)

	// Hội thoại
	r.RegisterCRUDRoutes(v1, "/conversations", conversationHandler, apirouter.ReadWriteConfig, "")
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "GET", "/page/:pageId", []fiber.Handler{authMiddleware}, conversationHandler.HandleListByPage)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "POST", "/create-or-update", []fiber.Handler{authMiddleware}, conversationHandler.HandleCreateOrUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "PATCH", "/:id/read", []fiber.Handler{authMiddleware}, conversationHandler.HandleMarkAsRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "POST", "/page/:pageId/sync-recent", []fiber.Handler{authMiddleware}, conversationHandler.HandleSyncRecent)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "POST", "/page/:pageId/sync-all", []fiber.Handler{authMiddleware}, conversationHandler.HandleSyncAll)

	// Tin nhắn
	r.RegisterCRUDRoutes(v1, "/messages", messageHandler, apirouter.ReadWriteConfig, "")
	apirouter.RegisterRouteWithMiddleware(v1, "/messages", "GET", "/conversation/:conversationId", []fiber.Handler{authMiddleware}, messageHandler.HandleListByConversation)
	apirouter.RegisterRouteWithMiddleware(v1, "/messages", "POST", "/send", []fiber.Handler{authMiddleware}, messageHandler.HandleSend)
	apirouter.RegisterRouteWithMiddleware(v1, "/messages", "POST", "/conversation/:id/sync", []fiber.Handler{authMiddleware}, messageHandler.HandleSyncForConversation)

	return nil
}
