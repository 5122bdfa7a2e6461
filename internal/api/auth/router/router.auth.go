package router

import (
	"github.com/gofiber/fiber/v3"

	handler "messenger_flow/internal/api/auth/handler"
	"messenger_flow/internal/api/auth/models"
	"messenger_flow/internal/api/middleware"
	apirouter "messenger_flow/internal/api/router"
)

// Register đăng ký các route cho domain auth.
// Quản lý agent (CRUD) chỉ dành cho SUPER_ADMIN; các route phiên đăng nhập
// (login/logout/me/change-password) dành cho mọi agent.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	agentHandler, err := handler.NewAgentHandler()
	if err != nil {
		return err
	}

	authMiddleware := middleware.AuthMiddleware("")
	adminMiddleware := middleware.AuthMiddleware(models.RoleSuperAdmin)

	// Route không cần xác thực
	v1.Post("/auth/login", agentHandler.HandleLogin)

	// Route cho agent đã đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authMiddleware}, agentHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, agentHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/change-password", []fiber.Handler{authMiddleware}, agentHandler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/set-status", []fiber.Handler{authMiddleware}, agentHandler.HandleSetStatus)

	// Gán page cho agent: chỉ SUPER_ADMIN
	apirouter.RegisterRouteWithMiddleware(v1, "/agents", "PUT", "/assign-pages/:id", []fiber.Handler{adminMiddleware}, agentHandler.HandleAssignPages)

	// CRUD quản lý agent: ghi yêu cầu SUPER_ADMIN
	r.RegisterCRUDRoutes(v1, "/agents", agentHandler, apirouter.ReadWriteConfig, models.RoleSuperAdmin)

	return nil
}
