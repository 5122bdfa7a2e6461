package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	models "messenger_flow/internal/api/auth/models"
	authsvc "messenger_flow/internal/api/auth/service"
	"messenger_flow/internal/common"
	"messenger_flow/internal/global"
	"messenger_flow/internal/logger"
	"messenger_flow/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền agent
type AuthManager struct {
	AgentCRUD *authsvc.AgentService
	Cache     *utility.Cache[models.Agent]
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	agentService, err := authsvc.NewAgentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create agent service: %v", err)
	}

	return &AuthManager{
		AgentCRUD: agentService,
		// Cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
		Cache: utility.NewCache[models.Agent](5*time.Minute, 10*time.Minute),
	}, nil
}

// resolveAgentByToken tìm agent theo token, có cache để giảm tải database.
func (am *AuthManager) resolveAgentByToken(token string) (*models.Agent, error) {
	cacheKey := "agent_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return &cached, nil
	}

	agent, err := am.AgentCRUD.FindOneByToken(context.Background(), token)
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, agent)
	return &agent, nil
}

// InvalidateToken xóa token khỏi cache (gọi khi logout/đổi mật khẩu).
func (am *AuthManager) InvalidateToken(token string) {
	am.Cache.Delete("agent_token:" + token)
}

// AuthMiddleware xác thực agent qua Bearer token và kiểm tra role.
// requiredRole = "" nghĩa là chỉ cần đăng nhập; SUPER_ADMIN luôn được phép
// đi qua mọi kiểm tra role.
func AuthMiddleware(requiredRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		// Lấy token từ header Authorization: Bearer <token>
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		token := parts[1]

		// Verify chữ ký và hạn của JWT trước khi chạm vào database
		if _, err := utility.ParseToken(global.ServerConfig.JwtSecret, token); err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Token phải là token hiện hành của agent (logout sẽ vô hiệu token cũ)
		agent, err := authManager.resolveAgentByToken(token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin agent vào context
		c.Locals("agent_id", agent.ID.Hex())
		c.Locals("agent_role", agent.Role)
		c.Locals("agent", *agent)

		// Không yêu cầu role cụ thể → cho phép truy cập ngay
		if requiredRole == "" {
			return c.Next()
		}

		// SUPER_ADMIN đi qua mọi kiểm tra role
		if agent.Role != requiredRole && agent.Role != models.RoleSuperAdmin {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"agent_id":      agent.ID.Hex(),
				"agent_role":    agent.Role,
				"required_role": requiredRole,
				"path":          c.Path(),
			}).Warn("[AUTH] Agent does not have required role")
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}

		return c.Next()
	}
}
