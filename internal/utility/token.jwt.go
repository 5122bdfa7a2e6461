package utility

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"messenger_flow/internal/common"
)

// AgentClaims chứa data được mã hóa trong JWT token.
type AgentClaims struct {
	AgentID string `json:"agentId"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// CreateToken tạo JWT token cho agent.
// Mỗi lần gọi sinh một jti (uuid) mới, nên hai lần login liên tiếp
// luôn cho ra token khác nhau kể cả trong cùng một giây.
//
// Parameters:
//   - secret: JWT secret từ config
//   - agentID: ID của agent (hex string)
//   - role: Role của agent
//   - expireHours: Thời gian sống của token (giờ)
//
// Returns:
//   - string: Token đã ký
//   - error: Lỗi nếu có
func CreateToken(secret string, agentID string, role string, expireHours int) (string, error) {
	now := time.Now()
	claims := AgentClaims{
		AgentID: agentID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken parse và verify JWT token, trả về claims.
func ParseToken(secret string, tokenString string) (*AgentClaims, error) {
	claims := &AgentClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
