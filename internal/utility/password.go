package utility

import (
	"golang.org/x/crypto/bcrypt"

	"messenger_flow/internal/common"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu plaintext với hash bcrypt.
// Trả về common.ErrInvalidCredentials nếu không khớp.
func ComparePassword(hashedPassword string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
