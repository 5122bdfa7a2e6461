// Package authdto - Test response đăng nhập là nơi duy nhất chứa token.
package authdto

import (
	"encoding/json"
	"strings"
	"testing"

	"messenger_flow/internal/api/auth/models"
)

func TestAgentLoginResult_TokenChiNamOTopLevel(t *testing.T) {
	result := AgentLoginResult{
		Token: "jwt-moi-cap",
		Agent: models.Agent{
			Name:  "Nguyễn Văn A",
			Email: "a@example.com",
			Token: "jwt-moi-cap",
		},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("json.Marshal trả về lỗi: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, `"token":"jwt-moi-cap"`) {
		t.Errorf("response đăng nhập phải chứa token cấp mới: %s", out)
	}
	if strings.Count(out, "jwt-moi-cap") != 1 {
		t.Errorf("token chỉ được xuất hiện một lần (top-level), agent nhúng bên trong phải giấu token: %s", out)
	}
}
