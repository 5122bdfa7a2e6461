// Package models - Test model Agent không serialize thông tin nhạy cảm.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAgent_KhongSerializePasswordVaToken(t *testing.T) {
	agent := Agent{
		Name:     "Nguyễn Văn A",
		Email:    "a@example.com",
		Password: "bcrypt-hash",
		Role:     RoleAgent,
		Status:   AgentStatusOnline,
		Token:    "live-bearer-token",
	}

	data, err := json.Marshal(agent)
	if err != nil {
		t.Fatalf("json.Marshal trả về lỗi: %v", err)
	}

	out := string(data)
	if strings.Contains(out, "bcrypt-hash") || strings.Contains(out, "password") {
		t.Errorf("password bị lộ trong JSON: %s", out)
	}
	if strings.Contains(out, "live-bearer-token") || strings.Contains(out, `"token"`) {
		t.Errorf("token bị lộ trong JSON: %s", out)
	}
	if !strings.Contains(out, `"email":"a@example.com"`) {
		t.Errorf("các trường thường vẫn phải serialize bình thường: %s", out)
	}
}
