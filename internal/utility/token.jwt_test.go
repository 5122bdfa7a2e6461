package utility

import "testing"

func TestCreateAndParseToken(t *testing.T) {
	token, err := CreateToken("jwt-secret", "65a1b2c3d4e5f6a7b8c9d0e1", "AGENT", 24)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	claims, err := ParseToken("jwt-secret", token)
	if err != nil {
		t.Fatalf("ParseToken trả về lỗi với token hợp lệ: %v", err)
	}
	if claims.AgentID != "65a1b2c3d4e5f6a7b8c9d0e1" {
		t.Errorf("AgentID = %q, muốn %q", claims.AgentID, "65a1b2c3d4e5f6a7b8c9d0e1")
	}
	if claims.Role != "AGENT" {
		t.Errorf("Role = %q, muốn %q", claims.Role, "AGENT")
	}
}

func TestParseToken_SaiSecret(t *testing.T) {
	token, err := CreateToken("jwt-secret", "65a1b2c3d4e5f6a7b8c9d0e1", "AGENT", 24)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if _, err := ParseToken("secret-khac", token); err == nil {
		t.Error("ParseToken phải trả về lỗi khi secret không khớp")
	}
}

func TestParseToken_TokenHetHan(t *testing.T) {
	// expireHours âm tạo token đã hết hạn
	token, err := CreateToken("jwt-secret", "65a1b2c3d4e5f6a7b8c9d0e1", "AGENT", -1)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if _, err := ParseToken("jwt-secret", token); err == nil {
		t.Error("ParseToken phải trả về lỗi với token đã hết hạn")
	}
}

func TestCreateToken_HaiLanKhacNhau(t *testing.T) {
	// jti ngẫu nhiên nên hai lần login liên tiếp cho token khác nhau
	t1, err := CreateToken("jwt-secret", "65a1b2c3d4e5f6a7b8c9d0e1", "AGENT", 24)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	t2, err := CreateToken("jwt-secret", "65a1b2c3d4e5f6a7b8c9d0e1", "AGENT", 24)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if t1 == t2 {
		t.Error("hai token tạo liên tiếp không được trùng nhau")
	}
}
