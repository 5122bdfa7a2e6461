package utility

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("matkhau123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	if hash == "matkhau123" {
		t.Fatal("hash không được trùng với mật khẩu gốc")
	}
	if err := ComparePassword(hash, "matkhau123"); err != nil {
		t.Errorf("ComparePassword phải khớp với mật khẩu đúng: %v", err)
	}
	if err := ComparePassword(hash, "matkhau456"); err == nil {
		t.Error("ComparePassword phải trả về lỗi với mật khẩu sai")
	}
}

func TestHashPassword_MoiLanKhacNhau(t *testing.T) {
	// bcrypt sinh salt ngẫu nhiên, hai lần hash cùng mật khẩu phải khác nhau
	h1, err := HashPassword("matkhau123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	h2, err := HashPassword("matkhau123")
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("hai lần hash cùng mật khẩu không được cho ra cùng kết quả")
	}
}
