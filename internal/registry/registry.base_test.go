package registry

import (
	"errors"
	"testing"

	"messenger_flow/internal/common"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("conversations", "handle-1")
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký tên mới phải trả về isNew=true")
	}

	isNew, err = r.Register("conversations", "handle-2")
	if err != nil {
		t.Fatalf("Register ghi đè trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè tên đã có phải trả về isNew=false")
	}

	got, exists := r.Get("conversations")
	if !exists {
		t.Fatal("phải tìm thấy item đã đăng ký")
	}
	if got != "handle-2" {
		t.Errorf("Get = %q, muốn giá trị ghi đè %q", got, "handle-2")
	}

	if _, exists := r.Get("chua-dang-ky"); exists {
		t.Error("tên chưa đăng ký phải trả về exists=false")
	}
}

func TestRegistry_TenRongBiTuChoi(t *testing.T) {
	r := NewRegistry[int]()

	if _, err := r.Register("", 1); !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("Register tên rỗng phải trả về ErrRequiredField, nhận được %v", err)
	}
	if _, err := r.Clear("", nil); !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("Clear tên rỗng phải trả về ErrRequiredField, nhận được %v", err)
	}
}

func TestRegistry_ClearGoiCleanup(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("messages", "handle")

	cleaned := false
	deleted, err := r.Clear("messages", func(item string) error {
		cleaned = true
		if item != "handle" {
			t.Errorf("cleanup nhận %q, muốn %q", item, "handle")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Clear trả về lỗi: %v", err)
	}
	if !deleted || !cleaned {
		t.Error("Clear phải gọi cleanup và xóa item")
	}
	if _, exists := r.Get("messages"); exists {
		t.Error("item đã Clear không được tìm thấy nữa")
	}

	if deleted, _ := r.Clear("khong-ton-tai", nil); deleted {
		t.Error("Clear tên không tồn tại phải trả về deleted=false")
	}
}
