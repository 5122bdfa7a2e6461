package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRedactHook_CheFieldNhayCam(t *testing.T) {
	hook := NewRedactHook(&LogConfig{})

	entry := &logrus.Entry{Data: logrus.Fields{
		"password":          "mat-khau-goc",
		"access_token":      "EAAB-page-token",
		"page_access_token": "EAAB-page-token-2",
		"verify_token":      "webhook-verify",
		"Authorization":     "Bearer abc",
		"refresh_token":     "hau-to-token",
		"client_secret":     "hau-to-secret",
		"email":             "agent@example.com",
		"pageId":            "111222333",
	}}

	if err := hook.Fire(entry); err != nil {
		t.Fatalf("Fire trả về lỗi: %v", err)
	}

	sensitive := []string{
		"password", "access_token", "page_access_token",
		"verify_token", "Authorization", "refresh_token", "client_secret",
	}
	for _, key := range sensitive {
		if entry.Data[key] != redactedValue {
			t.Errorf("field %s phải bị che, nhận được %v", key, entry.Data[key])
		}
	}

	if entry.Data["email"] != "agent@example.com" {
		t.Errorf("field email không được che, nhận được %v", entry.Data["email"])
	}
	if entry.Data["pageId"] != "111222333" {
		t.Errorf("field pageId không được che, nhận được %v", entry.Data["pageId"])
	}
}

func TestRedactHook_FieldMoRongTuConfig(t *testing.T) {
	hook := NewRedactHook(&LogConfig{RedactFields: "session_id, internal_key"})

	entry := &logrus.Entry{Data: logrus.Fields{
		"session_id":   "phien-123",
		"Internal_Key": "khoa-noi-bo",
		"pageId":       "111222333",
	}}

	if err := hook.Fire(entry); err != nil {
		t.Fatalf("Fire trả về lỗi: %v", err)
	}

	if entry.Data["session_id"] != redactedValue {
		t.Error("session_id từ LOG_REDACT_FIELDS phải bị che")
	}
	if entry.Data["Internal_Key"] != redactedValue {
		t.Error("so khớp field phải không phân biệt hoa thường")
	}
	if entry.Data["pageId"] != "111222333" {
		t.Errorf("field pageId không được che, nhận được %v", entry.Data["pageId"])
	}
}
