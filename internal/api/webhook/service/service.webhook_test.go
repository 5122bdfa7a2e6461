// Package webhooksvc - Test handshake xác minh webhook và parse payload.
package webhooksvc

import (
	"encoding/json"
	"testing"

	"messenger_flow/config"
	webhookdto "messenger_flow/internal/api/webhook/dto"
	"messenger_flow/internal/global"
)

func TestVerifySubscription(t *testing.T) {
	global.ServerConfig = &config.Configuration{FbWebhookVerifyToken: "bi-mat"}
	s := &WebhookService{}

	cases := []struct {
		name  string
		mode  string
		token string
		want  bool
	}{
		{"token đúng", "subscribe", "bi-mat", true},
		{"mode khác subscribe vẫn chấp nhận khi token đúng", "unsubscribe", "bi-mat", true},
		{"thiếu mode", "", "bi-mat", false},
		{"token sai", "subscribe", "sai-roi", false},
		{"token rỗng", "subscribe", "", false},
	}
	for _, tc := range cases {
		if got := s.VerifySubscription(tc.mode, tc.token); got != tc.want {
			t.Errorf("%s: VerifySubscription(%q, %q) = %v, muốn %v", tc.name, tc.mode, tc.token, got, tc.want)
		}
	}
}

func TestWebhookPayload_ParseBodyFacebook(t *testing.T) {
	// Payload thật Facebook gửi khi khách nhắn tin vào trang
	body := []byte(`{
		"object": "page",
		"entry": [{
			"id": "111222333",
			"time": 1705307400000,
			"messaging": [{
				"sender": {"id": "999888777"},
				"recipient": {"id": "111222333"},
				"timestamp": 1705307400123,
				"message": {"mid": "m_abc123", "text": "xin chào shop"}
			}]
		}]
	}`)

	var payload webhookdto.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("không parse được payload webhook: %v", err)
	}
	if payload.Object != "page" {
		t.Errorf("object = %q, muốn %q", payload.Object, "page")
	}
	if len(payload.Entry) != 1 {
		t.Fatalf("số entry = %d, muốn 1", len(payload.Entry))
	}
	entry := payload.Entry[0]
	if entry.ID != "111222333" {
		t.Errorf("entry.id = %q, muốn %q", entry.ID, "111222333")
	}
	if len(entry.Messaging) != 1 {
		t.Fatalf("số messaging = %d, muốn 1", len(entry.Messaging))
	}
	event := entry.Messaging[0]
	if event.Sender.ID != "999888777" {
		t.Errorf("sender.id = %q, muốn %q", event.Sender.ID, "999888777")
	}
	if event.Timestamp != 1705307400123 {
		t.Errorf("timestamp = %d, muốn %d", event.Timestamp, int64(1705307400123))
	}
	if event.Message == nil || event.Message.Mid != "m_abc123" || event.Message.Text != "xin chào shop" {
		t.Errorf("message không đúng: %+v", event.Message)
	}
}

func TestWebhookPayload_SuKienKhongCoMessage(t *testing.T) {
	// Sự kiện delivery/read không có field message, Message phải là nil
	body := []byte(`{
		"object": "page",
		"entry": [{
			"id": "111222333",
			"messaging": [{
				"sender": {"id": "999888777"},
				"recipient": {"id": "111222333"},
				"timestamp": 1705307400123
			}]
		}]
	}`)

	var payload webhookdto.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("không parse được payload webhook: %v", err)
	}
	if payload.Entry[0].Messaging[0].Message != nil {
		t.Error("sự kiện không có message phải parse ra Message = nil")
	}
}
