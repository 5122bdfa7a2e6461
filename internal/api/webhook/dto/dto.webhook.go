// Package webhookdto - cấu trúc payload Facebook gửi tới webhook.
package webhookdto

// WebhookPayload là body của một lần Facebook gọi webhook.
// Object phải là "page", các giá trị khác bị từ chối với 404.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// WebhookEntry là một entry trong payload, ứng với một trang.
type WebhookEntry struct {
	ID        string           `json:"id"`   // Id Facebook của trang
	Time      int64            `json:"time"` // Mili giây Unix
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent là một sự kiện messaging trong entry.
type MessagingEvent struct {
	Sender    EventParty      `json:"sender"`
	Recipient EventParty      `json:"recipient"`
	Timestamp int64           `json:"timestamp"` // Mili giây Unix
	Message   *MessagePayload `json:"message,omitempty"`
}

// EventParty là một bên của sự kiện (sender/recipient).
type EventParty struct {
	ID string `json:"id"`
}

// MessagePayload là nội dung tin nhắn trong sự kiện.
type MessagePayload struct {
	Mid  string `json:"mid"`
	Text string `json:"text"`
}
