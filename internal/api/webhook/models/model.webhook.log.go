// Package models - model thuộc domain webhook.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái xử lý của một lần nhận webhook.
const (
	WebhookLogStatusProcessed = "processed"
	WebhookLogStatusIgnored   = "ignored"
	WebhookLogStatusError     = "error"
)

// WebhookLog lưu vết mỗi lần Facebook gọi webhook, phục vụ truy vết khi
// tin nhắn không xuất hiện trong hộp thư.
type WebhookLog struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Object         string             `json:"object" bson:"object"`
	EntryCount     int                `json:"entryCount" bson:"entryCount"`
	ProcessedCount int                `json:"processedCount" bson:"processedCount"`
	Status         string             `json:"status" bson:"status"`
	Error          string             `json:"error,omitempty" bson:"error,omitempty"`
	Payload        interface{}        `json:"payload,omitempty" bson:"payload,omitempty"` // Body gốc của lần gọi
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
