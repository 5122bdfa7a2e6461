package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message định nghĩa mô hình một tin nhắn trong hội thoại.
// MessageId là mid do Facebook cấp, dùng làm khóa dedup khi có mặt
// (partial unique index); tin nhắn tạo thủ công có thể không có mid.
type Message struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ConversationId primitive.ObjectID `json:"conversationId" bson:"conversationId"`
	MessageId      string             `json:"messageId,omitempty" bson:"messageId,omitempty"`
	SenderId       string             `json:"senderId" bson:"senderId"`
	SenderName     string             `json:"senderName,omitempty" bson:"senderName,omitempty"`
	Text           string             `json:"text" bson:"text"`
	Attachments    interface{}        `json:"attachments,omitempty" bson:"attachments,omitempty"` // Giữ nguyên payload từ Graph API, không diễn giải
	IsFromPage     bool               `json:"isFromPage" bson:"isFromPage"`
	Timestamp      int64              `json:"timestamp" bson:"timestamp"` // Mili giây Unix
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
