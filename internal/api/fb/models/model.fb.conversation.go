package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái xử lý của hội thoại.
const (
	ConversationStatusOpen     = "open"
	ConversationStatusPending  = "pending"
	ConversationStatusResolved = "resolved"
)

// Conversation định nghĩa mô hình hội thoại giữa một trang và một khách.
// Khóa tự nhiên là (pageId, senderId), được bảo vệ bằng compound unique index
// và thao tác upsert FindOneAndUpdate.
//
// UnreadCount chỉ tăng qua đường webhook và chỉ về 0 qua thao tác mark-read;
// các flow đồng bộ không được chạm vào trường này.
type Conversation struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PageId          primitive.ObjectID `json:"pageId" bson:"pageId"`     // Tham chiếu trang nội bộ (không phải id Facebook)
	SenderId        string             `json:"senderId" bson:"senderId"` // PSID của khách
	SenderName      string             `json:"senderName" bson:"senderName"`
	SenderAvatar    string             `json:"senderAvatar,omitempty" bson:"senderAvatar,omitempty"`
	LastMessage     string             `json:"lastMessage" bson:"lastMessage"`
	LastMessageTime int64              `json:"lastMessageTime" bson:"lastMessageTime"` // Mili giây Unix
	UnreadCount     int64              `json:"unreadCount" bson:"unreadCount"`
	Status          string             `json:"status" bson:"status" default:"open"`
	AssignedAgentId primitive.ObjectID `json:"assignedAgentId,omitempty" bson:"assignedAgentId,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
