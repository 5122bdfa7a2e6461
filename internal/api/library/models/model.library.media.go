package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại media hỗ trợ.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media là một tài nguyên ảnh/video đã duyệt để agent gửi cho khách.
// IsLocal đánh dấu tài nguyên lưu nội bộ thay vì URL ngoài.
type Media struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	URL       string             `json:"url" bson:"url"`
	Type      string             `json:"type" bson:"type"`
	IsLocal   bool               `json:"isLocal" bson:"isLocal"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
