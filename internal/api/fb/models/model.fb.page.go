// Package models - các model thuộc domain fb (trang, hội thoại, tin nhắn).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page định nghĩa mô hình trang Facebook đã kết nối.
// PageId là id do Facebook cấp, duy nhất trong hệ thống (unique index).
// IsSync bật/tắt việc job nền tự đồng bộ hội thoại cho trang này.
type Page struct {
	ID               primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	PageId           string               `json:"pageId" bson:"pageId" index:"unique"`
	Name             string               `json:"name" bson:"name"`
	Category         string               `json:"category,omitempty" bson:"category,omitempty"`
	AccessToken      string               `json:"-" bson:"accessToken,omitempty"`
	IsConnected      bool                 `json:"isConnected" bson:"isConnected" default:"true"`
	IsSync           bool                 `json:"isSync" bson:"isSync" default:"true"`
	AssignedAgentIds []primitive.ObjectID `json:"assignedAgentIds" bson:"assignedAgentIds,omitempty"` // Các agent được phân công cho trang
	CreatedAt        int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64                `json:"updatedAt" bson:"updatedAt"`
}
