// Package models - các model thuộc domain library (kho link và media đã duyệt).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Link là một đường dẫn đã duyệt để agent gửi cho khách.
type Link struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	URL       string             `json:"url" bson:"url"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
