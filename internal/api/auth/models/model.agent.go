// Package models - model nhân viên chăm sóc (Agent) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role trong hệ thống. SUPER_ADMIN có toàn quyền, AGENT chỉ thao tác
// trên hội thoại và tin nhắn của các trang được gán.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAgent      = "AGENT"
)

// Các trạng thái hiện diện của agent. Không ảnh hưởng đến việc đăng nhập,
// chỉ dùng để hiển thị và phân phối hội thoại.
const (
	AgentStatusOnline  = "online"
	AgentStatusOffline = "offline"
	AgentStatusBusy    = "busy"
)

// Agent định nghĩa mô hình nhân viên chăm sóc khách hàng.
// Token chứa token xác thực mới nhất của agent, logout sẽ xóa token này.
// Password và Token không bao giờ serialize ra JSON; token chỉ được trả về
// một lần trong response đăng nhập.
type Agent struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Email           string               `json:"email" bson:"email" index:"unique"`
	Password        string               `json:"-" bson:"password,omitempty"`
	Role            string               `json:"role" bson:"role" default:"AGENT"`
	Status          string               `json:"status" bson:"status" default:"offline"`
	Token           string               `json:"-" bson:"token,omitempty"`
	AvatarURL       string               `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	AssignedPageIds []primitive.ObjectID `json:"assignedPageIds" bson:"assignedPageIds,omitempty"` // Các trang agent được phép thao tác
	LastLoginAt     int64                `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt       int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64                `json:"updatedAt" bson:"updatedAt"`
}

// IsSuperAdmin kiểm tra agent có phải SUPER_ADMIN không
func (a *Agent) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}
