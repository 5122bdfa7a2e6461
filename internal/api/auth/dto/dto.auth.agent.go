package authdto

import (
	"messenger_flow/internal/api/auth/models"
)

// AgentCreateInput đầu vào tạo agent (CRUD).
type AgentCreateInput struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,strong_password"`
	Role            string   `json:"role" validate:"omitempty,oneof=SUPER_ADMIN AGENT"`
	AvatarURL       string   `json:"avatarUrl"`
	AssignedPageIds []string `json:"assignedPageIds"`
}

// AgentUpdateInput đầu vào cập nhật agent.
// Password không cho update qua CRUD, phải dùng change-password.
// AssignedPageIds không cho update qua CRUD, phải dùng assign-pages.
type AgentUpdateInput struct {
	Name      string `json:"name"`
	Role      string `json:"role" validate:"omitempty,oneof=SUPER_ADMIN AGENT"`
	Status    string `json:"status" validate:"omitempty,oneof=online offline busy"`
	AvatarURL string `json:"avatarUrl"`
}

// AgentLoginInput đầu vào đăng nhập.
type AgentLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AgentLoginResult kết quả đăng nhập. Đây là chỗ duy nhất token được
// serialize ra response; model Agent giấu token (json:"-").
type AgentLoginResult struct {
	Token string       `json:"token"`
	Agent models.Agent `json:"agent"`
}

// AgentChangePasswordInput đầu vào đổi mật khẩu.
type AgentChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// AgentAssignPagesInput đầu vào gán danh sách trang cho agent.
type AgentAssignPagesInput struct {
	PageIds []string `json:"pageIds" validate:"required"`
}

// AgentSetStatusInput đầu vào cập nhật trạng thái hiện diện.
type AgentSetStatusInput struct {
	Status string `json:"status" validate:"required,oneof=online offline busy"`
}
