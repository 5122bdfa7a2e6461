package fbdto

// ConversationCreateInput đầu vào tạo/cập nhật hội thoại theo khóa tự nhiên.
// PageId là id nội bộ của trang (ObjectID hex), không phải id Facebook.
type ConversationCreateInput struct {
	PageId          string `json:"pageId" validate:"required" transform:"str_objectid"`
	SenderId        string `json:"senderId" validate:"required"`
	SenderName      string `json:"senderName"`
	SenderAvatar    string `json:"senderAvatar"`
	LastMessage     string `json:"lastMessage"`
	LastMessageTime int64  `json:"lastMessageTime"`
}

// ConversationUpdateInput đầu vào cập nhật hội thoại.
// Không cho đổi khóa tự nhiên (pageId, senderId); unreadCount chỉ đổi
// qua webhook và mark-read, không qua update thường.
type ConversationUpdateInput struct {
	SenderName      string `json:"senderName"`
	SenderAvatar    string `json:"senderAvatar"`
	LastMessage     string `json:"lastMessage"`
	LastMessageTime int64  `json:"lastMessageTime"`
	Status          string `json:"status" validate:"omitempty,oneof=open pending resolved"`
	AssignedAgentId string `json:"assignedAgentId" transform:"str_objectid,optional"`
}
