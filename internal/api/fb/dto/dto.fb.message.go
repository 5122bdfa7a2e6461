package fbdto

// MessageCreateInput đầu vào tạo tin nhắn thủ công.
// MessageId (mid) là tùy chọn; nếu có và đã tồn tại thì trả về bản ghi cũ,
// không tạo mới.
type MessageCreateInput struct {
	ConversationId string      `json:"conversationId" validate:"required" transform:"str_objectid"`
	MessageId      string      `json:"messageId"`
	SenderId       string      `json:"senderId" validate:"required"`
	SenderName     string      `json:"senderName"`
	Text           string      `json:"text"`
	Attachments    interface{} `json:"attachments"`
	IsFromPage     bool        `json:"isFromPage"`
	Timestamp      int64       `json:"timestamp"`
}

// MessageUpdateInput đầu vào cập nhật tin nhắn (hiếm dùng, chỉ sửa text).
type MessageUpdateInput struct {
	Text string `json:"text"`
}

// MessageSendInput đầu vào gửi tin nhắn tới khách qua Send API.
// Access token được lấy từ trang sở hữu hội thoại, không nhận từ client.
type MessageSendInput struct {
	ConversationId string `json:"conversationId" validate:"required"`
	Text           string `json:"text" validate:"required"`
}
