package fbhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "messenger_flow/internal/api/base/handler"
	fbdto "messenger_flow/internal/api/fb/dto"
	models "messenger_flow/internal/api/fb/models"
	fbsvc "messenger_flow/internal/api/fb/service"
)

// Giới hạn mặc định khi tải tin nhắn theo trang.
const (
	defaultMessagePageLimit = 50
	maxMessagePageLimit     = 200
)

// MessageHandler xử lý các yêu cầu liên quan đến tin nhắn
type MessageHandler struct {
	*basehdl.BaseHandler[models.Message, fbdto.MessageCreateInput, fbdto.MessageUpdateInput]
	MessageService *fbsvc.MessageService
}

// NewMessageHandler khởi tạo MessageHandler mới
func NewMessageHandler() (*MessageHandler, error) {
	service, err := fbsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}
	hdl := &MessageHandler{MessageService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Message, fbdto.MessageCreateInput, fbdto.MessageUpdateInput](service)
	return hdl, nil
}

// InsertOne tạo tin nhắn mới với dedup theo mid (shadow base CRUD).
// Tin nhắn trùng mid trả về bản ghi đã có, không insert lại.
func (h *MessageHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(fbdto.MessageCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.MessageService.Create(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListByConversation trả về tin nhắn của một hội thoại theo thứ tự thời
// gian tăng dần. Query params: limit (mặc định 50, tối đa 200) và offset.
func (h *MessageHandler) HandleListByConversation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		conversationID, err := parseParamObjectID(c, "conversationId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		limit, offset := basehdl.ParseLimitOffset(c, defaultMessagePageLimit, maxMessagePageLimit)

		data, err := h.MessageService.ListByConversation(c.Context(), conversationID, limit, offset)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSend gửi tin nhắn tới khách qua Send API rồi lưu bản ghi outbound.
func (h *MessageHandler) HandleSend(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(fbdto.MessageSendInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.MessageService.Send(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSyncForConversation đồng bộ tin nhắn của một hội thoại từ Graph API.
func (h *MessageHandler) HandleSyncForConversation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		conversationID, err := parseParamObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		synced, err := h.MessageService.SyncForConversation(c.Context(), conversationID)
		h.HandleResponse(c, fiber.Map{"synced": synced}, err)
		return nil
	})
}
