package fbhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "messenger_flow/internal/api/base/handler"
	fbdto "messenger_flow/internal/api/fb/dto"
	models "messenger_flow/internal/api/fb/models"
	fbsvc "messenger_flow/internal/api/fb/service"
	"messenger_flow/internal/common"
	"messenger_flow/internal/utility"
)

// ConversationHandler xử lý các yêu cầu liên quan đến hội thoại
type ConversationHandler struct {
	*basehdl.BaseHandler[models.Conversation, fbdto.ConversationCreateInput, fbdto.ConversationUpdateInput]
	ConversationService *fbsvc.ConversationService
}

// NewConversationHandler khởi tạo ConversationHandler mới
func NewConversationHandler() (*ConversationHandler, error) {
	service, err := fbsvc.NewConversationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation service: %v", err)
	}
	hdl := &ConversationHandler{ConversationService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Conversation, fbdto.ConversationCreateInput, fbdto.ConversationUpdateInput](service)
	return hdl, nil
}

// parseParamObjectID đọc và kiểm tra một param ObjectID bất kỳ.
func parseParamObjectID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	objectID, _ := primitive.ObjectIDFromHex(id)
	return objectID, nil
}

// HandleListByPage trả về các hội thoại của một trang, mới nhất trước.
func (h *ConversationHandler) HandleListByPage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pageID, err := parseParamObjectID(c, "pageId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.ConversationService.ListByPage(c.Context(), pageID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCreateOrUpdate upsert hội thoại theo khóa tự nhiên (pageId, senderId).
func (h *ConversationHandler) HandleCreateOrUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(fbdto.ConversationCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !primitive.IsValidObjectID(input.PageId) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Page ID '%s' không đúng định dạng MongoDB ObjectID", input.PageId),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		set := map[string]interface{}{
			"senderName":      input.SenderName,
			"senderAvatar":    input.SenderAvatar,
			"lastMessage":     input.LastMessage,
			"lastMessageTime": input.LastMessageTime,
		}

		data, err := h.ConversationService.CreateOrUpdate(c.Context(), utility.String2ObjectID(input.PageId), input.SenderId, set)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkAsRead đưa unreadCount của hội thoại về 0.
func (h *ConversationHandler) HandleMarkAsRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		conversationID, err := parseParamObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.ConversationService.MarkAsRead(c.Context(), conversationID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSyncRecent đồng bộ các hội thoại mới nhất của trang từ Graph API.
func (h *ConversationHandler) HandleSyncRecent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pageID, err := parseParamObjectID(c, "pageId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		synced, err := h.ConversationService.SyncRecent(c.Context(), pageID)
		h.HandleResponse(c, fiber.Map{"synced": synced}, err)
		return nil
	})
}

// HandleSyncAll đồng bộ toàn bộ hội thoại của trang từ Graph API.
func (h *ConversationHandler) HandleSyncAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pageID, err := parseParamObjectID(c, "pageId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		synced, err := h.ConversationService.SyncAll(c.Context(), pageID)
		h.HandleResponse(c, fiber.Map{"synced": synced}, err)
		return nil
	})
}
