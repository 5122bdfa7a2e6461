// Package fbhdl - handler cho domain fb (trang, hội thoại, tin nhắn).
package fbhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "messenger_flow/internal/api/base/handler"
	fbdto "messenger_flow/internal/api/fb/dto"
	models "messenger_flow/internal/api/fb/models"
	fbsvc "messenger_flow/internal/api/fb/service"
)

// PageHandler xử lý các yêu cầu liên quan đến trang Facebook
type PageHandler struct {
	*basehdl.BaseHandler[models.Page, fbdto.PageCreateInput, fbdto.PageUpdateInput]
	PageService *fbsvc.PageService
}

// NewPageHandler khởi tạo PageHandler mới
func NewPageHandler() (*PageHandler, error) {
	service, err := fbsvc.NewPageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create page service: %v", err)
	}
	hdl := &PageHandler{PageService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Page, fbdto.PageCreateInput, fbdto.PageUpdateInput](service)
	return hdl, nil
}

// InsertOne kết nối một trang mới (shadow base CRUD để dùng service.Create).
func (h *PageHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(fbdto.PageCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PageService.Create(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAssignAgents phân công danh sách agent cho trang.
func (h *PageHandler) HandleAssignAgents(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pageID, err := parseParamObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(fbdto.PageAssignAgentInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PageService.AssignAgents(c.Context(), pageID, input.AgentIds)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSetSync bật/tắt đồng bộ tự động cho trang.
func (h *PageHandler) HandleSetSync(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pageID, err := parseParamObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(fbdto.PageSetSyncInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PageService.SetSync(c.Context(), pageID, *input.IsSync)
		h.HandleResponse(c, data, err)
		return nil
	})
}
