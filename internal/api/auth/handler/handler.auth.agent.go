// Package authhdl - handler cho domain auth (Agent).
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "messenger_flow/internal/api/auth/dto"
	models "messenger_flow/internal/api/auth/models"
	authsvc "messenger_flow/internal/api/auth/service"
	basehdl "messenger_flow/internal/api/base/handler"
	"messenger_flow/internal/common"
)

// AgentHandler xử lý các yêu cầu liên quan đến agent
type AgentHandler struct {
	*basehdl.BaseHandler[models.Agent, authdto.AgentCreateInput, authdto.AgentUpdateInput]
	AgentService *authsvc.AgentService
}

// NewAgentHandler khởi tạo AgentHandler mới
func NewAgentHandler() (*AgentHandler, error) {
	service, err := authsvc.NewAgentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create agent service: %v", err)
	}
	hdl := &AgentHandler{AgentService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Agent, authdto.AgentCreateInput, authdto.AgentUpdateInput](service)
	return hdl, nil
}

// InsertOne tạo mới một agent (shadow base CRUD để băm mật khẩu trước khi lưu).
func (h *AgentHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(authdto.AgentCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.AgentService.Create(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleLogin đăng nhập bằng email/mật khẩu, trả về agent kèm token mới.
func (h *AgentHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(authdto.AgentLoginInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.AgentService.Login(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleLogout đăng xuất agent hiện tại (xóa token).
func (h *AgentHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		agentID, err := currentAgentID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.AgentService.Logout(c.Context(), agentID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleMe trả về thông tin agent hiện tại (theo token).
func (h *AgentHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		agentID, err := currentAgentID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.AgentService.FindOneById(c.Context(), agentID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của agent hiện tại.
func (h *AgentHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		agentID, err := currentAgentID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(authdto.AgentChangePasswordInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.AgentService.ChangePassword(c.Context(), agentID, input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSetStatus cập nhật trạng thái hiện diện của agent hiện tại.
func (h *AgentHandler) HandleSetStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		agentID, err := currentAgentID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(authdto.AgentSetStatusInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.AgentService.SetStatus(c.Context(), agentID, input.Status)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleAssignPages gán danh sách trang cho một agent (chỉ SUPER_ADMIN).
func (h *AgentHandler) HandleAssignPages(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		input := new(authdto.AgentAssignPagesInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		agentID, _ := primitive.ObjectIDFromHex(id)
		data, err := h.AgentService.AssignPages(c.Context(), agentID, input.PageIds)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// currentAgentID lấy ID của agent hiện tại từ context (do auth middleware set).
func currentAgentID(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr, ok := c.Locals("agent_id").(string)
	if !ok || idStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	agentID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return agentID, nil
}
