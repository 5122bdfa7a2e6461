// Package webhookhdl - handler cho webhook Facebook Messenger.
//
// Khác các handler REST, webhook trả lời theo giao thức Facebook yêu cầu
// (chuỗi thuần và status code trần) thay vì envelope JSON chuẩn.
package webhookhdl

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	webhookdto "messenger_flow/internal/api/webhook/dto"
	webhooksvc "messenger_flow/internal/api/webhook/service"
)

// WebhookHandler xử lý handshake và event từ Facebook
type WebhookHandler struct {
	WebhookService *webhooksvc.WebhookService
}

// NewWebhookHandler khởi tạo WebhookHandler mới
func NewWebhookHandler() (*WebhookHandler, error) {
	service, err := webhooksvc.NewWebhookService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook service: %v", err)
	}
	return &WebhookHandler{WebhookService: service}, nil
}

// HandleVerify xử lý handshake đăng ký webhook (GET).
// Echo hub.challenge khi hub.mode có mặt và hub.verify_token khớp, ngược lại 403.
func (h *WebhookHandler) HandleVerify(c fiber.Ctx) error {
	mode := c.Query("hub.mode")
	verifyToken := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if h.WebhookService.VerifySubscription(mode, verifyToken) {
		logrus.Info("HandleVerify: Webhook đã được xác minh")
		return c.Status(fiber.StatusOK).SendString(challenge)
	}

	logrus.WithFields(logrus.Fields{"mode": mode}).Warn("HandleVerify: Xác minh webhook thất bại")
	return c.SendStatus(fiber.StatusForbidden)
}

// HandleReceive xử lý event Facebook giao tới (POST).
// Body có object khác "page" bị từ chối với 404, không ghi gì.
// Qua được bước kiểm tra object thì luôn trả 200 EVENT_RECEIVED,
// kể cả khi xử lý từng entry có lỗi (lỗi đã được lưu vào webhook_logs).
func (h *WebhookHandler) HandleReceive(c fiber.Ctx) error {
	payload := new(webhookdto.WebhookPayload)
	if err := json.Unmarshal(c.Body(), payload); err != nil {
		logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("HandleReceive: Body webhook không phải JSON hợp lệ")
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if payload.Object != "page" {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if _, err := h.WebhookService.Process(c.Context(), payload); err != nil {
		logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("HandleReceive: Lỗi xử lý payload webhook")
	}

	return c.Status(fiber.StatusOK).SendString("EVENT_RECEIVED")
}
