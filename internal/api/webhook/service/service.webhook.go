// Package webhooksvc - xử lý event Facebook gửi tới webhook.
package webhooksvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "messenger_flow/internal/api/base/service"
	fbsvc "messenger_flow/internal/api/fb/service"
	webhookdto "messenger_flow/internal/api/webhook/dto"
	models "messenger_flow/internal/api/webhook/models"
	"messenger_flow/internal/common"
	"messenger_flow/internal/global"
	"messenger_flow/internal/integrations/fbgraph"
	"messenger_flow/internal/utility"
)

// SenderNameAPI là phần Graph API mà WebhookService cần:
// tra tên khách khi hội thoại được tạo lần đầu từ webhook.
type SenderNameAPI interface {
	GetSenderName(ctx context.Context, psid string, accessToken string) (string, error)
}

// WebhookService xử lý payload webhook và ghi log mỗi lần nhận
type WebhookService struct {
	Logs          *basesvc.BaseServiceMongoImpl[models.WebhookLog]
	Pages         *fbsvc.PageService
	Conversations *fbsvc.ConversationService
	Messages      *fbsvc.MessageService
	Graph         SenderNameAPI
}

// NewWebhookService tạo mới WebhookService
func NewWebhookService() (*WebhookService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WebhookLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get webhook_logs collection: %v", common.ErrNotFound)
	}

	messageService, err := fbsvc.NewMessageService()
	if err != nil {
		return nil, err
	}

	return &WebhookService{
		Logs:          basesvc.NewBaseServiceMongo[models.WebhookLog](coll),
		Pages:         messageService.Conversations.Pages,
		Conversations: messageService.Conversations,
		Messages:      messageService,
		Graph:         fbgraph.NewClient(global.ServerConfig.FbGraphBaseURL, global.ServerConfig.FbApiVersion),
	}, nil
}

// VerifySubscription kiểm tra handshake đăng ký webhook của Facebook.
// Trả về true khi hub.mode có mặt và hub.verify_token khớp secret cấu hình.
func (s *WebhookService) VerifySubscription(mode string, verifyToken string) bool {
	return mode != "" && verifyToken == global.ServerConfig.FbWebhookVerifyToken
}

// Process xử lý một payload webhook đã qua kiểm tra object == "page".
// Với mỗi entry, chỉ sự kiện messaging đầu tiên có message được xử lý:
//   - trang không có trong hệ thống → bỏ qua entry, không lỗi
//   - hội thoại upsert theo khóa tự nhiên với $inc unreadCount atomic;
//     bản ghi mới lấy tên khách từ Graph API và bắt đầu với unreadCount=1
//   - tin nhắn upsert theo mid: Facebook giao lại event là no-op
//
// Trả về số entry đã ghi thành công. Mỗi lần nhận đều được lưu vào
// webhook_logs, kể cả khi xử lý lỗi.
func (s *WebhookService) Process(ctx context.Context, payload *webhookdto.WebhookPayload) (int, error) {
	processed := 0
	var processErr error

	for _, entry := range payload.Entry {
		if err := s.processEntry(ctx, entry); err != nil {
			logrus.WithFields(logrus.Fields{"entry_id": entry.ID, "error": err.Error()}).Error("Process: Lỗi xử lý entry webhook")
			processErr = err
			continue
		}
		processed++
	}

	s.writeLog(ctx, payload, processed, processErr)
	return processed, processErr
}

// processEntry xử lý một entry trong payload.
func (s *WebhookService) processEntry(ctx context.Context, entry webhookdto.WebhookEntry) error {
	// Chỉ sự kiện messaging đầu tiên của entry được xét
	if len(entry.Messaging) == 0 {
		return nil
	}
	event := entry.Messaging[0]
	if event.Message == nil {
		return nil
	}

	senderID := event.Sender.ID
	providerPageID := event.Recipient.ID
	text := event.Message.Text
	mid := event.Message.Mid
	timestamp := event.Timestamp
	if timestamp == 0 {
		timestamp = utility.CurrentTimeInMilli()
	}

	// Trang chưa kết nối với hệ thống: bỏ qua âm thầm
	page, err := s.Pages.FindOneByProviderID(ctx, providerPageID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logrus.WithFields(logrus.Fields{"provider_page_id": providerPageID}).Warn("processEntry: Nhận event cho trang chưa kết nối, bỏ qua")
			return nil
		}
		return err
	}

	// Tên khách chỉ cần khi hội thoại được tạo mới
	senderName := ""
	exists, err := s.Conversations.DocumentExists(ctx, bson.M{"pageId": page.ID, "senderId": senderID})
	if err != nil {
		return err
	}
	if !exists {
		senderName, err = s.Graph.GetSenderName(ctx, senderID, page.AccessToken)
		if err != nil {
			logrus.WithFields(logrus.Fields{"sender_id": senderID, "error": err.Error()}).Warn("processEntry: Không tra được tên khách, dùng Unknown")
			senderName = "Unknown"
		}
	}

	conversation, err := s.Conversations.ApplyInboundMessage(ctx, page.ID, senderID, senderName, text, timestamp)
	if err != nil {
		return err
	}

	if mid != "" {
		if _, err := s.Messages.UpsertInbound(ctx, conversation.ID, mid, senderID, conversation.SenderName, text, timestamp); err != nil {
			return err
		}
	}

	// Điểm mở rộng: trả lời tự động khi trang có agent AI được gán.
	return nil
}

// writeLog lưu vết lần nhận webhook. Best-effort: lỗi chỉ ghi log.
func (s *WebhookService) writeLog(ctx context.Context, payload *webhookdto.WebhookPayload, processed int, processErr error) {
	status := models.WebhookLogStatusProcessed
	errMsg := ""
	if processErr != nil {
		status = models.WebhookLogStatusError
		errMsg = processErr.Error()
	} else if processed == 0 {
		status = models.WebhookLogStatusIgnored
	}

	logEntry := models.WebhookLog{
		Object:         payload.Object,
		EntryCount:     len(payload.Entry),
		ProcessedCount: processed,
		Status:         status,
		Error:          errMsg,
		Payload:        payload,
	}
	if _, err := s.Logs.InsertOne(ctx, logEntry); err != nil {
		logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("writeLog: Không lưu được webhook log")
	}
}
