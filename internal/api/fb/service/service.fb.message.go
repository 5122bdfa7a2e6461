package fbsvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "messenger_flow/internal/api/base/service"
	fbdto "messenger_flow/internal/api/fb/dto"
	models "messenger_flow/internal/api/fb/models"
	"messenger_flow/internal/common"
	"messenger_flow/internal/global"
	"messenger_flow/internal/integrations/fbgraph"
	"messenger_flow/internal/utility"
)

// MessageSyncLimit - số tin nhắn lấy trong một lần đồng bộ một hội thoại.
const MessageSyncLimit = 100

// MessageGraphAPI là phần Graph API mà MessageService cần.
type MessageGraphAPI interface {
	ListMessages(ctx context.Context, threadID string, accessToken string, limit int) ([]fbgraph.Message, error)
	SendMessage(ctx context.Context, accessToken string, recipientID string, text string) (string, error)
}

// MessageService là cấu trúc chứa các phương thức liên quan đến tin nhắn
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[models.Message]
	Conversations *ConversationService
	Graph         MessageGraphAPI
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("failed to get messages collection: %v", common.ErrNotFound)
	}

	conversationService, err := NewConversationService()
	if err != nil {
		return nil, err
	}

	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Message](coll),
		Conversations:        conversationService,
		Graph:                fbgraph.NewClient(global.ServerConfig.FbGraphBaseURL, global.ServerConfig.FbApiVersion),
	}, nil
}

// ListByConversation trả về tin nhắn của một hội thoại theo thứ tự thời gian
// tăng dần, với limit/offset để client tải theo trang.
func (s *MessageService) ListByConversation(ctx context.Context, conversationID primitive.ObjectID, limit int64, offset int64) ([]models.Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"conversationId": conversationID}, opts)
}

// foldIntoConversation cập nhật lastMessage/lastMessageTime của hội thoại cha.
// Best-effort: lỗi chỉ được ghi log, không làm hỏng thao tác ghi tin nhắn.
func (s *MessageService) foldIntoConversation(ctx context.Context, conversationID primitive.ObjectID, text string, timestamp int64) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lastMessage":     text,
			"lastMessageTime": timestamp,
		},
	}
	if _, err := s.Conversations.UpdateById(ctx, conversationID, updateData); err != nil {
		logrus.WithFields(logrus.Fields{"conversation_id": conversationID.Hex(), "error": err.Error()}).Warn("foldIntoConversation: Không cập nhật được lastMessage của hội thoại")
	}
}

// Create tạo tin nhắn mới với dedup theo mid.
// Nếu input có messageId và mid đã tồn tại thì trả về bản ghi cũ, không insert lại.
// Sau khi insert, lastMessage của hội thoại cha được cập nhật best-effort.
func (s *MessageService) Create(ctx context.Context, input *fbdto.MessageCreateInput) (*models.Message, error) {
	if !primitive.IsValidObjectID(input.ConversationId) {
		return nil, common.ErrInvalidInput
	}
	conversationID := utility.String2ObjectID(input.ConversationId)

	if input.MessageId != "" {
		existing, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"messageId": input.MessageId}, nil)
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	timestamp := input.Timestamp
	if timestamp == 0 {
		timestamp = utility.CurrentTimeInMilli()
	}

	message := models.Message{
		ConversationId: conversationID,
		MessageId:      input.MessageId,
		SenderId:       input.SenderId,
		SenderName:     input.SenderName,
		Text:           input.Text,
		Attachments:    input.Attachments,
		IsFromPage:     input.IsFromPage,
		Timestamp:      timestamp,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, message)
	if err != nil {
		// Hai request cùng mid chạy đua nhau: request thua trả về bản ghi thắng.
		// Không fold lại vào hội thoại ở nhánh này: request thắng đã fold
		// chính tin nhắn đó rồi.
		if errors.Is(err, common.ErrMongoDuplicate) && input.MessageId != "" {
			existing, findErr := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"messageId": input.MessageId}, nil)
			if findErr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}

	s.foldIntoConversation(ctx, conversationID, created.Text, created.Timestamp)
	return &created, nil
}

// Send gửi tin nhắn tới khách qua Send API rồi lưu bản ghi outbound.
// Access token và PSID người nhận được lấy từ hội thoại và trang sở hữu,
// client chỉ gửi nội dung.
func (s *MessageService) Send(ctx context.Context, input *fbdto.MessageSendInput) (*models.Message, error) {
	if !primitive.IsValidObjectID(input.ConversationId) {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Conversation ID '%s' không đúng định dạng MongoDB ObjectID", input.ConversationId),
			common.StatusBadRequest,
			nil,
		)
	}
	conversationID := utility.String2ObjectID(input.ConversationId)

	conversation, err := s.Conversations.FindOneById(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	page, err := s.Conversations.Pages.FindOneById(ctx, conversation.PageId)
	if err != nil {
		return nil, err
	}

	mid, err := s.Graph.SendMessage(ctx, page.AccessToken, conversation.SenderId, input.Text)
	if err != nil {
		return nil, err
	}

	now := utility.CurrentTimeInMilli()
	message := models.Message{
		ConversationId: conversationID,
		MessageId:      mid,
		SenderId:       page.PageId,
		SenderName:     page.Name,
		Text:           input.Text,
		IsFromPage:     true,
		Timestamp:      now,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}

	s.foldIntoConversation(ctx, conversationID, input.Text, now)
	return &created, nil
}

// UpsertFromGraph ghi một tin nhắn lấy từ Graph API theo khóa dedup messageId.
func (s *MessageService) UpsertFromGraph(ctx context.Context, conversationID primitive.ObjectID, providerPageID string, msg fbgraph.Message) (*models.Message, error) {
	timestamp, err := fbgraph.ParseCreatedTime(msg.CreatedTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{"message_id": msg.ID, "created_time": msg.CreatedTime}).Warn("UpsertFromGraph: created_time không parse được, bỏ qua tin nhắn")
		return nil, nil
	}

	senderName := msg.From.Name
	if senderName == "" {
		senderName = "Unknown"
	}

	set := map[string]interface{}{
		"conversationId": conversationID,
		"senderId":       msg.From.ID,
		"senderName":     senderName,
		"text":           msg.Message,
		"isFromPage":     msg.From.ID == providerPageID,
		"timestamp":      timestamp,
	}

	// Attachments giữ nguyên cấu trúc từ Graph API
	if len(msg.Attachments) > 0 {
		var attachments interface{}
		if err := json.Unmarshal(msg.Attachments, &attachments); err == nil {
			set["attachments"] = attachments
		}
	}

	filter := bson.M{"messageId": msg.ID}
	updateData := &basesvc.UpdateData{Set: set}

	upserted, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}

// UpsertInbound ghi một tin nhắn inbound (từ webhook) theo khóa dedup mid.
// Facebook có thể giao lại cùng một event nhiều lần; upsert trên messageId
// biến lần giao lại thành no-op.
func (s *MessageService) UpsertInbound(ctx context.Context, conversationID primitive.ObjectID, mid string, senderID string, senderName string, text string, timestamp int64) (*models.Message, error) {
	filter := bson.M{"messageId": mid}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"conversationId": conversationID,
			"senderId":       senderID,
			"senderName":     senderName,
			"text":           text,
			"isFromPage":     false,
			"timestamp":      timestamp,
		},
	}

	upserted, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}

// SyncForConversation đồng bộ tin nhắn của một hội thoại từ Graph API.
// Thread được suy ra từ senderId đã lưu; access token lấy từ trang sở hữu.
// Trả về số tin nhắn đã ghi.
func (s *MessageService) SyncForConversation(ctx context.Context, conversationID primitive.ObjectID) (int, error) {
	conversation, err := s.Conversations.FindOneById(ctx, conversationID)
	if err != nil {
		return 0, err
	}

	page, err := s.Conversations.Pages.FindOneById(ctx, conversation.PageId)
	if err != nil {
		return 0, err
	}

	messages, err := s.Graph.ListMessages(ctx, conversation.SenderId, page.AccessToken, MessageSyncLimit)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, msg := range messages {
		upserted, err := s.UpsertFromGraph(ctx, conversationID, page.PageId, msg)
		if err != nil {
			return synced, err
		}
		if upserted != nil {
			synced++
		}
	}

	logrus.WithFields(logrus.Fields{"conversation_id": conversationID.Hex(), "synced": synced}).Info("SyncForConversation: Đồng bộ tin nhắn xong")
	return synced, nil
}
