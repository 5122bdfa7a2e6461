package fbsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "messenger_flow/internal/api/base/service"
	models "messenger_flow/internal/api/fb/models"
	"messenger_flow/internal/common"
	"messenger_flow/internal/global"
	"messenger_flow/internal/integrations/fbgraph"
)

// Giới hạn cho các flow đồng bộ hội thoại.
const (
	// RecentSyncLimit - số hội thoại mới nhất lấy trong một lần đồng bộ nhanh
	RecentSyncLimit = 5
	// FullSyncPageLimit - kích thước mỗi trang khi đồng bộ toàn bộ
	FullSyncPageLimit = 100
	// FullSyncMaxConversations - chặn trên tổng số hội thoại cho một lần đồng bộ toàn bộ
	FullSyncMaxConversations = 500
)

// ConversationGraphAPI là phần Graph API mà ConversationService cần.
type ConversationGraphAPI interface {
	ListConversations(ctx context.Context, providerPageID string, accessToken string, limit int, after string) (*fbgraph.ConversationPage, error)
	GetSenderName(ctx context.Context, psid string, accessToken string) (string, error)
}

// ConversationService là cấu trúc chứa các phương thức liên quan đến hội thoại
type ConversationService struct {
	*basesvc.BaseServiceMongoImpl[models.Conversation]
	Pages *PageService
	Graph ConversationGraphAPI
}

// NewConversationService tạo mới ConversationService
func NewConversationService() (*ConversationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Conversations)
	if !exist {
		return nil, fmt.Errorf("failed to get conversations collection: %v", common.ErrNotFound)
	}

	pageService, err := NewPageService()
	if err != nil {
		return nil, err
	}

	return &ConversationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Conversation](coll),
		Pages:                pageService,
		Graph:                fbgraph.NewClient(global.ServerConfig.FbGraphBaseURL, global.ServerConfig.FbApiVersion),
	}, nil
}

// ListByPage trả về các hội thoại của một trang, mới nhất trước.
func (s *ConversationService) ListByPage(ctx context.Context, pageID primitive.ObjectID) ([]models.Conversation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastMessageTime", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"pageId": pageID}, opts)
}

// MarkAsRead đưa unreadCount của hội thoại về 0.
// Chỉ chạm vào unreadCount, lastMessage/lastMessageTime giữ nguyên.
func (s *ConversationService) MarkAsRead(ctx context.Context, id primitive.ObjectID) (*models.Conversation, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"unreadCount": int64(0)},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MapGraphConversation rút khách và tin nhắn cuối từ một hội thoại Graph API.
// Khách là người tham gia đầu tiên có id khác id trang; tin nhắn cuối là phần tử
// đầu của expansion messages.limit(1). Thiếu một trong hai → trả về ok=false,
// hội thoại bị bỏ qua chứ không phải lỗi.
func MapGraphConversation(providerPageID string, conv fbgraph.Conversation) (participant fbgraph.Participant, lastMessage fbgraph.Message, ok bool) {
	for _, p := range conv.Participants.Data {
		if p.ID != providerPageID {
			participant = p
			break
		}
	}
	if participant.ID == "" {
		return participant, lastMessage, false
	}
	if len(conv.Messages.Data) == 0 {
		return participant, lastMessage, false
	}
	return participant, conv.Messages.Data[0], true
}

// UpsertFromGraph ghi một hội thoại lấy từ Graph API vào database theo khóa
// tự nhiên (pageId, senderId). Flow đồng bộ không chạm vào unreadCount:
// chỉ $setOnInsert unreadCount=0 cho bản ghi mới.
// Trả về (nil, nil) khi payload thiếu khách hoặc thiếu tin nhắn cuối.
func (s *ConversationService) UpsertFromGraph(ctx context.Context, pageID primitive.ObjectID, providerPageID string, conv fbgraph.Conversation) (*models.Conversation, error) {
	participant, lastMsg, ok := MapGraphConversation(providerPageID, conv)
	if !ok {
		return nil, nil
	}

	senderName := participant.Name
	if senderName == "" {
		senderName = "Unknown"
	}

	lastMessageTime, err := fbgraph.ParseCreatedTime(lastMsg.CreatedTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{"sender_id": participant.ID, "created_time": lastMsg.CreatedTime}).Warn("UpsertFromGraph: created_time không parse được, bỏ qua hội thoại")
		return nil, nil
	}

	filter := bson.M{"pageId": pageID, "senderId": participant.ID}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"senderName":      senderName,
			"lastMessage":     lastMsg.Message,
			"lastMessageTime": lastMessageTime,
			"status":          models.ConversationStatusOpen,
		},
		SetOnInsert: map[string]interface{}{
			"unreadCount": int64(0),
		},
	}

	upserted, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}

// CreateOrUpdate upsert một hội thoại theo khóa tự nhiên từ input REST.
// Không chạm vào unreadCount: bộ đếm chỉ tăng qua webhook và chỉ về 0
// qua mark-read. Bản ghi mới nhận unreadCount=0.
func (s *ConversationService) CreateOrUpdate(ctx context.Context, pageID primitive.ObjectID, senderID string, set map[string]interface{}) (*models.Conversation, error) {
	filter := bson.M{"pageId": pageID, "senderId": senderID}
	updateData := &basesvc.UpdateData{
		Set: set,
		SetOnInsert: map[string]interface{}{
			"unreadCount": int64(0),
		},
	}

	upserted, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}

// ApplyInboundMessage ghi một tin nhắn inbound (từ webhook) vào hội thoại
// theo khóa tự nhiên, trong MỘT thao tác atomic:
//   - $inc unreadCount 1 — với document mới, $inc gieo giá trị 1
//   - $set lastMessage/lastMessageTime
//   - $setOnInsert senderName — chỉ gán khi tạo mới
//
// Nhờ atomic $inc, hai event webhook tới đồng thời không làm mất lượt đếm.
func (s *ConversationService) ApplyInboundMessage(ctx context.Context, pageID primitive.ObjectID, senderID string, senderName string, text string, timestamp int64) (*models.Conversation, error) {
	filter := bson.M{"pageId": pageID, "senderId": senderID}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lastMessage":     text,
			"lastMessageTime": timestamp,
		},
		SetOnInsert: map[string]interface{}{
			"senderName": senderName,
		},
		Inc: map[string]interface{}{
			"unreadCount": int64(1),
		},
	}

	upserted, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}

// SyncRecent đồng bộ các hội thoại mới nhất của một trang (một lần gọi Graph API).
// Trả về số hội thoại đã ghi. Thao tác idempotent: chạy lại không tạo bản ghi trùng.
func (s *ConversationService) SyncRecent(ctx context.Context, pageID primitive.ObjectID) (int, error) {
	page, err := s.Pages.FindOneById(ctx, pageID)
	if err != nil {
		return 0, err
	}

	result, err := s.Graph.ListConversations(ctx, page.PageId, page.AccessToken, RecentSyncLimit, "")
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, conv := range result.Data {
		upserted, err := s.UpsertFromGraph(ctx, page.ID, page.PageId, conv)
		if err != nil {
			return synced, err
		}
		if upserted != nil {
			synced++
		}
	}

	logrus.WithFields(logrus.Fields{"page_id": pageID.Hex(), "synced": synced}).Info("SyncRecent: Đồng bộ hội thoại gần nhất xong")
	return synced, nil
}

// nextFullSyncCursor quyết định bước kế tiếp của flow đồng bộ toàn bộ sau khi
// một trang kết quả đã được ghi xong: trả về con trỏ after cho lần gọi kế
// tiếp, hoặc done=true khi hết con trỏ phân trang hoặc tổng số hội thoại đã
// lấy chạm chặn trên FullSyncMaxConversations.
func nextFullSyncCursor(page *fbgraph.ConversationPage, fetched int) (after string, done bool) {
	if page.Paging == nil || page.Paging.Next == "" || page.Paging.Cursors.After == "" {
		return "", true
	}
	if fetched >= FullSyncMaxConversations {
		return "", true
	}
	return page.Paging.Cursors.After, false
}

// SyncAll đồng bộ toàn bộ hội thoại của một trang, theo trang 100 bản ghi
// cho tới khi hết con trỏ phân trang hoặc chạm chặn trên 500 hội thoại.
// Mỗi trang được ghi trước khi lấy trang kế tiếp: nếu một lần gọi sau lỗi,
// các bản ghi đã ghi vẫn được giữ.
func (s *ConversationService) SyncAll(ctx context.Context, pageID primitive.ObjectID) (int, error) {
	page, err := s.Pages.FindOneById(ctx, pageID)
	if err != nil {
		return 0, err
	}

	synced := 0
	fetched := 0
	after := ""

	for {
		result, err := s.Graph.ListConversations(ctx, page.PageId, page.AccessToken, FullSyncPageLimit, after)
		if err != nil {
			return synced, err
		}

		for _, conv := range result.Data {
			upserted, err := s.UpsertFromGraph(ctx, page.ID, page.PageId, conv)
			if err != nil {
				return synced, err
			}
			if upserted != nil {
				synced++
			}
		}
		fetched += len(result.Data)

		next, done := nextFullSyncCursor(result, fetched)
		if done {
			break
		}
		after = next
	}

	logrus.WithFields(logrus.Fields{"page_id": pageID.Hex(), "fetched": fetched, "synced": synced}).Info("SyncAll: Đồng bộ toàn bộ hội thoại xong")
	return synced, nil
}
