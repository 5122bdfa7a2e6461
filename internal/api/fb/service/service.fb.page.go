// Package fbsvc - service cho domain fb (trang, hội thoại, tin nhắn).
package fbsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "messenger_flow/internal/api/base/service"
	fbdto "messenger_flow/internal/api/fb/dto"
	models "messenger_flow/internal/api/fb/models"
	"messenger_flow/internal/common"
	"messenger_flow/internal/global"
	"messenger_flow/internal/utility"
)

// PageService là cấu trúc chứa các phương thức liên quan đến trang Facebook
type PageService struct {
	*basesvc.BaseServiceMongoImpl[models.Page]
}

// NewPageService tạo mới PageService
func NewPageService() (*PageService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pages)
	if !exist {
		return nil, fmt.Errorf("failed to get pages collection: %v", common.ErrNotFound)
	}
	return &PageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Page](coll),
	}, nil
}

// Create kết nối một trang mới.
// PageId trùng với trang đã kết nối sẽ bị unique index từ chối (409).
func (s *PageService) Create(ctx context.Context, input *fbdto.PageCreateInput) (*models.Page, error) {
	page := models.Page{
		PageId:      input.PageId,
		Name:        input.Name,
		Category:    input.Category,
		AccessToken: input.AccessToken,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, page)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"page_id": created.ID.Hex(), "provider_page_id": created.PageId}).Info("Create: Kết nối trang thành công")
	return &created, nil
}

// AssignAgents phân công danh sách agent cho trang.
func (s *PageService) AssignAgents(ctx context.Context, pageID primitive.ObjectID, agentIds []string) (*models.Page, error) {
	objectIds := make([]primitive.ObjectID, 0, len(agentIds))
	for _, id := range agentIds {
		if !primitive.IsValidObjectID(id) {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Agent ID '%s' không đúng định dạng MongoDB ObjectID", id),
				common.StatusBadRequest,
				nil,
			)
		}
		objectIds = append(objectIds, utility.String2ObjectID(id))
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"assignedAgentIds": objectIds},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, pageID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetSync bật/tắt đồng bộ tự động cho trang.
// Trang có isSync=false sẽ bị job delta-poll bỏ qua.
func (s *PageService) SetSync(ctx context.Context, pageID primitive.ObjectID, isSync bool) (*models.Page, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"isSync": isSync},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, pageID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindOneByProviderID tìm trang theo id do Facebook cấp (dùng bởi webhook).
func (s *PageService) FindOneByProviderID(ctx context.Context, providerPageID string) (models.Page, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"pageId": providerPageID}, nil)
}

// FindSyncEnabled trả về các trang đang kết nối và bật đồng bộ tự động.
// Job delta-poll chạy đồng bộ gần nhất cho danh sách này.
func (s *PageService) FindSyncEnabled(ctx context.Context) ([]models.Page, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"isConnected": true, "isSync": true}, nil)
}
