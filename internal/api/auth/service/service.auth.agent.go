// Package authsvc - service nhân viên chăm sóc (Agent).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "messenger_flow/internal/api/auth/dto"
	models "messenger_flow/internal/api/auth/models"
	basesvc "messenger_flow/internal/api/base/service"
	"messenger_flow/internal/common"
	"messenger_flow/internal/global"
	"messenger_flow/internal/utility"
)

// AgentService là cấu trúc chứa các phương thức liên quan đến agent
type AgentService struct {
	*basesvc.BaseServiceMongoImpl[models.Agent]
}

// NewAgentService tạo mới AgentService
func NewAgentService() (*AgentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Agents)
	if !exist {
		return nil, fmt.Errorf("failed to get agents collection: %v", common.ErrNotFound)
	}
	return &AgentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Agent](coll),
	}, nil
}

// Create tạo mới một agent với mật khẩu đã băm.
// Email là khóa duy nhất, lỗi duplicate từ unique index được trả về nguyên trạng (409).
func (s *AgentService) Create(ctx context.Context, input *authdto.AgentCreateInput) (*models.Agent, error) {
	if err := utility.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleAgent
	}

	agent := models.Agent{
		Name:            input.Name,
		Email:           input.Email,
		Password:        hashed,
		Role:            role,
		Status:          models.AgentStatusOffline,
		AvatarURL:       input.AvatarURL,
		AssignedPageIds: utility.StringArray2ObjectIDArray(input.AssignedPageIds),
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, agent)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"agent_id": created.ID.Hex(), "email": created.Email, "role": created.Role}).Info("Create: Tạo agent thành công")
	return &created, nil
}

// Login xác thực email/mật khẩu và phát hành token mới.
// Token mới nhất được lưu vào document agent, token cũ mất hiệu lực.
func (s *AgentService) Login(ctx context.Context, input *authdto.AgentLoginInput) (*authdto.AgentLoginResult, error) {
	agent, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utility.ComparePassword(agent.Password, input.Password); err != nil {
		logrus.WithFields(logrus.Fields{"email": input.Email}).Warn("Login: Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}

	token, err := utility.CreateToken(global.ServerConfig.JwtSecret, agent.ID.Hex(), agent.Role, global.ServerConfig.JwtExpireHours)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":       token,
			"status":      models.AgentStatusOnline,
			"lastLoginAt": utility.CurrentTimeInMilli(),
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, agent.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"agent_id": agent.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"agent_id": updated.ID.Hex(), "email": updated.Email}).Info("Login: Đăng nhập thành công")
	return &authdto.AgentLoginResult{Token: token, Agent: updated}, nil
}

// Logout đăng xuất agent (xóa token hiện tại, chuyển trạng thái về offline)
func (s *AgentService) Logout(ctx context.Context, agentID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"status": models.AgentStatusOffline},
		Unset: map[string]interface{}{"token": ""},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, agentID, updateData)
	return err
}

// SetStatus cập nhật trạng thái hiện diện của agent (online/offline/busy).
func (s *AgentService) SetStatus(ctx context.Context, agentID primitive.ObjectID, status string) (*models.Agent, error) {
	if !utility.Contains([]string{models.AgentStatusOnline, models.AgentStatusOffline, models.AgentStatusBusy}, status) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái '%s' không hợp lệ", status),
			common.StatusBadRequest,
			nil,
		)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, agentID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ.
// Token hiện tại bị xóa, agent phải đăng nhập lại.
func (s *AgentService) ChangePassword(ctx context.Context, agentID primitive.ObjectID, input *authdto.AgentChangePasswordInput) error {
	agent, err := s.BaseServiceMongoImpl.FindOneById(ctx, agentID)
	if err != nil {
		return err
	}

	if err := utility.ComparePassword(agent.Password, input.OldPassword); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusUnauthorized, nil)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	updateData := &basesvc.UpdateData{
		Set:   map[string]interface{}{"password": hashed},
		Unset: map[string]interface{}{"token": ""},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, agentID, updateData)
	return err
}

// AssignPages gán danh sách trang cho agent.
func (s *AgentService) AssignPages(ctx context.Context, agentID primitive.ObjectID, pageIds []string) (*models.Agent, error) {
	objectIds := make([]primitive.ObjectID, 0, len(pageIds))
	for _, id := range pageIds {
		if !primitive.IsValidObjectID(id) {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Page ID '%s' không đúng định dạng MongoDB ObjectID", id),
				common.StatusBadRequest,
				nil,
			)
		}
		objectIds = append(objectIds, utility.String2ObjectID(id))
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"assignedPageIds": objectIds},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, agentID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindOneByToken tìm agent theo token hiện tại. Dùng bởi auth middleware.
func (s *AgentService) FindOneByToken(ctx context.Context, token string) (models.Agent, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
}

// EnsureDefaultAdmin tạo tài khoản SUPER_ADMIN mặc định nếu chưa có agent nào.
// Dùng khi khởi tạo hệ thống lần đầu (INITMODE).
func (s *AgentService) EnsureDefaultAdmin(ctx context.Context, email string, password string) error {
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if email == "" || password == "" {
		logrus.Warn("EnsureDefaultAdmin: Thiếu ADMIN_EMAIL/ADMIN_PASSWORD, bỏ qua khởi tạo admin")
		return nil
	}

	_, err = s.Create(ctx, &authdto.AgentCreateInput{
		Name:     "Administrator",
		Email:    email,
		Password: password,
		Role:     models.RoleSuperAdmin,
	})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil
		}
		return err
	}

	logrus.WithFields(logrus.Fields{"email": email}).Info("EnsureDefaultAdmin: Đã tạo tài khoản admin mặc định")
	return nil
}
