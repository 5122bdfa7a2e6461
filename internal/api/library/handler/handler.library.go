// Package libraryhdl - handler cho domain library.
// Link và media chỉ cần CRUD chuẩn nên handler là BaseHandler thuần,
// không có endpoint riêng.
package libraryhdl

import (
	"fmt"

	basehdl "messenger_flow/internal/api/base/handler"
	basesvc "messenger_flow/internal/api/base/service"
	librarydto "messenger_flow/internal/api/library/dto"
	models "messenger_flow/internal/api/library/models"
	"messenger_flow/internal/common"
	"messenger_flow/internal/global"
)

// LinkHandler xử lý CRUD cho link đã duyệt
type LinkHandler struct {
	*basehdl.BaseHandler[models.Link, librarydto.LinkCreateInput, librarydto.LinkUpdateInput]
}

// NewLinkHandler khởi tạo LinkHandler mới
func NewLinkHandler() (*LinkHandler, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Links)
	if !exist {
		return nil, fmt.Errorf("failed to get links collection: %v", common.ErrNotFound)
	}
	service := basesvc.NewBaseServiceMongo[models.Link](coll)
	return &LinkHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Link, librarydto.LinkCreateInput, librarydto.LinkUpdateInput](service),
	}, nil
}

// MediaHandler xử lý CRUD cho media đã duyệt
type MediaHandler struct {
	*basehdl.BaseHandler[models.Media, librarydto.MediaCreateInput, librarydto.MediaUpdateInput]
}

// NewMediaHandler khởi tạo MediaHandler mới
func NewMediaHandler() (*MediaHandler, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Media)
	if !exist {
		return nil, fmt.Errorf("failed to get media collection: %v", common.ErrNotFound)
	}
	service := basesvc.NewBaseServiceMongo[models.Media](coll)
	return &MediaHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Media, librarydto.MediaCreateInput, librarydto.MediaUpdateInput](service),
	}, nil
}
