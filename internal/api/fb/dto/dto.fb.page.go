// Package fbdto - các DTO input cho domain fb.
package fbdto

// PageCreateInput đầu vào kết nối một trang Facebook.
// PageId trùng với trang đã có sẽ bị unique index từ chối (409).
type PageCreateInput struct {
	PageId      string `json:"pageId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	AccessToken string `json:"accessToken" validate:"required"`
}

// PageUpdateInput đầu vào cập nhật trang.
// PageId không cho đổi; bật/tắt đồng bộ dùng endpoint set-sync riêng.
type PageUpdateInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	AccessToken string `json:"accessToken"`
}

// PageAssignAgentInput đầu vào phân công agent cho trang.
type PageAssignAgentInput struct {
	AgentIds []string `json:"agentIds" validate:"required"`
}

// PageSetSyncInput đầu vào bật/tắt đồng bộ tự động cho trang.
// Dùng con trỏ để phân biệt "tắt" (false) với "không gửi".
type PageSetSyncInput struct {
	IsSync *bool `json:"isSync" validate:"required"`
}
