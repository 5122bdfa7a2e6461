// Package librarydto - các DTO input cho domain library.
package librarydto

// LinkCreateInput đầu vào tạo link.
type LinkCreateInput struct {
	Title    string `json:"title" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Category string `json:"category"`
}

// LinkUpdateInput đầu vào cập nhật link.
type LinkUpdateInput struct {
	Title    string `json:"title"`
	URL      string `json:"url" validate:"omitempty,url"`
	Category string `json:"category"`
}

// MediaCreateInput đầu vào tạo media.
type MediaCreateInput struct {
	Title   string `json:"title" validate:"required"`
	URL     string `json:"url" validate:"required,url"`
	Type    string `json:"type" validate:"required,oneof=image video"`
	IsLocal bool   `json:"isLocal"`
}

// MediaUpdateInput đầu vào cập nhật media.
type MediaUpdateInput struct {
	Title string `json:"title"`
	URL   string `json:"url" validate:"omitempty,url"`
	Type  string `json:"type" validate:"omitempty,oneof=image video"`
}
