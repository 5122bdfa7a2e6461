package fbgraph

import (
	"fmt"
	"time"
)

// Các layout thời gian Graph API trả về trong created_time.
// Facebook dùng offset không có dấu hai chấm (+0000), không đúng chuẩn RFC3339.
var createdTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

// ParseCreatedTime chuyển created_time của Graph API thành mili giây Unix.
func ParseCreatedTime(s string) (int64, error) {
	for _, layout := range createdTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("created_time không đúng định dạng: %q", s)
}
