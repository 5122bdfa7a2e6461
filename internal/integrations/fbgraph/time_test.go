// Package fbgraph - Test parse created_time với offset kiểu Facebook (+0000).
package fbgraph

import (
	"testing"
	"time"
)

func TestParseCreatedTime_FacebookOffset(t *testing.T) {
	// Facebook trả offset không có dấu hai chấm, không đúng chuẩn RFC3339
	ms, err := ParseCreatedTime("2024-01-15T08:30:00+0000")
	if err != nil {
		t.Fatalf("ParseCreatedTime trả về lỗi với offset kiểu Facebook: %v", err)
	}
	want := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC).UnixMilli()
	if ms != want {
		t.Errorf("ParseCreatedTime = %d, muốn %d", ms, want)
	}
}

func TestParseCreatedTime_RFC3339(t *testing.T) {
	ms, err := ParseCreatedTime("2024-01-15T08:30:00+07:00")
	if err != nil {
		t.Fatalf("ParseCreatedTime trả về lỗi với RFC3339: %v", err)
	}
	want := time.Date(2024, 1, 15, 1, 30, 0, 0, time.UTC).UnixMilli()
	if ms != want {
		t.Errorf("ParseCreatedTime = %d, muốn %d (08:30+07:00 = 01:30 UTC)", ms, want)
	}
}

func TestParseCreatedTime_Invalid(t *testing.T) {
	for _, s := range []string{"", "hôm qua", "2024-01-15", "1705307400"} {
		if _, err := ParseCreatedTime(s); err == nil {
			t.Errorf("ParseCreatedTime(%q) phải trả về lỗi", s)
		}
	}
}
