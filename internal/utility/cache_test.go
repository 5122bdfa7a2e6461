package utility

import (
	"testing"
	"time"
)

func TestCache_SetGetDelete(t *testing.T) {
	c := NewCache[string](time.Minute, time.Minute)
	defer c.Stop()

	c.Set("agent_token:abc", "agent-1")

	got, found := c.Get("agent_token:abc")
	if !found {
		t.Fatal("phải tìm thấy entry vừa set")
	}
	if got != "agent-1" {
		t.Errorf("giá trị = %q, muốn %q", got, "agent-1")
	}

	c.Delete("agent_token:abc")
	if _, found := c.Get("agent_token:abc"); found {
		t.Error("entry đã xóa không được tìm thấy nữa")
	}
}

func TestCache_EntryQuaHanLaMiss(t *testing.T) {
	// TTL rất ngắn, chu kỳ dọn dẹp rất dài: Get phải tự coi entry
	// quá hạn là miss mà không chờ vòng dọn dẹp.
	c := NewCache[string](10*time.Millisecond, time.Hour)
	defer c.Stop()

	c.Set("agent_token:het-han", "agent-2")
	time.Sleep(25 * time.Millisecond)

	if _, found := c.Get("agent_token:het-han"); found {
		t.Error("entry quá hạn vẫn được trả về từ cache")
	}
}
