// Package fbsvc - Test quy tắc chọn participant và tin nhắn cuối khi map
// payload hội thoại từ Graph API.
package fbsvc

import (
	"testing"

	"messenger_flow/internal/integrations/fbgraph"
)

const testPageID = "111222333"

func graphConv(participants []fbgraph.Participant, messages []fbgraph.Message) fbgraph.Conversation {
	var conv fbgraph.Conversation
	conv.ID = "t_100"
	conv.Participants.Data = participants
	conv.Messages.Data = messages
	return conv
}

func TestMapGraphConversation_ChonKhachKhongPhaiTrang(t *testing.T) {
	conv := graphConv(
		[]fbgraph.Participant{
			{ID: testPageID, Name: "Trang Bán Hàng"},
			{ID: "999888777", Name: "Nguyễn Văn A"},
		},
		[]fbgraph.Message{{ID: "m_1", Message: "xin chào", CreatedTime: "2024-01-15T08:30:00+0000"}},
	)

	participant, lastMessage, ok := MapGraphConversation(testPageID, conv)
	if !ok {
		t.Fatal("MapGraphConversation phải trả về ok=true khi có khách và có tin nhắn")
	}
	if participant.ID != "999888777" {
		t.Errorf("participant.ID = %q, phải là khách (không phải page id)", participant.ID)
	}
	if lastMessage.Message != "xin chào" {
		t.Errorf("lastMessage.Message = %q, muốn %q", lastMessage.Message, "xin chào")
	}
}

func TestMapGraphConversation_ThuTuParticipantKhongQuanTrong(t *testing.T) {
	// Khách đứng trước page trong danh sách
	conv := graphConv(
		[]fbgraph.Participant{
			{ID: "999888777", Name: "Nguyễn Văn A"},
			{ID: testPageID, Name: "Trang Bán Hàng"},
		},
		[]fbgraph.Message{{ID: "m_1", Message: "hello"}},
	)

	participant, _, ok := MapGraphConversation(testPageID, conv)
	if !ok || participant.ID != "999888777" {
		t.Errorf("participant.ID = %q (ok=%v), phải chọn khách dù đứng ở vị trí nào", participant.ID, ok)
	}
}

func TestMapGraphConversation_ChiCoTrang(t *testing.T) {
	conv := graphConv(
		[]fbgraph.Participant{{ID: testPageID, Name: "Trang Bán Hàng"}},
		[]fbgraph.Message{{ID: "m_1", Message: "hello"}},
	)

	if _, _, ok := MapGraphConversation(testPageID, conv); ok {
		t.Error("MapGraphConversation phải trả về ok=false khi không có participant nào khác page")
	}
}

func TestMapGraphConversation_KhongCoTinNhan(t *testing.T) {
	conv := graphConv(
		[]fbgraph.Participant{
			{ID: testPageID},
			{ID: "999888777", Name: "Nguyễn Văn A"},
		},
		nil,
	)

	if _, _, ok := MapGraphConversation(testPageID, conv); ok {
		t.Error("MapGraphConversation phải trả về ok=false khi messages.data rỗng")
	}
}

func pageWithCursor(after string, next string) *fbgraph.ConversationPage {
	page := &fbgraph.ConversationPage{Paging: &fbgraph.Paging{Next: next}}
	page.Paging.Cursors.After = after
	return page
}

func TestNextFullSyncCursor(t *testing.T) {
	cases := []struct {
		name     string
		page     *fbgraph.ConversationPage
		fetched  int
		wantAfter string
		wantDone bool
	}{
		{
			name:     "còn con trỏ và chưa chạm chặn trên thì đi tiếp",
			page:     pageWithCursor("AA", "https://graph.facebook.com/next"),
			fetched:  FullSyncPageLimit,
			wantAfter: "AA",
			wantDone: false,
		},
		{
			name:     "chạm chặn trên giữa chừng thì dừng dù còn con trỏ",
			page:     pageWithCursor("AA", "https://graph.facebook.com/next"),
			fetched:  FullSyncMaxConversations,
			wantDone: true,
		},
		{
			name:     "vượt chặn trên (trang cuối dôi ra) cũng dừng",
			page:     pageWithCursor("AA", "https://graph.facebook.com/next"),
			fetched:  FullSyncMaxConversations + 37,
			wantDone: true,
		},
		{
			name:     "con trỏ after rỗng thì dừng",
			page:     pageWithCursor("", "https://graph.facebook.com/next"),
			fetched:  FullSyncPageLimit,
			wantDone: true,
		},
		{
			name:     "trang cuối không có next thì dừng",
			page:     pageWithCursor("AA", ""),
			fetched:  42,
			wantDone: true,
		},
		{
			name:     "không có paging (trang ngắn cuối cùng) thì dừng",
			page:     &fbgraph.ConversationPage{},
			fetched:  42,
			wantDone: true,
		},
	}

	for _, tc := range cases {
		after, done := nextFullSyncCursor(tc.page, tc.fetched)
		if done != tc.wantDone {
			t.Errorf("%s: done = %v, muốn %v", tc.name, done, tc.wantDone)
			continue
		}
		if !done && after != tc.wantAfter {
			t.Errorf("%s: after = %q, muốn %q", tc.name, after, tc.wantAfter)
		}
	}
}
