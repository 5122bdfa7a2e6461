// Package fbgraph - Test client đọc hội thoại và gửi tin nhắn với server giả.
package fbgraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListConversations_TrangDau(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [{
				"id": "t_100",
				"updated_time": "2024-01-15T08:30:00+0000",
				"participants": {"data": [{"id": "999888777", "name": "Nguyễn Văn A"}, {"id": "111222333", "name": "Trang Bán Hàng"}]},
				"messages": {"data": [{"id": "m_1", "message": "xin chào", "from": {"id": "999888777"}, "created_time": "2024-01-15T08:30:00+0000"}]}
			}],
			"paging": {"cursors": {"before": "BB", "after": "AA"}, "next": "https://graph.facebook.com/next"}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "v18.0")
	page, err := client.ListConversations(context.Background(), "111222333", "token-abc", 5, "")
	if err != nil {
		t.Fatalf("ListConversations trả về lỗi: %v", err)
	}

	if gotPath != "/v18.0/111222333/conversations" {
		t.Errorf("path = %q, muốn %q", gotPath, "/v18.0/111222333/conversations")
	}
	if gotQuery["fields"] != ConversationFields {
		t.Errorf("fields = %q, muốn %q", gotQuery["fields"], ConversationFields)
	}
	if gotQuery["limit"] != "5" {
		t.Errorf("limit = %q, muốn %q", gotQuery["limit"], "5")
	}
	if gotQuery["access_token"] != "token-abc" {
		t.Errorf("access_token = %q, muốn %q", gotQuery["access_token"], "token-abc")
	}
	if _, ok := gotQuery["after"]; ok {
		t.Error("trang đầu không được gửi con trỏ after")
	}

	if len(page.Data) != 1 {
		t.Fatalf("số hội thoại = %d, muốn 1", len(page.Data))
	}
	conv := page.Data[0]
	if conv.ID != "t_100" {
		t.Errorf("conversation id = %q, muốn %q", conv.ID, "t_100")
	}
	if len(conv.Participants.Data) != 2 || conv.Participants.Data[0].Name != "Nguyễn Văn A" {
		t.Errorf("participants không đúng: %+v", conv.Participants.Data)
	}
	if len(conv.Messages.Data) != 1 || conv.Messages.Data[0].Message != "xin chào" {
		t.Errorf("messages không đúng: %+v", conv.Messages.Data)
	}
	if page.Paging == nil || page.Paging.Cursors.After != "AA" {
		t.Errorf("paging cursor không đúng: %+v", page.Paging)
	}
}

func TestListConversations_GuiConTroAfter(t *testing.T) {
	var gotAfter string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAfter = r.URL.Query().Get("after")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "v18.0")
	if _, err := client.ListConversations(context.Background(), "111222333", "token-abc", 100, "AA"); err != nil {
		t.Fatalf("ListConversations trả về lỗi: %v", err)
	}
	if gotAfter != "AA" {
		t.Errorf("after = %q, muốn %q", gotAfter, "AA")
	}
}

func TestListConversations_LoiTrongBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "v18.0")
	if _, err := client.ListConversations(context.Background(), "111222333", "token-hong", 5, ""); err == nil {
		t.Error("ListConversations phải trả về lỗi khi body chứa field error")
	}
}

func TestGetSenderName_ThieuTen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "999888777"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "v18.0")
	name, err := client.GetSenderName(context.Background(), "999888777", "token-abc")
	if err != nil {
		t.Fatalf("GetSenderName trả về lỗi: %v", err)
	}
	if name != "Unknown" {
		t.Errorf("name = %q, muốn %q khi Graph API không trả tên", name, "Unknown")
	}
}

func TestSendMessage(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recipient_id": "999888777", "message_id": "m_gui_1"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "v18.0")
	mid, err := client.SendMessage(context.Background(), "token-abc", "999888777", "chào bạn")
	if err != nil {
		t.Fatalf("SendMessage trả về lỗi: %v", err)
	}
	if mid != "m_gui_1" {
		t.Errorf("message_id = %q, muốn %q", mid, "m_gui_1")
	}

	recipient, _ := gotBody["recipient"].(map[string]interface{})
	message, _ := gotBody["message"].(map[string]interface{})
	if recipient["id"] != "999888777" {
		t.Errorf("recipient.id = %v, muốn %q", recipient["id"], "999888777")
	}
	if message["text"] != "chào bạn" {
		t.Errorf("message.text = %v, muốn %q", message["text"], "chào bạn")
	}
}
