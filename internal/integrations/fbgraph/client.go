/*
Package fbgraph là client gọi Facebook Graph API: đọc hội thoại/tin nhắn
của một trang, tra tên người gửi và gửi tin nhắn qua Send API.

Mọi lỗi trong body phản hồi (field "error") được chuyển thành lỗi upstream
cùng message của Facebook để caller quyết định dừng flow.
*/
package fbgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"messenger_flow/internal/common"
	"messenger_flow/internal/utility/httpclient"
)

// Participant là một bên tham gia hội thoại (trang hoặc khách).
type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Message là một tin nhắn trả về từ Graph API.
// CreatedTime có định dạng RFC3339 (ví dụ: 2024-01-15T08:30:00+0000).
type Message struct {
	ID          string          `json:"id"`
	Message     string          `json:"message"`
	From        Participant     `json:"from"`
	CreatedTime string          `json:"created_time"`
	Attachments json.RawMessage `json:"attachments,omitempty"`
}

// Conversation là một hội thoại trả về từ Graph API, kèm field expansion
// participants và messages.limit(1) (tin nhắn mới nhất).
type Conversation struct {
	ID           string `json:"id"`
	UpdatedTime  string `json:"updated_time"`
	Participants struct {
		Data []Participant `json:"data"`
	} `json:"participants"`
	Messages struct {
		Data []Message `json:"data"`
	} `json:"messages"`
}

// Paging chứa con trỏ phân trang của Graph API.
type Paging struct {
	Next    string `json:"next"`
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
}

// APIError là lỗi trong body phản hồi của Graph API.
type APIError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode"`
	FBTraceID    string `json:"fbtrace_id"`
}

// ConversationPage là một trang kết quả của edge /conversations.
type ConversationPage struct {
	Data   []Conversation `json:"data"`
	Paging *Paging        `json:"paging"`
	Error  *APIError      `json:"error"`
}

// messagePage là một trang kết quả của edge /messages.
type messagePage struct {
	Data   []Message `json:"data"`
	Paging *Paging   `json:"paging"`
	Error  *APIError `json:"error"`
}

// sendResponse là phản hồi của Send API.
type sendResponse struct {
	RecipientID string    `json:"recipient_id"`
	MessageID   string    `json:"message_id"`
	Error       *APIError `json:"error"`
}

// profileResponse là phản hồi khi tra thông tin một PSID.
type profileResponse struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Error *APIError `json:"error"`
}

// ConversationFields là field expansion dùng khi đồng bộ hội thoại:
// danh sách người tham gia kèm tin nhắn mới nhất của mỗi thread.
const ConversationFields = "participants,updated_time,messages.limit(1){message,from,created_time}"

// MessageFields là danh sách field khi đồng bộ tin nhắn của một thread.
const MessageFields = "id,message,from,created_time,attachments"

// Client gọi Facebook Graph API cho một phiên bản API cố định.
type Client struct {
	http    *httpclient.HttpClient
	version string
}

// NewClient tạo Graph API client.
// baseURL ví dụ: "https://graph.facebook.com", version ví dụ: "v18.0".
func NewClient(baseURL string, version string) *Client {
	return &Client{
		http:    httpclient.NewHttpClient(baseURL, 30*time.Second),
		version: version,
	}
}

// upstreamError chuyển APIError trong body thành lỗi upstream.
func upstreamError(apiErr *APIError) error {
	logrus.WithFields(logrus.Fields{
		"code":       apiErr.Code,
		"subcode":    apiErr.ErrorSubcode,
		"type":       apiErr.Type,
		"fbtrace_id": apiErr.FBTraceID,
	}).Error("fbgraph: Graph API trả về lỗi")
	return common.NewUpstreamError(apiErr.Message)
}

// ListConversations đọc một trang hội thoại của trang providerPageID.
// after là con trỏ phân trang (rỗng = trang đầu).
func (c *Client) ListConversations(ctx context.Context, providerPageID string, accessToken string, limit int, after string) (*ConversationPage, error) {
	params := map[string]string{
		"fields":       ConversationFields,
		"limit":        strconv.Itoa(limit),
		"access_token": accessToken,
	}
	if after != "" {
		params["after"] = after
	}

	resp, err := c.http.GET(ctx, fmt.Sprintf("/%s/%s/conversations", c.version, providerPageID), params)
	if err != nil {
		return nil, common.NewUpstreamError(fmt.Sprintf("Không gọi được Graph API: %v", err))
	}

	var page ConversationPage
	if err := httpclient.DecodeJSON(resp, &page); err != nil {
		return nil, common.NewUpstreamError(fmt.Sprintf("Phản hồi Graph API không hợp lệ: %v", err))
	}
	if page.Error != nil {
		return nil, upstreamError(page.Error)
	}
	return &page, nil
}

// ListMessages đọc tin nhắn của một thread. Thread được suy ra từ senderId
// đã lưu trong hội thoại (edge /<senderId>/messages).
func (c *Client) ListMessages(ctx context.Context, threadID string, accessToken string, limit int) ([]Message, error) {
	params := map[string]string{
		"fields":       MessageFields,
		"limit":        strconv.Itoa(limit),
		"access_token": accessToken,
	}

	resp, err := c.http.GET(ctx, fmt.Sprintf("/%s/%s/messages", c.version, threadID), params)
	if err != nil {
		return nil, common.NewUpstreamError(fmt.Sprintf("Không gọi được Graph API: %v", err))
	}

	var page messagePage
	if err := httpclient.DecodeJSON(resp, &page); err != nil {
		return nil, common.NewUpstreamError(fmt.Sprintf("Phản hồi Graph API không hợp lệ: %v", err))
	}
	if page.Error != nil {
		return nil, upstreamError(page.Error)
	}
	return page.Data, nil
}

// GetSenderName tra tên hiển thị của một PSID.
// Trả về "Unknown" nếu Graph API không cung cấp tên (không coi là lỗi).
func (c *Client) GetSenderName(ctx context.Context, psid string, accessToken string) (string, error) {
	params := map[string]string{
		"fields":       "name",
		"access_token": accessToken,
	}

	resp, err := c.http.GET(ctx, fmt.Sprintf("/%s/%s", c.version, psid), params)
	if err != nil {
		return "", common.NewUpstreamError(fmt.Sprintf("Không gọi được Graph API: %v", err))
	}

	var profile profileResponse
	if err := httpclient.DecodeJSON(resp, &profile); err != nil {
		return "", common.NewUpstreamError(fmt.Sprintf("Phản hồi Graph API không hợp lệ: %v", err))
	}
	if profile.Error != nil {
		return "", upstreamError(profile.Error)
	}
	if profile.Name == "" {
		return "Unknown", nil
	}
	return profile.Name, nil
}

// SendMessage gửi tin nhắn văn bản tới một PSID qua Send API.
// Trả về message_id do Facebook cấp.
func (c *Client) SendMessage(ctx context.Context, accessToken string, recipientID string, text string) (string, error) {
	body := map[string]interface{}{
		"recipient": map[string]string{"id": recipientID},
		"message":   map[string]string{"text": text},
	}
	params := map[string]string{"access_token": accessToken}

	resp, err := c.http.POST(ctx, fmt.Sprintf("/%s/me/messages", c.version), body, params)
	if err != nil {
		return "", common.NewUpstreamError(fmt.Sprintf("Không gọi được Graph API: %v", err))
	}

	var result sendResponse
	if err := httpclient.DecodeJSON(resp, &result); err != nil {
		return "", common.NewUpstreamError(fmt.Sprintf("Phản hồi Graph API không hợp lệ: %v", err))
	}
	if result.Error != nil {
		return "", upstreamError(result.Error)
	}

	logrus.WithFields(logrus.Fields{
		"recipient_id": recipientID,
		"message_id":   result.MessageID,
	}).Info("fbgraph: Đã gửi tin nhắn qua Send API")
	return result.MessageID, nil
}
