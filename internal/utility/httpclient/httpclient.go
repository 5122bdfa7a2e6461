/*
Package httpclient cung cấp HTTP client đơn giản để gọi API bên ngoài.
Client hỗ trợ GET, POST với timeout, query params và custom headers.
*/
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HttpClient struct chứa thông tin cấu hình cho HTTP client
type HttpClient struct {
	BaseURL    string            // Base URL của API (ví dụ: "https://graph.facebook.com")
	HTTPClient *http.Client      // HTTP client từ standard library
	Headers    map[string]string // Custom headers (Authorization, Content-Type, etc.)
}

// NewHttpClient tạo một HttpClient mới với base URL và timeout
func NewHttpClient(baseURL string, timeout time.Duration) *HttpClient {
	return &HttpClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Headers: make(map[string]string),
	}
}

// SetHeader thêm hoặc cập nhật header cho client.
// Header sẽ được gắn vào tất cả các request sau đó.
func (c *HttpClient) SetHeader(key, value string) {
	c.Headers[key] = value
}

// makeRequest tạo và gửi yêu cầu HTTP chung (internal method)
func (c *HttpClient) makeRequest(ctx context.Context, method, endpoint string, body interface{}, params map[string]string) (*http.Response, error) {
	// Tạo URL với endpoint
	fullURL, err := url.Parse(c.BaseURL + endpoint)
	if err != nil {
		return nil, err
	}

	// Thêm query params vào URL nếu có
	if params != nil {
		query := fullURL.Query()
		for key, value := range params {
			query.Set(key, value)
		}
		fullURL.RawQuery = query.Encode()
	}

	// Xử lý body nếu không nil
	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		requestBody = bytes.NewBuffer(jsonBody)
	}

	// Tạo yêu cầu
	req, err := http.NewRequestWithContext(ctx, method, fullURL.String(), requestBody)
	if err != nil {
		return nil, err
	}

	// Gắn header
	for key, value := range c.Headers {
		req.Header.Set(key, value)
	}

	// Nếu body là JSON
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Gửi yêu cầu
	return c.HTTPClient.Do(req)
}

// GET gửi yêu cầu HTTP GET với query params
func (c *HttpClient) GET(ctx context.Context, endpoint string, params map[string]string) (*http.Response, error) {
	return c.makeRequest(ctx, http.MethodGet, endpoint, nil, params)
}

// POST gửi yêu cầu HTTP POST với body JSON và query params
func (c *HttpClient) POST(ctx context.Context, endpoint string, body interface{}, params map[string]string) (*http.Response, error) {
	return c.makeRequest(ctx, http.MethodPost, endpoint, body, params)
}

// DecodeJSON đọc toàn bộ body của response và unmarshal vào out.
// Body được đóng sau khi đọc.
func DecodeJSON(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
