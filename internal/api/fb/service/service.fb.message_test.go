// Package fbsvc - Test kiểm tra đầu vào của MessageService.Create.
package fbsvc

import (
	"context"
	"errors"
	"testing"

	fbdto "messenger_flow/internal/api/fb/dto"
	"messenger_flow/internal/common"
)

func TestMessageCreate_ConversationIdKhongHopLe(t *testing.T) {
	// Service không cần kết nối database: id sai phải bị chặn trước khi
	// chạm tới tầng lưu trữ, nếu không sẽ sinh tin nhắn mồ côi gắn với
	// ObjectID zero.
	s := &MessageService{}

	for _, id := range []string{"", "khong-phai-hex", "12345", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		input := &fbdto.MessageCreateInput{
			ConversationId: id,
			SenderId:       "999888777",
			Text:           "xin chào",
		}
		_, err := s.Create(context.Background(), input)
		if err == nil {
			t.Errorf("Create với conversationId %q phải trả về lỗi", id)
			continue
		}
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("Create với conversationId %q trả về %v, muốn ErrInvalidInput", id, err)
		}
	}
}
