package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// redactedValue thay thế giá trị của các field nhạy cảm trong log.
const redactedValue = "[REDACTED]"

// defaultSensitiveFields là các field không bao giờ được ghi nguyên văn
// ra log: page access token của Facebook, JWT của agent, mật khẩu,
// verify token của webhook và header Authorization.
var defaultSensitiveFields = []string{
	"password",
	"token",
	"access_token",
	"page_access_token",
	"accesstoken",
	"pageaccesstoken",
	"verify_token",
	"hub.verify_token",
	"authorization",
	"jwt_secret",
}

// RedactHook che giá trị của các field nhạy cảm trước khi entry được
// format và ghi ra writers. Danh sách field có thể mở rộng qua
// LOG_REDACT_FIELDS; so khớp không phân biệt hoa thường, và mọi field
// có hậu tố _token hoặc _secret đều bị che.
type RedactHook struct {
	fields map[string]bool
}

// NewRedactHook tạo hook che field nhạy cảm từ cấu hình.
func NewRedactHook(cfg *LogConfig) *RedactHook {
	fields := make(map[string]bool, len(defaultSensitiveFields))
	for _, f := range defaultSensitiveFields {
		fields[f] = true
	}
	if cfg != nil && cfg.RedactFields != "" {
		for _, f := range strings.Split(cfg.RedactFields, ",") {
			f = strings.ToLower(strings.TrimSpace(f))
			if f != "" {
				fields[f] = true
			}
		}
	}
	return &RedactHook{fields: fields}
}

// Levels trả về các log levels mà hook này xử lý.
func (h *RedactHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire che giá trị của mọi field nhạy cảm trong entry.
func (h *RedactHook) Fire(entry *logrus.Entry) error {
	for key := range entry.Data {
		if h.isSensitive(key) {
			entry.Data[key] = redactedValue
		}
	}
	return nil
}

func (h *RedactHook) isSensitive(key string) bool {
	k := strings.ToLower(key)
	if h.fields[k] {
		return true
	}
	return strings.HasSuffix(k, "_token") || strings.HasSuffix(k, "_secret")
}
