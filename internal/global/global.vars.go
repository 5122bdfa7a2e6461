package global

import (
	"messenger_flow/config"
	"messenger_flow/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Agents        string // Tên collection cho tài khoản agent (người vận hành)
	Pages         string // Tên collection cho trang Facebook đã kết nối
	Conversations string // Tên collection cho hội thoại Messenger
	Messages      string // Tên collection cho tin nhắn trong hội thoại
	Links         string // Tên collection cho thư viện link đã duyệt
	Media         string // Tên collection cho thư viện media đã duyệt
	WebhookLogs   string // Tên collection cho log webhook nhận từ Facebook
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

// InitColNames gán tên vật lý cho các collection
func InitColNames() {
	MongoDB_ColNames.Agents = "agents"
	MongoDB_ColNames.Pages = "pages"
	MongoDB_ColNames.Conversations = "conversations"
	MongoDB_ColNames.Messages = "messages"
	MongoDB_ColNames.Links = "links"
	MongoDB_ColNames.Media = "media"
	MongoDB_ColNames.WebhookLogs = "webhook_logs"
}

// GetDB trả về database đang dùng của ứng dụng
func GetDB() *mongo.Database {
	return MongoDB_Session.Database(ServerConfig.MongoDB_DBName)
}
