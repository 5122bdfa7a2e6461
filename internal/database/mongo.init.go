// Package database - Khởi tạo database, collections và các index cần cho dedup/đồng bộ.
package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"messenger_flow/internal/global"
	"messenger_flow/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureDatabaseAndCollections đảm bảo rằng cơ sở dữ liệu và các collection cần thiết tồn tại.
// Nếu collection chưa tồn tại thì tạo mới.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	dbName := global.ServerConfig.MongoDB_DBName

	// Tạo 1 context tổng 30 giây để duyệt tất cả collections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	// Lấy danh sách tên collection từ struct cấu hình
	collections := []string{}
	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		collections = append(collections, v.Field(i).String())
	}

	// Kiểm tra và tạo collections
	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collectionName := range collections {
		exists := false
		for _, existingColl := range collList {
			if existingColl == collectionName {
				exists = true
				break
			}
		}
		if !exists {
			logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
			if err := db.CreateCollection(ctx, collectionName); err != nil {
				return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
			}
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// CreateIndexes tạo các index phục vụ natural key và dedup.
// Các index unique ở đây là chốt chặn cuối cùng cho thao tác upsert:
// dù hai flow đồng bộ chạy đua nhau, mỗi khóa tự nhiên vẫn chỉ có một document.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// agents: email unique
	agents := db.Collection(global.MongoDB_ColNames.Agents)
	if _, err := agents.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("agent_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pages: pageId (id do Facebook cấp) unique
	pages := db.Collection(global.MongoDB_ColNames.Pages)
	if _, err := pages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pageId", Value: 1}},
		Options: options.Index().SetName("page_provider_id_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// conversations: (pageId, senderId) compound unique — khóa tự nhiên của hội thoại
	conversations := db.Collection(global.MongoDB_ColNames.Conversations)
	if _, err := conversations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
			{Key: "senderId", Value: 1},
		},
		Options: options.Index().SetName("conversation_page_sender_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// conversations: (pageId, lastMessageTime desc) — list hội thoại theo trang
	if _, err := conversations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
			{Key: "lastMessageTime", Value: -1},
		},
		Options: options.Index().SetName("conversation_page_last_message"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// messages: messageId (mid do Facebook cấp) unique partial —
	// chỉ áp cho document có messageId; tin nhắn local/simulated không có mid vẫn insert được
	messages := db.Collection(global.MongoDB_ColNames.Messages)
	if _, err := messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "messageId", Value: 1}},
		Options: options.Index().
			SetName("message_provider_id_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"messageId": bson.M{"$exists": true, "$type": "string"}}),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// messages: (conversationId, timestamp asc) — list tin nhắn theo hội thoại
	if _, err := messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "conversationId", Value: 1},
			{Key: "timestamp", Value: 1},
		},
		Options: options.Index().SetName("message_conversation_timestamp"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	logger.GetAppLogger().Info("Indexes are ensured")
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
