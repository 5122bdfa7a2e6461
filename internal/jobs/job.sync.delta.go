/*
Package jobs chứa các job nền của hệ thống.
Hiện có một job: đồng bộ delta — định kỳ kéo các hội thoại mới nhất
của mọi trang đang bật đồng bộ, để hộp thư không phụ thuộc hoàn toàn
vào webhook.
*/
package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	fbsvc "messenger_flow/internal/api/fb/service"
	"messenger_flow/internal/scheduler"
)

// SyncDeltaJobName - tên định danh của job trong scheduler.
const SyncDeltaJobName = "sync_delta"

// SyncDeltaJob định kỳ chạy đồng bộ gần nhất cho mọi trang có
// isConnected && isSync. Guard của BaseJob đảm bảo hai lượt không
// chạy chồng nhau khi một lượt kéo dài hơn chu kỳ cron.
type SyncDeltaJob struct {
	*scheduler.BaseJob
	conversations *fbsvc.ConversationService
}

// NewSyncDeltaJob tạo job đồng bộ delta với biểu thức cron từ cấu hình.
func NewSyncDeltaJob(schedule string) (*SyncDeltaJob, error) {
	conversationService, err := fbsvc.NewConversationService()
	if err != nil {
		return nil, err
	}

	job := &SyncDeltaJob{
		BaseJob:       scheduler.NewBaseJob(SyncDeltaJobName, schedule),
		conversations: conversationService,
	}
	job.SetExecuteInternalCallback(job.executeInternal)
	return job, nil
}

// executeInternal chạy một lượt đồng bộ delta.
// Lỗi của một trang chỉ được ghi log, các trang còn lại vẫn được đồng bộ.
func (job *SyncDeltaJob) executeInternal(ctx context.Context) error {
	pages, err := job.conversations.Pages.FindSyncEnabled(ctx)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return nil
	}

	for _, page := range pages {
		synced, err := job.conversations.SyncRecent(ctx, page.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"job":     SyncDeltaJobName,
				"page_id": page.ID.Hex(),
				"error":   err.Error(),
			}).Warn("executeInternal: Đồng bộ delta cho trang lỗi, bỏ qua trang")
			continue
		}
		if synced > 0 {
			logrus.WithFields(logrus.Fields{
				"job":     SyncDeltaJobName,
				"page_id": page.ID.Hex(),
				"synced":  synced,
			}).Info("executeInternal: Đồng bộ delta cho trang xong")
		}
	}

	return nil
}
