// Package scheduler - Test guard chống chạy chồng của BaseJob.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestBaseJob_Execute_GoiCallback(t *testing.T) {
	job := NewBaseJob("test-job", "*/10 * * * * *")
	var called int32
	job.SetExecuteInternalCallback(func(ctx context.Context) error {
		atomic.AddInt32(&called, 1)
		return nil
	})

	if err := job.Execute(context.Background()); err != nil {
		t.Fatalf("Execute trả về lỗi: %v", err)
	}
	if atomic.LoadInt32(&called) != 1 {
		t.Errorf("callback được gọi %d lần, muốn 1", called)
	}
}

func TestBaseJob_Execute_ChongChayChong(t *testing.T) {
	job := NewBaseJob("test-job", "*/10 * * * * *")

	started := make(chan struct{})
	release := make(chan struct{})
	var runs int32
	job.SetExecuteInternalCallback(func(ctx context.Context) error {
		if atomic.AddInt32(&runs, 1) == 1 {
			close(started)
			<-release
		}
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		job.Execute(context.Background())
	}()

	// Chờ lượt đầu đang chạy rồi kích hoạt lượt hai
	<-started
	if err := job.Execute(context.Background()); err != nil {
		t.Errorf("lượt chạy chồng phải trả về nil, nhận được: %v", err)
	}
	if atomic.LoadInt32(&runs) != 1 {
		t.Errorf("callback chạy %d lần khi còn lượt đang chạy, muốn 1", runs)
	}

	close(release)
	wg.Wait()

	// Lượt đầu đã xong, kích hoạt lại phải chạy bình thường
	if err := job.Execute(context.Background()); err != nil {
		t.Fatalf("Execute sau khi lượt trước xong trả về lỗi: %v", err)
	}
	if atomic.LoadInt32(&runs) != 2 {
		t.Errorf("callback chạy %d lần sau 2 lượt hợp lệ, muốn 2", runs)
	}
}

func TestBaseJob_GetNameGetSchedule(t *testing.T) {
	job := NewBaseJob("sync_delta", "0 */5 * * * *")
	if job.GetName() != "sync_delta" {
		t.Errorf("GetName = %q, muốn %q", job.GetName(), "sync_delta")
	}
	if job.GetSchedule() != "0 */5 * * * *" {
		t.Errorf("GetSchedule = %q, muốn %q", job.GetSchedule(), "0 */5 * * * *")
	}
}
