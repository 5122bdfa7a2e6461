/*
Package scheduler - interface Job và BaseJob dùng chung cho các job định kỳ.
BaseJob cung cấp guard chống chạy chồng: một job đang chạy thì lượt kích
hoạt kế tiếp bị bỏ qua thay vì chạy song song.
*/
package scheduler

import (
	"context"
	"sync"
)

// Job là interface chuẩn cho mọi job trong hệ thống.
type Job interface {
	// Execute thực thi logic chính của job
	Execute(ctx context.Context) error

	// GetName trả về tên định danh của job trong scheduler
	GetName() string

	// GetSchedule trả về biểu thức cron của job (độ chính xác đến giây)
	GetSchedule() string
}

// BaseJob cung cấp sẵn name, schedule và guard chống reentrancy.
// Job cụ thể nhúng *BaseJob và đăng ký logic qua SetExecuteInternalCallback.
type BaseJob struct {
	name      string
	schedule  string
	mu        sync.Mutex
	isRunning bool
	// executeInternalFunc là logic thực sự của job con
	executeInternalFunc func(ctx context.Context) error
}

// NewBaseJob khởi tạo BaseJob với tên và lịch chạy.
func NewBaseJob(name, schedule string) *BaseJob {
	return &BaseJob{
		name:     name,
		schedule: schedule,
	}
}

func (j *BaseJob) GetName() string     { return j.name }
func (j *BaseJob) GetSchedule() string { return j.schedule }

// Execute chạy logic của job với guard chống chạy chồng:
// nếu lượt trước chưa xong, lượt này trả về nil ngay mà không chạy.
func (j *BaseJob) Execute(ctx context.Context) error {
	j.mu.Lock()
	if j.isRunning {
		j.mu.Unlock()
		return nil
	}
	j.isRunning = true
	j.mu.Unlock()

	defer func() {
		j.mu.Lock()
		j.isRunning = false
		j.mu.Unlock()
	}()

	if j.executeInternalFunc != nil {
		return j.executeInternalFunc(ctx)
	}
	return nil
}

// SetExecuteInternalCallback đăng ký logic thực sự của job con.
// Do Go không có virtual method trên embedded struct, job con phải gọi
// method này trong constructor để Execute gọi đúng logic của nó.
func (j *BaseJob) SetExecuteInternalCallback(fn func(ctx context.Context) error) {
	j.executeInternalFunc = fn
}
