/*
Package scheduler quản lý và thực thi các tác vụ định kỳ (cron jobs)
bằng thư viện robfig/cron, với biểu thức cron chính xác đến giây.
*/
package scheduler

import (
	"context"
	"runtime"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler quản lý các cron jobs, thread-safe qua RWMutex.
type Scheduler struct {
	cron *cron.Cron
	jobs map[string]cron.EntryID
	mu   sync.RWMutex
}

// NewScheduler tạo một Scheduler mới với độ chính xác đến giây.
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		jobs: make(map[string]cron.EntryID),
	}
}

// Start khởi động scheduler. Jobs mới vẫn thêm được sau khi Start.
func (s *Scheduler) Start() {
	s.mu.RLock()
	jobCount := len(s.jobs)
	s.mu.RUnlock()

	s.cron.Start()
	logrus.WithFields(logrus.Fields{"jobs": jobCount}).Info("[Scheduler] Cron scheduler đã khởi động")
}

// Stop dừng scheduler, trả về context để caller đợi các jobs đang chạy xong.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// AddJob thêm một job theo tên và biểu thức cron.
// Job trùng tên sẽ thay thế job cũ.
func (s *Scheduler) AddJob(name string, spec string, job func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, exists := s.jobs[name]; exists {
		s.cron.Remove(id)
		delete(s.jobs, name)
	}

	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		logrus.WithFields(logrus.Fields{"job": name, "spec": spec, "error": err.Error()}).Error("[Scheduler] Lỗi khi thêm job")
		return err
	}

	s.jobs[name] = id
	logrus.WithFields(logrus.Fields{"job": name, "spec": spec}).Info("[Scheduler] Đã đăng ký job")
	return nil
}

// AddJobObject đăng ký một job object (interface Job), tự tạo wrapper
// gọi Execute và bắt panic để một job lỗi không kéo sập tiến trình.
func (s *Scheduler) AddJobObject(job Job) error {
	name := job.GetName()
	spec := job.GetSchedule()

	wrapperFunc := func() {
		defer func() {
			if r := recover(); r != nil {
				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				logrus.WithFields(logrus.Fields{
					"job":   name,
					"panic": r,
					"stack": string(buf[:n]),
				}).Error("[Scheduler] Panic trong job")
			}
		}()

		ctx := context.Background()
		if err := job.Execute(ctx); err != nil {
			logrus.WithFields(logrus.Fields{"job": name, "error": err.Error()}).Error("[Scheduler] Job thực thi lỗi")
		}
	}

	return s.AddJob(name, spec, wrapperFunc)
}

// RemoveJob xóa một job khỏi scheduler theo tên. Không tồn tại thì bỏ qua.
func (s *Scheduler) RemoveJob(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, exists := s.jobs[name]; exists {
		s.cron.Remove(id)
		delete(s.jobs, name)
	}
}

// GetJobs trả về bản sao danh sách jobs đang quản lý.
func (s *Scheduler) GetJobs() map[string]cron.EntryID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make(map[string]cron.EntryID)
	for k, v := range s.jobs {
		jobs[k] = v
	}
	return jobs
}
