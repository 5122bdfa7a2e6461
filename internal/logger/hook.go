package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để I/O file không block request
// handling: entries được buffer vào channel và một goroutine riêng
// format rồi ghi ra các writers. Khi buffer đầy, entry bị bỏ qua
// thay vì block.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHook tạo một async hook ghi vào các writers cho trước.
// bufferSize <= 0 dùng mặc định 1000 entries.
func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}
	hook.wg.Add(1)
	go hook.run()
	return hook
}

// Levels trả về các log levels mà hook này xử lý.
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào buffer; không bao giờ block.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi đồng bộ trực tiếp để không mất entry cuối.
		return h.write(entry)
	}

	select {
	case h.entries <- entry:
	default:
		// Buffer đầy: bỏ qua entry. Không log ở đây vì sẽ tạo vòng lặp.
	}
	return nil
}

// run xử lý entries trong goroutine riêng. Recover để một entry lỗi
// không kéo sập server.
func (h *AsyncHook) run() {
	defer h.wg.Done()
	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Ghi thẳng ra stderr; dùng logger ở đây tạo vòng lặp.
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] %v\n", r)
					debug.PrintStack()
				}
			}()
			_ = h.write(entry)
		}()
	}
}

func (h *AsyncHook) write(entry *logrus.Entry) error {
	var data []byte
	var err error
	if entry.Logger.Formatter != nil {
		data, err = entry.Logger.Formatter.Format(entry)
	} else {
		var line string
		line, err = entry.String()
		data = []byte(line)
	}
	if err != nil {
		return err
	}
	for _, w := range h.writers {
		_, _ = w.Write(data)
	}
	return nil
}

// Close đóng hook và đợi các entries còn lại được ghi xong.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
