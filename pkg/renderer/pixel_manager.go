package renderer

import (
	"sync/atomic"
	"time"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// PixelManager hands out the pixels of an image to concurrent workers in
// row-major order and reports progress
type PixelManager struct {
	width, height int
	total         int64

	cursor    atomic.Int64 // Next pixel index to hand out
	completed atomic.Int64
	lastPrint atomic.Int64 // Unix nanoseconds of the last progress line

	interval time.Duration // Zero disables progress output
	logger   core.Logger
}

// NewPixelManager creates a manager for a width by height image. Progress is
// logged at most once per interval, never when interval is zero.
func NewPixelManager(width, height int, interval time.Duration, logger core.Logger) *PixelManager {
	if logger == nil {
		logger = core.NopLogger{}
	}
	pm := &PixelManager{
		width:    width,
		height:   height,
		total:    int64(width) * int64(height),
		interval: interval,
		logger:   logger,
	}
	pm.lastPrint.Store(time.Now().UnixNano())
	return pm
}

// Next returns the next unclaimed pixel, or ok == false once every pixel has
// been handed out. Each pixel is returned exactly once.
func (pm *PixelManager) Next() (x, y int, ok bool) {
	index := pm.cursor.Add(1) - 1
	if index >= pm.total {
		return 0, 0, false
	}
	return int(index % int64(pm.width)), int(index / int64(pm.width)), true
}

// Done records a finished pixel
func (pm *PixelManager) Done() {
	completed := pm.completed.Add(1)
	if pm.interval <= 0 || completed == pm.total {
		return
	}
	now := time.Now().UnixNano()
	last := pm.lastPrint.Load()
	if now-last >= int64(pm.interval) && pm.lastPrint.CompareAndSwap(last, now) {
		pm.logger.Printf("%.1f%%\n", pm.percent(completed))
	}
}

// Completed returns the number of finished pixels
func (pm *PixelManager) Completed() int { return int(pm.completed.Load()) }

// Percent returns the finished share of the image in 0..100
func (pm *PixelManager) Percent() float64 { return pm.percent(pm.completed.Load()) }

// Finish logs the final progress line
func (pm *PixelManager) Finish() {
	if pm.interval > 0 {
		pm.logger.Printf("%.1f%%\n", pm.Percent())
	}
}

func (pm *PixelManager) percent(completed int64) float64 {
	if pm.total == 0 {
		return 100
	}
	return 100 * float64(completed) / float64(pm.total)
}
