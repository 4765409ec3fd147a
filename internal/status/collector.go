package status

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jasonwu001t/taicfg/internal/doctor"
)

// Snapshot is the most recent state of all checked providers.
type Snapshot struct {
	Checks    []doctor.Check `json:"checks"`
	UpdatedAt time.Time      `json:"updated_at"`
	Runs      int64          `json:"runs"`
}

// Healthy reports whether at least one run completed and every check in
// the latest batch passed.
func (s Snapshot) Healthy() bool {
	if s.Runs == 0 {
		return false
	}
	for _, c := range s.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Collector receives check batches on a channel and keeps the latest
// snapshot for readers.
type Collector struct {
	batchCh chan []doctor.Check
	logger  *slog.Logger

	mutex    sync.RWMutex
	snapshot Snapshot
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	return &Collector{
		batchCh: make(chan []doctor.Check, bufferSize),
		logger:  logger,
	}
}

// Publish queues a batch for the collector. Drops the batch when the
// buffer is full; the next watch tick supersedes it anyway.
func (c *Collector) Publish(checks []doctor.Check) {
	select {
	case c.batchCh <- checks:
	default:
		c.logger.Warn("status buffer full, dropping batch")
	}
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("Status collector started")
	defer c.logger.Info("Status collector stopped")

	for {
		select {
		case batch := <-c.batchCh:
			c.apply(batch)
		case <-ctx.Done():
			c.drain()
			return
		}
	}
}

func (c *Collector) apply(batch []doctor.Check) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.snapshot.Checks = batch
	c.snapshot.UpdatedAt = time.Now()
	c.snapshot.Runs++
}

func (c *Collector) drain() {
	for {
		select {
		case batch := <-c.batchCh:
			c.apply(batch)
		default:
			return
		}
	}
}

// Snapshot returns a copy of the latest state.
func (c *Collector) Snapshot() Snapshot {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	snap := c.snapshot
	snap.Checks = append([]doctor.Check(nil), c.snapshot.Checks...)
	return snap
}
