package desk

import (
	"context"
	"sync"
	"time"
)

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc runs f in its own goroutine once d has elapsed, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// debouncer runs at most one pending task. Every Schedule or Cancel issues a new sequence
// number; a task may apply its result only while its number is still the latest.
type debouncer struct {
	delay     time.Duration
	afterFunc AfterFunc

	mu     sync.Mutex
	seq    uint64
	timer  Timer
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

func newDebouncer(delay time.Duration, afterFunc AfterFunc) *debouncer {
	return &debouncer{delay: delay, afterFunc: afterFunc}
}

// Schedule supersedes any pending or running task with fn. fn receives a context that is
// cancelled once the task is superseded, and its sequence number.
func (d *debouncer) Schedule(fn func(ctx context.Context, seq uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return d.seq
	}
	d.supersedeLocked()

	d.seq++
	seq := d.seq
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(1)
	d.timer = d.afterFunc(d.delay, func() {
		defer d.wg.Done()
		defer cancel()
		if !d.Current(seq) {
			return
		}
		fn(ctx, seq)
	})

	return seq
}

// Cancel drops the pending task, if any, and invalidates a running one.
func (d *debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.supersedeLocked()
	d.seq++
}

// Current reports whether seq is the latest sequence issued.
func (d *debouncer) Current(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed && d.seq == seq
}

// Close cancels outstanding work and waits for running tasks to return.
func (d *debouncer) Close() {
	d.mu.Lock()
	d.supersedeLocked()
	d.seq++
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *debouncer) supersedeLocked() {
	if d.timer != nil {
		if d.timer.Stop() {
			// never fired, so its Done is ours
			d.wg.Done()
		}
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
