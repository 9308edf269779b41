package debounce

import (
	"sync"
	"time"
)

/*
Debouncer схлопывает серию Trigger в один вызов fn:
каждый Trigger отменяет отложенный вызов и взводит таймер заново,
fn вызывается только после delay тишины.
*/
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu    sync.Mutex
	timer *time.Timer
	// gen отсекает таймеры, которые успели сработать до Stop
	gen uint64
}

func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Trigger взводит таймер заново, предыдущий отложенный вызов отменяется.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// Cancel отменяет отложенный вызов. Возвращает true, если он был.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.stopLocked()
}

// Flush выполняет отложенный вызов сразу, если он был взведен.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	pending := d.stopLocked()
	d.mu.Unlock()

	if pending {
		d.fn()
	}
	return pending
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.gen++
	d.mu.Unlock()

	d.fn()
}

func (d *Debouncer) stopLocked() bool {
	d.gen++
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}
