package loop

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"factorish.dev/internal/sim/world"
)

var (
	ErrUnknownOp = errors.New("unknown op")
	ErrStopped   = errors.New("loop stopped")
)

type Config struct {
	TickRateHz int
	DeltaTime  float64
	Logger     *log.Logger
}

// Loop owns a World on a single goroutine. Requests queue up between ticks
// and are applied in arrival order right before the next tick.
type Loop struct {
	w   *world.World
	cfg Config

	reqs chan *request
	done chan struct{}

	mu      sync.Mutex
	subs    map[int]chan world.Frame
	nextSub int
}

const (
	reqPending int32 = iota
	reqTaken
	reqCanceled
)

// request is claimed exactly once: by the loop (taken) or by a caller that
// gave up waiting (canceled). A canceled request never touches the world.
type request struct {
	ctx   context.Context
	apply func(w *world.World) Result
	state atomic.Int32
	resp  chan Result
}

func newRequest(ctx context.Context, apply func(w *world.World) Result) *request {
	return &request{ctx: ctx, apply: apply, resp: make(chan Result, 1)}
}

func New(w *world.World, cfg Config) *Loop {
	if cfg.TickRateHz <= 0 {
		cfg.TickRateHz = 20
	}
	if cfg.DeltaTime <= 0 {
		cfg.DeltaTime = w.Config().DeltaTime
	}
	return &Loop{
		w:    w,
		cfg:  cfg,
		reqs: make(chan *request, 256),
		done: make(chan struct{}),
		subs: map[int]chan world.Frame{},
	}
}

func (l *Loop) TickRateHz() int { return l.cfg.TickRateHz }

func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	interval := time.Second / time.Duration(l.cfg.TickRateHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logf("loop started tick_rate_hz=%d delta_time=%v", l.cfg.TickRateHz, l.cfg.DeltaTime)
	var pending []*request
	for {
		select {
		case <-ctx.Done():
			l.logf("loop stopped at tick %d", l.w.CurrentTick())
			return ctx.Err()
		case req := <-l.reqs:
			pending = append(pending, req)
		case <-ticker.C:
			l.step(pending)
			pending = pending[:0]
		}
	}
}

func (l *Loop) step(pending []*request) {
	for _, req := range pending {
		if req.ctx.Err() != nil || !req.state.CompareAndSwap(reqPending, reqTaken) {
			continue
		}
		req.resp <- req.apply(l.w)
	}
	l.w.Tick(l.cfg.DeltaTime)
	l.publish(l.w.Frame())
}

// Do runs fn on the loop goroutine at the next tick boundary and waits for
// it to finish. When Do returns an error fn has not run and never will.
func (l *Loop) Do(ctx context.Context, fn func(w *world.World)) error {
	_, err := l.submit(ctx, func(w *world.World) Result {
		fn(w)
		return Result{}
	})
	return err
}

// Submit applies cmd at the next tick boundary. A non-nil error means cmd
// was not applied.
func (l *Loop) Submit(ctx context.Context, cmd Command) (Result, error) {
	return l.submit(ctx, func(w *world.World) Result { return Apply(w, cmd) })
}

func (l *Loop) submit(ctx context.Context, apply func(w *world.World) Result) (Result, error) {
	req := newRequest(ctx, apply)
	select {
	case l.reqs <- req:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-l.done:
		return Result{}, ErrStopped
	}
	select {
	case res := <-req.resp:
		return res, nil
	case <-ctx.Done():
		return l.abandon(req, ctx.Err())
	case <-l.done:
		return l.abandon(req, ErrStopped)
	}
}

// abandon cancels req unless the loop already took it, in which case the
// result is on its way and is returned instead of err.
func (l *Loop) abandon(req *request, err error) (Result, error) {
	if req.state.CompareAndSwap(reqPending, reqCanceled) {
		return Result{}, err
	}
	return <-req.resp, nil
}

// Subscribe returns a channel that always holds the newest frame. Slow
// readers miss intermediate frames.
func (l *Loop) Subscribe() (<-chan world.Frame, func()) {
	ch := make(chan world.Frame, 1)
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = ch
	l.mu.Unlock()
	return ch, func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

func (l *Loop) publish(f world.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs {
		sendLatest(ch, f)
	}
}

func sendLatest(ch chan world.Frame, f world.Frame) {
	select {
	case ch <- f:
		return
	default:
	}
	// Drop one.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- f:
	default:
	}
}

func (l *Loop) logf(format string, args ...any) {
	if l.cfg.Logger != nil {
		l.cfg.Logger.Printf(format, args...)
	}
}
