package starfield

import (
	"math/rand"
	"sync"
	"time"
)

// State is the animation loop state.
type State int

const (
	// Idle means no frame is scheduled.
	Idle State = iota
	// Animating means exactly one scheduled frame is outstanding at all times.
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// CancelFunc cancels a pending scheduled frame.
type CancelFunc func()

// FrameScheduler schedules fn to run at the next frame and returns a handle
// that cancels the pending invocation. The scheduler must invoke fn
// asynchronously, never from within the Schedule call itself.
type FrameScheduler func(fn func(now time.Time)) CancelFunc

// TimerScheduler returns a FrameScheduler backed by time.AfterFunc at the
// given frame interval.
func TimerScheduler(interval time.Duration) FrameScheduler {
	return func(fn func(time.Time)) CancelFunc {
		t := time.AfterFunc(interval, func() { fn(time.Now()) })
		return func() { t.Stop() }
	}
}

// Animator owns a star collection and repaints it once per frame with a
// twinkling opacity effect. The loop starts on the first resize with
// non-zero dimensions and runs until Stop; later resizes only regenerate
// the collection. Resize notifications and frame callbacks arrive on
// different goroutines, so all field access is mutex-guarded and the
// collection is only ever replaced as a whole.
type Animator struct {
	mu sync.Mutex

	cfg      Config
	rng      *rand.Rand
	schedule FrameScheduler
	notify   func() // called after each rendered frame, outside the lock

	stars  []Star
	width  int
	height int
	state  State
	cancel CancelFunc
	frame  string // last rendered frame
}

// Option configures an Animator.
type Option func(*Animator)

// WithScheduler sets the frame scheduler. Defaults to a 30 FPS timer.
func WithScheduler(s FrameScheduler) Option {
	return func(a *Animator) { a.schedule = s }
}

// WithSeed seeds the star generator, for reproducible fields.
func WithSeed(seed int64) Option {
	return func(a *Animator) { a.rng = rand.New(rand.NewSource(seed)) }
}

// New creates an animator in the Idle state with no stars.
func New(cfg Config, opts ...Option) *Animator {
	a := &Animator{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		schedule: TimerScheduler(time.Second / 30),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetNotify registers a callback invoked after every rendered frame. Used
// to wake the UI program; set after the program exists.
func (a *Animator) SetNotify(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notify = fn
}

// HandleResize reacts to a new surface size. A zero dimension means the
// surface is hidden: the collection and loop state are left untouched.
// Otherwise the star collection is regenerated for the new size and, only
// if no loop is running yet, a render loop is started. This guard keeps
// repeated resize notifications from stacking concurrent loops.
func (a *Animator) HandleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	a.mu.Lock()
	a.width, a.height = width, height
	a.stars = Generate(a.cfg, a.rng, width, height)
	start := a.state == Idle
	if start {
		a.state = Animating
		a.cancel = a.schedule(a.step)
	}
	a.mu.Unlock()
}

// step is one frame: render every star at its current opacity, then advance
// the twinkling opacities, then schedule the successor. Displayed opacity is
// therefore always one frame behind the freshly computed value; the lag
// smooths the shimmer.
func (a *Animator) step(now time.Time) {
	a.mu.Lock()
	if a.state != Animating {
		a.mu.Unlock()
		return
	}

	a.frame = renderFrame(a.stars, a.width, a.height)

	for i := range a.stars {
		if a.stars[i].Twinkles {
			a.stars[i].Opacity = twinkleOpacity(now, a.stars[i].TwinkleSpeed)
		}
	}

	a.cancel = a.schedule(a.step)
	notify := a.notify
	a.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Stop tears the loop down: the outstanding scheduled frame is cancelled
// and no further callbacks fire. Safe to call repeatedly; the cancel handle
// itself is invoked exactly once.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.state = Idle
}

// Frame returns the last rendered frame, or the empty string before the
// first frame.
func (a *Animator) Frame() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frame
}

// State reports the current loop state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Stars returns a copy of the current collection.
func (a *Animator) Stars() []Star {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Star, len(a.stars))
	copy(out, a.stars)
	return out
}

// Size returns the current surface dimensions.
func (a *Animator) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}
