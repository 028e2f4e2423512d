package controller

import (
	"bytes"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/ahouk/winnow/internal/state"
)

// Unsubscribe revokes a subscription. Calling it more than once is a no-op.
// It waits out an in-flight notification before returning, so it must not
// be called from inside the listener it cancels.
type Unsubscribe func()

// Controller exposes a derived, change-detected view over the shared store.
// The projection runs on every access; the controller itself holds no state
// beyond per-subscription snapshots and never dispatches.
type Controller[D any] struct {
	store  *state.Store
	derive func(state.State) D
	logger *zap.Logger
}

// Option customizes a Controller.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes serialization warnings to the given logger. The default
// is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New binds a controller to store with the given projection. The projection
// must be pure and its output must be JSON-serializable; a value that fails
// to serialize degrades change detection to always-notify.
func New[D any](store *state.Store, derive func(state.State) D, opts ...Option) *Controller[D] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[D]{
		store:  store,
		derive: derive,
		logger: o.logger,
	}
}

// State recomputes the derived view from the store's current state.
func (c *Controller[D]) State() D {
	return c.derive(c.store.State())
}

// subscription carries one registration's change-detection state. Dispatches
// can arrive from any goroutine (the input loop and the searcher both
// dispatch), and the store invokes listeners outside its lock, so the
// snapshot is only touched under mu. The same mutex serializes listener
// runs and lets Unsubscribe wait out an in-flight notification.
type subscription struct {
	mu     sync.Mutex
	prev   []byte
	prevOK bool
	closed bool
}

// Subscribe invokes listener once synchronously, then again after every
// store dispatch that changes the derived view. Equality is deep structural,
// judged by comparing JSON serializations, so stores that rebuild identical
// values do not produce spurious notifications. Concurrent dispatches are
// serialized per subscription: the listener never runs twice at once, and
// each run compares against the snapshot left by the previous one. The
// returned Unsubscribe is idempotent; once it returns the listener is never
// invoked again.
func (c *Controller[D]) Subscribe(listener func()) Unsubscribe {
	listener()

	sub := &subscription{}
	sub.prev, sub.prevOK = c.snapshot()

	cancel := c.store.Subscribe(func() {
		sub.mu.Lock()
		defer sub.mu.Unlock()
		if sub.closed {
			return
		}
		cur, ok := c.snapshot()
		if !ok || !sub.prevOK || !bytes.Equal(cur, sub.prev) {
			listener()
		}
		sub.prev, sub.prevOK = cur, ok
	})

	return func() {
		sub.mu.Lock()
		wasClosed := sub.closed
		sub.closed = true
		sub.mu.Unlock()
		if !wasClosed {
			cancel()
		}
	}
}

// snapshot serializes the current derived view. A failure is reported as
// ok=false: change detection fails open, because in an interactive UI a
// spurious notification is cheaper than a missed one.
func (c *Controller[D]) snapshot() ([]byte, bool) {
	encoded, err := json.Marshal(c.State())
	if err != nil {
		c.logger.Warn("derived state not serializable, notifying unconditionally",
			zap.Error(err))
		return nil, false
	}
	return encoded, true
}
