package generation

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle of a single generation request slot.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateFailed
)

// String renders the state for templates and logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultTimeout bounds a single generation call. The upstream API has no
// timeout of its own.
const DefaultTimeout = 30 * time.Second

// Snapshot is a copy of the control's display slot at one moment.
type Snapshot struct {
	State  State
	Prompt string
	Value  string
	Err    string
	Token  uint64
}

// Control owns one "current displayed result" slot. Each request is tagged
// with a monotonically increasing token; a response whose token is no
// longer current is discarded, so a newer request supersedes an in-flight
// one instead of racing it for the slot.
type Control struct {
	svc     Service
	timeout time.Duration

	mu     sync.Mutex
	state  State
	token  uint64
	prompt string
	value  string
	errMsg string
}

// NewControl wraps a service with the display-slot state machine.
// A non-positive timeout falls back to DefaultTimeout.
func NewControl(svc Service, timeout time.Duration) *Control {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Control{svc: svc, timeout: timeout}
}

// Generate runs one item generation through the slot. It never panics or
// returns an error directly: failures land in the snapshot's Err so the
// caller renders them inline with a retry affordance.
func (c *Control) Generate(ctx context.Context, prompt string, settings Settings) Snapshot {
	c.mu.Lock()
	c.token++
	token := c.token
	c.state = StatePending
	c.prompt = prompt
	c.value = ""
	c.errMsg = ""
	c.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	value, err := c.svc.GenerateItem(callCtx, settings.ApplyTo(prompt))

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		// A newer request superseded this one; drop the result.
		return c.snapshotLocked()
	}
	if ctx.Err() != nil {
		// The originating context was torn down; discard rather than
		// update a disposed view.
		c.state = StateIdle
		c.prompt = ""
		return c.snapshotLocked()
	}

	if err != nil {
		c.state = StateFailed
		c.errMsg = err.Error()
		if c.errMsg == "" {
			c.errMsg = "generation failed"
		}
	} else {
		c.state = StateSuccess
		c.value = value
	}
	return c.snapshotLocked()
}

// Retry clears a failed slot back to Idle so a fresh request can start
// without stale output lingering.
func (c *Control) Retry() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateFailed {
		c.state = StateIdle
		c.prompt = ""
		c.value = ""
		c.errMsg = ""
	}
	return c.snapshotLocked()
}

// Snapshot returns the current slot contents.
func (c *Control) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Control) snapshotLocked() Snapshot {
	return Snapshot{
		State:  c.state,
		Prompt: c.prompt,
		Value:  c.value,
		Err:    c.errMsg,
		Token:  c.token,
	}
}
