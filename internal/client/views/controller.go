// Package views holds one controller per screen. Every controller follows the
// same state machine: Loading on mount, then Ready, Empty, or Error; failures
// stop here with a generic user-facing message while the detail is logged.
// Mutating actions are fire-and-confirm: issue the write, then re-run the
// fetch rather than patching local state.
package views

import "sync/atomic"

// Phase is a controller's externally observable rendering state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseEmpty
	PhaseError
	PhaseNotFound
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseEmpty:
		return "empty"
	case PhaseError:
		return "error"
	case PhaseNotFound:
		return "not found"
	}
	return "unknown"
}

// lifecycle guards a controller against a fetch completing after the view is
// gone: a disposed controller discards results instead of applying them.
type lifecycle struct {
	disposed atomic.Bool
}

// Dispose marks the view as unmounted.
func (l *lifecycle) Dispose() { l.disposed.Store(true) }

// Disposed reports whether results must be discarded.
func (l *lifecycle) Disposed() bool { return l.disposed.Load() }

// Generic user-facing failure texts. The real cause goes to the log only.
const (
	msgLoadFailed   = "Something went wrong while loading. Please try again."
	msgActionFailed = "The action could not be completed. Please try again."
)
