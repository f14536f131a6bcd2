package usecase

import "errors"

var (
	// ErrNotFound is returned when an operation names an item the component
	// does not hold, typically a stale button after the list changed.
	ErrNotFound = errors.New("not found")

	// ErrFormClosed is returned by form operations while no form is open.
	ErrFormClosed = errors.New("form is not open")
)

// LoadState is the lifecycle of a component's initial fetch. The zero value
// is Loading: components start fetching as soon as they are shown.
type LoadState int

const (
	Loading LoadState = iota
	Loaded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load_failed"
	default:
		return "loading"
	}
}
