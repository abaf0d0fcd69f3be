package sdk

// State is the load state of a third-party SDK
type State int

const (
	// NotRequested means no load was ever started
	NotRequested State = iota
	// Loading means a load is in flight
	Loading
	// Ready is terminal
	Ready
	// Failed may be left by a later load
	Failed
)

func (s State) String() string {
	switch s {
	case NotRequested:
		return "not_requested"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
