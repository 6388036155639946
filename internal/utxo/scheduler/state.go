package scheduler

// State reports whether a sync cycle is running.
type State int32

const (
	Idle State = iota
	Syncing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Syncing:
		return "syncing"
	default:
		return "unknown"
	}
}
