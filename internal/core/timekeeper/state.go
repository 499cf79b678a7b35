package timekeeper

// State represents the current TimeKeeper condition.
type State string

const (
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)
