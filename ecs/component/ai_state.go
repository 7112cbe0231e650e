package component

// AIMode is the behavior mode of an agent.
type AIMode int

const (
	ModeSearching AIMode = iota
	ModeChasing
)

func (m AIMode) String() string {
	switch m {
	case ModeSearching:
		return "searching"
	case ModeChasing:
		return "chasing"
	default:
		return "unknown"
	}
}

// AIState stores the current behavior mode. Target is an entity handle,
// only meaningful while chasing, and never owns the target.
type AIState struct {
	Mode   AIMode
	Target uint64
}

var AIStateComponent = NewComponent[AIState]()
