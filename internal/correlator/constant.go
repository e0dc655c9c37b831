package correlator

// Log prefixes
const (
	LogPrefixInput  = "internal.correlator.HandleInsert"
	LogPrefixToggle = "internal.correlator.HandleChange"
)

// Strategy says how the line under the cursor is acquired for an insertion.
type Strategy string

const (
	// StrategyApplied: the host fires the event after the character is in
	// the document; the line is read as is and the cursor sits after it.
	StrategyApplied Strategy = "applied"
	// StrategyPending: the host fires the event before applying the edit;
	// the character is spliced into the stored line at the cursor.
	StrategyPending Strategy = "pending"
)

// DefaultNativeMarker is the attribute the host sets on its own task-list checkboxes.
const DefaultNativeMarker = "data-task"

// State is the InputCorrelator state for the event in flight.
type State int

const (
	StateIdle State = iota
	StateEvaluating
	StateRewriting
)

func (s State) String() string {
	switch s {
	case StateEvaluating:
		return "evaluating"
	case StateRewriting:
		return "rewriting"
	default:
		return "idle"
	}
}
