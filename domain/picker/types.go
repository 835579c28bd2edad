package picker

// State enumerates the selection state of one cell.
type State int

const (
	StateAvailable State = iota
	StatePreviouslySelected
	StateCurrentlySelected
)

func (s State) String() string {
	switch s {
	case StateAvailable:
		return "available"
	case StatePreviouslySelected:
		return "previously-selected"
	case StateCurrentlySelected:
		return "currently-selected"
	default:
		return "unknown"
	}
}

// Rand is the injectable random source used for draws. *rand.Rand from
// math/rand/v2 satisfies it, so tests can seed a deterministic generator.
type Rand interface {
	IntN(n int) int
}

// Status is a read-only snapshot of the engine. Available plus Selected
// always equals Total; Current is meaningful only when HasCurrent is set.
type Status struct {
	Available  int
	Selected   int
	Total      int
	Current    int
	HasCurrent bool
}

// Source is the read side of the engine, enough for renderers and views.
type Source interface {
	Status() Status
	States() []State
}

// Ops is the mutating side: one draw-without-replacement and a reset.
type Ops interface {
	Draw() (int, error)
	Reset()
}

// EngineContract aggregates both sides for dependency injection.
type EngineContract interface {
	Source
	Ops
}
