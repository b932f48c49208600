package input

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

// Snapshot is the input state sampled once per tick
// Axes are in [-1, 1]; Jump is an edge, Fire and Reload are per-tick requests
type Snapshot struct {
	Vertical   float64
	Horizontal float64
	MouseX     float64
	MouseY     float64

	Sprint bool
	Jump   bool
	Fire   bool
	Reload bool

	// Switch selects a loadout slot, 1-based; 0 means none, -1 cycles
	Switch int
}

// Source delivers one snapshot per tick
type Source interface {
	Poll() Snapshot
}

// None is a Source with no input
type None struct{}

func (None) Poll() Snapshot { return Snapshot{} }

// SwitchCycle requests the next loadout slot
const SwitchCycle = -1
