// Package effects tracks active timed power-up effects. The registry is the
// single authority on effect lifetime: the session and scoring layers ask
// IsActive instead of reading timers.
package effects

// Type identifies a power-up effect.
type Type string

const (
	TimeFreeze   Type = "time-freeze"
	DoublePoints Type = "double-points"
	ExtraLife    Type = "extra-life"
)

// DisplayName returns a human-readable label for the effect type.
func (t Type) DisplayName() string {
	switch t {
	case TimeFreeze:
		return "Time Freeze"
	case DoublePoints:
		return "Double Points"
	case ExtraLife:
		return "Extra Life"
	default:
		return string(t)
	}
}

// Instance is one live effect.
type Instance struct {
	Type      Type
	Remaining int // ticks left
	Magnitude int
}

// Registry holds at most one live instance per effect type.
type Registry struct {
	active map[Type]*Instance
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[Type]*Instance)}
}

// Activate starts an effect, or refreshes its remaining duration when the
// type is already live. Durations never stack: re-activating replaces the
// countdown, so repeated purchases cannot accumulate unbounded time.
func (r *Registry) Activate(t Type, durationTicks, magnitude int) {
	if durationTicks <= 0 {
		return
	}
	r.active[t] = &Instance{Type: t, Remaining: durationTicks, Magnitude: magnitude}
}

// IsActive reports whether an effect of the given type is live.
func (r *Registry) IsActive(t Type) bool {
	_, ok := r.active[t]
	return ok
}

// Magnitude returns the live instance's magnitude, or 0 when inactive.
func (r *Registry) Magnitude(t Type) int {
	if inst, ok := r.active[t]; ok {
		return inst.Magnitude
	}
	return 0
}

// DecrementAll advances every live instance by one tick. Instances whose
// countdown already hit zero are swept first, then the rest are decremented.
// An effect activated for N ticks therefore stays active through exactly N
// DecrementAll calls and disappears on the next one, so it covers the full
// tick on which its counter reaches zero. Calling this on an empty registry
// is a no-op.
func (r *Registry) DecrementAll() {
	for t, inst := range r.active {
		if inst.Remaining <= 0 {
			delete(r.active, t)
			continue
		}
		inst.Remaining--
	}
}

// Active returns the live instances in no particular order.
func (r *Registry) Active() []Instance {
	out := make([]Instance, 0, len(r.active))
	for _, inst := range r.active {
		out = append(out, *inst)
	}
	return out
}

// Clear removes all live instances. Called on session restart.
func (r *Registry) Clear() {
	r.active = make(map[Type]*Instance)
}
