package effects

import "testing"

func TestRegistry_ActivateAndExpiry(t *testing.T) {
	r := NewRegistry()
	r.Activate(TimeFreeze, 5, 1)

	// Active through exactly 5 decrements.
	for i := 0; i < 5; i++ {
		if !r.IsActive(TimeFreeze) {
			t.Fatalf("expected time freeze active before decrement %d", i+1)
		}
		r.DecrementAll()
		if !r.IsActive(TimeFreeze) && i < 4 {
			t.Fatalf("time freeze expired early after decrement %d", i+1)
		}
	}
	if !r.IsActive(TimeFreeze) {
		t.Fatal("time freeze should survive the tick its counter reaches zero on")
	}

	r.DecrementAll()
	if r.IsActive(TimeFreeze) {
		t.Error("time freeze should be swept on the decrement after reaching zero")
	}
}

func TestRegistry_FrozenTickCount(t *testing.T) {
	// A 5-tick freeze must freeze the countdown for exactly 5 ticks when the
	// host decrements effects before reading the freeze.
	r := NewRegistry()
	r.Activate(TimeFreeze, 5, 1)

	frozen := 0
	for i := 0; i < 10; i++ {
		r.DecrementAll()
		if r.IsActive(TimeFreeze) {
			frozen++
		}
	}
	if frozen != 5 {
		t.Errorf("expected 5 frozen ticks, got %d", frozen)
	}
}

func TestRegistry_RefreshDoesNotStack(t *testing.T) {
	r := NewRegistry()
	r.Activate(DoublePoints, 10, 2)
	for i := 0; i < 4; i++ {
		r.DecrementAll()
	}
	r.Activate(DoublePoints, 10, 2)

	active := r.Active()
	if len(active) != 1 {
		t.Fatalf("expected one instance, got %d", len(active))
	}
	if active[0].Remaining != 10 {
		t.Errorf("re-activation should reset remaining to 10, got %d", active[0].Remaining)
	}
}

func TestRegistry_EmptyDecrementIsNoOp(t *testing.T) {
	r := NewRegistry()
	r.DecrementAll()
	r.DecrementAll()
	if len(r.Active()) != 0 {
		t.Error("empty registry should stay empty")
	}
}

func TestRegistry_ZeroDurationIgnored(t *testing.T) {
	r := NewRegistry()
	r.Activate(ExtraLife, 0, 1)
	if r.IsActive(ExtraLife) {
		t.Error("zero-duration activation should not register")
	}
}

func TestRegistry_Magnitude(t *testing.T) {
	r := NewRegistry()
	r.Activate(DoublePoints, 15, 2)
	if got := r.Magnitude(DoublePoints); got != 2 {
		t.Errorf("Magnitude = %d, want 2", got)
	}
	if got := r.Magnitude(TimeFreeze); got != 0 {
		t.Errorf("inactive Magnitude = %d, want 0", got)
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Activate(TimeFreeze, 5, 1)
	r.Activate(DoublePoints, 5, 2)
	r.Clear()
	if len(r.Active()) != 0 {
		t.Error("Clear should remove all instances")
	}
}
