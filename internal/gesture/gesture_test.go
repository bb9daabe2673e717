package gesture

import (
	"math"
	"testing"
)

func TestRelease(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		dx        float64
		itemWidth float64
		want      int
	}{
		{name: "drag left two items", current: 5, dx: -170, itemWidth: 80, want: 7},
		{name: "drag right clamps at lower bound", current: 1, dx: 500, itemWidth: 80, want: 1},
		{name: "drag left clamps at upper bound", current: 8, dx: -400, itemWidth: 80, want: 9},
		{name: "small drag is no change", current: 3, dx: 30, itemWidth: 80, want: 3},
		{name: "positive half rounds up", current: 3, dx: 40, itemWidth: 80, want: 2},
		{name: "negative half rounds towards zero", current: 3, dx: -40, itemWidth: 80, want: 3},
		{name: "zero width falls back to default", current: 2, dx: -160, itemWidth: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Release(tt.current, tt.dx, tt.itemWidth)
			if got != tt.want {
				t.Errorf("Release(%d, %v, %v) = %d, want %d", tt.current, tt.dx, tt.itemWidth, got, tt.want)
			}
		})
	}
}

func TestDeltaSign(t *testing.T) {
	if d := Delta(-170, 80); d != 2 {
		t.Errorf("Delta(-170, 80) = %d, want 2", d)
	}
	if d := Delta(170, 80); d != -2 {
		t.Errorf("Delta(170, 80) = %d, want -2", d)
	}
	if d := Delta(0, 80); d != 0 {
		t.Errorf("Delta(0, 80) = %d, want 0", d)
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name    string
		current int
		dir     int
		want    int
	}{
		{"increment", 2, 1, 3},
		{"decrement", 2, -1, 1},
		{"increment at max", MaxCount, 1, MaxCount},
		{"decrement at min", MinCount, -1, MinCount},
		{"zero direction", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Step(tt.current, tt.dir); got != tt.want {
				t.Errorf("Step(%d, %d) = %d, want %d", tt.current, tt.dir, got, tt.want)
			}
		})
	}
}

func TestControlsDisabledAtBounds(t *testing.T) {
	if CanDecrement(MinCount) {
		t.Error("decrement should be disabled at the lower bound")
	}
	if CanIncrement(MaxCount) {
		t.Error("increment should be disabled at the upper bound")
	}
	if !CanIncrement(5) || !CanDecrement(5) {
		t.Error("both controls should be enabled inside the range")
	}
}

func TestSelect(t *testing.T) {
	for n := MinCount; n <= MaxCount; n++ {
		if got := Select(n); got != n {
			t.Errorf("Select(%d) = %d", n, got)
		}
	}
	if got := Select(12); got != MaxCount {
		t.Errorf("Select(12) = %d, want %d", got, MaxCount)
	}
	if got := Select(0); got != MinCount {
		t.Errorf("Select(0) = %d, want %d", got, MinCount)
	}
}

func TestDrag(t *testing.T) {
	d := NewDrag(80)

	// Moves before Start are ignored.
	d.Move(500)
	if d.Offset() != 0 {
		t.Fatalf("offset before start = %v, want 0", d.Offset())
	}

	d.Start(300)
	d.Move(250)
	d.Move(130)
	if d.Offset() != -170 {
		t.Errorf("offset = %v, want -170", d.Offset())
	}
	if !d.Active() {
		t.Error("drag should be active")
	}

	got := d.End(5)
	if got != 7 {
		t.Errorf("End(5) = %d, want 7", got)
	}
	if d.Active() || d.Offset() != 0 {
		t.Error("drag should reset after End")
	}

	// End without an active drag keeps the count.
	if got := d.End(4); got != 4 {
		t.Errorf("End on idle drag = %d, want 4", got)
	}
}

func TestTrackStyle(t *testing.T) {
	if got := TrackOffset(1, 80, 0); got != -40 {
		t.Errorf("TrackOffset(1, 80, 0) = %v, want -40", got)
	}
	if got := TrackOffset(3, 80, 25); got != -175 {
		t.Errorf("TrackOffset(3, 80, 25) = %v, want -175", got)
	}
	if math.Abs(Scale(0)-1.2) > 1e-9 {
		t.Errorf("Scale(0) = %v, want 1.2", Scale(0))
	}
	if Scale(-4) != 0.7 {
		t.Errorf("Scale(-4) = %v, want 0.7", Scale(-4))
	}
	if Opacity(0) != 1 {
		t.Errorf("Opacity(0) = %v, want 1", Opacity(0))
	}
	if Opacity(3) != 0.2 {
		t.Errorf("Opacity(3) = %v, want 0.2", Opacity(3))
	}
}
