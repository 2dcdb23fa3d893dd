package turtle

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.degrees {
		t.Error("default degrees should be false")
	}
	if o.lineMode != LineCrisp {
		t.Errorf("default lineMode = %v, want Crisp", o.lineMode)
	}
	if o.color != nil {
		t.Errorf("default color = %v, want nil", o.color)
	}
	if o.stackLimit != DefaultStackLimit {
		t.Errorf("default stackLimit = %d, want %d", o.stackLimit, DefaultStackLimit)
	}
}

func TestOptionsApply(t *testing.T) {
	o := defaultOptions()
	components := []float64{1, 2, 3}
	for _, opt := range []Option{
		WithDegrees(),
		WithLineMode(LineArea),
		WithColor(components...),
		WithStackLimit(7),
	} {
		opt(&o)
	}
	components[0] = 99

	if !o.degrees {
		t.Error("WithDegrees not applied")
	}
	if o.lineMode != LineArea {
		t.Errorf("lineMode = %v, want Area", o.lineMode)
	}
	if len(o.color) != 3 || o.color[0] != 1 {
		t.Errorf("color = %v, want [1 2 3] (copied)", o.color)
	}
	if o.stackLimit != 7 {
		t.Errorf("stackLimit = %d, want 7", o.stackLimit)
	}
}

func TestLastLineModeWins(t *testing.T) {
	o := defaultOptions()
	WithLineMode(LineArea)(&o)
	WithAntiAlias()(&o)
	if o.lineMode != LineAA {
		t.Errorf("lineMode = %v, want AA", o.lineMode)
	}
}

func TestLineModeString(t *testing.T) {
	tests := []struct {
		mode LineMode
		want string
	}{
		{LineCrisp, "Crisp"},
		{LineAA, "AA"},
		{LineArea, "Area"},
		{LineMode(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("LineMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestUnknownLineModeDrawsCrisp(t *testing.T) {
	grid, tt := newCanvas(t, WithLineMode(LineMode(42)))
	if err := tt.Rotate(0.4); err != nil {
		t.Fatal(err)
	}
	tt.Forward(8)
	for i, v := range grid.Data() {
		if v != 0 && v != 255 {
			t.Fatalf("Data()[%d] = %d, want 0 or 255", i, v)
		}
	}
}
