package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderPresets(t *testing.T) {
	for _, name := range presetNames() {
		t.Run(name, func(t *testing.T) {
			p := presets[name].scaled(96)
			p.iterations = 2
			path := filepath.Join(t.TempDir(), name+".png")

			var err error
			if p.float {
				err = render[float64](p, path)
			} else {
				err = render[uint8](p, path)
			}
			if err != nil {
				t.Fatalf("render(%s) = %v", name, err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Error("empty output")
			}
		})
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, p := range presets {
		if err := p.grammar.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestScaled(t *testing.T) {
	p := presets["conifer"].scaled(360)
	if p.cols != 360 || p.rows != 333 || p.step != 7 {
		t.Errorf("scaled(360) = %dx%d step %v, want 360x333 step 7", p.cols, p.rows, p.step)
	}
}

func TestMoves(t *testing.T) {
	plant, conifer := presets["plant"], presets["conifer"]
	if !plant.moves("F") || plant.moves("X") {
		t.Error("plant should move on F only")
	}
	if !conifer.moves("V") || conifer.moves("[") {
		t.Error("conifer should move on letters only")
	}
}
