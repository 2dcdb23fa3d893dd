// Command turtledemo renders classic L-system figures with the turtle package.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/lsystem"
)

// preset describes one figure: its grammar, canvas and how symbols drive the
// turtle.
type preset struct {
	grammar    lsystem.Grammar
	iterations int
	rows, cols int
	angle      float64
	heading    float64
	step       float64
	color      []float64
	antiAlias  bool
	float      bool

	// start returns the initial position for a rows x cols canvas.
	start func(rows, cols int) (row, col float64)

	// draws lists the symbols that move forward. Empty means every letter.
	draws string

	// mirrored swaps the meaning of + and -.
	mirrored bool
}

var presets = map[string]preset{
	"plant": {
		grammar: lsystem.Grammar{
			Axiom: "X",
			Rules: map[string]string{"X": "F+[[X]-X]-F[-FX]+X", "F": "FF"},
		},
		iterations: 6,
		rows:       666,
		cols:       666,
		angle:      math.Pi / 7,
		heading:    math.Pi - math.Pi/7,
		step:       4,
		color:      []float64{0, 255, 0, 255},
		antiAlias:  true,
		start:      func(rows, _ int) (float64, float64) { return float64(rows - 64), 64 },
		draws:      "F",
	},
	"conifer": {
		grammar: lsystem.Grammar{
			Axiom: "VZFFF",
			Rules: map[string]string{
				"V": "[+++W][---W]YV",
				"W": "+X[-W]Z",
				"X": "-W[+X]Z",
				"Y": "YZ",
				"Z": "[-FFF][+FFF]F",
			},
		},
		iterations: 8,
		rows:       666,
		cols:       720,
		angle:      math.Pi / 9,
		heading:    math.Pi,
		step:       14,
		color:      []float64{160, 82, 45, 255},
		start:      func(rows, cols int) (float64, float64) { return float64(rows - 64), float64(cols/2 - 16) },
	},
	"sierpinski": {
		grammar: lsystem.Grammar{
			Axiom: "F-G-G",
			Rules: map[string]string{"F": "F-G+F+G-F", "G": "GG"},
		},
		iterations: 8,
		rows:       444, // ceil(512 * sin(pi/3))
		cols:       512,
		angle:      2 * math.Pi / 3,
		heading:    math.Pi / 2,
		step:       2, // 512 / 2^8
		color:      []float64{0, 0, 0, 1},
		float:      true,
		start:      func(rows, _ int) (float64, float64) { return float64(rows - 1), 0 },
		draws:      "FG",
		mirrored:   true,
	},
	"koch": {
		grammar: lsystem.Grammar{
			Axiom: "F-F-F-F",
			Rules: map[string]string{"F": "FF-F+F-F-FF"},
		},
		iterations: 3,
		rows:       512,
		cols:       512,
		angle:      math.Pi / 2,
		heading:    math.Pi / 2,
		step:       25,
		color:      []float64{180, 80, 0, 255},
		start:      func(rows, cols int) (float64, float64) { return float64(rows/2 - 64), float64(cols - 64) },
		draws:      "F",
		mirrored:   true,
	},
}

func main() {
	var (
		name    = flag.String("preset", "plant", "figure to draw: "+strings.Join(presetNames(), ", "))
		output  = flag.String("o", "", "output file (.png, .tif, .tiff or .bmp); default <preset>.png")
		iter    = flag.Int("n", -1, "iterations (default: preset value)")
		size    = flag.Int("size", 0, "canvas width in pixels; height and step scale with it")
		aa      = flag.Bool("aa", false, "force anti-aliased lines")
		verbose = flag.Bool("v", false, "log turtle activity")
	)
	flag.Parse()

	if *verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p, ok := presets[*name]
	if !ok {
		log.Fatalf("unknown preset %q (want one of %s)", *name, strings.Join(presetNames(), ", "))
	}
	if err := p.grammar.Validate(); err != nil {
		log.Fatalf("preset %s: %v", *name, err)
	}
	if *iter >= 0 {
		p.iterations = *iter
	}
	if *size > 0 {
		p = p.scaled(*size)
	}
	if *aa {
		p.antiAlias = true
	}
	if *output == "" {
		*output = *name + ".png"
	}

	var err error
	if p.float {
		err = render[float64](p, *output)
	} else {
		err = render[uint8](p, *output)
	}
	if err != nil {
		log.Fatalf("Failed to render %s: %v", *name, err)
	}

	log.Printf("%s saved to %s (%dx%d)\n", *name, *output, p.cols, p.rows)
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// scaled returns p resized to the given width.
func (p preset) scaled(width int) preset {
	f := float64(width) / float64(p.cols)
	p.rows = max(1, int(math.Round(float64(p.rows)*f)))
	p.cols = width
	p.step *= f
	return p
}

// moves reports whether sym advances the turtle.
func (p preset) moves(sym string) bool {
	if p.draws != "" {
		return strings.Contains(p.draws, sym)
	}
	r := []rune(sym)
	return len(r) > 0 && unicode.IsLetter(r[0])
}

func render[T turtle.Sample](p preset, output string) error {
	grid, err := turtle.NewGrid[T](p.rows, p.cols, len(p.color))
	if err != nil {
		return err
	}

	opts := []turtle.Option{turtle.WithColor(p.color...)}
	if p.antiAlias {
		opts = append(opts, turtle.WithAntiAlias())
	}
	t, err := turtle.New(grid, opts...)
	if err != nil {
		return err
	}
	if err := t.SetDirection(p.heading); err != nil {
		return err
	}
	row, col := p.start(p.rows, p.cols)
	row = min(max(row, 0), float64(p.rows-1))
	col = min(max(col, 0), float64(p.cols-1))
	if err := t.SetPosition(row, col); err != nil {
		return err
	}

	left := p.angle
	if p.mirrored {
		left = -left
	}
	s := p.grammar.Expand(p.iterations)
	err = lsystem.Walk(s, func(sym string) error {
		switch {
		case sym == "+":
			return t.Rotate(left)
		case sym == "-":
			return t.Rotate(-left)
		case sym == "[":
			return t.Push()
		case sym == "]":
			return t.Pop()
		case p.moves(sym):
			t.Forward(p.step)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	return t.Save(output)
}
