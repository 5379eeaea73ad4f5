package panes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
[viewport]
width = 1280
height = 720

[position]
initial = "centered"
[position.data]
left = "+=10%"
width = 320
height = "auto"

[bounds]
mode = "basic"
constrain = true
width = 1000

[tween]
duration = 0.4
ease = "quadInOut"
strategy = "cancel"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Viewport.Size(); got != (Size{Width: 1280, Height: 720}) {
		t.Errorf("viewport = %+v", got)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	assertValue(t, "left", opts.Data[KeyLeft], Str("+=10%"))
	assertValue(t, "width", opts.Data[KeyWidth], Num(320))
	assertValue(t, "height", opts.Data[KeyHeight], Auto())

	if len(opts.Validators) != 1 {
		t.Fatalf("validators = %d, want 1", len(opts.Validators))
	}
	bb, ok := opts.Validators[0].(*BasicBounds)
	if !ok {
		t.Fatalf("validator = %T, want *BasicBounds", opts.Validators[0])
	}
	if !bb.Constrain() {
		t.Error("constrain not carried over")
	}
	assertValue(t, "bounds width", bb.Width(), Num(1000))
	assertValue(t, "bounds height", bb.Height(), Null())
	if _, ok := opts.Initial.(*Centered); !ok {
		t.Errorf("initial = %T, want *Centered", opts.Initial)
	}

	tw := cfg.Tween.Options()
	if tw.Duration != 0.4 || tw.EaseName != "quadInOut" || tw.Strategy != StrategyCancel {
		t.Errorf("tween options = %+v", tw)
	}

	e := NewEngine()
	cfg.Apply(e)
	if e.Viewport() != (Size{Width: 1280, Height: 720}) {
		t.Errorf("engine viewport = %+v", e.Viewport())
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Viewport.Size() != DefaultViewport {
		t.Errorf("viewport = %+v", cfg.Viewport.Size())
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if len(opts.Validators) != 1 {
		t.Fatalf("validators = %d", len(opts.Validators))
	}
	if _, ok := opts.Validators[0].(*TransformBounds); !ok {
		t.Errorf("default validator = %T", opts.Validators[0])
	}
	if opts.Initial != nil || opts.Data != nil {
		t.Error("empty config produced initial placement or data")
	}

	if w := opts.Validators[0].(Weighted).Weight(); w != DefaultWeight {
		t.Errorf("default bounds weight = %v", w)
	}

	cfg, _ = ParseConfig([]byte("[bounds]\nweight = 0.0\n"))
	opts, _ = cfg.Options()
	if w := opts.Validators[0].(Weighted).Weight(); w != 0 {
		t.Errorf("configured bounds weight = %v, want 0", w)
	}

	cfg, _ = ParseConfig([]byte("[bounds]\nmode = \"none\"\n"))
	opts, _ = cfg.Options()
	if len(opts.Validators) != 0 {
		t.Errorf("mode none added %d validators", len(opts.Validators))
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"invalid toml", "[viewport\nwidth = 1", "parse config"},
		{"bounds mode", "[bounds]\nmode = \"sideways\"", "unknown bounds mode"},
		{"initial", "[position]\ninitial = \"left\"", "unknown initial placement"},
		{"data key", "[position.data]\ncolour = 3", "unknown position key"},
		{"data type", "[position.data]\nleft = true", "key \"left\""},
		{"ease", "[tween]\nease = \"wobble\"", "ease"},
		{"duration", "[tween]\nduration = -1.0", "duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.toml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panes.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestConfiguredPosition(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	e, _ := newTestEngine()
	cfg.Apply(e)
	opts, _ := cfg.Options()
	root := NewBox(1280, 720)
	pn, err := NewPane(e, root, "main", 320, 200, opts)
	if err != nil {
		t.Fatal(err)
	}
	p := pn.Position()

	// "+=10%" of the parent width added to the centered left.
	assertValue(t, "left", p.Left(), Num(128))
	assertValue(t, "width", p.Width(), Num(320))
	assertValue(t, "height", p.Height(), Auto())
}
