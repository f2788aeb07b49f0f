package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	cat, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}

	if got := len(cat.Sizes(BelowSpawn)); got != 6 {
		t.Errorf("below sizes = %d, want 6", got)
	}
	if got := len(cat.Sizes(Middle)); got != 20 {
		t.Errorf("middle sizes = %d, want 20", got)
	}
	if got := len(cat.Sizes(Free)); got != 16 {
		t.Errorf("free sizes = %d, want 16", got)
	}
	if got := len(cat.AllPatterns(Tunnel)); got != 3 {
		t.Errorf("tunnel patterns = %d, want 3", got)
	}

	// declaration order is kept
	if got := cat.Sizes(Middle)[0]; got != (Size{H: 2, W: 1}) {
		t.Errorf("first middle size = %v, want 2x1", got)
	}

	for _, p := range cat.Patterns(Free, Size{H: 4, W: 5}) {
		if p.Size() != (Size{H: 4, W: 5}) {
			t.Errorf("pattern %v filed under 4x5", p)
		}
	}
	if got := len(cat.Patterns(Free, Size{H: 4, W: 5})); got != 2 {
		t.Errorf("free 4x5 patterns = %d, want solid and notched", got)
	}
}

func TestLoadDefaultNotchesStayOffTheAxis(t *testing.T) {
	cat, err := LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range cat.Sizes(Middle) {
		for _, p := range cat.Patterns(Middle, size) {
			for r := range p {
				if !p.IsWall(r, 0) {
					t.Errorf("middle pattern %v opens column 0", p)
				}
			}
		}
	}
}

func TestLoadString(t *testing.T) {
	script := `
		catalog = {
			below  = { sizes = { "2x3" }, patterns = { { "###", "#.#" } } },
			middle = { sizes = { "2x1" }, patterns = { { "#", "#" } } },
			free   = { sizes = { "2x2" }, patterns = { { "##", "##" }, { "#.", "##" } } },
			tunnel = { patterns = { { "###", "===", "###" } } },
		}
	`
	cat, err := LoadString(script)
	if err != nil {
		t.Fatalf("LoadString() error: %v", err)
	}
	if got := len(cat.Patterns(Free, Size{H: 2, W: 2})); got != 2 {
		t.Errorf("free 2x2 patterns = %d, want 2", got)
	}
	if !cat.Patterns(BelowSpawn, Size{H: 2, W: 3})[0].IsWall(1, 0) {
		t.Error("below pattern lost its wall")
	}
}

func TestLoadStringErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   error
	}{
		{
			name:   "missing free bag",
			script: `catalog = { below = { sizes = {"2x3"}, patterns = {{"###","###"}} }, middle = { sizes = {"2x1"}, patterns = {{"#","#"}} }, tunnel = { patterns = {{"="}} } }`,
			want:   ErrMissingBag,
		},
		{
			name:   "bad size descriptor",
			script: `catalog = { free = { sizes = {"big"} } }`,
			want:   ErrMalformedSize,
		},
		{
			name:   "pattern row not a string",
			script: `catalog = { free = { sizes = {"1x1"}, patterns = {{ 12 }} } }`,
			want:   ErrMalformedPattern,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadString(tt.script); !errors.Is(err, tt.want) {
				t.Errorf("LoadString() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadString(`catalog = 3`); err == nil {
		t.Error("non-table catalog accepted")
	}
	if _, err := LoadString(`this is not lua`); err == nil {
		t.Error("syntax error accepted")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pieces.lua")
	if err := os.WriteFile(path, []byte(defaultScript), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(cat.Sizes(Free)) == 0 {
		t.Error("LoadFile() returned an empty free bag")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("LoadFile() on a missing file returned no error")
	}
}
