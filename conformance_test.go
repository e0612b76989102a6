package utf16text

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type clusterCase struct {
	Name       string   `yaml:"name"`
	Units      []uint16 `yaml:"units"`
	Length     int      `yaml:"length"`
	Chars      []string `yaml:"chars"`
	CodePoints []rune   `yaml:"codepoints"`
	ByteIndex  []int    `yaml:"byte_index"`
}

type clusterFixtures struct {
	Cases []clusterCase `yaml:"cases"`
}

func loadClusterFixtures(t *testing.T) []clusterCase {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "clusters.yaml"))
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}

	var f clusterFixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("parse fixtures: %v", err)
	}
	if len(f.Cases) == 0 {
		t.Fatal("fixture file has no cases")
	}
	return f.Cases
}

func TestClusterConformance(t *testing.T) {
	for _, tc := range loadClusterFixtures(t) {
		t.Run(tc.Name, func(t *testing.T) {
			text := FromUnits(tc.Units)

			if got := text.Len(); got != tc.Length {
				t.Errorf("Len() = %d, want %d", got, tc.Length)
			}

			chars := text.Chars()
			if len(chars) != len(tc.Chars) {
				t.Fatalf("Chars() has %d entries, want %d", len(chars), len(tc.Chars))
			}
			for i, want := range tc.Chars {
				if chars[i] != want {
					t.Errorf("Chars()[%d] = %q, want %q", i, chars[i], want)
				}
				if got := text.CharAt(i); got != want {
					t.Errorf("CharAt(%d) = %q, want %q", i, got, want)
				}
			}

			cps := text.CodePoints()
			if len(cps) != len(tc.CodePoints) {
				t.Fatalf("CodePoints() has %d entries %v, want %d", len(cps), cps, len(tc.CodePoints))
			}
			for i, want := range tc.CodePoints {
				if cps[i] != want {
					t.Errorf("CodePoints()[%d] = %#x, want %#x", i, cps[i], want)
				}
				if got := text.CharCodeAt(i); got != want {
					t.Errorf("CharCodeAt(%d) = %#x, want %#x", i, got, want)
				}
			}

			if len(tc.ByteIndex) != tc.Length {
				t.Fatalf("fixture lists %d byte indexes for %d characters", len(tc.ByteIndex), tc.Length)
			}
			for i, want := range tc.ByteIndex {
				if got := text.FindByteIndex(i); got != want {
					t.Errorf("FindByteIndex(%d) = %d, want %d", i, got, want)
				}
				if back := text.FindCharIndex(want); back != i {
					t.Errorf("FindCharIndex(%d) = %d, want %d", want, back, i)
				}
			}
			if got := text.FindByteIndex(tc.Length); got != NotFound {
				t.Errorf("FindByteIndex(%d) = %d, want NotFound", tc.Length, got)
			}

			// Every unit offset resolves to the character whose span
			// contains it.
			for off := 0; off < text.UnitLen(); off++ {
				want := 0
				for i := len(tc.ByteIndex) - 1; i >= 0; i-- {
					if off >= tc.ByteIndex[i] {
						want = i
						break
					}
				}
				if got := text.FindCharIndex(off); got != want {
					t.Errorf("FindCharIndex(%d) = %d, want %d", off, got, want)
				}
			}
		})
	}
}
