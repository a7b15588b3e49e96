package appearance

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/orrerylab/orrery/internal/catalog"
)

func TestAppearanceWithTexture(t *testing.T) {
	dir := t.TempDir()
	texPath := filepath.Join(dir, "earth.jpg")
	if err := os.WriteFile(texPath, []byte("not really a jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	p := Palette{TextureDir: dir}
	h, err := p.Appearance("Earth", catalog.Appearance{Color: [3]float64{0.25, 0.45, 0.85}, Texture: "earth.jpg"})
	if err != nil {
		t.Fatalf("Appearance: %v", err)
	}
	if h.Texture != texPath {
		t.Errorf("Texture = %q, want %q", h.Texture, texPath)
	}
	if h.Name != "Material-Earth" {
		t.Errorf("Name = %q, want Material-Earth", h.Name)
	}
}

func TestAppearanceMissingTextureFallsBack(t *testing.T) {
	p := Palette{TextureDir: t.TempDir()}
	h, err := p.Appearance("Mars", catalog.Appearance{Color: [3]float64{0.8, 0.4, 0.25}, Texture: "mars.jpg"})

	if !errors.Is(err, ErrTextureUnavailable) {
		t.Errorf("err = %v, want ErrTextureUnavailable", err)
	}
	// The handle must still be usable, just untextured.
	if h.Texture != "" {
		t.Errorf("fallback handle has texture %q", h.Texture)
	}
	if h.Color != [3]float64{0.8, 0.4, 0.25} {
		t.Errorf("fallback handle lost its color: %v", h.Color)
	}
}

func TestEmissiveAppearance(t *testing.T) {
	p := Palette{}
	h, err := p.Appearance("Sun", catalog.Appearance{Color: [3]float64{1, 0.9, 0.6}, Emission: 8})
	if err != nil {
		t.Fatal(err)
	}
	if h.Emission != 8 {
		t.Errorf("Emission = %v, want 8", h.Emission)
	}
}

func TestTemperatureDerivedColor(t *testing.T) {
	p := Palette{}

	// Without an explicit color the star is tinted from its surface
	// temperature.
	h, err := p.Appearance("Sun", catalog.Appearance{TempK: 5778, Emission: 8})
	if err != nil {
		t.Fatal(err)
	}
	want := BlackbodyColor(5778)
	if h.Color != want {
		t.Errorf("Color = %v, want blackbody tint %v", h.Color, want)
	}
	if h.Color == ([3]float64{}) {
		t.Error("derived color is black")
	}

	// An explicit color wins over the temperature.
	explicit := [3]float64{1, 0.9, 0.6}
	h, err = p.Appearance("Sun", catalog.Appearance{Color: explicit, TempK: 5778, Emission: 8})
	if err != nil {
		t.Fatal(err)
	}
	if h.Color != explicit {
		t.Errorf("Color = %v, want explicit %v", h.Color, explicit)
	}
}

func TestRingAppearance(t *testing.T) {
	h := Palette{}.RingAppearance("Saturn")
	if h.Name != "Rings-Saturn" {
		t.Errorf("Name = %q, want Rings-Saturn", h.Name)
	}
	if h.Alpha >= 1 || h.Alpha <= 0 {
		t.Errorf("ring alpha = %v, want translucent", h.Alpha)
	}
}

func TestPeakWavelength(t *testing.T) {
	// The Sun at 5778 K peaks near 500 nm.
	if nm := PeakWavelength(5778); math.Abs(nm-500.2) > 1 {
		t.Errorf("PeakWavelength(5778) = %v nm, want ≈500", nm)
	}
	if PeakWavelength(0) != 0 {
		t.Error("PeakWavelength(0) should be 0")
	}
}

func TestBlackbodyColorEnds(t *testing.T) {
	// A very hot star peaks in UV and clamps to the blue end.
	hot := BlackbodyColor(30000)
	if hot[2] < hot[0] {
		t.Errorf("hot star color %v should lean blue", hot)
	}
	// A cool star peaks in IR and clamps to the red end.
	cool := BlackbodyColor(2500)
	if cool[0] < cool[2] {
		t.Errorf("cool star color %v should lean red", cool)
	}
}
