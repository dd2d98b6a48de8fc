package smoke

import (
	"image"
	"testing"
)

func TestDefaultTexture(t *testing.T) {
	tex := DefaultTexture()
	if tex == nil {
		t.Fatalf("DefaultTexture returned nil")
	}
	if tex != DefaultTexture() {
		t.Errorf("DefaultTexture not shared")
	}
	if got := tex.Sample(0.5, 0.5); got != White {
		t.Errorf("default texel = %+v, want opaque white", got)
	}
	if tex.Region() != RectOf(0, 0, 1, 1) {
		t.Errorf("default region = %+v, want full UV range", tex.Region())
	}
}

func TestTexture_Sample(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(1, 0, Green)
	pm.SetPixel(0, 1, Blue)
	pm.SetPixel(1, 1, White)
	tex := NewTexture(pm)

	tests := []struct {
		name string
		u, v float64
		want RGBA
	}{
		{"top left", 0.1, 0.1, Red},
		{"top right", 0.9, 0.1, Green},
		{"bottom left", 0.1, 0.9, Blue},
		{"bottom right", 0.9, 0.9, White},
		{"clamped below", -1, -1, Red},
		{"clamped above", 2, 2, White},
		{"edge u=1", 1, 0, Green},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Sample(tt.u, tt.v); got != tt.want {
				t.Errorf("Sample(%v, %v) = %+v, want %+v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestTexture_SubRegion(t *testing.T) {
	tex := NewTexture(NewPixmap(4, 4))
	region := RectOf(0.25, 0.25, 0.75, 0.75)
	sub := tex.SubRegion(region)

	if sub.Region() != region {
		t.Errorf("region = %+v, want %+v", sub.Region(), region)
	}
	if sub.Pixmap() != tex.Pixmap() {
		t.Errorf("sub-region does not share the pixmap")
	}
}

func TestTextureFromImage_Rescales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 6))
	tex := TextureFromImage(src, 4)
	if w, h := tex.Pixmap().Width(), tex.Pixmap().Height(); w != 4 || h != 4 {
		t.Errorf("scaled size = %dx%d, want 4x4", w, h)
	}

	native := TextureFromImage(src, 0)
	if w, h := native.Pixmap().Width(), native.Pixmap().Height(); w != 10 || h != 6 {
		t.Errorf("native size = %dx%d, want 10x6", w, h)
	}
}

func TestLoadTexture_MissingFile(t *testing.T) {
	if _, err := LoadTexture("does-not-exist.png"); err == nil {
		t.Errorf("LoadTexture on missing file: err = nil, want error")
	}
}
