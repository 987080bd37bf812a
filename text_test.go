package wardley

import (
	"errors"
	"testing"
)

func TestDefaultFontMeasures(t *testing.T) {
	f, err := DefaultFont(DefaultFontSize)
	if err != nil {
		t.Fatalf("DefaultFont: %v", err)
	}
	if f.Size() != DefaultFontSize {
		t.Errorf("Size = %f, want %f", f.Size(), DefaultFontSize)
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %f, want > 0", f.LineHeight())
	}
	if f.Face() == nil {
		t.Error("Face should not be nil")
	}

	w1, h1 := f.MeasureString("Visibility")
	w2, _ := f.MeasureString("Visibility Visibility")
	if w1 <= 0 || h1 <= 0 {
		t.Errorf("MeasureString = (%f,%f), want positive", w1, h1)
	}
	if w2 <= w1 {
		t.Errorf("longer text should be wider: %f <= %f", w2, w1)
	}
	if w, _ := f.MeasureString(""); w != 0 {
		t.Errorf("empty width = %f, want 0", w)
	}
}

func TestDefaultFontScalesWithSize(t *testing.T) {
	small, err := DefaultFont(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := DefaultFont(20)
	if err != nil {
		t.Fatal(err)
	}
	ws, _ := small.MeasureString("Evolution")
	wl, _ := large.MeasureString("Evolution")
	if wl <= ws {
		t.Errorf("size 20 width %f should exceed size 10 width %f", wl, ws)
	}
}

func TestLoadTTFFontInvalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for garbage data")
	}
	if _, err := DefaultFont(0); !errors.Is(err, ErrConfiguration) {
		t.Errorf("size 0: err = %v, want ErrConfiguration", err)
	}
}
