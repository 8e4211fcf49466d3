package colors

import "testing"

func TestPaletteLookup(t *testing.T) {
	got := Highlight.RGB()
	want := Hex(0xc28c94)
	if got != want {
		t.Errorf("Highlight.RGB() = %v, want %v", got, want)
	}
	if Background.RGB() == Highlight.RGB() {
		t.Error("Background must not resolve to the highlight color")
	}
}

func TestPaletteOutOfRangeIsWhite(t *testing.T) {
	for _, idx := range []Index{-1, paletteSize, 99} {
		if idx.Valid() {
			t.Errorf("Index(%d).Valid() = true", idx)
		}
		if got := idx.RGB(); got != White {
			t.Errorf("Index(%d).RGB() = %v, want white", idx, got)
		}
	}
}

func TestInactiveN(t *testing.T) {
	if InactiveN(1) != Inactive1 || InactiveN(10) != Inactive10 {
		t.Errorf("InactiveN endpoints wrong: %d %d", InactiveN(1), InactiveN(10))
	}
	if InactiveN(0) != Inactive || InactiveN(11) != Inactive {
		t.Error("InactiveN outside 1..10 should map to Inactive")
	}
}

func TestRGBA8(t *testing.T) {
	got := Color{1, 0, 0.5, 2}.RGBA8()
	want := [4]uint8{255, 0, 128, 255}
	if got != want {
		t.Errorf("RGBA8() = %v, want %v", got, want)
	}
}
