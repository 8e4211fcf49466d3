package main

import (
	"os"
	"testing"

	"github.com/hubastard/meowcade/engine/assets"
)

func TestCellSheet(t *testing.T) {
	img := cellSheet(16)
	if a := img.NRGBAAt(8, 8).A; a != 255 {
		t.Fatalf("center alpha = %d", a)
	}
	if a := img.NRGBAAt(8, 0).A; a != 255 {
		t.Fatalf("edge alpha = %d", a)
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("corner alpha = %d, want rounded off", a)
	}
}

func TestSpriteSheetPaw(t *testing.T) {
	img := spriteSheet(16)
	if a := img.NRGBAAt(8, 10).A; a != 255 {
		t.Fatalf("main pad alpha = %d", a)
	}
	if a := img.NRGBAAt(0, 15).A; a != 0 {
		t.Fatalf("bottom corner alpha = %d", a)
	}
}

func TestRunWritesAtlases(t *testing.T) {
	for _, basic := range []bool{true, false} {
		dir := t.TempDir()
		if err := run(dir, basic); err != nil {
			t.Fatalf("basic=%v: %v", basic, err)
		}
		fsys := os.DirFS(dir)
		want := map[string][2]int{
			"font.png":    {tileSize * fontColumns, tileSize * 6},
			"cells.png":   {tileSize, tileSize},
			"sprites.png": {tileSize, tileSize},
		}
		for name, size := range want {
			w, h, _, err := assets.LoadPNG(fsys, name)
			if err != nil {
				t.Fatalf("basic=%v: %s: %v", basic, name, err)
			}
			if w != size[0] || h != size[1] {
				t.Errorf("basic=%v: %s is %dx%d, want %dx%d", basic, name, w, h, size[0], size[1])
			}
		}
	}
}
