package text_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/gfx/gfxtest"
	"github.com/hubastard/meowcade/engine/text"
	"golang.org/x/image/font/basicfont"
)

func TestTileMapping(t *testing.T) {
	cases := map[rune]int{'A': 0, 'Z': 25, '0': 26, '9': 35, '?': 36, '!': 37, ',': 38, '.': 39, '\'': 40}
	for r, want := range cases {
		if got, ok := text.Tile(r); !ok || got != want {
			t.Errorf("Tile(%q) = %d, %v; want %d", r, got, ok, want)
		}
	}
	for _, r := range "a \n-#" {
		if _, ok := text.Tile(r); ok {
			t.Errorf("Tile(%q) mapped", r)
		}
	}
}

func TestWriteLayout(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 960, 640)
	seg := tx.Write("HI -\nA", 10, 20, 8, colors.Active, 0, 0)

	// H, I, A: the space and '-' advance without a glyph.
	if seg.Len() != 3 {
		t.Fatalf("glyphs = %d, want 3", seg.Len())
	}
	want := [][2]float32{{10, 20}, {18, 20}, {10, 28}}
	for i, w := range want {
		g := seg.Glyph(i)
		if g.X != w[0] || g.Y != w[1] || g.BaseX != w[0] || g.BaseY != w[1] {
			t.Errorf("glyph %d at (%v,%v), want %v", i, g.X, g.Y, w)
		}
	}
	if g := seg.Glyph(0); g.Tile != 7 || g.Size != 8 {
		t.Errorf("H tile = %d size = %v", g.Tile, g.Size)
	}
	tx.Update(0)
	if tx.Batch().Instances() != 3 {
		t.Fatalf("instances = %d", tx.Batch().Instances())
	}
}

func TestWriteCenter(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 100, 100)
	seg := tx.Write("AB\nABCD", text.Center, text.Center, 10, colors.Active, 0, 0)
	if seg.X != 30 || seg.Y != 40 {
		t.Fatalf("origin = (%v,%v), want (30,40)", seg.X, seg.Y)
	}
}

func TestWriteNegativeIsNotCenter(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 100, 100)
	seg := tx.Write("AB", -1, -1, 10, colors.Active, 0, 0)
	if seg.X != -1 || seg.Y != -1 {
		t.Fatalf("origin = (%v,%v), want (-1,-1)", seg.X, seg.Y)
	}
	if g := seg.Glyph(1); g == nil || g.X != 9 {
		t.Fatalf("second glyph = %+v, want x 9", g)
	}
}

func TestSegmentDisableIsDeferred(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 960, 640)
	a := tx.Write("AB", 0, 0, 8, colors.Active, 0, 0)
	tx.Write("CD", 0, 10, 8, colors.Active, 0, 0)
	tx.Update(0)

	a.Disable()
	if a.Glyph(0) == nil {
		t.Fatal("glyphs torn down before Update")
	}
	tx.Update(16)
	if a.Glyph(0) != nil || tx.Segments() != 1 {
		t.Fatalf("segment not removed: segments = %d", tx.Segments())
	}
	if tx.Batch().Instances() != 2 {
		t.Fatalf("instances = %d, want 2", tx.Batch().Instances())
	}

	tx.Clear()
	tx.Update(32)
	if tx.Segments() != 0 || tx.Batch().Instances() != 0 {
		t.Fatal("Clear left glyphs behind")
	}
}

func TestSineAnimation(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 960, 640)
	seg := tx.Write("AB", 0, 100, 8, colors.Active, text.Sine, 0)
	tx.Update(400)
	for i := 0; i < 2; i++ {
		want := 100 + float32(math.Sin(float64(i)+2)*10)
		if got := seg.Glyph(i).Y; math.Abs(float64(got-want)) > 1e-4 {
			t.Errorf("glyph %d y = %v, want %v", i, got, want)
		}
	}
}

func TestShakeEverySeventhFrame(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 960, 640)
	tx.SetRand(rand.New(rand.NewPCG(1, 2)))
	seg := tx.Write("A", 50, 50, 8, colors.Active, text.Shake, 0)
	for i := 0; i < 6; i++ {
		tx.Update(float64(i))
	}
	if g := seg.Glyph(0); g.X != 50 || g.Y != 50 {
		t.Fatalf("moved before the 7th frame: (%v,%v)", g.X, g.Y)
	}
	tx.Update(7)
	g := seg.Glyph(0)
	if g.X < 50 || g.X >= 55 || g.Y < 50 || g.Y >= 55 {
		t.Fatalf("jitter out of range: (%v,%v)", g.X, g.Y)
	}
}

func TestTypingReveal(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 960, 640)
	seg := tx.Write("ABC", 0, 0, 8, colors.Active, text.Typing, 100)

	tx.Update(1000) // begin
	for i := 0; i < 3; i++ {
		if !seg.Glyph(i).Hidden {
			t.Fatalf("glyph %d visible during delay", i)
		}
	}
	tx.Update(1100 + 150) // (250-100)/150 = 1: glyphs 0 and 1 visible
	if seg.Glyph(0).Hidden || seg.Glyph(1).Hidden || !seg.Glyph(2).Hidden {
		t.Fatalf("reveal = %v %v %v", seg.Glyph(0).Hidden, seg.Glyph(1).Hidden, seg.Glyph(2).Hidden)
	}
	if tx.Batch().Instances() != 2 {
		t.Fatalf("instances = %d, want 2", tx.Batch().Instances())
	}
}

func TestStaticTextUploadsOnce(t *testing.T) {
	dev, rec := gfxtest.Device()
	tx := text.New(dev, 960, 640)
	tx.Write("STILL", 0, 0, 8, colors.Active, 0, 0)
	before := rec.Calls.BufferData
	tx.Update(0)
	tx.Update(16)
	tx.Update(32)
	if n := rec.Calls.BufferData - before; n != 1 {
		t.Fatalf("uploads = %d, want 1", n)
	}
}

func TestSetColor(t *testing.T) {
	dev, _ := gfxtest.Device()
	tx := text.New(dev, 960, 640)
	seg := tx.Write("AB", 0, 0, 8, colors.Active, 0, 0)
	seg.SetColor(colors.Highlight)
	if seg.Glyph(1).Color != colors.Highlight.RGB() {
		t.Fatalf("color = %v", seg.Glyph(1).Color)
	}
}

func TestBuildAtlas(t *testing.T) {
	img, err := text.BuildAtlas(basicfont.Face7x13, 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Fatalf("atlas = %v, want 128x96", b)
	}
	// Every mapped tile has some coverage.
	for i := 0; i < text.GlyphCount; i++ {
		x0, y0 := (i%8)*16, (i/8)*16
		lit := false
		for y := y0; y < y0+16 && !lit; y++ {
			for x := x0; x < x0+16; x++ {
				if img.RGBAAt(x, y).A > 0 {
					lit = true
					break
				}
			}
		}
		if !lit {
			t.Errorf("tile %d is empty", i)
		}
	}
	if _, err := text.BuildAtlas(basicfont.Face7x13, 0, 8); err == nil {
		t.Fatal("zero tile accepted")
	}
}
