// Command atlasgen writes the fixed-grid PNG atlases the game loads: the
// glyph font, the cell tile and the cursor sprite sheet.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hubastard/meowcade/engine/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

const (
	tileSize    = 16
	fontColumns = 8
	fontPoints  = 14
)

func main() {
	out := flag.String("out", "assets/textures", "output directory")
	basic := flag.Bool("basic", false, "use the built-in 7x13 bitmap face instead of Go Mono Bold")
	flag.Parse()

	if err := run(*out, *basic); err != nil {
		log.Fatal(err)
	}
}

func run(dir string, basic bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	face, err := loadFace(basic)
	if err != nil {
		return err
	}
	glyphs, err := text.BuildAtlas(face, tileSize, fontColumns)
	if err != nil {
		return err
	}

	sheets := []struct {
		name string
		img  image.Image
	}{
		{"font.png", glyphs},
		{"cells.png", cellSheet(tileSize)},
		{"sprites.png", spriteSheet(tileSize)},
	}
	for _, s := range sheets {
		path := filepath.Join(dir, s.name)
		if err := writePNG(path, s.img); err != nil {
			return err
		}
		b := s.img.Bounds()
		log.Printf("[atlasgen] wrote %s (%dx%d)", path, b.Dx(), b.Dy())
	}
	return nil
}

func loadFace(basic bool) (font.Face, error) {
	if basic {
		return basicfont.Face7x13, nil
	}
	f, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gomonobold: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontPoints,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gomonobold face: %w", err)
	}
	return face, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
