package main

import (
	"image"
	"image/color"
	"math"
)

const cellRadius = 3

// cellSheet is a single white tile with rounded corners. The game tints it
// per cell.
func cellSheet(tile int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tile, tile))
	r := float64(cellRadius)
	lo, hi := r, float64(tile)-r
	for y := 0; y < tile; y++ {
		for x := 0; x < tile; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			cx := math.Max(lo, math.Min(hi, px))
			cy := math.Max(lo, math.Min(hi, py))
			img.SetNRGBA(x, y, white(coverage(math.Hypot(px-cx, py-cy), r)))
		}
	}
	return img
}

type disc struct{ x, y, r float64 }

// pawPads are in units of a 16 pixel tile: one main pad and four toes.
var pawPads = []disc{
	{8, 10.5, 4},
	{3, 6, 1.8},
	{6.2, 3.2, 1.8},
	{9.8, 3.2, 1.8},
	{13, 6, 1.8},
}

// spriteSheet holds the cursor paw at tile 0.
func spriteSheet(tile int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tile, tile))
	scale := float64(tile) / 16
	for y := 0; y < tile; y++ {
		for x := 0; x < tile; x++ {
			px, py := (float64(x)+0.5)/scale, (float64(y)+0.5)/scale
			a := 0.0
			for _, d := range pawPads {
				a = math.Max(a, coverage(math.Hypot(px-d.x, py-d.y), d.r))
			}
			img.SetNRGBA(x, y, white(a))
		}
	}
	return img
}

// coverage antialiases a disc edge over one pixel.
func coverage(dist, r float64) float64 {
	return math.Max(0, math.Min(1, r-dist+0.5))
}

func white(a float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)}
}
