package gfx

// TileRect describes the pixel rect of one tile in a fixed-grid atlas.
type TileRect struct {
	X, Y, W, H int
}

// AtlasColumns reports how many tiles of edge tileSize fit across atlasW.
func AtlasColumns(atlasW, tileSize int) int {
	if tileSize <= 0 || atlasW < tileSize {
		return 1
	}
	return atlasW / tileSize
}

// TileAt returns the rect of tile index i, numbered row-major from the
// top-left. It mirrors the lookup in the sprite vertex shader.
func TileAt(i, tileSize, atlasW int) TileRect {
	if i < 0 {
		i = 0
	}
	cols := AtlasColumns(atlasW, tileSize)
	return TileRect{X: (i % cols) * tileSize, Y: (i / cols) * tileSize, W: tileSize, H: tileSize}
}

// UV converts the rect to normalized texture coordinates.
func (r TileRect) UV(atlasW, atlasH int) (u0, v0, u1, v1 float32) {
	u0 = float32(r.X) / float32(atlasW)
	v0 = float32(r.Y) / float32(atlasH)
	u1 = float32(r.X+r.W) / float32(atlasW)
	v1 = float32(r.Y+r.H) / float32(atlasH)
	return
}
