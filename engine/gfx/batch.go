package gfx

import (
	"log"

	"github.com/hubastard/meowcade/engine/assets"
	"github.com/hubastard/meowcade/engine/colors"
)

const spriteShaderName = "sprite"

// BatchOptions configure a Batch.
type BatchOptions struct {
	Texture   string  // atlas path in the device asset source; empty uses the white texture
	Smooth    bool    // linear filtering instead of nearest
	ImageSize float32 // tile edge in atlas texels

	// KeepHidden uploads hidden sprites with zero alpha instead of leaving
	// them out, so the instance count always matches the live sprites.
	KeepHidden bool
}

// Batch owns one instanced draw: an instance buffer, the sprites feeding it
// and a single texture. Sprite changes only reach the GPU when Update runs
// on a dirty batch; Update compacts disabled sprites away first.
type Batch struct {
	dev     *Device
	shader  *Shader
	layout  VertexLayout
	buffer  Buffer
	texture Texture

	imageSize  float32
	keepHidden bool

	slots []*Sprite
	gens  []uint32
	free  []int
	order []int // live slot indices in draw order

	data      []float32
	instances int
	dirty     bool
}

func NewBatch(dev *Device, opts BatchOptions) *Batch {
	if opts.ImageSize <= 0 {
		opts.ImageSize = 1
	}
	b := &Batch{
		dev:        dev,
		shader:     spriteShader(dev),
		imageSize:  opts.ImageSize,
		keepHidden: opts.KeepHidden,
	}
	if opts.Texture == "" {
		b.texture = dev.WhiteTexture()
	} else {
		b.texture = dev.LoadTexture(opts.Texture, opts.Smooth)
	}

	b.layout = dev.CreateVertexLayout()

	dev.BindBuffer(dev.QuadBuffer())
	dev.SetVertexAttribute(SlotPosition, 2, quadStride, 0, 0)
	dev.SetVertexAttribute(SlotTexCoord, 2, quadStride, 2*4, 0)

	b.buffer = dev.CreateInstanceBuffer(nil, true)
	dev.SetVertexAttribute(SlotSpritePosition, 2, instanceStride, 0, 1)
	dev.SetVertexAttribute(SlotSpriteSize, 1, instanceStride, 2*4, 1)
	dev.SetVertexAttribute(SlotSpriteType, 1, instanceStride, 3*4, 1)
	dev.SetVertexAttribute(SlotSpriteColor, 4, instanceStride, 4*4, 1)
	dev.SetVertexAttribute(SlotSpriteAngle, 1, instanceStride, 8*4, 1)
	return b
}

func spriteShader(dev *Device) *Shader {
	vs, err := assets.LoadShader(assets.Builtin, "sprite.vert")
	if err != nil {
		log.Printf("[gfx] %v", err)
	}
	fs, err := assets.LoadShader(assets.Builtin, "sprite.frag")
	if err != nil {
		log.Printf("[gfx] %v", err)
	}
	return dev.CreateShader(spriteShaderName, vs, fs)
}

// Add appends a sprite tinted with palette entry c and returns its handle.
func (b *Batch) Add(x, y, size float32, tile int, c colors.Index) SpriteID {
	var i int
	if n := len(b.free); n > 0 {
		i = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		i = len(b.slots)
		b.slots = append(b.slots, nil)
		b.gens = append(b.gens, 0)
	}
	id := makeSpriteID(i, b.gens[i])
	b.slots[i] = &Sprite{
		X:         x,
		Y:         y,
		Size:      size,
		Tile:      tile,
		Color:     c.RGB(),
		Enabled:   true,
		BaseX:     x,
		BaseY:     y,
		BaseColor: c,
		batch:     b,
		id:        id,
	}
	b.order = append(b.order, i)
	b.dirty = true
	return id
}

// Get resolves id, returning nil for stale or disabled sprites.
func (b *Batch) Get(id SpriteID) *Sprite {
	s := b.lookup(id)
	if s == nil || !s.Enabled {
		return nil
	}
	return s
}

// Live reports whether id still names an enabled sprite.
func (b *Batch) Live(id SpriteID) bool { return b.Get(id) != nil }

func (b *Batch) lookup(id SpriteID) *Sprite {
	i := id.index()
	if i < 0 || i >= len(b.slots) || b.gens[i] != id.gen() {
		return nil
	}
	return b.slots[i]
}

// Disable marks the sprite for removal on the next Update.
func (b *Batch) Disable(id SpriteID) {
	if s := b.lookup(id); s != nil {
		s.Disable()
	}
}

// Changed marks the batch dirty after in-place field writes.
func (b *Batch) Changed() { b.dirty = true }

func (b *Batch) Dirty() bool { return b.dirty }

// Len reports sprites in draw order, including disabled ones awaiting compaction.
func (b *Batch) Len() int { return len(b.order) }

// Instances reports the instance count of the last upload.
func (b *Batch) Instances() int { return b.instances }

// Each visits enabled sprites in draw order.
func (b *Batch) Each(fn func(s *Sprite)) {
	for _, i := range b.order {
		if s := b.slots[i]; s.Enabled {
			fn(s)
		}
	}
}

// Clear disables every sprite.
func (b *Batch) Clear() {
	for _, i := range b.order {
		b.slots[i].Disable()
	}
}

// Update compacts and re-uploads the instance buffer when dirty. It reports
// whether an upload happened. Call it once per frame.
func (b *Batch) Update() bool {
	if !b.dirty {
		return false
	}
	live := b.order[:0]
	b.data = b.data[:0]
	for _, i := range b.order {
		s := b.slots[i]
		if !s.Enabled {
			b.release(i)
			continue
		}
		live = append(live, i)
		if s.Hidden && !b.keepHidden {
			continue
		}
		b.data = s.appendInstance(b.data, b.keepHidden)
	}
	b.order = live
	b.instances = len(b.data) / InstanceFloats
	b.dev.UpdateInstanceBuffer(b.buffer, b.data, true)
	b.dirty = false
	return true
}

func (b *Batch) release(i int) {
	b.slots[i].batch = nil
	b.slots[i] = nil
	b.gens[i]++
	b.free = append(b.free, i)
}

// Draw issues one instanced draw for the last upload.
func (b *Batch) Draw() {
	if b.instances == 0 {
		return
	}
	b.shader.ImageSize = b.imageSize
	b.dev.DrawInstanced(b.shader, b.layout, b.texture, QuadVertices, b.instances)
}
