package gfx

import (
	"context"
	"io/fs"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/meowcade/engine/assets"
	"github.com/hubastard/meowcade/engine/colors"
)

var (
	placeholderPixels = []byte{255, 0, 255, 255}
	whitePixels       = []byte{255, 255, 255, 255}
)

// Stats counts the GPU work issued since the last BeginFrame.
type Stats struct {
	DrawCalls      int
	Instances      int
	BufferUploads  int
	ShaderBinds    int
	LayoutBinds    int
	TextureBinds   int
	UniformPushes  int
	TextureUploads int
}

// Options configure a Device.
type Options struct {
	Assets     fs.FS // texture source; nil keeps every texture on its placeholder
	Width      int   // scene width in units, for the default projection
	Height     int
	ClearColor colors.Color
}

type textureKey struct {
	name   string
	smooth bool
}

type textureLoad struct {
	tex    Texture
	name   string
	smooth bool
	w, h   int
	pix    []byte
	err    error
}

// Device owns the shader and texture caches, the shared quad geometry and
// the last-bound state used to skip redundant binds. It is not safe for
// concurrent use; only texture decoding happens off the render thread.
type Device struct {
	backend Backend
	assets  fs.FS

	shaders  map[string]*Shader
	textures map[textureKey]Texture
	white    Texture
	quad     Buffer

	projection mgl32.Mat3
	view       mgl32.Mat3
	clearColor colors.Color

	curShader  *Shader
	curLayout  VertexLayout
	curTexture Texture

	loads    chan textureLoad
	inflight int

	stats Stats
}

func NewDevice(b Backend, opts Options) *Device {
	if opts.Width <= 0 {
		opts.Width = 1
	}
	if opts.Height <= 0 {
		opts.Height = 1
	}
	d := &Device{
		backend:    b,
		assets:     opts.Assets,
		shaders:    make(map[string]*Shader, 4),
		textures:   make(map[textureKey]Texture, 8),
		projection: Ortho2D(float32(opts.Width), float32(opts.Height)),
		view:       mgl32.Ident3(),
		clearColor: opts.ClearColor,
		loads:      make(chan textureLoad, 64),
	}
	d.quad = d.CreateInstanceBuffer(quadVertices, false)
	d.white = b.CreateTexture()
	b.TexImage(d.white, 1, 1, whitePixels, false)
	d.stats = Stats{}
	return d
}

// Ortho2D maps scene units with a top-left origin and Y down onto clip space.
func Ortho2D(w, h float32) mgl32.Mat3 {
	return mgl32.Translate2D(-1, 1).Mul3(mgl32.Scale2D(2/w, -2/h))
}

func (d *Device) Backend() Backend { return d.backend }

// QuadBuffer is the unit quad shared by every sprite batch.
func (d *Device) QuadBuffer() Buffer { return d.quad }

// WhiteTexture is a 1x1 white texture for untextured batches.
func (d *Device) WhiteTexture() Texture { return d.white }

func (d *Device) SetProjection(m mgl32.Mat3) { d.projection = m }
func (d *Device) SetView(m mgl32.Mat3)       { d.view = m }

// CreateShader returns the cached program for name or compiles a new one.
// Failures are logged and yield a shader that draws nothing.
func (d *Device) CreateShader(name, vertexSrc, fragmentSrc string) *Shader {
	if sh, ok := d.shaders[name]; ok {
		return sh
	}
	sh, err := newShader(d.backend, name, vertexSrc, fragmentSrc)
	if err != nil {
		log.Printf("[gfx] shader %q: %v", name, err)
	}
	d.shaders[name] = sh
	return sh
}

// CreateVertexLayout allocates a vertex layout and leaves it bound so the
// following SetVertexAttribute calls are recorded into it.
func (d *Device) CreateVertexLayout() VertexLayout {
	v := d.backend.CreateVertexLayout()
	d.curLayout = 0 // bound out of band
	return v
}

func (d *Device) CreateInstanceBuffer(data []float32, dynamic bool) Buffer {
	b := d.backend.CreateBuffer()
	d.UpdateInstanceBuffer(b, data, dynamic)
	return b
}

// UpdateInstanceBuffer re-specifies the full contents of b. dynamic is a usage hint only.
func (d *Device) UpdateInstanceBuffer(b Buffer, data []float32, dynamic bool) {
	d.backend.BindBuffer(b)
	d.backend.BufferData(data, dynamic)
	d.stats.BufferUploads++
}

func (d *Device) BindBuffer(b Buffer) { d.backend.BindBuffer(b) }

// SetVertexAttribute configures one attribute of the bound layout from the
// bound buffer. A non-zero divisor advances the attribute per instance.
func (d *Device) SetVertexAttribute(slot, components, strideBytes, offsetBytes, divisor int) {
	d.backend.VertexAttrib(slot, components, strideBytes, offsetBytes, divisor)
}

// LoadTexture returns the cached texture for (name, smooth). New textures
// read as 1x1 magenta until their image finishes decoding and PollTextures
// uploads it.
func (d *Device) LoadTexture(name string, smooth bool) Texture {
	key := textureKey{name: name, smooth: smooth}
	if t, ok := d.textures[key]; ok {
		return t
	}
	t := d.backend.CreateTexture()
	d.backend.TexImage(t, 1, 1, placeholderPixels, smooth)
	d.curTexture = 0
	d.textures[key] = t

	if d.assets == nil {
		log.Printf("[gfx] texture %q: no asset source, keeping placeholder", name)
		return t
	}
	d.inflight++
	go func(fsys fs.FS) {
		w, h, pix, err := assets.LoadPNG(fsys, name)
		d.loads <- textureLoad{tex: t, name: name, smooth: smooth, w: w, h: h, pix: pix, err: err}
	}(d.assets)
	return t
}

// PendingTextures reports decodes not yet uploaded.
func (d *Device) PendingTextures() int { return d.inflight }

// PollTextures uploads every finished decode without blocking.
func (d *Device) PollTextures() int {
	n := 0
	for d.inflight > 0 {
		select {
		case l := <-d.loads:
			d.finishLoad(l)
			n++
		default:
			return n
		}
	}
	return n
}

// AwaitTextures blocks until all in-flight decodes are uploaded or ctx ends.
func (d *Device) AwaitTextures(ctx context.Context) error {
	for d.inflight > 0 {
		select {
		case l := <-d.loads:
			d.finishLoad(l)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (d *Device) finishLoad(l textureLoad) {
	d.inflight--
	if l.err != nil {
		log.Printf("[gfx] texture %q: %v (keeping placeholder)", l.name, l.err)
		return
	}
	d.backend.TexImage(l.tex, l.w, l.h, l.pix, l.smooth)
	d.curTexture = 0
	d.stats.TextureUploads++
}

// Invalidate forgets the last-bound state. Call it after anything outside
// the device touches program, vertex layout or texture bindings.
func (d *Device) Invalidate() {
	d.curShader = nil
	d.curLayout = 0
	d.curTexture = 0
}

// Draw issues a single non-instanced draw.
func (d *Device) Draw(sh *Shader, layout VertexLayout, tex Texture, vertexCount int) {
	if !d.bind(sh, layout, tex) {
		return
	}
	d.backend.DrawArrays(vertexCount)
	d.stats.DrawCalls++
}

// DrawInstanced draws vertexCount vertices for each of instanceCount instances.
func (d *Device) DrawInstanced(sh *Shader, layout VertexLayout, tex Texture, vertexCount, instanceCount int) {
	if instanceCount <= 0 || !d.bind(sh, layout, tex) {
		return
	}
	d.backend.DrawArraysInstanced(vertexCount, instanceCount)
	d.stats.DrawCalls++
	d.stats.Instances += instanceCount
}

func (d *Device) bind(sh *Shader, layout VertexLayout, tex Texture) bool {
	if sh == nil || !sh.ok {
		return false
	}
	if sh != d.curShader {
		d.backend.UseProgram(sh.program)
		d.curShader = sh
		d.stats.ShaderBinds++
		sh.pushed = false
	}
	d.stats.UniformPushes += sh.apply(d.backend, d.projection, d.view)

	if layout != d.curLayout {
		d.backend.BindVertexLayout(layout)
		d.curLayout = layout
		d.stats.LayoutBinds++
	}
	if tex != d.curTexture {
		d.backend.BindTexture(0, tex)
		d.curTexture = tex
		d.stats.TextureBinds++
	}
	return true
}

// BeginFrame resets the frame statistics and uploads finished textures.
func (d *Device) BeginFrame() {
	d.stats = Stats{}
	d.PollTextures()
}

// Stats returns the current frame statistics snapshot.
func (d *Device) Stats() Stats { return d.stats }

func (d *Device) Resize(w, h int) { d.backend.Viewport(w, h) }

func (d *Device) Clear() { d.backend.Clear(d.clearColor) }

func (d *Device) Shutdown() { d.backend.Release() }
