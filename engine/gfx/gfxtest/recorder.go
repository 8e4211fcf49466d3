// Package gfxtest provides a GPU-free gfx.Backend for tests.
package gfxtest

import (
	"errors"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/gfx"
)

// Calls counts every backend call by kind.
type Calls struct {
	CreateProgram       int
	UseProgram          int
	Uniforms            int
	CreateVertexLayout  int
	BindVertexLayout    int
	CreateBuffer        int
	BindBuffer          int
	BufferData          int
	VertexAttrib        int
	CreateTexture       int
	TexImage            int
	BindTexture         int
	Viewport            int
	Clear               int
	DrawArrays          int
	DrawArraysInstanced int
	Release             int
}

// TexUpload records one TexImage call.
type TexUpload struct {
	Texture gfx.Texture
	W, H    int
	Pixels  []byte
	Smooth  bool
}

// Recorder implements gfx.Backend without a GPU. The zero value is ready to use.
type Recorder struct {
	Calls Calls

	// FailPrograms makes CreateProgram fail for sources containing this text.
	FailPrograms string
	// MissingUniforms lists uniform names that resolve as absent.
	MissingUniforms map[string]bool

	LastData      []float32 // contents of the last BufferData
	BufferUploads map[gfx.Buffer]int
	Textures      []TexUpload
	LastInstances int
	LastClear     colors.Color
	Attribs       []gfx.AttribBinding // bindings of the last CreateProgram
	Slots         map[int]bool        // slots configured through VertexAttrib

	next  uint32
	bound gfx.Buffer
}

var _ gfx.Backend = (*Recorder)(nil)

func New() *Recorder { return &Recorder{} }

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) CreateProgram(vs, fs string, attribs []gfx.AttribBinding) (gfx.Program, error) {
	r.Calls.CreateProgram++
	r.Attribs = attribs
	if r.FailPrograms != "" && (strings.Contains(vs, r.FailPrograms) || strings.Contains(fs, r.FailPrograms)) {
		return 0, errors.New("gfxtest: compile failed")
	}
	return gfx.Program(r.handle()), nil
}

func (r *Recorder) UniformLocation(_ gfx.Program, name string) (int32, bool) {
	if r.MissingUniforms[name] {
		return -1, false
	}
	return int32(len(name)), true
}

func (r *Recorder) UseProgram(gfx.Program)            { r.Calls.UseProgram++ }
func (r *Recorder) UniformMatrix3(int32, mgl32.Mat3)  { r.Calls.Uniforms++ }
func (r *Recorder) Uniform1i(int32, int32)            { r.Calls.Uniforms++ }
func (r *Recorder) Uniform1f(int32, float32)          { r.Calls.Uniforms++ }
func (r *Recorder) BindVertexLayout(gfx.VertexLayout) { r.Calls.BindVertexLayout++ }
func (r *Recorder) BindTexture(int, gfx.Texture)      { r.Calls.BindTexture++ }
func (r *Recorder) Viewport(int, int)                 { r.Calls.Viewport++ }
func (r *Recorder) DrawArrays(int)                    { r.Calls.DrawArrays++ }
func (r *Recorder) Release()                          { r.Calls.Release++ }

func (r *Recorder) VertexAttrib(slot, _, _, _, _ int) {
	r.Calls.VertexAttrib++
	if r.Slots == nil {
		r.Slots = make(map[int]bool)
	}
	r.Slots[slot] = true
}

func (r *Recorder) CreateVertexLayout() gfx.VertexLayout {
	r.Calls.CreateVertexLayout++
	return gfx.VertexLayout(r.handle())
}

func (r *Recorder) CreateBuffer() gfx.Buffer {
	r.Calls.CreateBuffer++
	return gfx.Buffer(r.handle())
}

func (r *Recorder) BindBuffer(b gfx.Buffer) {
	r.Calls.BindBuffer++
	r.bound = b
}

func (r *Recorder) BufferData(data []float32, _ bool) {
	r.Calls.BufferData++
	r.LastData = append(r.LastData[:0], data...)
	if r.BufferUploads == nil {
		r.BufferUploads = make(map[gfx.Buffer]int)
	}
	r.BufferUploads[r.bound]++
}

func (r *Recorder) CreateTexture() gfx.Texture {
	r.Calls.CreateTexture++
	return gfx.Texture(r.handle())
}

func (r *Recorder) TexImage(t gfx.Texture, w, h int, rgba []byte, smooth bool) {
	r.Calls.TexImage++
	r.Textures = append(r.Textures, TexUpload{Texture: t, W: w, H: h, Pixels: append([]byte(nil), rgba...), Smooth: smooth})
}

func (r *Recorder) Clear(c colors.Color) {
	r.Calls.Clear++
	r.LastClear = c
}

func (r *Recorder) DrawArraysInstanced(_, instances int) {
	r.Calls.DrawArraysInstanced++
	r.LastInstances = instances
}

// LastTexture returns the most recent upload for t.
func (r *Recorder) LastTexture(t gfx.Texture) (TexUpload, bool) {
	for i := len(r.Textures) - 1; i >= 0; i-- {
		if r.Textures[i].Texture == t {
			return r.Textures[i], true
		}
	}
	return TexUpload{}, false
}

// Device returns a device over a fresh recorder with no asset source.
func Device() (*gfx.Device, *Recorder) {
	r := New()
	return gfx.NewDevice(r, gfx.Options{Width: 960, Height: 640}), r
}
