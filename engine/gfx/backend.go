package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/meowcade/engine/colors"
)

// Handles are backend object names. Zero means "none".
type (
	Program      uint32
	VertexLayout uint32
	Buffer       uint32
	Texture      uint32
)

// AttribBinding pins a vertex shader input to a fixed attribute slot before linking.
type AttribBinding struct {
	Slot uint32
	Name string
}

// Backend is the raw GPU surface. It performs no caching: every call
// reaches the driver. Device layers caching and state coalescing on top.
type Backend interface {
	CreateProgram(vertexSrc, fragmentSrc string, attribs []AttribBinding) (Program, error)
	UniformLocation(p Program, name string) (int32, bool)
	UseProgram(p Program)
	UniformMatrix3(loc int32, m mgl32.Mat3)
	Uniform1i(loc int32, v int32)
	Uniform1f(loc int32, v float32)

	CreateVertexLayout() VertexLayout // also binds it
	BindVertexLayout(v VertexLayout)

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32, dynamic bool) // into the bound buffer
	VertexAttrib(slot, components, strideBytes, offsetBytes, divisor int)

	CreateTexture() Texture
	TexImage(t Texture, w, h int, rgba []byte, smooth bool) // binds t to unit 0
	BindTexture(unit int, t Texture)

	Viewport(w, h int)
	Clear(c colors.Color)
	DrawArrays(vertexCount int)
	DrawArraysInstanced(vertexCount, instanceCount int)

	Release()
}
