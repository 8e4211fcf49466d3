package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/meowcade/engine/colors"
	"github.com/hubastard/meowcade/engine/gfx"
)

// Backend issues gfx.Backend calls straight to an OpenGL 3.3 core context.
// The context must be current on the calling thread.
type Backend struct {
	programs []uint32
	vaos     []uint32
	buffers  []uint32
	textures []uint32
}

var _ gfx.Backend = (*Backend)(nil)

// New configures global pipeline state: no depth test, premultiplied blending.
func New() *Backend {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return &Backend{}
}

func (b *Backend) CreateProgram(vertexSrc, fragmentSrc string, attribs []gfx.AttribBinding) (gfx.Program, error) {
	prog, err := makeProgram(vertexSrc, fragmentSrc, attribs)
	if err != nil {
		return 0, err
	}
	b.programs = append(b.programs, prog)
	return gfx.Program(prog), nil
}

func (b *Backend) UniformLocation(p gfx.Program, name string) (int32, bool) {
	loc := gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
	return loc, loc >= 0
}

func (b *Backend) UseProgram(p gfx.Program) { gl.UseProgram(uint32(p)) }

func (b *Backend) UniformMatrix3(loc int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(loc, 1, false, &m[0])
}

func (b *Backend) Uniform1i(loc int32, v int32)   { gl.Uniform1i(loc, v) }
func (b *Backend) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (b *Backend) CreateVertexLayout() gfx.VertexLayout {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	b.vaos = append(b.vaos, vao)
	return gfx.VertexLayout(vao)
}

func (b *Backend) BindVertexLayout(v gfx.VertexLayout) { gl.BindVertexArray(uint32(v)) }

func (b *Backend) CreateBuffer() gfx.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	b.buffers = append(b.buffers, vbo)
	return gfx.Buffer(vbo)
}

func (b *Backend) BindBuffer(buf gfx.Buffer) { gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf)) }

func (b *Backend) BufferData(data []float32, dynamic bool) {
	usage := uint32(gl.STATIC_DRAW)
	if dynamic {
		usage = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
}

func (b *Backend) VertexAttrib(slot, components, strideBytes, offsetBytes, divisor int) {
	gl.EnableVertexAttribArray(uint32(slot))
	gl.VertexAttribPointer(uint32(slot), int32(components), gl.FLOAT, false, int32(strideBytes), gl.PtrOffset(offsetBytes))
	gl.VertexAttribDivisor(uint32(slot), uint32(divisor))
}

func (b *Backend) CreateTexture() gfx.Texture {
	var tex uint32
	gl.GenTextures(1, &tex)
	b.textures = append(b.textures, tex)
	return gfx.Texture(tex)
}

func (b *Backend) TexImage(t gfx.Texture, w, h int, rgba []byte, smooth bool) {
	filter := int32(gl.NEAREST)
	if smooth {
		filter = gl.LINEAR
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
}

func (b *Backend) BindTexture(unit int, t gfx.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (b *Backend) Viewport(w, h int) { gl.Viewport(0, 0, int32(w), int32(h)) }

func (b *Backend) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (b *Backend) DrawArrays(vertexCount int) {
	gl.DrawArrays(gl.TRIANGLES, 0, int32(vertexCount))
}

func (b *Backend) DrawArraysInstanced(vertexCount, instanceCount int) {
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, int32(vertexCount), int32(instanceCount))
}

func (b *Backend) Release() {
	if n := len(b.textures); n > 0 {
		gl.DeleteTextures(int32(n), &b.textures[0])
	}
	if n := len(b.buffers); n > 0 {
		gl.DeleteBuffers(int32(n), &b.buffers[0])
	}
	if n := len(b.vaos); n > 0 {
		gl.DeleteVertexArrays(int32(n), &b.vaos[0])
	}
	for _, p := range b.programs {
		gl.DeleteProgram(p)
	}
	b.programs, b.vaos, b.buffers, b.textures = nil, nil, nil, nil
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

// makeProgram binds every attribute to its fixed slot before linking.
func makeProgram(vsSrc, fsSrc string, attribs []gfx.AttribBinding) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	for _, a := range attribs {
		gl.BindAttribLocation(prog, a.Slot, gl.Str(a.Name+"\x00"))
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
