package gfx

import "github.com/go-gl/mathgl/mgl32"

// Shader is a linked program plus its resolved uniform locations. A shader
// that failed to compile or link stays cached but never draws.
type Shader struct {
	name    string
	program Program
	ok      bool

	// ImageSize is the edge length of one atlas tile in texels. Batches set it
	// before each draw since several batches share one program.
	ImageSize float32

	projection uniform
	view       uniform
	tex        uniform
	imageSize  uniform

	pushed    bool
	lastProj  mgl32.Mat3
	lastView  mgl32.Mat3
	lastImage float32
}

type uniform struct {
	loc     int32
	present bool
}

func newShader(b Backend, name, vertexSrc, fragmentSrc string) (*Shader, error) {
	sh := &Shader{name: name, ImageSize: 1}
	prog, err := b.CreateProgram(vertexSrc, fragmentSrc, spriteAttribs)
	if err != nil {
		return sh, err
	}
	sh.program = prog
	sh.ok = true
	sh.projection = resolve(b, prog, "projection")
	sh.view = resolve(b, prog, "view")
	sh.tex = resolve(b, prog, "tex")
	sh.imageSize = resolve(b, prog, "imageSize")
	return sh, nil
}

func resolve(b Backend, p Program, name string) uniform {
	loc, ok := b.UniformLocation(p, name)
	return uniform{loc: loc, present: ok}
}

func (sh *Shader) Name() string { return sh.name }

// OK reports whether the program linked.
func (sh *Shader) OK() bool { return sh.ok }

// apply pushes uniforms. With force every present uniform is sent; otherwise
// only values that differ from the last push.
func (sh *Shader) apply(b Backend, projection, view mgl32.Mat3) int {
	force := !sh.pushed
	n := 0
	if sh.projection.present && (force || projection != sh.lastProj) {
		b.UniformMatrix3(sh.projection.loc, projection)
		n++
	}
	if sh.view.present && (force || view != sh.lastView) {
		b.UniformMatrix3(sh.view.loc, view)
		n++
	}
	if sh.tex.present && force {
		b.Uniform1i(sh.tex.loc, 0)
		n++
	}
	if sh.imageSize.present && (force || sh.ImageSize != sh.lastImage) {
		b.Uniform1f(sh.imageSize.loc, sh.ImageSize)
		n++
	}
	sh.pushed = true
	sh.lastProj, sh.lastView, sh.lastImage = projection, view, sh.ImageSize
	return n
}
