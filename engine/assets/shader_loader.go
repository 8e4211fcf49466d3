package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed shaders
var builtin embed.FS

// Builtin holds the shaders compiled into the binary.
var Builtin fs.FS = builtin

// LoadShader reads shaders/<name> from fsys.
func LoadShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}
