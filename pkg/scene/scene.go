// Package scene provides the built-in demo scenes: each constructor
// assembles a world and a matching camera for a given output size.
package scene

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene bundles a world with the camera it was composed for
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// builders maps scene names to their constructors
var builders = map[string]func(width, height int) *Scene{
	"default":     NewDefaultScene,
	"refraction":  NewRefractionScene,
	"csg":         NewCSGScene,
	"soft-shadow": NewSoftShadowScene,
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene for the given output size
func New(name string, width, height int) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, errors.Errorf("scene: unknown scene %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return builder(width, height), nil
}

// NewModelScene loads a mesh file into a showcase scene. The loader is
// picked by file extension: .obj, .gltf or .glb.
func NewModelScene(path string, width, height int) (*Scene, error) {
	var load func(string) (*geometry.Object, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		load = loaders.LoadOBJ
	case ".gltf", ".glb":
		load = loaders.LoadGLTF
	default:
		return nil, errors.Errorf("scene: unsupported model format %q", filepath.Ext(path))
	}

	model, err := load(path)
	if err != nil {
		return nil, err
	}
	return newModelScene(model, width, height), nil
}
