// Package loaders reads external model formats into groups of triangles
// ready to be added to a world.
package loaders

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// LoadOBJ parses a Wavefront OBJ file into a group object
func LoadOBJ(path string) (*geometry.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loaders: open obj file")
	}
	defer f.Close()

	obj, err := ParseOBJ(f)
	return obj, errors.Wrapf(err, "loaders: parse %s", path)
}

// ParseOBJ reads Wavefront OBJ data into a group object. Polygon faces are
// fan-triangulated; faces with vertex normals become smooth triangles; "g"
// statements start a child group. Unrecognized statements are skipped.
func ParseOBJ(r io.Reader) (*geometry.Object, error) {
	p := objParser{root: geometry.NewGroup()}
	p.current = p.root

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read obj data")
	}
	return p.root, nil
}

type objParser struct {
	vertices []core.Tuple
	normals  []core.Tuple
	root     *geometry.Object
	current  *geometry.Object
}

func (p *objParser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		point, err := parseTriple(fields[1:], core.NewPoint)
		if err != nil {
			return errors.Wrap(err, "vertex")
		}
		p.vertices = append(p.vertices, point)
	case "vn":
		normal, err := parseTriple(fields[1:], core.NewVector)
		if err != nil {
			return errors.Wrap(err, "vertex normal")
		}
		p.normals = append(p.normals, normal)
	case "f":
		return p.parseFace(fields[1:])
	case "g":
		group := geometry.NewGroup()
		p.root.AsGroup().AddChild(group)
		p.current = group
	}
	return nil
}

// parseFace fan-triangulates a polygon face around its first vertex
func (p *objParser) parseFace(refs []string) error {
	if len(refs) < 3 {
		return errors.Errorf("face needs at least 3 vertices, has %d", len(refs))
	}

	points := make([]core.Tuple, len(refs))
	normals := make([]core.Tuple, 0, len(refs))
	for i, ref := range refs {
		vi, ni, err := parseFaceRef(ref)
		if err != nil {
			return err
		}
		if vi < 1 || vi > len(p.vertices) {
			return errors.Errorf("vertex index %d out of range", vi)
		}
		points[i] = p.vertices[vi-1]
		if ni != 0 {
			if ni < 1 || ni > len(p.normals) {
				return errors.Errorf("normal index %d out of range", ni)
			}
			normals = append(normals, p.normals[ni-1])
		}
	}

	smooth := len(normals) == len(points)
	group := p.current.AsGroup()
	for i := 1; i < len(points)-1; i++ {
		if smooth {
			group.AddChild(geometry.NewSmoothTriangle(
				points[0], points[i], points[i+1],
				normals[0], normals[i], normals[i+1]))
		} else {
			group.AddChild(geometry.NewTriangle(points[0], points[i], points[i+1]))
		}
	}
	return nil
}

// parseFaceRef splits a face vertex reference of the form "v", "v/t" or
// "v/t/n", returning the vertex and normal indices; a zero normal index
// means the reference carries none. Texture indices are ignored.
func parseFaceRef(ref string) (vertex, normal int, err error) {
	parts := strings.Split(ref, "/")
	vertex, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "face vertex %q", ref)
	}
	if len(parts) == 3 && parts[2] != "" {
		normal, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, errors.Wrapf(err, "face normal %q", ref)
		}
	}
	return vertex, normal, nil
}

func parseTriple(fields []string, build func(x, y, z float64) core.Tuple) (core.Tuple, error) {
	if len(fields) < 3 {
		return core.Tuple{}, errors.Errorf("expected 3 components, got %d", len(fields))
	}
	var c [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Tuple{}, errors.Wrapf(err, "component %q", fields[i])
		}
		c[i] = v
	}
	return build(c[0], c[1], c[2]), nil
}
