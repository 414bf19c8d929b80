package loaders

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// LoadGLTF parses a glTF or GLB file into a group object with one child
// group per mesh
func LoadGLTF(path string) (*geometry.Object, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loaders: open gltf file")
	}
	obj, err := FromGLTFDocument(doc)
	return obj, errors.Wrapf(err, "loaders: parse %s", path)
}

// FromGLTFDocument converts a parsed glTF document into a group object.
// Triangle primitives with vertex normals become smooth triangles; other
// primitive modes are skipped.
func FromGLTFDocument(doc *gltf.Document) (*geometry.Object, error) {
	root := geometry.NewGroup()
	for _, m := range doc.Meshes {
		group, err := meshGroup(doc, m)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q", m.Name)
		}
		root.AsGroup().AddChild(group)
	}
	return root, nil
}

func meshGroup(doc *gltf.Document, m *gltf.Mesh) (*geometry.Object, error) {
	obj := geometry.NewGroup()
	group := obj.AsGroup()

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3(doc, posIdx)
		if err != nil {
			return nil, errors.Wrap(err, "read positions")
		}

		var normals []core.Tuple
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			raw, err := readVec3(doc, normIdx)
			if err != nil {
				return nil, errors.Wrap(err, "read normals")
			}
			normals = make([]core.Tuple, len(raw))
			for i, n := range raw {
				normals[i] = core.NewVector(n.X, n.Y, n.Z)
			}
		}

		indices, err := primitiveIndices(doc, prim, len(positions))
		if err != nil {
			return nil, err
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if normals != nil {
				group.AddChild(geometry.NewSmoothTriangle(
					positions[a], positions[b], positions[c],
					normals[a], normals[b], normals[c]))
			} else {
				group.AddChild(geometry.NewTriangle(positions[a], positions[b], positions[c]))
			}
		}
	}
	return obj, nil
}

// primitiveIndices returns the primitive's index list, or the sequential
// 0..n-1 list for non-indexed geometry
func primitiveIndices(doc *gltf.Document, prim *gltf.Primitive, vertexCount int) ([]int, error) {
	if prim.Indices == nil {
		indices := make([]int, vertexCount)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	indices, err := readScalars(doc, *prim.Indices)
	if err != nil {
		return nil, errors.Wrap(err, "read indices")
	}
	for _, idx := range indices {
		if idx < 0 || idx >= vertexCount {
			return nil, errors.Errorf("index %d out of range for %d vertices", idx, vertexCount)
		}
	}
	return indices, nil
}

func readVec3(doc *gltf.Document, accessorIdx int) ([]core.Tuple, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, errors.Errorf("expected float VEC3 accessor, got %v/%v", accessor.Type, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]core.Tuple, accessor.Count)
	for i := range result {
		offset := i * stride
		result[i] = core.NewPoint(
			float64(readFloat32(data[offset:])),
			float64(readFloat32(data[offset+4:])),
			float64(readFloat32(data[offset+8:])),
		)
	}
	return result, nil
}

func readScalars(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, errors.Errorf("expected SCALAR accessor, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, errors.Errorf("unsupported index component type %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := i * stride
		switch size {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		default:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}
	return result, nil
}

// accessorBytes returns the accessor's raw bytes and element stride.
// External buffer files are not supported; GLB and data-URI buffers arrive
// already decoded on the document.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elementSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, errors.New("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if buffer.Data == nil {
		return nil, 0, errors.New("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elementSize
	}

	start := view.ByteOffset + accessor.ByteOffset
	end := start + (accessor.Count-1)*stride + elementSize
	if end > len(buffer.Data) {
		return nil, 0, errors.Errorf("accessor overruns buffer: need %d bytes, have %d", end, len(buffer.Data))
	}
	return buffer.Data[start:], stride, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
