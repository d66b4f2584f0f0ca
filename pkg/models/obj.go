package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rastalab/rasta/pkg/math3d"
)

// LoadOBJ reads a minimal Wavefront OBJ file: vertex positions (v),
// optional vertex normals (vn), and triangular faces (f). Polygon faces
// with more than three vertices are fan-triangulated around the first
// vertex. Materials, texture coordinates, and multi-object files are
// not interpreted; every face is appended to a single Mesh. A face
// vertex takes the vn line whose index equals its position index; the
// normal index written in a face's "v//vn" or "v/vt/vn" form is not
// read.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))
	var positions []math3d.Vec3
	var normals []math3d.Vec3
	hasNormals := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("parse vertex: %w", err)
			}
			positions = append(positions, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("parse normal: %w", err)
			}
			normals = append(normals, n)
			hasNormals = true
		case "f":
			idx, err := parseFaceIndices(fields[1:], len(positions))
			if err != nil {
				return nil, fmt.Errorf("parse face: %w", err)
			}
			for i := 1; i+1 < len(idx); i++ {
				appendOBJFace(mesh, positions, normals, idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if !hasNormals {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// appendOBJFace adds one triangle to mesh, duplicating vertices (OBJ's
// shared-index model doesn't map onto MeshVertex's combined attributes
// without per-combination dedup, which a simple loader doesn't need).
func appendOBJFace(mesh *Mesh, positions, normals []math3d.Vec3, a, b, c int) {
	base := len(mesh.Vertices)
	for _, i := range [3]int{a, b, c} {
		v := MeshVertex{Position: positions[i]}
		if i < len(normals) {
			v.Normal = normals[i]
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}
	mesh.Faces = append(mesh.Faces, Face{V: [3]int{base, base + 1, base + 2}, Material: -1})
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return math3d.V3(x, y, z), nil
}

// parseFaceIndices accepts the "v", "v/vt", "v/vt/vn", and "v//vn" forms,
// returning only the position index of each, and resolves OBJ's 1-based
// (or negative, relative-to-end) indexing.
func parseFaceIndices(fields []string, vertexCount int) ([]int, error) {
	out := make([]int, len(fields))
	for i, field := range fields {
		parts := strings.Split(field, "/")
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, err
		}
		switch {
		case n > 0:
			out[i] = n - 1
		case n < 0:
			out[i] = vertexCount + n
		default:
			return nil, fmt.Errorf("zero vertex index in face %q", field)
		}
	}
	return out, nil
}
