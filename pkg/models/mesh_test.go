package models

import (
	"testing"

	"github.com/rastalab/rasta/pkg/math3d"
)

func triangleMesh() *Mesh {
	m := NewMesh("tri")
	m.Vertices = []MeshVertex{
		{Position: math3d.V3(0, 0, 0), Normal: math3d.V3(0, 0, 1), UV: math3d.V2(0, 0)},
		{Position: math3d.V3(1, 0, 0), Normal: math3d.V3(0, 0, 1), UV: math3d.V2(1, 0)},
		{Position: math3d.V3(0, 1, 0), Normal: math3d.V3(0, 0, 1), UV: math3d.V2(0, 1)},
	}
	m.Faces = []Face{{V: [3]int{0, 1, 2}, Material: -1}}
	return m
}

func TestMeshPositionsMatchesVertices(t *testing.T) {
	m := triangleMesh()
	pos := m.Positions()
	if len(pos) != 3 || pos[1] != math3d.V3(1, 0, 0) {
		t.Fatalf("Positions() = %+v, want vertex positions in order", pos)
	}
}

func TestMeshIndicesFlattensFaces(t *testing.T) {
	m := triangleMesh()
	idx := m.Indices()
	want := []int32{0, 1, 2}
	if len(idx) != len(want) {
		t.Fatalf("Indices() length = %d, want %d", len(idx), len(want))
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("Indices()[%d] = %d, want %d", i, idx[i], want[i])
		}
	}
}

func TestMeshNormalsAndUVs(t *testing.T) {
	m := triangleMesh()
	normals := m.Normals()
	uvs := m.UVs()
	if len(normals) != 3 || normals[0] != math3d.V3(0, 0, 1) {
		t.Fatalf("Normals() = %+v", normals)
	}
	if len(uvs) != 3 || uvs[2] != math3d.V2(0, 1) {
		t.Fatalf("UVs() = %+v", uvs)
	}
}

func TestMeshCalculateNormalsFlatShading(t *testing.T) {
	m := triangleMesh()
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}
	m.CalculateNormals()
	for _, v := range m.Vertices {
		if v.Normal != math3d.V3(0, 0, 1) {
			t.Fatalf("flat normal = %+v, want (0,0,1)", v.Normal)
		}
	}
}
