package models

// Material holds the subset of a glTF PBR material a flat-shaded or
// textured Gouraud caller helper needs: a base color to modulate or
// fall back to, and an optional embedded texture.
type Material struct {
	Name       string
	BaseColor  [4]float64 // RGBA, linear [0,1]
	Metallic   float64
	Roughness  float64
	HasTexture bool
	TextureRef int // glTF texture index (into the document's textures, not its images), valid only if HasTexture
}

// MaterialCount returns the number of materials attached to the mesh.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// GetFaceMaterial returns the material index for face i, or -1 if the
// face has no material assigned.
func (m *Mesh) GetFaceMaterial(i int) int {
	return m.Faces[i].Material
}

// GetMaterial returns the material at idx, or nil if idx is out of
// range (including the "no material" sentinel -1).
func (m *Mesh) GetMaterial(idx int) *Material {
	if idx < 0 || idx >= len(m.Materials) {
		return nil
	}
	return &m.Materials[idx]
}
