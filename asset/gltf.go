package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"softraster/math"
)

// GLTFData is the supplemental mesh source: it feeds the same
// positions/faces shape LoadOBJ produces, plus an optional embedded or
// referenced base-color texture, so the mesh store is agnostic to which
// loader produced a given asset.
type GLTFData struct {
	Positions []math.Vec3
	Faces     []OBJFace
	Texture   *Texture // nil if no base-color texture could be resolved and decoded
}

// LoadGLTF opens a .gltf or .glb document and reads the first primitive of
// the first mesh. The primitive's mode is not checked: its indices are
// always read as a triangle list. POSITION and an indices accessor are
// required; TEXCOORD_0 is optional (defaults to (0,0) when absent, as the
// OBJ loader does for faces that omit a UV).
func LoadGLTF(path string) (*GLTFData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf %q: no mesh primitives", path)
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("gltf %q: primitive has no POSITION attribute", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: positions: %w", path, err)
	}
	if prim.Indices == nil {
		return nil, fmt.Errorf("gltf %q: primitive has no indices accessor", path)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: indices: %w", path, err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]math.Vec3, len(positions))
	texCoords := make([]math.Tex2, len(positions))
	for i, p := range positions {
		verts[i] = math.NewVec3(p[0], p[1], p[2])
		if i < len(uvs) {
			texCoords[i] = math.NewTex2(uvs[i][0], uvs[i][1])
		}
	}

	faces := make([]OBJFace, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		faces = append(faces, OBJFace{
			A: a, B: b, C: c,
			AUV: texCoords[a], BUV: texCoords[b], CUV: texCoords[c],
		})
	}

	data := &GLTFData{Positions: verts, Faces: faces}
	if tex, err := loadGLTFBaseColorTexture(doc, path, prim); err == nil {
		data.Texture = tex
	}
	return data, nil
}

func loadGLTFBaseColorTexture(doc *gltf.Document, path string, prim *gltf.Primitive) (*Texture, error) {
	if prim.Material == nil {
		return nil, fmt.Errorf("no material")
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorTexture == nil {
		return nil, fmt.Errorf("no base color texture")
	}
	texIdx := mat.PBRMetallicRoughness.BaseColorTexture.Index
	if texIdx >= len(doc.Textures) || doc.Textures[texIdx].Source == nil {
		return nil, fmt.Errorf("texture source missing")
	}
	img := doc.Images[*doc.Textures[texIdx].Source]

	if img.BufferView != nil {
		raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
		if err != nil {
			return nil, fmt.Errorf("read buffer view: %w", err)
		}
		decoded, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode embedded image: %w", err)
		}
		return textureFromImage(decoded), nil
	}
	if img.URI != "" && !img.IsEmbeddedResource() {
		return LoadTexturePNG(filepath.Join(filepath.Dir(path), img.URI))
	}
	return nil, fmt.Errorf("no decodable image source")
}
