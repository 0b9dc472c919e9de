package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/log"
	"github.com/atharkes/Raytracer/scene"
	"github.com/atharkes/Raytracer/types"
)

var logger = log.New("reader")

// Read a scene definition from a wavefront obj file. Only the geometry
// statements (v and f) are processed; material and grouping statements a
// full obj file may contain are skipped.
func ReadScene(scenePath string) (*scene.Scene, error) {
	f, err := os.Open(scenePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, scenePath)
}

// Parse a wavefront obj stream. The file name is only used to annotate
// parse errors.
func Parse(r io.Reader, fileName string) (*scene.Scene, error) {
	p := &wavefrontParser{fileName: fileName}
	if err := p.parse(r); err != nil {
		return nil, err
	}

	logger.Infof("parsed %d vertices and %d triangles from %s", len(p.vertices), len(p.triangles), fileName)

	sc := scene.NewScene()
	sc.Add(p.triangles...)
	return sc, nil
}

type wavefrontParser struct {
	fileName string
	lineNum  int

	vertices  []types.Vec3
	triangles []bvh.Primitive
}

func (p *wavefrontParser) parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.lineNum++

		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return p.emitError(err.Error())
			}
			p.vertices = append(p.vertices, v)
		case "f":
			if err := p.parseFace(lineTokens); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// Parse a face statement, triangulating faces with more than 3 vertices
// as a fan anchored at the first vertex.
func (p *wavefrontParser) parseFace(lineTokens []string) error {
	if len(lineTokens) < 4 {
		return p.emitError("unsupported syntax for 'f'; expected at least 3 arguments; got %d", len(lineTokens)-1)
	}

	indices := make([]int, len(lineTokens)-1)
	for arg, token := range lineTokens[1:] {
		// Face arguments may also carry uv/normal indices; only the
		// vertex index is used.
		vertexToken := strings.Split(token, "/")[0]
		relIndex, err := strconv.Atoi(vertexToken)
		if err != nil {
			return p.emitError("could not parse vertex index %q", vertexToken)
		}

		index, err := selectVertexIndex(relIndex, len(p.vertices))
		if err != nil {
			return p.emitError(err.Error())
		}
		indices[arg] = index
	}

	for idx := 1; idx < len(indices)-1; idx++ {
		p.triangles = append(p.triangles, &scene.Triangle{
			V0: p.vertices[indices[0]],
			V1: p.vertices[indices[idx]],
			V2: p.vertices[indices[idx+1]],
		})
	}
	return nil
}

func (p *wavefrontParser) emitError(msgFormat string, args ...interface{}) error {
	return fmt.Errorf("%s: line %d: %s", p.fileName, p.lineNum, fmt.Sprintf(msgFormat, args...))
}

// Resolve a 1-based wavefront vertex index to a 0-based list offset.
// Negative indices address the vertex list from its end.
func selectVertexIndex(relIndex, listLen int) (int, error) {
	switch {
	case relIndex > 0 && relIndex <= listLen:
		return relIndex - 1, nil
	case relIndex < 0 && listLen+relIndex >= 0:
		return listLen + relIndex, nil
	}
	return 0, fmt.Errorf("vertex index %d out of range; %d vertices defined", relIndex, listLen)
}

func parseFloat32(token string) (float32, error) {
	v, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, fmt.Errorf("could not parse float %q", token)
	}
	return float32(v), nil
}

func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	var v types.Vec3
	for idx := 0; idx < 3; idx++ {
		val, err := parseFloat32(lineTokens[idx+1])
		if err != nil {
			return types.Vec3{}, err
		}
		v[idx] = val
	}
	return v, nil
}
