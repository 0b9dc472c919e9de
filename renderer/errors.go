package renderer

import "errors"

var (
	ErrInvalidFrameDims = errors.New("renderer: frame dimensions must be non-zero")
	ErrMissingCamera    = errors.New("renderer: scene does not define a camera")
	ErrSceneNotBuilt    = errors.New("renderer: scene bvh tree has not been built")
)
