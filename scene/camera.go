package scene

import (
	"math"

	"github.com/atharkes/Raytracer/bvh"
	"github.com/atharkes/Raytracer/types"
)

// Stores the ray directions at the four corners of the camera frustum. It
// is used as a shortcut for generating per pixel rays via interpolation of
// the corner rays.
type Frustum [4]types.Vec3

// The camera type controls the scene viewpoint and generates primary rays.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Camera FOV in degrees.
	FOV float32

	Frustum Frustum

	aspect float32
}

func NewCamera(fov float32) *Camera {
	c := &Camera{
		Position: types.Vec3{0, 0, 0},
		LookAt:   types.Vec3{0, 0, -1},
		Up:       types.Vec3{0, 1, 0},
		FOV:      fov,
		aspect:   1,
	}
	c.Update()
	return c
}

// Setup the camera frustum for the given frame aspect ratio.
func (c *Camera) SetupProjection(aspect float32) {
	c.aspect = aspect
	c.Update()
}

// Update the frustum corner rays after mutating the camera fields. The
// corners are stored in TL, TR, BL, BR order.
func (c *Camera) Update() {
	forward := c.LookAt.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	halfH := float32(math.Tan(float64(c.FOV) * math.Pi / 360.0))
	halfW := halfH * c.aspect

	c.Frustum[0] = forward.Sub(right.Mul(halfW)).Add(up.Mul(halfH))
	c.Frustum[1] = forward.Add(right.Mul(halfW)).Add(up.Mul(halfH))
	c.Frustum[2] = forward.Sub(right.Mul(halfW)).Sub(up.Mul(halfH))
	c.Frustum[3] = forward.Add(right.Mul(halfW)).Sub(up.Mul(halfH))
}

// Generate the primary ray through pixel (x, y) of a frameW x frameH
// frame by interpolating the frustum corner rays.
func (c *Camera) PrimaryRay(x, y, frameW, frameH int, maxDist float32) *bvh.Ray {
	tx := (float32(x) + 0.5) / float32(frameW)
	ty := (float32(y) + 0.5) / float32(frameH)

	top := lerpVec3(c.Frustum[0], c.Frustum[1], tx)
	bottom := lerpVec3(c.Frustum[2], c.Frustum[3], tx)
	dir := lerpVec3(top, bottom, ty)

	return bvh.NewRay(c.Position, dir, maxDist)
}

func lerpVec3(a, b types.Vec3, t float32) types.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
