// Package mgl converts between the runtime's math types and
// github.com/go-gl/mathgl/mgl32, so tracking data can feed a go-gl render
// pipeline without hand-written shuffling. Pure Go; nothing here calls into
// the runtime.
package mgl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/govr/libovr/pkg/ovr"
)

// Quat converts a runtime quaternion.
func Quat(q ovr.Quatf) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// Quatf converts back to the runtime representation.
func Quatf(q mgl32.Quat) ovr.Quatf {
	return ovr.Quatf{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Vec2 converts a runtime 2-vector.
func Vec2(v ovr.Vector2f) mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

// Vector2f converts back to the runtime representation.
func Vector2f(v mgl32.Vec2) ovr.Vector2f {
	return ovr.Vector2f{X: v[0], Y: v[1]}
}

// Vec3 converts a runtime 3-vector.
func Vec3(v ovr.Vector3f) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Vector3f converts back to the runtime representation.
func Vector3f(v mgl32.Vec3) ovr.Vector3f {
	return ovr.Vector3f{X: v[0], Y: v[1], Z: v[2]}
}

// Mat4 converts a runtime matrix. The runtime stores matrices row-major,
// mgl32 column-major, so this transposes element order.
func Mat4(m ovr.Matrix4f) mgl32.Mat4 {
	var out mgl32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m.M[r][c]
		}
	}
	return out
}

// Matrix4f converts back to the runtime's row-major representation.
func Matrix4f(m mgl32.Mat4) ovr.Matrix4f {
	var out ovr.Matrix4f
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.M[r][c] = m[c*4+r]
		}
	}
	return out
}

// PoseMat4 expands a rigid body pose into a transform matrix, rotation
// first, then translation.
func PoseMat4(p ovr.Posef) mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.X, p.Position.Y, p.Position.Z).
		Mul4(Quat(p.Orientation).Mat4())
}

// ViewMat4 returns the inverse of the pose's transform, i.e. the matrix
// that brings world coordinates into the pose's local frame. Feed an eye
// pose here to get the view matrix for that eye.
func ViewMat4(p ovr.Posef) mgl32.Mat4 {
	return PoseMat4(p).Inv()
}

// Projection builds an OpenGL-convention perspective projection from a
// runtime FOV port. Matches ovr.Matrix4fProjection with
// ovr.ProjectionClipRangeOpenGL, computed without a runtime call.
func Projection(fov ovr.FovPort, near, far float32) mgl32.Mat4 {
	return mgl32.Frustum(
		-fov.LeftTan*near, fov.RightTan*near,
		-fov.DownTan*near, fov.UpTan*near,
		near, far)
}
