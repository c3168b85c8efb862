package mgl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/govr/libovr/pkg/ovr"
)

func TestQuatRoundTrip(t *testing.T) {
	in := ovr.Quatf{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}
	out := Quatf(Quat(in))
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestVecRoundTrip(t *testing.T) {
	v2 := ovr.Vector2f{X: 1, Y: -2}
	if got := Vector2f(Vec2(v2)); got != v2 {
		t.Errorf("Vec2 round trip = %+v, want %+v", got, v2)
	}
	v3 := ovr.Vector3f{X: 1, Y: -2, Z: 3}
	if got := Vector3f(Vec3(v3)); got != v3 {
		t.Errorf("Vec3 round trip = %+v, want %+v", got, v3)
	}
}

func TestMat4Transposes(t *testing.T) {
	var in ovr.Matrix4f
	v := float32(0)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			in.M[r][c] = v
			v++
		}
	}

	out := Mat4(in)
	// Row 0 of the row-major input must be the first column-major stride.
	if out[0] != 0 || out[4] != 1 || out[8] != 2 || out[12] != 3 {
		t.Errorf("Mat4 row 0 landed wrong: %v", out)
	}
	if got := Matrix4f(out); got != in {
		t.Errorf("Mat4 round trip = %+v, want %+v", got, in)
	}
}

func TestPoseMat4Identity(t *testing.T) {
	p := ovr.Posef{Orientation: ovr.Quatf{W: 1}}
	if got := PoseMat4(p); got != mgl32.Ident4() {
		t.Errorf("identity pose = %v", got)
	}
}

func TestPoseMat4TranslatesAfterRotating(t *testing.T) {
	p := ovr.Posef{
		Orientation: ovr.Quatf{W: 1},
		Position:    ovr.Vector3f{X: 1, Y: 2, Z: 3},
	}
	m := PoseMat4(p)
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{1, 2, 3, 1}
	if !origin.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("transformed origin = %v, want %v", origin, want)
	}

	// ViewMat4 must undo the pose transform.
	back := ViewMat4(p).Mul4x1(origin)
	if !back.ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-6) {
		t.Errorf("view matrix did not invert the pose: %v", back)
	}
}

func TestProjectionSymmetricFov(t *testing.T) {
	fov := ovr.FovPort{UpTan: 1, DownTan: 1, LeftTan: 1, RightTan: 1}
	m := Projection(fov, 0.1, 100)
	want := mgl32.Frustum(-0.1, 0.1, -0.1, 0.1, 0.1, 100)
	if m != want {
		t.Errorf("Projection = %v, want %v", m, want)
	}
	// Symmetric tangents give a 90 degree half-plane: no off-axis terms.
	if m[8] != 0 || m[9] != 0 {
		t.Errorf("symmetric FOV produced off-axis terms: %v, %v", m[8], m[9])
	}
}

func TestProjectionAsymmetricFov(t *testing.T) {
	fov := ovr.FovPort{UpTan: 1.1, DownTan: 0.9, LeftTan: 1.2, RightTan: 0.8}
	m := Projection(fov, 0.2, 50)
	if m[8] == 0 || m[9] == 0 {
		t.Error("asymmetric FOV should produce off-axis projection terms")
	}
}
