package game_object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			return false
		}
	}
	return true
}

func TestNewGameObject_Defaults(t *testing.T) {
	g := NewGameObject()
	if !g.Enabled() {
		t.Errorf("Enabled = false, want true")
	}
	if x, y, z := g.Position(); x != 0 || y != 0 || z != 0 {
		t.Errorf("Position = (%v,%v,%v), want origin", x, y, z)
	}
	if sx, sy, sz := g.Scale(); sx != 1 || sy != 1 || sz != 1 {
		t.Errorf("Scale = (%v,%v,%v), want (1,1,1)", sx, sy, sz)
	}
}

func TestNewGameObject_Options(t *testing.T) {
	g := NewGameObject(
		WithID(7),
		WithEnabled(false),
		WithPosition(1, 2, 3),
		WithRotation(10, 20, 30),
		WithScale(2, 2, 2),
	)
	if g.ID() != 7 {
		t.Errorf("ID = %d, want 7", g.ID())
	}
	if g.Enabled() {
		t.Errorf("Enabled = true, want false")
	}
	pos, rot, scale := g.TransformData()
	if pos != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("position = %v", pos)
	}
	if rot != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("rotation = %v", rot)
	}
	if scale != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("scale = %v", scale)
	}
}

func TestGameObject_Setters(t *testing.T) {
	g := NewGameObject()
	g.SetID(3)
	g.SetEnabled(false)
	g.SetPosition(4, 5, 6)
	g.SetRotation(0, 90, 5)
	g.SetScale(3, 3, 3)

	if g.ID() != 3 || g.Enabled() {
		t.Errorf("ID/Enabled = %d/%v", g.ID(), g.Enabled())
	}
	if x, y, z := g.Position(); x != 4 || y != 5 || z != 6 {
		t.Errorf("Position = (%v,%v,%v)", x, y, z)
	}
	if rx, ry, rz := g.Rotation(); rx != 0 || ry != 90 || rz != 5 {
		t.Errorf("Rotation = (%v,%v,%v)", rx, ry, rz)
	}
	if sx, _, _ := g.Scale(); sx != 3 {
		t.Errorf("Scale x = %v", sx)
	}
}

func TestGameObject_ModelMatrix(t *testing.T) {
	g := NewGameObject(WithPosition(0, 1, 0), WithRotation(0, 90, 0))
	p := g.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1}).Vec3()
	if !near(p, mgl32.Vec3{1, 1, 0}) {
		t.Errorf("model * (0,0,1) = %v, want (1,1,0)", p)
	}

	g.SetRotation(0, 180, 0)
	g.SetScale(2, 2, 2)
	p = g.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	if !near(p, mgl32.Vec3{-2, 1, 0}) {
		t.Errorf("model * (1,0,0) = %v, want (-2,1,0)", p)
	}
}
