// Package gpu converts geom values into raylib types and shader uniforms.
package gpu

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/cricklet/speedscope/geom"
)

// Vector2 narrows v to a raylib vector.
func Vector2(v geom.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// FromVector2 widens a raylib vector.
func FromVector2(v rl.Vector2) geom.Vec2 {
	return geom.V(float64(v.X), float64(v.Y))
}

// Rectangle converts r to a raylib rectangle. Negative sizes are passed through.
func Rectangle(r geom.Rect) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(r.Left()),
		Y:      float32(r.Top()),
		Width:  float32(r.Width()),
		Height: float32(r.Height()),
	}
}

// FromRectangle converts a raylib rectangle to a geom.Rect.
func FromRectangle(r rl.Rectangle) geom.Rect {
	return geom.NewRect(
		geom.V(float64(r.X), float64(r.Y)),
		geom.V(float64(r.Width), float64(r.Height)),
	)
}

// Mat3 returns t.Flatten() as float32 for a mat3 uniform.
func Mat3(t geom.AffineTransform) [9]float32 {
	flat := t.Flatten()
	var out [9]float32
	for i, f := range flat {
		out[i] = float32(f)
	}
	return out
}

// Matrix embeds t in a 4x4 raylib matrix, leaving z untouched.
// raylib stores matrices column-major, so the mat3 columns map onto
// M0/M1, M4/M5 and M12/M13.
func Matrix(t geom.AffineTransform) rl.Matrix {
	m := Mat3(t)
	return rl.Matrix{
		M0: m[0], M4: m[3], M8: 0, M12: m[6],
		M1: m[1], M5: m[4], M9: 0, M13: m[7],
		M2: 0, M6: 0, M10: 1, M14: 0,
		M3: m[2], M7: m[5], M11: 0, M15: m[8],
	}
}

// SetTransformUniform uploads t to the mat4 uniform at loc.
func SetTransformUniform(shader rl.Shader, loc int32, t geom.AffineTransform) {
	rl.SetShaderValueMatrix(shader, loc, Matrix(t))
}
