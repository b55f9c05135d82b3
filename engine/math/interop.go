package math

import "golang.org/x/image/math/f32"

// Conversions to golang.org/x/image/math/f32. Those matrices are row
// major, so every matrix conversion transposes.

func (v Vec2) ToF32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }
func (v Vec3) ToF32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }
func (v Vec4) ToF32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

func NewVec2FromF32(v f32.Vec2) Vec2 { return Vec2{v[0], v[1]} }
func NewVec3FromF32(v f32.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }
func NewVec4FromF32(v f32.Vec4) Vec4 { return Vec4{v[0], v[1], v[2], v[3]} }

func (m Mat3) ToF32() f32.Mat3 {
	out := f32.Mat3{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m.Get(r, c)
		}
	}
	return out
}

func NewMat3FromF32(m f32.Mat3) Mat3 {
	out := Mat3{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Set(r, c, m[3*r+c])
		}
	}
	return out
}

func (mt Mat4) ToF32() f32.Mat4 {
	out := f32.Mat4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = mt.Get(r, c)
		}
	}
	return out
}

func NewMat4FromF32(m f32.Mat4) Mat4 {
	out := Mat4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Set(r, c, m[4*r+c])
		}
	}
	return out
}
