package math

import "strings"

// TransformType classifies the scale carried by a matrix's 3x3 block. The
// odd-negative flag combines with any of the others.
type TransformType uint8

const (
	NoScaleTransform          TransformType = 0
	UniformScaleTransform     TransformType = 1 << 0
	NonUniformScaleTransform  TransformType = 1 << 1
	OddNegativeScaleTransform TransformType = 1 << 2
)

func (t TransformType) IsNoScale() bool {
	return t == NoScaleTransform
}

func (t TransformType) IsUniformScale() bool {
	return t&UniformScaleTransform != 0
}

func (t TransformType) IsNonUniformScale() bool {
	return t&NonUniformScaleTransform != 0
}

func (t TransformType) IsOddNegativeScale() bool {
	return t&OddNegativeScaleTransform != 0
}

func (t TransformType) String() string {
	if t == NoScaleTransform {
		return "none"
	}
	var parts []string
	if t.IsUniformScale() {
		parts = append(parts, "uniform")
	}
	if t.IsNonUniformScale() {
		parts = append(parts, "non-uniform")
	}
	if t.IsOddNegativeScale() {
		parts = append(parts, "odd-negative")
	}
	return strings.Join(parts, "|")
}

// ComputeTransformType compares the squared lengths of the three basis
// columns with 1 and with each other, within epsilon, and flags a mirrored
// basis (x cross y pointing away from z).
func ComputeTransformType(m Mat4, epsilon float32) TransformType {
	x := m.GetAxisX()
	y := m.GetAxisY()
	z := m.GetAxisZ()
	sqrX := x.LengthSquared()
	sqrY := y.LengthSquared()
	sqrZ := z.LengthSquared()

	minAxis := Min(Min(sqrX, sqrY), sqrZ)
	maxAxis := Max(Max(sqrX, sqrY), sqrZ)

	t := NoScaleTransform
	if minAxis < 1.0-epsilon || maxAxis > 1.0+epsilon {
		if minAxis != 0.0 && maxAxis/minAxis < 1.0+epsilon {
			t = UniformScaleTransform
		} else {
			t = NonUniformScaleTransform
		}
	}
	if x.Cross(y).Dot(z) < 0.0 {
		t |= OddNegativeScaleTransform
	}
	return t
}
