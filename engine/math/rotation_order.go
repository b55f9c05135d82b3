package math

import (
	"strconv"
	"strings"
)

// RotationOrder names the order in which euler rotations are applied. For
// XYZ the X rotation happens first, so the combined rotation is Rz*Ry*Rx.
type RotationOrder int

const (
	RotationOrderXYZ RotationOrder = iota
	RotationOrderXZY
	RotationOrderYZX
	RotationOrderYXZ
	RotationOrderZXY
	RotationOrderZYX

	RotationOrderDefault = RotationOrderZXY
)

var rotationOrderNames = [...]string{"XYZ", "XZY", "YZX", "YXZ", "ZXY", "ZYX"}

func (o RotationOrder) String() string {
	if o < RotationOrderXYZ || o > RotationOrderZYX {
		return "RotationOrder(" + strconv.Itoa(int(o)) + ")"
	}
	return rotationOrderNames[o]
}

// ParseRotationOrder accepts the names returned by String, in any case.
func ParseRotationOrder(s string) (RotationOrder, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range rotationOrderNames {
		if name == s {
			return RotationOrder(i), true
		}
	}
	return RotationOrderDefault, false
}

// axes returns the axis indices in application order.
func (o RotationOrder) axes() (int, int, int) {
	switch o {
	case RotationOrderXYZ:
		return 0, 1, 2
	case RotationOrderXZY:
		return 0, 2, 1
	case RotationOrderYZX:
		return 1, 2, 0
	case RotationOrderYXZ:
		return 1, 0, 2
	case RotationOrderZYX:
		return 2, 1, 0
	default:
		return 2, 0, 1
	}
}
