package scene

import "errors"

var (
	ErrUnknownParent        = errors.New("unknown parent node")
	ErrParentCycle          = errors.New("parent chain forms a cycle")
	ErrUnknownRotationOrder = errors.New("unknown rotation order")
	ErrNotInvertible        = errors.New("transform is not invertible")
	ErrDuplicateName        = errors.New("duplicate name")
	ErrUnknownNode          = errors.New("unknown node")
	ErrUnknownCamera        = errors.New("unknown camera")
	ErrUnknownProjection    = errors.New("unknown projection")
	ErrUnknownMode          = errors.New("unknown point mode")
	ErrInvalidMatrix        = errors.New("matrix is not a valid TRS")
	ErrInvalidCamera        = errors.New("invalid camera")
	ErrInvalidEngine        = errors.New("invalid engine settings")
)
