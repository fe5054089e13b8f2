package parfor

import "errors"

const Namespace = "parfor"

var (
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
	ErrInvalidRange  = errors.New(Namespace + ": invalid index range")
	ErrTaskPanicked  = errors.New(Namespace + ": element function panicked")
)
