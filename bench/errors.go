package bench

import "errors"

var (
	ErrNilUnit             = errors.New("bench: benchmark unit is nil")
	ErrInsufficientSamples = errors.New("bench: time budget exhausted before a minimum viable sample count")
)
