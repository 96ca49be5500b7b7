package model

import "errors"

var (
	ErrUnknownField = errors.New("unknown profile field")
)
