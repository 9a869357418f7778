package intreader

import "errors"

var (
	ErrInputParse = errors.New("input is not an integer")
	ErrEndOfInput = errors.New("unexpected end of input")
)
