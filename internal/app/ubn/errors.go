package ubn

import "errors"

var (
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrReadInput        = errors.New("read input")
)
