package domain

import "errors"

// Stage errors. Every pipeline failure wraps exactly one of these so the
// caller can classify it with errors.Is.
var (
	ErrLoad      = errors.New("corpus load failed")
	ErrTokenize  = errors.New("tokenization failed")
	ErrSerialize = errors.New("artifact serialization failed")
)
