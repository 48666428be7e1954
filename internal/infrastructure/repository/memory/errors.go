package memory

import "errors"

var (
	errNotFound      = errors.New("memory: not found")
	errBatchTooLarge = errors.New("memory: batch exceeds atomic write bound")
)
