package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates a missing or invalid environment variable or flag.
	ErrConfiguration = errors.New("configuration error")

	// ErrFile indicates a missing or unreadable input file.
	ErrFile = errors.New("file error")

	// ErrParse indicates an input file that is not well-formed JSON.
	ErrParse = fmt.Errorf("%w: parse error", ErrFile)

	// ErrTransport indicates a network failure or a non-2xx HTTP status.
	ErrTransport = errors.New("transport error")

	// ErrAuthentication indicates every credential strategy failed.
	ErrAuthentication = errors.New("authentication error")

	// ErrModelNotFound indicates no tokenizer resolves the model name.
	ErrModelNotFound = errors.New("model not found")
)
