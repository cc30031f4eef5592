package errors

import "fmt"

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrUnknownStorage  = fmt.Errorf("unknown storage backend")
	ErrBinaryInput     = fmt.Errorf("input is not text")
	ErrRejectedRows    = fmt.Errorf("some rows have been rejected")
)
