package errno

import (
	"errors"
)

var (
	ErrEmptyQuery          = errors.New("query is empty")
	ErrNoToolsAvailable    = errors.New("no tools available")
	ErrDuplicateTool       = errors.New("duplicate tool name")
	ErrMaxTurnsExceeded    = errors.New("max turns exceeded")
	ErrModelNotToolCapable = errors.New("model not tool capable")
)
