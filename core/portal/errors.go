package portal

import (
	"errors"
	"fmt"
)

var (
	// errors
	ErrNotFound        = errors.New("not found")
	ErrStudentNotFound = fmt.Errorf("student %w", ErrNotFound)
	ErrMessageNotFound = fmt.Errorf("message %w", ErrNotFound)
	ErrDuplicateID     = errors.New("a student with this id already exists")
	ErrKeyNotFound     = errors.New("key not found")
)
