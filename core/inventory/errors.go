package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the store
var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidConfig   = errors.New("invalid inventory configuration")
)

// InvalidCategoryError is returned when an add names a category outside the
// allowed set. It carries the allowed set so the caller can correct the input.
type InvalidCategoryError struct {
	Category string
	Allowed  []string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q, available categories are: [%s]",
		e.Category, strings.Join(e.Allowed, ", "))
}

// Is makes errors.Is(err, ErrInvalidCategory) match.
func (e *InvalidCategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}
