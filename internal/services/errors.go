package services

import (
	"errors"
	"fmt"
)

// ErrProductNotFound reports a catalog miss.
var ErrProductNotFound = errors.New("product not found")

// ProductNotFoundError reports a catalog miss for a specific product ID, so
// a failed purchase can name the offending line.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product ID %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
