package season

import "context"

// Repository describes season history access needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
}
