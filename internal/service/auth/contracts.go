package auth

import (
	"context"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
)

// studentRoster defines the roster lookups required for student login.
type studentRoster interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Student, error)
}
