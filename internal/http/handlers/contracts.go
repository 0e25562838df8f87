package handlers

import (
	"context"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/service/auth"
	"github.com/shivanisurendran/hostelparcel-management/internal/service/parcel"
)

type parcelUsecase interface {
	Create(ctx context.Context, in domain.NewParcel) (domain.Parcel, error)
	List(ctx context.Context) ([]domain.Parcel, error)
	Search(ctx context.Context, query string) ([]domain.Parcel, error)
	Get(ctx context.Context, id string) (*domain.Parcel, error)
	ForStudent(ctx context.Context, phone string) ([]domain.Parcel, error)
	Verify(ctx context.Context, id, code string) (domain.VerifyOutcome, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// NewParcelUsecase wires a parcel Service into a parcelUsecase.
func NewParcelUsecase(svc *parcel.Service) parcelUsecase {
	return svc
}

type authUsecase interface {
	LoginMatron(ctx context.Context, email, password string) (auth.Session, error)
	LoginStudent(ctx context.Context, phone, password string) (auth.Session, error)
}

// NewAuthUsecase wires an auth Service into an authUsecase.
func NewAuthUsecase(svc *auth.Service) authUsecase {
	return svc
}
