//go:generate mockgen -source=contracts.go -destination=parcel_mocks_test.go -package=parcel

package parcel

import (
	"context"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
)

// parcelStore defines the parcel store operations required by the business layer.
type parcelStore interface {
	Create(ctx context.Context, in domain.NewParcel) (domain.Parcel, error)
	List(ctx context.Context) ([]domain.Parcel, error)
	Search(ctx context.Context, query string) ([]domain.Parcel, error)
	ByMobile(ctx context.Context, mobile string) ([]domain.Parcel, error)
	Get(ctx context.Context, id string) (*domain.Parcel, error)
	Verify(ctx context.Context, id, code string) (domain.VerifyOutcome, error)
	Stats(ctx context.Context) (domain.Stats, error)
}
