package parcel

import (
	"context"
	"strings"
	"time"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
	"github.com/shivanisurendran/hostelparcel-management/internal/metrics"
)

// Service coordinates the parcel lifecycle on top of the parcel store.
type Service struct {
	store            parcelStore
	operationTimeout time.Duration
	logger           logx.Logger
	metrics          *metrics.ParcelMetrics
}

// NewService creates and configures a parcel Service. A nil logger or metrics disables them.
func NewService(store parcelStore, timeout time.Duration, logger logx.Logger, m *metrics.ParcelMetrics) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		store:            store,
		operationTimeout: timeout,
		logger:           logger,
		metrics:          m,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateNew trims the desk input and rejects any empty field.
func validateNew(in domain.NewParcel) (domain.NewParcel, error) {
	out := domain.NewParcel{
		StudentName:  strings.TrimSpace(in.StudentName),
		RoomNumber:   strings.TrimSpace(in.RoomNumber),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		CourierName:  strings.TrimSpace(in.CourierName),
	}
	if out.StudentName == "" || out.RoomNumber == "" || out.MobileNumber == "" || out.CourierName == "" {
		return domain.NewParcel{}, apperr.ErrInvalid
	}
	return out, nil
}

// Create registers an incoming parcel.
func (s *Service) Create(ctx context.Context, in domain.NewParcel) (domain.Parcel, error) {
	in, err := validateNew(in)
	if err != nil {
		return domain.Parcel{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.store.Create(ctx, in)
	if err != nil {
		return domain.Parcel{}, err
	}

	if s.metrics != nil {
		s.metrics.Registered.Inc()
	}
	s.logger.Info("parcel registered",
		logx.String("event", "parcel_registered"),
		logx.String("parcel_id", p.ID),
		logx.String("room", p.RoomNumber),
		logx.String("courier", p.CourierName),
	)
	return p, nil
}

// List returns every parcel, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Parcel, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.List(ctx)
}

// Search filters parcels by name, room or mobile number.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Parcel, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.Search(ctx, query)
}

// Get retrieves a parcel by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Parcel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// ForStudent returns the parcels addressed to a resident's phone number.
func (s *Service) ForStudent(ctx context.Context, phone string) ([]domain.Parcel, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ByMobile(ctx, phone)
}

// Verify submits a security code for a parcel. Domain failures come back in
// the outcome; the error is reserved for bad input and store failures.
func (s *Service) Verify(ctx context.Context, id, code string) (domain.VerifyOutcome, error) {
	id, code = strings.TrimSpace(id), strings.TrimSpace(code)
	if id == "" || code == "" {
		return domain.VerifyOutcome{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out, err := s.store.Verify(ctx, id, code)
	if err != nil {
		return domain.VerifyOutcome{}, err
	}

	if s.metrics != nil {
		s.metrics.Verifications.WithLabelValues(outcomeLabel(out.Result)).Inc()
	}
	fields := []logx.Field{
		logx.String("event", "parcel_verification"),
		logx.String("parcel_id", out.ParcelID),
		logx.String("outcome", string(out.Result)),
		logx.Bool("locked", out.Locked),
	}
	switch {
	case out.Success():
		s.logger.Info("parcel collected", fields...)
	case out.Locked:
		s.logger.Warn("parcel verification locked", fields...)
	default:
		s.logger.Info("parcel verification failed", append(fields, logx.Int("remaining", out.Remaining))...)
	}
	return out, nil
}

// Stats computes desk counters.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.Stats(ctx)
}

func outcomeLabel(r domain.VerifyResult) string {
	switch r {
	case domain.ResultCollected:
		return metrics.OutcomeCollected
	case domain.ResultNotFound:
		return metrics.OutcomeNotFound
	case domain.ResultAlreadyCollected:
		return metrics.OutcomeAlreadyCollected
	case domain.ResultLockedOut:
		return metrics.OutcomeLockedOut
	default:
		return metrics.OutcomeIncorrectCode
	}
}
