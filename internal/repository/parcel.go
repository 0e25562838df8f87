package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/security"
)

// ParcelStore is the in-memory owner of all parcels. One RWMutex guards the
// collection and the id counter; every read returns copies.
type ParcelStore struct {
	mu      sync.RWMutex
	parcels []*domain.Parcel // newest first
	nextID  int
	clock   Clock
	codes   security.CodeGenerator
}

// NewParcelStore creates an empty store. Nil dependencies fall back to defaults.
func NewParcelStore(clock Clock, codes security.CodeGenerator) *ParcelStore {
	if clock == nil {
		clock = RealClock{}
	}
	if codes == nil {
		codes = security.RandomCodes{}
	}
	return &ParcelStore{
		nextID: 1,
		clock:  clock,
		codes:  codes,
	}
}

// Seed appends parcels in the given order (first = newest) and moves the id
// counter past the highest numeric id seen.
func (s *ParcelStore) Seed(parcels ...domain.Parcel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range parcels {
		cp := p.Clone()
		s.parcels = append(s.parcels, &cp)
		if n, ok := parseParcelID(p.ID); ok && n >= s.nextID {
			s.nextID = n + 1
		}
	}
}

// Create registers a new pending parcel with a fresh id and security code.
// Required fields are the caller's responsibility.
func (s *ParcelStore) Create(_ context.Context, in domain.NewParcel) (domain.Parcel, error) {
	code, err := s.codes.NewCode()
	if err != nil {
		return domain.Parcel{}, fmt.Errorf("create parcel: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &domain.Parcel{
		ID:           formatParcelID(s.nextID),
		StudentName:  in.StudentName,
		RoomNumber:   in.RoomNumber,
		MobileNumber: in.MobileNumber,
		CourierName:  in.CourierName,
		SecurityCode: code,
		Status:       domain.StatusPending,
		DateReceived: s.clock.Now(),
	}
	s.nextID++
	s.parcels = append([]*domain.Parcel{p}, s.parcels...)
	return p.Clone(), nil
}

// List returns a snapshot of all parcels, newest first.
func (s *ParcelStore) List(_ context.Context) ([]domain.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(func(*domain.Parcel) bool { return true }), nil
}

// Search matches student name and room case-insensitively and mobile number
// verbatim, all as substrings. A blank query lists everything.
func (s *ParcelStore) Search(ctx context.Context, query string) ([]domain.Parcel, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.List(ctx)
	}
	lower := strings.ToLower(q)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(func(p *domain.Parcel) bool {
		return strings.Contains(strings.ToLower(p.StudentName), lower) ||
			strings.Contains(strings.ToLower(p.RoomNumber), lower) ||
			strings.Contains(p.MobileNumber, q)
	}), nil
}

// ByMobile returns parcels addressed to exactly this mobile number.
func (s *ParcelStore) ByMobile(_ context.Context, mobile string) ([]domain.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(func(p *domain.Parcel) bool { return p.MobileNumber == mobile }), nil
}

// Get returns a parcel by id; nil when missing.
func (s *ParcelStore) Get(_ context.Context, id string) (*domain.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.findLocked(id); p != nil {
		cp := p.Clone()
		return &cp, nil
	}
	return nil, nil
}

// Verify applies one verification attempt under the write lock.
func (s *ParcelStore) Verify(_ context.Context, id, code string) (domain.VerifyOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findLocked(id)
	if p == nil {
		return domain.NotFoundOutcome(id), nil
	}
	return p.Verify(code, s.clock.Now()), nil
}

// Stats computes desk counters from the current snapshot.
func (s *ParcelStore) Stats(_ context.Context) (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Parcel, len(s.parcels))
	for i, p := range s.parcels {
		snapshot[i] = *p
	}
	return domain.ComputeStats(snapshot, s.clock.Now()), nil
}

func (s *ParcelStore) findLocked(id string) *domain.Parcel {
	for _, p := range s.parcels {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *ParcelStore) filterLocked(keep func(*domain.Parcel) bool) []domain.Parcel {
	out := make([]domain.Parcel, 0, len(s.parcels))
	for _, p := range s.parcels {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
