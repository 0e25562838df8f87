package repository

import (
	"context"
	"sync"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
)

// StudentRoster is a read-only, phone-indexed roster of residents.
type StudentRoster struct {
	mu      sync.RWMutex
	byPhone map[string]domain.Student
}

// NewStudentRoster creates a roster from the given students. Later entries win on duplicate phones.
func NewStudentRoster(students ...domain.Student) *StudentRoster {
	r := &StudentRoster{byPhone: make(map[string]domain.Student, len(students))}
	for _, st := range students {
		r.byPhone[st.PhoneNumber] = st
	}
	return r
}

// FindByPhone returns the student with this phone number; nil when missing.
func (r *StudentRoster) FindByPhone(_ context.Context, phone string) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st, ok := r.byPhone[phone]; ok {
		return &st, nil
	}
	return nil, nil
}
