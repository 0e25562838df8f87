package domain

import "time"

// ParcelStatus represents the lifecycle status of a parcel.
type ParcelStatus string

// List of possible parcel statuses
const (
	StatusPending   ParcelStatus = "pending"
	StatusCollected ParcelStatus = "collected"
)

const (
	// MaxVerificationAttempts is the number of failed code matches after which a parcel is locked.
	MaxVerificationAttempts = 3
	// OverdueAfter is how long a parcel may wait at the desk before it is considered overdue.
	OverdueAfter = 48 * time.Hour
)

// Valid checks if the ParcelStatus is valid
func (s ParcelStatus) Valid() bool {
	return s == StatusPending || s == StatusCollected
}

// Parcel is a package received at the front desk on behalf of a resident.
type Parcel struct {
	ID                   string
	StudentName          string
	RoomNumber           string
	MobileNumber         string
	CourierName          string
	SecurityCode         string
	Status               ParcelStatus
	DateReceived         time.Time
	DateCollected        *time.Time
	VerificationAttempts int
}

// NewParcel carries the fields supplied by the desk when a parcel arrives.
type NewParcel struct {
	StudentName  string
	RoomNumber   string
	MobileNumber string
	CourierName  string
}

// Locked reports whether the parcel exhausted its verification attempts.
func (p Parcel) Locked() bool {
	return p.Status == StatusPending && p.VerificationAttempts >= MaxVerificationAttempts
}

// Overdue reports whether the parcel is still pending more than OverdueAfter after arrival.
// It is derived at query time and never stored.
func (p Parcel) Overdue(now time.Time) bool {
	return p.Status == StatusPending && p.DateReceived.Before(now.Add(-OverdueAfter))
}

// Clone returns a deep copy so callers never share the collected timestamp pointer.
func (p Parcel) Clone() Parcel {
	if p.DateCollected != nil {
		t := *p.DateCollected
		p.DateCollected = &t
	}
	return p
}

// Verify applies a single verification attempt to a pending parcel.
// Collected and locked parcels are left untouched.
func (p *Parcel) Verify(code string, now time.Time) VerifyOutcome {
	out := VerifyOutcome{ParcelID: p.ID}
	switch {
	case p.Status == StatusCollected:
		out.Result = ResultAlreadyCollected
		return out
	case p.VerificationAttempts >= MaxVerificationAttempts:
		out.Result = ResultLockedOut
		out.Locked = true
		return out
	}

	if p.SecurityCode == code {
		collectedAt := now
		p.Status = StatusCollected
		p.DateCollected = &collectedAt
		out.Result = ResultCollected
		return out
	}

	p.VerificationAttempts++
	out.Result = ResultIncorrectCode
	out.Remaining = MaxVerificationAttempts - p.VerificationAttempts
	out.Locked = out.Remaining == 0
	return out
}
