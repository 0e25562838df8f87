package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
)

func pendingParcel(received time.Time) *Parcel {
	return &Parcel{
		ID:           "PKG-010",
		SecurityCode: "012345",
		Status:       StatusPending,
		DateReceived: received,
	}
}

func TestParcel_Verify_LeadingZeroCodeIsExactMatch(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	p := pendingParcel(now.Add(-time.Hour))
	out := p.Verify("12345", now)
	require.Equal(t, ResultIncorrectCode, out.Result)
	require.Equal(t, 2, out.Remaining)

	out = p.Verify("012345", now)
	require.True(t, out.Success())
	require.Equal(t, StatusCollected, p.Status)
	require.Equal(t, now, *p.DateCollected)
	require.Equal(t, 1, p.VerificationAttempts)
}

func TestParcel_Verify_CollectedIffDateCollected(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	codes := []string{"1", "2", "012345", "3", "012345"}

	p := pendingParcel(now)
	for _, c := range codes {
		p.Verify(c, now)
		require.Equal(t, p.Status == StatusCollected, p.DateCollected != nil)
	}
}

func TestParcel_Overdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	require.True(t, pendingParcel(now.Add(-50*time.Hour)).Overdue(now))
	require.False(t, pendingParcel(now.Add(-48*time.Hour)).Overdue(now))
	require.False(t, pendingParcel(now.Add(-time.Hour)).Overdue(now))

	collected := pendingParcel(now.Add(-50 * time.Hour))
	collected.Verify("012345", now)
	require.False(t, collected.Overdue(now.Add(100*time.Hour)))
}

func TestVerifyOutcome_Err(t *testing.T) {
	t.Parallel()

	require.NoError(t, VerifyOutcome{Result: ResultCollected}.Err())
	require.ErrorIs(t, NotFoundOutcome("x").Err(), apperr.ErrNotFound)
	require.ErrorIs(t, VerifyOutcome{Result: ResultAlreadyCollected}.Err(), apperr.ErrAlreadyCollected)
	require.ErrorIs(t, VerifyOutcome{Result: ResultLockedOut, Locked: true}.Err(), apperr.ErrLockedOut)

	wrong := VerifyOutcome{Result: ResultIncorrectCode, Remaining: 1}.Err()
	require.ErrorIs(t, wrong, apperr.ErrIncorrectCode)
	require.False(t, errors.Is(wrong, apperr.ErrLockedOut))

	lastWrong := VerifyOutcome{Result: ResultIncorrectCode, Locked: true}.Err()
	require.ErrorIs(t, lastWrong, apperr.ErrIncorrectCode)
	require.ErrorIs(t, lastWrong, apperr.ErrLockedOut)
}

func TestComputeStats_TodayUsesLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 10, 17, 1, 0, 0, 0, loc)

	parcels := []Parcel{
		{Status: StatusPending, DateReceived: now.Add(-30 * time.Minute)},
		{Status: StatusPending, DateReceived: now.Add(-2 * time.Hour)},
		{Status: StatusCollected, DateReceived: StartOfDay(now)},
	}

	st := ComputeStats(parcels, now)
	require.Equal(t, Stats{TotalToday: 2, Pending: 2, Collected: 1}, st)
}

func TestRoleAndStatusValid(t *testing.T) {
	t.Parallel()

	require.True(t, RoleMatron.Valid())
	require.True(t, RoleStudent.Valid())
	require.False(t, Role("warden").Valid())
	require.True(t, StatusPending.Valid())
	require.False(t, ParcelStatus("lost").Valid())
}
