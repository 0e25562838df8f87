package domain

import (
	"fmt"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
)

// VerifyResult is the kind of outcome produced by a verification attempt.
type VerifyResult string

// List of possible verification results
const (
	ResultCollected        VerifyResult = "collected"
	ResultNotFound         VerifyResult = "not_found"
	ResultAlreadyCollected VerifyResult = "already_collected"
	ResultLockedOut        VerifyResult = "locked_out"
	ResultIncorrectCode    VerifyResult = "incorrect_code"
)

// VerifyOutcome - struct representing the result of a verification attempt.
// Remaining is only meaningful for ResultIncorrectCode.
type VerifyOutcome struct {
	Result    VerifyResult
	ParcelID  string
	Locked    bool
	Remaining int
}

// NotFoundOutcome returns the outcome for an unknown parcel id.
func NotFoundOutcome(id string) VerifyOutcome {
	return VerifyOutcome{Result: ResultNotFound, ParcelID: id}
}

// Success reports whether the parcel was handed over.
func (o VerifyOutcome) Success() bool {
	return o.Result == ResultCollected
}

// Message returns the text shown to the desk.
func (o VerifyOutcome) Message() string {
	switch o.Result {
	case ResultCollected:
		return "Parcel verified and marked as collected."
	case ResultNotFound:
		return "Parcel not found."
	case ResultAlreadyCollected:
		return "Parcel already collected."
	case ResultLockedOut:
		return "Maximum verification attempts reached. Parcel is locked."
	case ResultIncorrectCode:
		if o.Locked {
			return "Incorrect code. Maximum attempts reached. Parcel is locked."
		}
		noun := "attempts"
		if o.Remaining == 1 {
			noun = "attempt"
		}
		return fmt.Sprintf("Incorrect security code. %d %s remaining.", o.Remaining, noun)
	default:
		return "Verification failed."
	}
}

// Err maps a failed outcome onto the apperr sentinels; nil on success.
func (o VerifyOutcome) Err() error {
	switch o.Result {
	case ResultCollected:
		return nil
	case ResultNotFound:
		return apperr.ErrNotFound
	case ResultAlreadyCollected:
		return apperr.ErrAlreadyCollected
	case ResultLockedOut:
		return apperr.ErrLockedOut
	case ResultIncorrectCode:
		if o.Locked {
			return fmt.Errorf("%w: %w", apperr.ErrIncorrectCode, apperr.ErrLockedOut)
		}
		return apperr.ErrIncorrectCode
	default:
		return fmt.Errorf("unknown verification result %q", o.Result)
	}
}
