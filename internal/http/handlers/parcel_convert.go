package handlers

import (
	"time"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
)

func (r createParcelRequest) toModel() domain.NewParcel {
	return domain.NewParcel{
		StudentName:  r.StudentName,
		RoomNumber:   r.RoomNumber,
		MobileNumber: r.MobileNumber,
		CourierName:  r.CourierName,
	}
}

// parcelToResponse renders a parcel; the security code is only included for its recipient.
func parcelToResponse(p domain.Parcel, now time.Time, withCode bool) parcelDTO {
	dto := parcelDTO{
		ID:                   p.ID,
		StudentName:          p.StudentName,
		RoomNumber:           p.RoomNumber,
		MobileNumber:         p.MobileNumber,
		CourierName:          p.CourierName,
		Status:               p.Status,
		DateReceived:         p.DateReceived,
		DateCollected:        p.DateCollected,
		VerificationAttempts: p.VerificationAttempts,
		Overdue:              p.Overdue(now),
		Locked:               p.Locked(),
	}
	if withCode {
		dto.SecurityCode = p.SecurityCode
	}
	return dto
}

func parcelsToResponse(list []domain.Parcel, now time.Time, withCode bool) []parcelDTO {
	out := make([]parcelDTO, 0, len(list))
	for _, p := range list {
		out = append(out, parcelToResponse(p, now, withCode))
	}
	return out
}

func statsToResponse(s domain.Stats) statsDTO {
	return statsDTO{
		TotalToday: s.TotalToday,
		Pending:    s.Pending,
		Collected:  s.Collected,
		Overdue:    s.Overdue,
	}
}

func outcomeToResponse(o domain.VerifyOutcome) verifyParcelResponse {
	resp := verifyParcelResponse{
		Success: o.Success(),
		Message: o.Message(),
		Locked:  o.Locked,
	}
	if o.Result == domain.ResultIncorrectCode && !o.Locked {
		remaining := o.Remaining
		resp.RemainingAttempts = &remaining
	}
	return resp
}
