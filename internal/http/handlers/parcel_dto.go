package handlers

import (
	"time"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
)

type parcelDTO struct {
	ID                   string              `json:"id"`
	StudentName          string              `json:"studentName"`
	RoomNumber           string              `json:"roomNumber"`
	MobileNumber         string              `json:"mobileNumber"`
	CourierName          string              `json:"courierName"`
	SecurityCode         string              `json:"securityCode,omitempty"`
	Status               domain.ParcelStatus `json:"status"`
	DateReceived         time.Time           `json:"dateReceived"`
	DateCollected        *time.Time          `json:"dateCollected,omitempty"`
	VerificationAttempts int                 `json:"verificationAttempts"`
	Overdue              bool                `json:"overdue"`
	Locked               bool                `json:"locked"`
}

type statsDTO struct {
	TotalToday int `json:"totalToday"`
	Pending    int `json:"pending"`
	Collected  int `json:"collected"`
	Overdue    int `json:"overdue"`
}

type createParcelRequest struct {
	StudentName  string `json:"studentName"`
	RoomNumber   string `json:"roomNumber"`
	MobileNumber string `json:"mobileNumber"`
	CourierName  string `json:"courierName"`
}

type verifyParcelRequest struct {
	ParcelID string `json:"parcelId"`
	Code     string `json:"code"`
}

type verifyParcelResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	Locked            bool   `json:"locked,omitempty"`
	RemainingAttempts *int   `json:"remainingAttempts,omitempty"`
}

type overviewResponse struct {
	Parcels []parcelDTO `json:"parcels"`
	Stats   statsDTO    `json:"stats"`
}

type parcelsResponse struct {
	Parcels []parcelDTO `json:"parcels"`
}

type parcelResponse struct {
	Parcel parcelDTO `json:"parcel"`
}

type studentParcelsResponse struct {
	Parcels   []parcelDTO `json:"parcels"`
	Pending   int         `json:"pending"`
	Collected int         `json:"collected"`
}
