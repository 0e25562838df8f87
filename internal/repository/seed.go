package repository

import (
	"time"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/security"
)

// DemoPassword is the password every demo student account uses.
const DemoPassword = "student123"

// DemoParcels returns the demo desk contents relative to now in the order
// the desk lists them. Recipients match DemoStudents.
func DemoParcels(now time.Time) []domain.Parcel {
	collectedAt := now.Add(-20 * time.Hour)
	return []domain.Parcel{
		{
			ID:           "PKG-001",
			StudentName:  "Aarav Sharma",
			RoomNumber:   "201",
			MobileNumber: "9876543210",
			CourierName:  "Amazon",
			SecurityCode: "482917",
			Status:       domain.StatusPending,
			DateReceived: now.Add(-2 * time.Hour),
		},
		{
			ID:            "PKG-002",
			StudentName:   "Priya Patel",
			RoomNumber:    "305",
			MobileNumber:  "9123456789",
			CourierName:   "Flipkart",
			SecurityCode:  "173659",
			Status:        domain.StatusCollected,
			DateReceived:  now.Add(-24 * time.Hour),
			DateCollected: &collectedAt,
		},
		{
			ID:           "PKG-003",
			StudentName:  "Rahul Verma",
			RoomNumber:   "102",
			MobileNumber: "9988776655",
			CourierName:  "Delhivery",
			SecurityCode: "639401",
			Status:       domain.StatusPending,
			DateReceived: now.Add(-50 * time.Hour),
		},
		{
			ID:           "PKG-004",
			StudentName:  "Sneha Gupta",
			RoomNumber:   "201",
			MobileNumber: "9012345678",
			CourierName:  "BlueDart",
			SecurityCode: "815274",
			Status:       domain.StatusPending,
			DateReceived: now.Add(-1 * time.Hour),
		},
	}
}

// DemoStudents returns the demo roster with bcrypt-hashed DemoPassword.
func DemoStudents() []domain.Student {
	hash := security.MustHashPassword(DemoPassword)
	return []domain.Student{
		{ID: "STU-001", Name: "Aarav Sharma", RoomNumber: "201", PhoneNumber: "9876543210", PasswordHash: hash},
		{ID: "STU-002", Name: "Priya Patel", RoomNumber: "305", PhoneNumber: "9123456789", PasswordHash: hash},
		{ID: "STU-003", Name: "Rahul Verma", RoomNumber: "102", PhoneNumber: "9988776655", PasswordHash: hash},
		{ID: "STU-004", Name: "Sneha Gupta", RoomNumber: "201", PhoneNumber: "9012345678", PasswordHash: hash},
	}
}
