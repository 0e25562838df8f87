package domain

// Role identifies who is using the service.
type Role string

// List of possible roles
const (
	RoleMatron  Role = "matron"
	RoleStudent Role = "student"
)

// Valid checks if the Role is valid
func (r Role) Valid() bool {
	return r == RoleMatron || r == RoleStudent
}

// Student is a resident from the hostel roster. The core never mutates it.
type Student struct {
	ID           string
	Name         string
	RoomNumber   string
	PhoneNumber  string
	PasswordHash string
}

// User is the authenticated identity returned on login.
// RoomNumber and PhoneNumber are empty for the matron.
type User struct {
	Role        Role
	Name        string
	RoomNumber  string
	PhoneNumber string
}
