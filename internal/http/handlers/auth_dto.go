package handlers

import "github.com/shivanisurendran/hostelparcel-management/internal/domain"

type loginRequest struct {
	Role        domain.Role `json:"role"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	PhoneNumber string      `json:"phoneNumber"`
}

type userDTO struct {
	Role        domain.Role `json:"role"`
	Name        string      `json:"name"`
	RoomNumber  string      `json:"roomNumber,omitempty"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token,omitempty"`
	User    *userDTO `json:"user,omitempty"`
	Message string   `json:"message,omitempty"`
}

func userToResponse(u domain.User) *userDTO {
	return &userDTO{
		Role:        u.Role,
		Name:        u.Name,
		RoomNumber:  u.RoomNumber,
		PhoneNumber: u.PhoneNumber,
	}
}
