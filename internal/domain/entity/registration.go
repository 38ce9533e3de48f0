package entity

import "slices"

// Provinces lists the selectable provinces on the details screen.
var Provinces = []string{
	"AJK",
	"Balochistan",
	"Gilgit Baltistan",
	"Islamabad",
	"Khyber Pakhtunkhwa",
	"Punjab",
	"Sindh",
}

// IsProvince reports whether p is one of Provinces.
func IsProvince(p string) bool {
	return slices.Contains(Provinces, p)
}

// RegistrationDetails are the profile fields collected before the registration OTP is sent.
type RegistrationDetails struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Province string `json:"province" validate:"required,province"`
	District string `json:"district" validate:"required"`
	Tehsil   string `json:"tehsil" validate:"required"`
	Village  string `json:"village" validate:"required"`
	Address  string `json:"address"`
}
