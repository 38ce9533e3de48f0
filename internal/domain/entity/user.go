// Package entity contains the core business objects of the client,
// each mirroring a concept the backend owns or the user is editing.
package entity

import "strings"

// User is the profile of the signed-in account as returned by the backend.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Province     string `json:"province"`
	District     string `json:"district"`
	Tehsil       string `json:"tehsil"`
	Village      string `json:"village"`
	Address      string `json:"address"`
}

// FullName joins name and surname.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}

	return strings.TrimSpace(u.Name + " " + u.Surname)
}

// LocationText renders "province, tehsil, village", skipping empty parts.
func (u *User) LocationText() string {
	if u == nil {
		return ""
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{u.Province, u.Tehsil, u.Village} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// Clone returns a copy safe to hand out of a store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u

	return &c
}
