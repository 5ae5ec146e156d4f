package entity

import (
	"mentorhub/core/entity"
)

// Role gates what a user may do. Role is authoritative for every permission
// check in the API; clients only mirror it.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleMentor Role = "mentor"
	RoleCoach  Role = "coach"
)

func ParseRole(raw string) (Role, bool) {
	r := Role(raw)
	switch r {
	case RoleGuest, RoleMentor, RoleCoach:
		return r, true
	}
	return r, false
}

type User struct {
	Email        string  `db:"email" json:"email"`
	FirstName    string  `db:"first_name" json:"first_name"`
	LastName     string  `db:"last_name" json:"last_name"`
	Role         Role    `db:"role" json:"role"`
	Company      *string `db:"company" json:"company,omitempty"`
	PasswordHash *string `db:"password_hash" json:"-"`
	GoogleID     *string `db:"google_id" json:"-"`
	AvatarKey    *string `db:"avatar_key" json:"-"`
	entity.BaseEntity
}

// DisplayName is the name shown next to events and requests.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
