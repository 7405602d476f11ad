package user

import (
	"time"

	"github.com/google/uuid"
)

// Account types; candidates carry a profile, companies post jobs.
const (
	TypeCandidate = "candidate"
	TypeCompany   = "company"
	TypeAdmin     = "admin"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	UserType     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsCandidate() bool { return u.UserType == TypeCandidate }
func (u User) IsCompany() bool   { return u.UserType == TypeCompany }
