package types

import (
	"time"
)

type User struct {
	Id           string
	Email        string
	FirstName    string
	PasswordHash string
	CreatedAt    time.Time
}

type PublicUser struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		Id:        u.Id,
		Email:     u.Email,
		FirstName: u.FirstName,
		CreatedAt: u.CreatedAt,
	}
}
