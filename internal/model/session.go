package model

import (
	"encoding/json"
	"time"
)

// Session binds a browser to the backend credential issued at login.
type Session struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Token     string    `db:"api_token"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func (s *Session) User() User {
	return User{ID: s.UserID, Name: s.Name, Email: s.Email}
}

// User is the identity the backend returns alongside a token.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnmarshalJSON accepts both "id" and "_id".
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string `json:"id"`
		OID   string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	u.ID = raw.ID
	if u.ID == "" {
		u.ID = raw.OID
	}
	u.Name = raw.Name
	u.Email = raw.Email
	return nil
}

// FirstName is used for greetings.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
