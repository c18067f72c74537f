package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role distinguishes regular users from administrators.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered user of the tracker.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Role     Role      `json:"role"`
	Currency string    `json:"currency"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// NewUser creates a user with a bcrypt-hashed password and the USER role.
func NewUser(username, email, password string) (*User, error) {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     RoleUser,
		Currency: "USD",
		Created:  now,
		Updated:  now,
	}, nil
}

// NewUserFromData hydrates a User from stored data.
func NewUserFromData(id uuid.UUID, username, email, password string, role Role, currency string, created, updated time.Time) *User {
	return &User{
		ID:       id,
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
		Currency: currency,
		Created:  created,
		Updated:  updated,
	}
}

// CheckPassword compares a plain-text password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// SetPassword replaces the stored hash with a hash of the given password.
func (u *User) SetPassword(password string) error {
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashed
	u.Updated = time.Now().UTC()
	return nil
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
