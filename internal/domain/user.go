package domain

import (
	"context"
	"time"
)

// User represents a registered user
// swagger:model User
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(username, email, fullName, role string, createdAt time.Time) *User {
	return &User{
		Username:  username,
		Email:     email,
		FullName:  fullName,
		Role:      role,
		CreatedAt: createdAt,
	}
}

// Credentials holds the stored password material for a user.
type Credentials struct {
	UserID       int64
	PasswordHash string
	Salt         string
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID int64, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User, passwordHash, salt string) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetCredentialsByUsername(ctx context.Context, username string) (*Credentials, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// UserService defines the business logic for signup, login, and profiles.
type UserService interface {
	SignUp(ctx context.Context, username, email, fullName, password string) (*User, error)
	Login(ctx context.Context, username, password string) (token string, user *User, err error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
