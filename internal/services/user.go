package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"eventhub/internal/domain"
)

// defaultRole is assigned to users created through signup and OAuth.
const defaultRole = "participant"

type userService struct {
	userRepo     domain.UserRepository
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	emailService domain.EmailService
	tokenExpiry  time.Duration
}

// NewUserService creates a UserService. emailService may be nil to disable welcome emails.
func NewUserService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	emailService domain.EmailService,
	tokenExpiry time.Duration,
) domain.UserService {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		emailService: emailService,
		tokenExpiry:  tokenExpiry,
	}
}

func (s *userService) SignUp(ctx context.Context, username, email, fullName, password string) (*domain.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if exists, err := s.userRepo.UsernameExists(ctx, username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if exists {
		return nil, domain.ErrDuplicateUsername
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(username, email, fullName, defaultRole, time.Now())
	if err := s.userRepo.Create(ctx, user, hash, salt); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Welcome email failure must not fail the signup.
	if s.emailService != nil {
		if err := s.emailService.SendWelcomeMessage(ctx, &domain.WelcomeMessageEmailData{
			Email:    user.Email,
			FullName: user.FullName,
		}); err != nil {
			log.Printf("[USER] Failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	creds, err := s.userRepo.GetCredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get credentials: %w", err)
	}
	if err := s.hasher.Compare(creds.PasswordHash, creds.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, creds.UserID)
	if err != nil {
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Email, user.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
