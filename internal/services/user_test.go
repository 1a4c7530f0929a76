package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID      map[int64]*domain.User
	credsByID map[int64]*domain.Credentials
	nextID    int64
	err       error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:      make(map[int64]*domain.User),
		credsByID: make(map[int64]*domain.Credentials),
		nextID:    1,
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User, passwordHash, salt string) error {
	if f.err != nil {
		return f.err
	}
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	f.credsByID[u.ID] = &domain.Credentials{UserID: u.ID, PasswordHash: passwordHash, Salt: salt}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetCredentialsByUsername(ctx context.Context, username string) (*domain.Credentials, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			return f.credsByID[u.ID], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.byID {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// fakeHasher hashes by concatenation so tests can assert on stored values.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return "hash:" + salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != "hash:"+salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeIssuer issues deterministic tokens.
type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Issue(userID int64, email, role string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + email, nil
}

// recordingEmailService captures welcome sends.
type recordingEmailService struct {
	welcomes []*domain.WelcomeMessageEmailData
	err      error
}

func (f *recordingEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}

func (f *recordingEmailService) SendEventReminder(ctx context.Context, data *domain.EventReminderEmailData) error {
	return nil
}

func TestSignUp(t *testing.T) {
	repo := newFakeUserRepo()
	emails := &recordingEmailService{}
	svc := NewUserService(repo, fakeHasher{}, &fakeIssuer{}, emails, time.Hour)

	user, err := svc.SignUp(context.Background(), "ana", "ana@example.com", "Ana A", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "participant", user.Role)

	creds := repo.credsByID[user.ID]
	require.NotNil(t, creds)
	assert.Equal(t, "hash:salt:secret123", creds.PasswordHash)

	require.Len(t, emails.welcomes, 1)
	assert.Equal(t, "ana@example.com", emails.welcomes[0].Email)
}

func TestSignUp_Duplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, fakeHasher{}, &fakeIssuer{}, nil, time.Hour)

	_, err := svc.SignUp(context.Background(), "ana", "ana@example.com", "Ana A", "secret123")
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), "other", "ana@example.com", "Other", "secret123")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	_, err = svc.SignUp(context.Background(), "ana", "new@example.com", "New", "secret123")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestSignUp_WelcomeEmailFailureIsNotFatal(t *testing.T) {
	repo := newFakeUserRepo()
	emails := &recordingEmailService{err: errors.New("smtp down")}
	svc := NewUserService(repo, fakeHasher{}, &fakeIssuer{}, emails, time.Hour)

	user, err := svc.SignUp(context.Background(), "ana", "ana@example.com", "Ana A", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, fakeHasher{}, &fakeIssuer{}, nil, time.Hour)

	_, err := svc.SignUp(context.Background(), "ana", "ana@example.com", "Ana A", "secret123")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "ana", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "token-for-ana@example.com", token)
	assert.Equal(t, "ana", user.Username)
}

func TestLogin_BadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, fakeHasher{}, &fakeIssuer{}, nil, time.Hour)

	_, err := svc.SignUp(context.Background(), "ana", "ana@example.com", "Ana A", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "ana", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
