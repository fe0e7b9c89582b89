package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

type fakeUserStore struct {
	byEmail map[string]*model.User
	addErr  error
	findErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*model.User)}
}

func (s *fakeUserStore) AddUser(ctx context.Context, user *model.User) error {
	if s.addErr != nil {
		return s.addErr
	}
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	s.byEmail[user.Email] = user
	return nil
}

func (s *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.byEmail[email], nil
}

func (s *fakeUserStore) FindUser(ctx context.Context, userID string) (*model.User, error) {
	for _, u := range s.byEmail {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.UserID == "" {
		t.Error("registered user has no id")
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.Password == "hunter22" {
		t.Error("password stored in the clear")
	}

	got, err := svc.Authenticate(ctx, "ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.UserID != user.UserID {
		t.Errorf("authenticated id = %q, want %q", got.UserID, user.UserID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "hunter22"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(ctx, "a@b.com", "different")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("err = %v, want ErrUserExists", err)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@b.com", "hunter22"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "nobody@b.com", "hunter22"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown email err = %v, want ErrUserNotFound", err)
	}

	if _, err := svc.Authenticate(ctx, "a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	store := newFakeUserStore()
	store.findErr = errors.New("mongo down")
	svc := NewUserService(store)

	if _, err := svc.Register(context.Background(), "a@b.com", "hunter22"); !IsTransport(err) {
		t.Errorf("err = %v, want TransportError", err)
	}
}
