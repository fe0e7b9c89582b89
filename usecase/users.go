package usecase

import (
	"context"
	"strings"

	"main/model"
	"main/services"
)

// UserStore is the persistence surface the auth flow needs.
type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
}

type UserService struct {
	UsersRepo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{UsersRepo: repo}
}

// Register creates an account for a new email. An email that already has
// an account is rejected, matching the register endpoint's 400 contract.
func (svc *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, validationErrf("email is required")
	}
	if password == "" {
		return nil, validationErrf("password is required")
	}

	existing, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, transportErr("find user", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, validationErrf("%v", err)
	}

	user := &model.User{
		Email:    email,
		Password: hashed,
	}
	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, transportErr("add user", err)
	}

	return user, nil
}

// Authenticate checks the credential pair and returns the user. Unknown
// email and bad password are reported as distinct errors, the way the
// login endpoint distinguishes them.
func (svc *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, transportErr("find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
