package service

//go:generate mockgen -destination=../../mocks/mock_user_store.go -package=mocks github.com/AnthoniusHendriyanto/session-service/internal/auth/domain UserStore

import (
	"context"
	"strings"
	"time"

	"github.com/AnthoniusHendriyanto/session-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/session-service/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/session-service/internal/errors"
	"github.com/google/uuid"
)

type UserService struct {
	store      domain.UserStore
	tokens     TokenGenerator
	bcryptCost int
}

func NewUserService(store domain.UserStore, tokens TokenGenerator, bcryptCost int) *UserService {
	return &UserService{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a user record and issues a token for it. Email
// uniqueness is ultimately enforced by the store; the lookup here
// just gives a friendlier error for the common case.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", autherror.ErrMissingCredentials
	}

	email := strings.ToLower(input.Email)

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()

	user := &domain.User{
		ID:                uuid.New().String(),
		Name:              input.Name,
		Email:             email,
		PasswordHash:      hashedPassword,
		PasswordChangedAt: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.store.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the submitted credentials and issues a token. A
// wrong email and a wrong password are deliberately the same error
// so the response never reveals which one it was.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", autherror.ErrMissingCredentials
	}

	user, err := s.store.GetByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		return nil, "", err
	}

	if user == nil || !VerifyPassword(user.PasswordHash, input.Password) {
		return nil, "", autherror.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate is the gate core shared by the API and view guards:
// verify the token, then re-fetch the user it is bound to. A valid
// token can outlive its subject, so a lookup miss is ErrUserNotFound
// rather than a crash. Tokens issued before the user's last password
// change are rejected.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if user.ChangedPasswordAfter(claims.IssuedAt.Time) {
		return nil, autherror.ErrPasswordChanged
	}

	return user, nil
}
