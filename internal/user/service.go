package user

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/vinquiz/internal/auth"
	"github.com/saulo-duarte/vinquiz/internal/config"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidUsername = errors.New("username must be 3 to 40 characters")
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type service struct {
	repo     Repository
	tokenTTL time.Duration
}

func NewService(repo Repository, tokenTTL time.Duration) Service {
	return &service{repo: repo, tokenTTL: tokenTTL}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	username := strings.TrimSpace(dto.Username)
	if n := utf8.RuneCountInString(username); n < 3 || n > 40 {
		return nil, ErrInvalidUsername
	}

	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, ErrUsernameTaken
	case !errors.Is(err, ErrUserNotFound):
		log.WithError(err).Error("Failed to look up username")
		return nil, err
	}

	u := &User{
		ID:       uuid.New(),
		Username: username,
		Role:     RolePlayer,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), s.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue token")
		return nil, err
	}

	log.WithField("new_user_id", u.ID).Info("User registered")
	return &AuthResponse{Token: token, User: toResponse(u)}, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(u)
	return &resp, nil
}
