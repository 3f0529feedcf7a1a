package social

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

var (
	ErrEmptyBody       = errors.New("post body is empty")
	ErrBodyTooLong     = errors.New("post body exceeds 140 characters")
	ErrInvalidLanguage = errors.New("invalid language tag")
)

// Publisher is the side-effecting feed call made when a game ends.
type Publisher interface {
	Publish(ctx context.Context, authorID uuid.UUID, body, lang string) (*Post, error)
}

type Service interface {
	Publisher

	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]PostResponse, error)
	// WithTx binds the service to an open transaction so a post commits
	// together with the caller's own writes.
	WithTx(tx *gorm.DB) Service
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) WithTx(tx *gorm.DB) Service {
	return &service{repo: s.repo.WithTx(tx), now: s.now}
}

func (s *service) Publish(ctx context.Context, authorID uuid.UUID, body, lang string) (*Post, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"author_id": authorID})

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return nil, ErrBodyTooLong
	}
	tag, err := language.Parse(lang)
	if err != nil {
		log.WithError(err).WithField("language", lang).Warn("Rejected post language")
		return nil, ErrInvalidLanguage
	}

	post := &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Body:      body,
		Language:  tag.String(),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		log.WithError(err).Error("Failed to create post")
		return nil, err
	}

	log.WithField("post_id", post.ID).Info("Post published")
	return post, nil
}

func (s *service) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]PostResponse, error) {
	posts, err := s.repo.FindAllByAuthorID(ctx, authorID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list posts")
		return nil, err
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toResponse(&posts[i]))
	}
	return responses, nil
}
