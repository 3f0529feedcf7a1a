package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrInvalidKind = errors.New("invalid catalog kind")

// Random is the subset of *rand.Rand (math/rand/v2) used for picks.
type Random interface {
	IntN(n int) int
}

// Catalog is the read-only contract consumed by the quiz engine.
type Catalog interface {
	RandomSubjectID(ctx context.Context, kind Kind, rng Random) (int, error)
	Subject(ctx context.Context, kind Kind, id int) (Subject, error)
	Grape(ctx context.Context, id int) (*GrapeVariety, error)
	Designation(ctx context.Context, id int) (*WineDesignation, error)
}

type Service interface {
	Catalog

	ListGrapes(ctx context.Context, page int) (*GrapePage, error)
	ListDesignations(ctx context.Context, page int) (*DesignationPage, error)
	GrapeCard(ctx context.Context, id int) (*GrapeCard, error)
	DesignationCard(ctx context.Context, id int) (*DesignationCard, error)
}

type service struct {
	repo     Repository
	cache    IDCache
	pageSize int
}

func NewService(repo Repository, cache IDCache, pageSize int) Service {
	if pageSize < 1 {
		pageSize = 10
	}
	return &service{
		repo:     repo,
		cache:    cache,
		pageSize: pageSize,
	}
}

func (s *service) ids(ctx context.Context, kind Kind) ([]int, error) {
	if ids, ok := s.cache.Get(ctx, kind); ok {
		return ids, nil
	}
	ids, err := s.repo.ListIDs(ctx, kind)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		s.cache.Set(ctx, kind, ids)
	}
	return ids, nil
}

// RandomSubjectID picks uniformly among the ids currently in the catalog.
func (s *service) RandomSubjectID(ctx context.Context, kind Kind, rng Random) (int, error) {
	log := config.WithContext(ctx)
	if !kind.IsValid() {
		return 0, ErrInvalidKind
	}

	ids, err := s.ids(ctx, kind)
	if err != nil {
		log.WithError(err).WithField("kind", kind).Error("Failed to list catalog ids")
		return 0, err
	}
	if len(ids) == 0 {
		log.WithField("kind", kind).Warn("Catalog is empty")
		return 0, fmt.Errorf("%w: no %s entries", ErrNotFound, kind)
	}
	return ids[rng.IntN(len(ids))], nil
}

func (s *service) Subject(ctx context.Context, kind Kind, id int) (Subject, error) {
	switch kind {
	case KindGrape:
		grape, err := s.Grape(ctx, id)
		if err != nil {
			return nil, err
		}
		return grape, nil
	case KindDesignation:
		designation, err := s.Designation(ctx, id)
		if err != nil {
			return nil, err
		}
		return designation, nil
	default:
		return nil, ErrInvalidKind
	}
}

func (s *service) Grape(ctx context.Context, id int) (*GrapeVariety, error) {
	grape, err := s.repo.GetGrape(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			config.WithContext(ctx).WithError(err).WithField("grape_id", id).Error("Failed to load grape")
		}
		return nil, err
	}
	return grape, nil
}

func (s *service) Designation(ctx context.Context, id int) (*WineDesignation, error) {
	designation, err := s.repo.GetDesignation(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			config.WithContext(ctx).WithError(err).WithField("designation_id", id).Error("Failed to load designation")
		}
		return nil, err
	}
	return designation, nil
}

func (s *service) ListGrapes(ctx context.Context, page int) (*GrapePage, error) {
	page = clampPage(page)
	grapes, total, err := s.repo.PageGrapes(ctx, (page-1)*s.pageSize, s.pageSize)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list grapes")
		return nil, err
	}
	prev, next := s.pageLinks(page, total)
	return &GrapePage{Items: grapes, Page: page, Total: total, PrevPage: prev, NextPage: next}, nil
}

func (s *service) ListDesignations(ctx context.Context, page int) (*DesignationPage, error) {
	page = clampPage(page)
	designations, total, err := s.repo.PageDesignations(ctx, (page-1)*s.pageSize, s.pageSize)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list designations")
		return nil, err
	}
	prev, next := s.pageLinks(page, total)
	return &DesignationPage{Items: designations, Page: page, Total: total, PrevPage: prev, NextPage: next}, nil
}

func (s *service) GrapeCard(ctx context.Context, id int) (*GrapeCard, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"grape_id": id})

	grape, err := s.Grape(ctx, id)
	if err != nil {
		return nil, err
	}
	prev, next, err := s.repo.Neighbors(ctx, KindGrape, id)
	if err != nil {
		log.WithError(err).Error("Failed to load grape neighbors")
		return nil, err
	}

	return &GrapeCard{
		ID:         grape.ID,
		Name:       grape.Name,
		Red:        grape.Red,
		Regions:    grape.Regions,
		SubRegions: grape.SubRegions,
		Vineyards:  grape.Vineyards,
		AreaFrance: areaLabel(grape.AreaFrance),
		AreaWorld:  areaLabel(grape.AreaWorld),
		PrevID:     prev,
		NextID:     next,
	}, nil
}

func (s *service) DesignationCard(ctx context.Context, id int) (*DesignationCard, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"designation_id": id})

	designation, err := s.Designation(ctx, id)
	if err != nil {
		return nil, err
	}
	prev, next, err := s.repo.Neighbors(ctx, KindDesignation, id)
	if err != nil {
		log.WithError(err).Error("Failed to load designation neighbors")
		return nil, err
	}

	return &DesignationCard{
		ID:       designation.ID,
		Name:     designation.Name,
		Vineyard: designation.Vineyard,
		Red:      designation.IsRed(),
		White:    designation.StillWhite || designation.SparklingWhite,
		PrevID:   prev,
		NextID:   next,
	}, nil
}

func (s *service) pageLinks(page int, total int64) (prev, next *int) {
	if page > 1 {
		p := page - 1
		prev = &p
	}
	if int64(page*s.pageSize) < total {
		n := page + 1
		next = &n
	}
	return prev, next
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// areaLabel renders unknown cultivated areas as "NC" (non communiqué).
func areaLabel(area *int) string {
	if area == nil {
		return "NC"
	}
	return strconv.Itoa(*area)
}
