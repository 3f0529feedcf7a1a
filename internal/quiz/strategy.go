package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/saulo-duarte/vinquiz/internal/region"
)

// DefaultMaxResample bounds how many subjects a region quiz may draw before
// giving up with ErrEmptyReferenceSet.
const DefaultMaxResample = 50

// Strategy generates questions for one game type and checks answers against
// the subject the question was built from.
type Strategy interface {
	Generate(ctx context.Context, cat catalog.Catalog, rng catalog.Random) (*Question, error)
	Check(ctx context.Context, cat catalog.Catalog, pending Pending, choice string) (bool, error)
}

// Strategy returns the question strategy bound to t.
func (t GameType) Strategy(maxResample int) (Strategy, error) {
	if maxResample < 1 {
		maxResample = DefaultMaxResample
	}
	switch t {
	case GrapeColorQuiz:
		return grapeColor{}, nil
	case DesignationColorQuiz:
		return designationColor{}, nil
	case GrapeRegionQuiz:
		return grapeRegion{maxResample: maxResample}, nil
	case DesignationRegionQuiz:
		return designationRegion{maxResample: maxResample}, nil
	default:
		return nil, ErrUnknownGameType
	}
}

// offered returns the offered option matching choice, ignoring case and
// surrounding spaces.
func offered(pending Pending, choice string) (string, error) {
	choice = strings.TrimSpace(choice)
	for _, opt := range pending.Options {
		if strings.EqualFold(opt, choice) {
			return opt, nil
		}
	}
	return "", ErrInvalidChoice
}

func colorQuestion(t GameType, subject catalog.Subject, label string) *Question {
	return &Question{
		GameType:        t,
		SubjectKind:     t.SubjectKind(),
		SubjectID:       subject.SubjectID(),
		SubjectName:     subject.SubjectName(),
		CorrectLabel:    label,
		LeftLabel:       LabelRed,
		RightLabel:      LabelWhite,
		LeftIsPositive:  label == LabelRed,
		RightIsPositive: label == LabelWhite,
	}
}

func regionQuestion(t GameType, subject catalog.Subject, positive, negative string, rng catalog.Random) *Question {
	q := &Question{
		GameType:        t,
		SubjectKind:     t.SubjectKind(),
		SubjectID:       subject.SubjectID(),
		SubjectName:     subject.SubjectName(),
		CorrectLabel:    positive,
		LeftLabel:       positive,
		RightLabel:      negative,
		LeftIsPositive:  true,
		RightIsPositive: false,
	}
	if rng.IntN(2) == 1 {
		q.LeftLabel, q.RightLabel = q.RightLabel, q.LeftLabel
		q.LeftIsPositive, q.RightIsPositive = false, true
	}
	return q
}

type grapeColor struct{}

func grapeLabel(g *catalog.GrapeVariety) string {
	if g.Red {
		return LabelRed
	}
	return LabelWhite
}

func (grapeColor) Generate(ctx context.Context, cat catalog.Catalog, rng catalog.Random) (*Question, error) {
	id, err := cat.RandomSubjectID(ctx, catalog.KindGrape, rng)
	if err != nil {
		return nil, err
	}
	grape, err := cat.Grape(ctx, id)
	if err != nil {
		return nil, err
	}
	return colorQuestion(GrapeColorQuiz, grape, grapeLabel(grape)), nil
}

func (grapeColor) Check(ctx context.Context, cat catalog.Catalog, pending Pending, choice string) (bool, error) {
	opt, err := offered(pending, choice)
	if err != nil {
		return false, err
	}
	grape, err := cat.Grape(ctx, pending.SubjectID)
	if err != nil {
		return false, err
	}
	return opt == grapeLabel(grape), nil
}

type designationColor struct{}

// DesignationLabel resolves the Red/White answer for a designation. Rosé
// styles count as White, and Red wins when both colors are produced.
func DesignationLabel(d *catalog.WineDesignation) string {
	if d.IsRed() {
		return LabelRed
	}
	return LabelWhite
}

func (designationColor) Generate(ctx context.Context, cat catalog.Catalog, rng catalog.Random) (*Question, error) {
	id, err := cat.RandomSubjectID(ctx, catalog.KindDesignation, rng)
	if err != nil {
		return nil, err
	}
	designation, err := cat.Designation(ctx, id)
	if err != nil {
		return nil, err
	}
	return colorQuestion(DesignationColorQuiz, designation, DesignationLabel(designation)), nil
}

func (designationColor) Check(ctx context.Context, cat catalog.Catalog, pending Pending, choice string) (bool, error) {
	opt, err := offered(pending, choice)
	if err != nil {
		return false, err
	}
	designation, err := cat.Designation(ctx, pending.SubjectID)
	if err != nil {
		return false, err
	}
	return opt == DesignationLabel(designation), nil
}

type grapeRegion struct {
	maxResample int
}

func (s grapeRegion) Generate(ctx context.Context, cat catalog.Catalog, rng catalog.Random) (*Question, error) {
	log := config.WithContext(ctx)

	for attempt := 1; attempt <= s.maxResample; attempt++ {
		id, err := cat.RandomSubjectID(ctx, catalog.KindGrape, rng)
		if err != nil {
			return nil, err
		}
		grape, err := cat.Grape(ctx, id)
		if err != nil {
			return nil, err
		}

		positive, negative := region.Split(grape.Vineyards)
		if len(positive) == 0 || len(negative) == 0 {
			log.WithField("grape_id", id).Debug("Grape has no usable region split, resampling")
			continue
		}

		pos := positive[rng.IntN(len(positive))]
		neg := negative[rng.IntN(len(negative))]
		return regionQuestion(GrapeRegionQuiz, grape, pos, neg, rng), nil
	}

	log.WithField("attempts", s.maxResample).Error("Grape region quiz exhausted its resample budget")
	return nil, fmt.Errorf("%w: %d grapes drawn", ErrEmptyReferenceSet, s.maxResample)
}

func (grapeRegion) Check(ctx context.Context, cat catalog.Catalog, pending Pending, choice string) (bool, error) {
	opt, err := offered(pending, choice)
	if err != nil {
		return false, err
	}
	grape, err := cat.Grape(ctx, pending.SubjectID)
	if err != nil {
		return false, err
	}
	return region.Matches(grape.Vineyards, opt), nil
}

type designationRegion struct {
	maxResample int
}

// Designations name a single vineyard, so a usable subject normalizes to
// exactly one region token.
func (s designationRegion) Generate(ctx context.Context, cat catalog.Catalog, rng catalog.Random) (*Question, error) {
	log := config.WithContext(ctx)

	for attempt := 1; attempt <= s.maxResample; attempt++ {
		id, err := cat.RandomSubjectID(ctx, catalog.KindDesignation, rng)
		if err != nil {
			return nil, err
		}
		designation, err := cat.Designation(ctx, id)
		if err != nil {
			return nil, err
		}

		positive, negative := region.Split(designation.Vineyard)
		if len(positive) != 1 {
			log.WithField("designation_id", id).Debug("Designation vineyard does not map to one region, resampling")
			continue
		}

		neg := negative[rng.IntN(len(negative))]
		return regionQuestion(DesignationRegionQuiz, designation, positive[0], neg, rng), nil
	}

	log.WithField("attempts", s.maxResample).Error("Designation region quiz exhausted its resample budget")
	return nil, fmt.Errorf("%w: %d designations drawn", ErrEmptyReferenceSet, s.maxResample)
}

func (designationRegion) Check(ctx context.Context, cat catalog.Catalog, pending Pending, choice string) (bool, error) {
	opt, err := offered(pending, choice)
	if err != nil {
		return false, err
	}
	designation, err := cat.Designation(ctx, pending.SubjectID)
	if err != nil {
		return false, err
	}
	return region.Matches(designation.Vineyard, opt), nil
}
