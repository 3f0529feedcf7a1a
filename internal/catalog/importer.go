package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saulo-duarte/vinquiz/internal/config"
)

// Grape TSV columns, as exported from the encyclopedia table.
const (
	colGrapeID         = "id"
	colGrapeName       = "Nom du cépage"
	colGrapeRegions    = "Régions"
	colGrapeSubRegions = "Sous-régions"
	colGrapeVineyards  = "Vignobles"
	colGrapeAreaFrance = "Superficie en France (ha)"
	colGrapeAreaWorld  = "Superficie mondiale (ha)"
	colGrapeColor      = "Cépage"
)

// Designation TSV columns.
const (
	colDesignationID             = "id"
	colDesignationName           = "name"
	colDesignationVineyard       = "vineyard"
	colDesignationStillWhite     = "still_white"
	colDesignationStillRose      = "still_rose"
	colDesignationStillRed       = "still_red"
	colDesignationSparklingWhite = "sparkling_white"
	colDesignationSparklingRose  = "sparkling_rose"
	colDesignationSparklingRed   = "sparkling_red"
)

var ErrMissingColumn = errors.New("missing column")

type Importer struct {
	repo  Repository
	cache IDCache
}

func NewImporter(repo Repository, cache IDCache) *Importer {
	return &Importer{repo: repo, cache: cache}
}

// ImportGrapes loads a grape TSV. Rows without a numeric id are skipped.
func (im *Importer) ImportGrapes(ctx context.Context, r io.Reader) (int, error) {
	log := config.WithContext(ctx)

	rows, err := readTSV(r)
	if err != nil {
		return 0, err
	}
	if err := requireColumns(rows.header, colGrapeID, colGrapeName, colGrapeVineyards, colGrapeColor); err != nil {
		return 0, err
	}

	var grapes []GrapeVariety
	for _, rec := range rows.records {
		id, err := strconv.Atoi(rows.field(rec, colGrapeID))
		if err != nil {
			continue
		}
		grapes = append(grapes, GrapeVariety{
			ID:         id,
			Name:       rows.field(rec, colGrapeName),
			Regions:    rows.field(rec, colGrapeRegions),
			SubRegions: rows.field(rec, colGrapeSubRegions),
			Vineyards:  rows.field(rec, colGrapeVineyards),
			AreaFrance: optionalInt(rows.field(rec, colGrapeAreaFrance)),
			AreaWorld:  optionalInt(rows.field(rec, colGrapeAreaWorld)),
			Red:        rows.field(rec, colGrapeColor) == "Noir",
		})
	}

	if err := im.repo.UpsertGrapes(ctx, grapes); err != nil {
		log.WithError(err).Error("Failed to store grapes")
		return 0, err
	}
	im.cache.Invalidate(ctx)

	log.WithField("count", len(grapes)).Info("Grapes imported")
	return len(grapes), nil
}

// ImportDesignations loads a designation TSV. Style columns are truthy when
// marked with x, oui, yes, true or 1.
func (im *Importer) ImportDesignations(ctx context.Context, r io.Reader) (int, error) {
	log := config.WithContext(ctx)

	rows, err := readTSV(r)
	if err != nil {
		return 0, err
	}
	if err := requireColumns(rows.header, colDesignationID, colDesignationName, colDesignationVineyard); err != nil {
		return 0, err
	}

	var designations []WineDesignation
	for _, rec := range rows.records {
		id, err := strconv.Atoi(rows.field(rec, colDesignationID))
		if err != nil {
			continue
		}
		designations = append(designations, WineDesignation{
			ID:             id,
			Name:           rows.field(rec, colDesignationName),
			Vineyard:       rows.field(rec, colDesignationVineyard),
			StillWhite:     truthy(rows.field(rec, colDesignationStillWhite)),
			StillRose:      truthy(rows.field(rec, colDesignationStillRose)),
			StillRed:       truthy(rows.field(rec, colDesignationStillRed)),
			SparklingWhite: truthy(rows.field(rec, colDesignationSparklingWhite)),
			SparklingRose:  truthy(rows.field(rec, colDesignationSparklingRose)),
			SparklingRed:   truthy(rows.field(rec, colDesignationSparklingRed)),
		})
	}

	if err := im.repo.UpsertDesignations(ctx, designations); err != nil {
		log.WithError(err).Error("Failed to store designations")
		return 0, err
	}
	im.cache.Invalidate(ctx)

	log.WithField("count", len(designations)).Info("Designations imported")
	return len(designations), nil
}

type tsvRows struct {
	header  map[string]int
	records [][]string
}

func (t tsvRows) field(rec []string, column string) string {
	i, ok := t.header[column]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func readTSV(r io.Reader) (tsvRows, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return tsvRows{}, fmt.Errorf("reading tsv: %w", err)
	}
	if len(all) == 0 {
		return tsvRows{}, fmt.Errorf("reading tsv: %w", io.ErrUnexpectedEOF)
	}

	header := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		header[strings.TrimSpace(stripNarrowSpace(name))] = i
	}

	records := all[1:]
	for _, rec := range records {
		for i := range rec {
			rec[i] = stripNarrowSpace(rec[i])
		}
	}
	return tsvRows{header: header, records: records}, nil
}

func requireColumns(header map[string]int, columns ...string) error {
	for _, c := range columns {
		if _, ok := header[c]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}
	return nil
}

// stripNarrowSpace drops U+202F, used as a thousands separator in areas.
func stripNarrowSpace(s string) string {
	return strings.ReplaceAll(s, "\u202f", "")
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "x", "oui", "yes", "true", "1":
		return true
	}
	return false
}
