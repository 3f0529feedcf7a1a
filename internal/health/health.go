package health

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/vinquiz/internal/config"
	"gorm.io/gorm"
)

// Checker verifies that an infrastructure dependency is reachable.
type Checker interface {
	Check(ctx context.Context) error
}

type Handler struct {
	checks map[string]Checker
}

func NewHandler(checks map[string]Checker) *Handler {
	return &Handler{checks: checks}
}

type result struct {
	Status string `json:"status"`
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	log := config.WithContext(ctx)
	results := make(map[string]result, len(h.checks))
	status := http.StatusOK

	for name, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			log.WithError(err).WithField("check", name).Error("Health check failed")
			results[name] = result{Status: "error"}
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = result{Status: "ok"}
	}

	config.JSON(w, status, results)
}

type DBChecker struct{ DB *gorm.DB }

func (d DBChecker) Check(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type RedisChecker struct{ Client *redis.Client }

func (r RedisChecker) Check(ctx context.Context) error { return r.Client.Ping(ctx).Err() }
