package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/edumanage-api/internal/config"
	"github.com/noah-isme/edumanage-api/internal/utils"
)

const healthProbeTimeout = 2 * time.Second

// StoreProbe checks that the backing key-value store is reachable.
type StoreProbe func(ctx context.Context) error

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Store       string    `json:"store"`
	StoreStatus string    `json:"store_status"`
}

// HealthCheck reports application health and whether the store answers.
// A nil probe skips the store check.
func HealthCheck(cfg config.Config, probe StoreProbe) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Store:       cfg.StoreDriver,
			StoreStatus: "unchecked",
		}

		if probe != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthProbeTimeout)
			defer cancel()

			payload.StoreStatus = "up"
			if err := probe(ctx); err != nil {
				payload.Status = "degraded"
				payload.StoreStatus = "down"
				return utils.SendSuccessWithStatus(c, fiber.StatusServiceUnavailable, "store unavailable", payload)
			}
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
