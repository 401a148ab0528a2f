package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ticketswapper/ticketswapper/internal/pkg/logger"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
)

const pnrCacheKey = "pnr:registry:records"

type pnrRegistryResponse struct {
	Records []models.PNRRecord `json:"records"`
}

// FetchPNRRecords pulls the full record set from the PNR registry. The
// registry is small and changes rarely, so the response is cached in Redis
// for the configured TTL. No retries, the registry call either answers
// within the client timeout or the validation fails.
func (g *MarketplaceGW) FetchPNRRecords(ctx context.Context) ([]models.PNRRecord, error) {
	if cached, err := g.redis.Get(ctx, pnrCacheKey); err == nil && cached != "" {
		var records []models.PNRRecord
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			return records, nil
		}
	}

	var resp pnrRegistryResponse
	if err := g.pnrClient.GetJSON(ctx, "/v1/pnr/records", &resp); err != nil {
		return nil, fmt.Errorf("PNR registry fetch failed: %w", err)
	}

	if data, err := json.Marshal(resp.Records); err == nil {
		ttl := time.Duration(g.cfg.PNRRegistry.CacheTTL) * time.Second
		if err := g.redis.Set(ctx, pnrCacheKey, data, ttl); err != nil {
			logger.Warn("Failed to cache PNR records", logger.Err(err))
		}
	}

	return resp.Records, nil
}
