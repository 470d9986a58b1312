package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// GetPlayerPoolQuery represents a query for the shared resource pool
type GetPlayerPoolQuery struct{}

// GetPlayerPoolResponse represents the pool contents at query time
type GetPlayerPoolResponse struct {
	Resources map[shared.ResourceKind]float64
}

// GetPlayerPoolHandler handles the GetPlayerPool query
type GetPlayerPoolHandler struct {
	pool *economy.PlayerPool
}

// NewGetPlayerPoolHandler creates a new GetPlayerPoolHandler
func NewGetPlayerPoolHandler(pool *economy.PlayerPool) *GetPlayerPoolHandler {
	return &GetPlayerPoolHandler{pool: pool}
}

// Handle executes the GetPlayerPool query
func (h *GetPlayerPoolHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*GetPlayerPoolQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlayerPoolQuery")
	}

	return &GetPlayerPoolResponse{Resources: h.pool.Snapshot()}, nil
}
