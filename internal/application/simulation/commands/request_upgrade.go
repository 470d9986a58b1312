package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// RequestUpgradeCommand represents a request to upgrade a star to the next
// level. Any Ready star may upgrade, including unspecialized ones; a higher
// level raises the star's outbound connection limit.
type RequestUpgradeCommand struct {
	StarID int
}

// RequestUpgradeResponse represents the result of an upgrade request
type RequestUpgradeResponse struct {
	Status         string  // "upgrading" or "busy"
	TargetLevel    int     // level reached once the upgrade completes
	UpgradeSeconds float64 // upgrade duration when Status is "upgrading"
}

// RequestUpgradeHandler handles the RequestUpgrade command
type RequestUpgradeHandler struct {
	store *galaxy.Store
}

// NewRequestUpgradeHandler creates a new RequestUpgradeHandler
func NewRequestUpgradeHandler(store *galaxy.Store) *RequestUpgradeHandler {
	return &RequestUpgradeHandler{store: store}
}

// Handle executes the RequestUpgrade command
func (h *RequestUpgradeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RequestUpgradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RequestUpgradeCommand")
	}

	star, err := h.store.Star(cmd.StarID)
	if err != nil {
		return nil, err
	}

	level := star.Level()
	if !star.RequestUpgrade() {
		// Already building or upgrading; the request is ignored, not queued.
		return &RequestUpgradeResponse{Status: "busy", TargetLevel: level}, nil
	}

	seconds := star.Specialization().UpgradeTime(level)
	common.LoggerFromContext(ctx).Log("info", "Upgrade started", map[string]interface{}{
		"star_id":         cmd.StarID,
		"target_level":    level + 1,
		"upgrade_seconds": seconds,
	})

	return &RequestUpgradeResponse{
		Status:         "upgrading",
		TargetLevel:    level + 1,
		UpgradeSeconds: seconds,
	}, nil
}
