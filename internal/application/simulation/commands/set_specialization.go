package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// SetSpecializationCommand represents a request to assign a specialization
// to a star. Assigning the star's current specialization is a no-op.
type SetSpecializationCommand struct {
	StarID         int
	Specialization galaxy.Specialization
}

// SetSpecializationResponse represents the result of a specialization change
type SetSpecializationResponse struct {
	Status       string  // "building" or "unchanged"
	BuildSeconds float64 // construction duration when Status is "building"
}

// SetSpecializationHandler handles the SetSpecialization command
type SetSpecializationHandler struct {
	store *galaxy.Store
}

// NewSetSpecializationHandler creates a new SetSpecializationHandler
func NewSetSpecializationHandler(store *galaxy.Store) *SetSpecializationHandler {
	return &SetSpecializationHandler{store: store}
}

// Handle executes the SetSpecialization command
func (h *SetSpecializationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetSpecializationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SetSpecializationCommand")
	}

	if !cmd.Specialization.IsValid() {
		return nil, shared.NewValidationError("specialization", fmt.Sprintf("unknown specialization %q", string(cmd.Specialization)))
	}

	star, err := h.store.Star(cmd.StarID)
	if err != nil {
		return nil, err
	}

	if !star.SetSpecialization(cmd.Specialization) {
		return &SetSpecializationResponse{Status: "unchanged"}, nil
	}

	common.LoggerFromContext(ctx).Log("info", "Specialization construction started", map[string]interface{}{
		"star_id":        cmd.StarID,
		"specialization": string(cmd.Specialization),
		"build_seconds":  cmd.Specialization.BuildTime(),
	})

	return &SetSpecializationResponse{
		Status:       "building",
		BuildSeconds: cmd.Specialization.BuildTime(),
	}, nil
}
