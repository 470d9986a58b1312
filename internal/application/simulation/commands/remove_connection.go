package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// RemoveConnectionCommand represents a request to sever a connection
type RemoveConnectionCommand struct {
	ConnectionID string // Required: connection to remove
}

// RemoveConnectionResponse represents the result of removing a connection
type RemoveConnectionResponse struct {
	Status string // "removed"
}

// RemoveConnectionHandler handles the RemoveConnection command
type RemoveConnectionHandler struct {
	store *galaxy.Store
}

// NewRemoveConnectionHandler creates a new RemoveConnectionHandler
func NewRemoveConnectionHandler(store *galaxy.Store) *RemoveConnectionHandler {
	return &RemoveConnectionHandler{store: store}
}

// Handle executes the RemoveConnection command
func (h *RemoveConnectionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RemoveConnectionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemoveConnectionCommand")
	}

	if cmd.ConnectionID == "" {
		return nil, fmt.Errorf("connection_id is required")
	}

	if err := h.store.RemoveConnection(cmd.ConnectionID); err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Log("info", "Connection removed", map[string]interface{}{
		"connection_id": cmd.ConnectionID,
	})

	return &RemoveConnectionResponse{Status: "removed"}, nil
}
