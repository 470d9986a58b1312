package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// RequestConnectionCommand represents a request to link two stars
type RequestConnectionCommand struct {
	From int // Required: source star ID
	To   int // Required: destination star ID
}

// RequestConnectionResponse represents the result of creating a connection
type RequestConnectionResponse struct {
	ConnectionID string
	Colonized    bool // whether the destination was newly colonized
}

// RequestConnectionHandler handles the RequestConnection command
type RequestConnectionHandler struct {
	store *galaxy.Store
}

// NewRequestConnectionHandler creates a new RequestConnectionHandler
func NewRequestConnectionHandler(store *galaxy.Store) *RequestConnectionHandler {
	return &RequestConnectionHandler{store: store}
}

// Handle executes the RequestConnection command
func (h *RequestConnectionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RequestConnectionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RequestConnectionCommand")
	}

	logger := common.LoggerFromContext(ctx)

	target, err := h.store.Star(cmd.To)
	if err != nil {
		return nil, err
	}
	wasColonized := target.IsColonized()

	conn, err := h.store.CreateConnection(cmd.From, cmd.To)
	if err != nil {
		return nil, err
	}

	logger.Log("info", "Connection established", map[string]interface{}{
		"connection_id": conn.ID(),
		"from":          cmd.From,
		"to":            cmd.To,
	})

	return &RequestConnectionResponse{
		ConnectionID: conn.ID(),
		Colonized:    !wasColonized,
	}, nil
}
