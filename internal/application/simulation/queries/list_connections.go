package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// ListConnectionsQuery represents a query for every active connection
type ListConnectionsQuery struct{}

// ConnectionView is a read-only snapshot of a connection
type ConnectionView struct {
	ID           string
	From         int
	To           int
	Interval     float64
	Elapsed      float64
	IsCollecting bool
	Age          float64
}

// ListConnectionsResponse represents the result of listing connections
type ListConnectionsResponse struct {
	Connections []ConnectionView
}

// ListConnectionsHandler handles the ListConnections query
type ListConnectionsHandler struct {
	store *galaxy.Store
}

// NewListConnectionsHandler creates a new ListConnectionsHandler
func NewListConnectionsHandler(store *galaxy.Store) *ListConnectionsHandler {
	return &ListConnectionsHandler{store: store}
}

// Handle executes the ListConnections query
func (h *ListConnectionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*ListConnectionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListConnectionsQuery")
	}

	conns := h.store.Connections()
	views := make([]ConnectionView, 0, len(conns))
	for _, conn := range conns {
		views = append(views, ConnectionView{
			ID:           conn.ID(),
			From:         conn.From(),
			To:           conn.To(),
			Interval:     conn.Interval(),
			Elapsed:      conn.Elapsed(),
			IsCollecting: conn.IsCollecting(),
			Age:          conn.Age(),
		})
	}

	return &ListConnectionsResponse{Connections: views}, nil
}
