package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
)

// ListConstellationsQuery represents a query for all registered constellations
type ListConstellationsQuery struct{}

// ConstellationView is a read-only snapshot of a constellation
type ConstellationView struct {
	ID    int
	Stars []int
	Color constellation.Color
}

// ListConstellationsResponse represents the result of listing constellations
type ListConstellationsResponse struct {
	Constellations []ConstellationView
}

// ListConstellationsHandler handles the ListConstellations query
type ListConstellationsHandler struct {
	tracker *constellation.Tracker
}

// NewListConstellationsHandler creates a new ListConstellationsHandler
func NewListConstellationsHandler(tracker *constellation.Tracker) *ListConstellationsHandler {
	return &ListConstellationsHandler{tracker: tracker}
}

// Handle executes the ListConstellations query
func (h *ListConstellationsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*ListConstellationsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListConstellationsQuery")
	}

	all := h.tracker.Constellations()
	views := make([]ConstellationView, 0, len(all))
	for _, c := range all {
		views = append(views, ConstellationView{
			ID:    c.ID,
			Stars: append([]int(nil), c.Stars...),
			Color: c.Color,
		})
	}

	return &ListConstellationsResponse{Constellations: views}, nil
}
