package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/routing"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// ListStarsQuery represents a query for the state of every star
type ListStarsQuery struct{}

// StarView is a read-only snapshot of a single star. Mutating it has no
// effect on the simulation.
type StarView struct {
	ID              int
	Name            string
	X               float64
	Y               float64
	Resources       map[shared.ResourceKind]float64
	Capacities      map[shared.ResourceKind]float64
	ProductionRate  float64
	Colonized       bool
	Home            bool
	StorageHub      bool
	Specialization  galaxy.Specialization
	Level           int
	Units           []galaxy.Unit
	BuildPhase      galaxy.BuildPhase
	BuildRemaining  float64
	HubDistance     int  // hops to the nearest storage hub
	HubReachable    bool // false when no hub is reachable
	ConnectionsFrom []int
	ConnectionsTo   []int
}

// ListStarsResponse represents the result of listing stars
type ListStarsResponse struct {
	Stars []StarView
}

// ListStarsHandler handles the ListStars query
type ListStarsHandler struct {
	store *galaxy.Store
}

// NewListStarsHandler creates a new ListStarsHandler
func NewListStarsHandler(store *galaxy.Store) *ListStarsHandler {
	return &ListStarsHandler{store: store}
}

// Handle executes the ListStars query
func (h *ListStarsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*ListStarsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListStarsQuery")
	}

	stars := h.store.Stars()
	views := make([]StarView, 0, len(stars))
	for _, star := range stars {
		hops, reachable := routing.DistanceToNearestHub(h.store, star.ID())
		x, y := star.Position()
		state := star.BuildState()
		views = append(views, StarView{
			ID:              star.ID(),
			Name:            star.Name(),
			X:               x,
			Y:               y,
			Resources:       star.ResourceSnapshot(),
			Capacities:      star.CapacitySnapshot(),
			ProductionRate:  star.ProductionRate(),
			Colonized:       star.IsColonized(),
			Home:            star.IsHome(),
			StorageHub:      star.IsStorageHub(),
			Specialization:  star.Specialization(),
			Level:           star.Level(),
			Units:           append([]galaxy.Unit(nil), star.Units()...),
			BuildPhase:      state.Phase,
			BuildRemaining:  state.Remaining,
			HubDistance:     hops,
			HubReachable:    reachable,
			ConnectionsFrom: append([]int(nil), star.ConnectionsFrom()...),
			ConnectionsTo:   append([]int(nil), star.ConnectionsTo()...),
		})
	}

	return &ListStarsResponse{Stars: views}, nil
}
