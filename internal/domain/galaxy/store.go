package galaxy

import (
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/pkg/utils"
)

// ConnectionLimit returns the maximum outbound connections for a star at the
// given specialization level. The limit follows the Fibonacci sequence
// shifted so level 1 allows 1 and level 2 allows 2: higher-level stars
// support super-linearly more outbound routes.
func ConnectionLimit(level int) int {
	if level <= 1 {
		return 1
	}

	a, b := 1, 2
	for i := 2; i < level; i++ {
		a, b = b, a+b
	}
	return b
}

// Store is the arena that exclusively owns all stars and connections.
// Stars are keyed by dense integer IDs and connections by opaque string IDs;
// everything else in the simulation holds IDs, never pointers, so removal
// can never dangle.
type Store struct {
	stars     map[int]*Star
	starOrder []int
	nextID    int

	connections map[string]*Connection
	connOrder   []string
	pairIndex   map[[2]int]string

	collectionInterval float64
}

// NewStore creates an empty graph store using the default collection interval
func NewStore() *Store {
	return NewStoreWithInterval(DefaultCollectionInterval)
}

// NewStoreWithInterval creates an empty graph store whose new connections
// collect every interval seconds.
func NewStoreWithInterval(interval float64) *Store {
	return &Store{
		stars:              make(map[int]*Star),
		connections:        make(map[string]*Connection),
		pairIndex:          make(map[[2]int]string),
		collectionInterval: interval,
	}
}

// CreateStar adds a star to the arena and returns its ID
func (st *Store) CreateStar(attrs StarAttributes) int {
	id := st.nextID
	st.nextID++

	st.stars[id] = newStar(id, attrs)
	st.starOrder = append(st.starOrder, id)
	return id
}

// Star returns the star with the given ID, failing with NotFoundError on a
// stale or unknown ID.
func (st *Store) Star(id int) (*Star, error) {
	star, ok := st.stars[id]
	if !ok {
		return nil, shared.NewNotFoundError(id)
	}
	return star, nil
}

// HasStar reports whether a star with the given ID exists
func (st *Store) HasStar(id int) bool {
	_, ok := st.stars[id]
	return ok
}

// Stars returns all stars in creation order
func (st *Store) Stars() []*Star {
	stars := make([]*Star, 0, len(st.starOrder))
	for _, id := range st.starOrder {
		stars = append(stars, st.stars[id])
	}
	return stars
}

// StarCount returns the number of stars in the arena
func (st *Store) StarCount() int {
	return len(st.stars)
}

// CreateConnection adds a directed connection between two stars. Validation
// runs against current state before anything mutates: unknown endpoints,
// self-loops, duplicate ordered pairs, and the source star's Fibonacci
// connection limit all reject the request and leave the graph unchanged.
// Reaching an uncolonized star colonizes it.
func (st *Store) CreateConnection(from, to int) (*Connection, error) {
	source, ok := st.stars[from]
	if !ok {
		return nil, shared.NewNotFoundError(from)
	}
	target, ok := st.stars[to]
	if !ok {
		return nil, shared.NewNotFoundError(to)
	}

	if from == to {
		return nil, shared.NewSelfLoopError(from)
	}

	if _, exists := st.pairIndex[[2]int{from, to}]; exists {
		return nil, shared.NewAlreadyExistsError(from, to)
	}

	limit := ConnectionLimit(source.level)
	if len(source.connectionsTo) >= limit {
		return nil, shared.NewConnectionLimitError(from, source.level, limit, len(source.connectionsTo))
	}

	conn := newConnection(utils.NewConnectionID(from, to), from, to, st.collectionInterval)
	st.connections[conn.id] = conn
	st.connOrder = append(st.connOrder, conn.id)
	st.pairIndex[[2]int{from, to}] = conn.id

	source.addOutbound(to)
	target.addInbound(from)

	if !target.colonized {
		target.MarkColonized()
	}

	return conn, nil
}

// Connection returns the connection with the given ID
func (st *Store) Connection(id string) (*Connection, error) {
	conn, ok := st.connections[id]
	if !ok {
		return nil, shared.NewConnectionNotFoundError(id)
	}
	return conn, nil
}

// Connections returns all connections in creation order
func (st *Store) Connections() []*Connection {
	conns := make([]*Connection, 0, len(st.connOrder))
	for _, id := range st.connOrder {
		conns = append(conns, st.connections[id])
	}
	return conns
}

// ConnectionBetween returns the connection for the ordered pair, if any
func (st *Store) ConnectionBetween(from, to int) (*Connection, bool) {
	id, ok := st.pairIndex[[2]int{from, to}]
	if !ok {
		return nil, false
	}
	return st.connections[id], true
}

// RemoveConnection deletes a connection and restores both endpoints'
// adjacency lists. Removal is a caller action, unlike deactivation.
func (st *Store) RemoveConnection(id string) error {
	conn, ok := st.connections[id]
	if !ok {
		return shared.NewConnectionNotFoundError(id)
	}

	delete(st.connections, id)
	delete(st.pairIndex, [2]int{conn.from, conn.to})
	for i, candidate := range st.connOrder {
		if candidate == id {
			st.connOrder = append(st.connOrder[:i], st.connOrder[i+1:]...)
			break
		}
	}

	if source, ok := st.stars[conn.from]; ok {
		source.removeOutbound(conn.to)
	}
	if target, ok := st.stars[conn.to]; ok {
		target.removeInbound(conn.from)
	}

	return nil
}

// IncomingConnections returns the connections whose destination is the
// given star.
func (st *Store) IncomingConnections(starID int) []*Connection {
	var incoming []*Connection
	for _, id := range st.connOrder {
		conn := st.connections[id]
		if conn.to == starID {
			incoming = append(incoming, conn)
		}
	}
	return incoming
}

// Neighbors returns the adjacent star IDs treating connections as
// undirected: outbound targets first, then inbound sources. Route distance
// and cycle detection both traverse this combined view.
func (st *Store) Neighbors(starID int) []int {
	star, ok := st.stars[starID]
	if !ok {
		return nil
	}

	neighbors := make([]int, 0, len(star.connectionsTo)+len(star.connectionsFrom))
	neighbors = append(neighbors, star.connectionsTo...)
	neighbors = append(neighbors, star.connectionsFrom...)
	return neighbors
}
