package galaxy

// DefaultCollectionInterval is the seconds between collection cycles on a
// connection.
const DefaultCollectionInterval = 2.0

// Connection is a directed, timer-driven resource-collection link between
// two stars. Deactivation (IsCollecting false) is distinct from removal:
// a depleted link stays in the graph until a caller removes it.
type Connection struct {
	id           string
	from         int
	to           int
	interval     float64
	elapsed      float64
	isCollecting bool
	age          float64
}

func newConnection(id string, from, to int, interval float64) *Connection {
	if interval <= 0 {
		interval = DefaultCollectionInterval
	}
	return &Connection{
		id:           id,
		from:         from,
		to:           to,
		interval:     interval,
		isCollecting: true,
	}
}

func (c *Connection) ID() string         { return c.id }
func (c *Connection) From() int          { return c.from }
func (c *Connection) To() int            { return c.to }
func (c *Connection) Interval() float64  { return c.interval }
func (c *Connection) Elapsed() float64   { return c.elapsed }
func (c *Connection) IsCollecting() bool { return c.isCollecting }

// Age returns the seconds elapsed since the connection was created
func (c *Connection) Age() float64 { return c.age }

// Tick advances the connection's lifetime and collection timer by delta
// seconds. Returns true when the repeating collection timer fires this tick.
// A deactivated connection still ages but never fires.
func (c *Connection) Tick(delta float64) bool {
	c.age += delta

	if !c.isCollecting {
		return false
	}

	c.elapsed += delta
	if c.elapsed < c.interval {
		return false
	}

	// Repeating countdown: fires at most once per tick, surplus carries over
	c.elapsed -= c.interval
	if c.elapsed > c.interval {
		c.elapsed = c.interval
	}
	return true
}

// Deactivate permanently halts collection on this connection
func (c *Connection) Deactivate() {
	c.isCollecting = false
}
