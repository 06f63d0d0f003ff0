package store

// Location is the history entry the store persists into: a place that holds
// exactly one query string. Replace overwrites it in place; there is no
// notion of pushing a new entry.
type Location interface {
	Query() (string, error)
	Replace(query string) error
}

// MemoryLocation is a Location held in memory. It backs the HTTP front end,
// where the browser owns the real address bar, and tests.
type MemoryLocation struct {
	query  string
	writes int
}

// NewMemoryLocation returns a location seeded with query (which may also be
// a full URL or start with '?').
func NewMemoryLocation(query string) *MemoryLocation {
	return &MemoryLocation{query: query}
}

func (m *MemoryLocation) Query() (string, error) { return m.query, nil }

func (m *MemoryLocation) Replace(query string) error {
	m.query = query
	m.writes++
	return nil
}

// Writes counts calls to Replace.
func (m *MemoryLocation) Writes() int { return m.writes }
