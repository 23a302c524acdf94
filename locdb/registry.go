package locdb

import (
	"github.com/juju/errors"

	"github.com/9seconds/carmen/location"
)

// ErrUnknownLocationID is returned if location was never loaded.
var ErrUnknownLocationID = errors.New("Unknown location id")

// Registry keeps every loaded location by its id.
type Registry struct {
	byID map[int]*location.Location
}

// Add remembers a location. Later locations replace earlier ones with
// the same id.
func (r *Registry) Add(loc *location.Location) {
	r.byID[loc.ID] = loc
}

// Len returns a number of known ids.
func (r *Registry) Len() int {
	return len(r.byID)
}

// LocationByID returns a location with the given id.
func (r *Registry) LocationByID(id int) (*location.Location, error) {
	loc, ok := r.byID[id]
	if !ok {
		return nil, errors.Annotatef(ErrUnknownLocationID, "id %d", id)
	}

	return loc, nil
}

// NewRegistry creates new empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: map[int]*location.Location{}}
}
