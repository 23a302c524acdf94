package resolvers

import (
	"github.com/9seconds/carmen/location"
	"github.com/9seconds/carmen/tweet"
)

// Names of bundled resolvers.
const (
	NamePlace    = "place"
	NameGeocode  = "geocode"
	NameProfile  = "profile"
	NameTimezone = "timezone"
)

// DefaultOrder is an order of resolvers which is used if nothing is
// configured. Place metadata is the most authoritative one.
var DefaultOrder = []string{NamePlace, NameGeocode, NameProfile}

// Resolution is a location proposed by a resolver. Provisional
// resolutions have low confidence and yield to any non-provisional one
// produced by a resolver with a lower priority.
type Resolution struct {
	Provisional bool
	Location    *location.Location
}

// Resolver is the interface which defines a strategy matching tweets
// to known locations.
type Resolver interface {
	// Name returns a name which is attached to resolved locations.
	Name() string

	// AddLocation adds location to the set of known locations. Resolvers
	// build their own lookup tables here.
	AddLocation(loc *location.Location)

	// ResolveTweet returns the best known location for a tweet. nil
	// resolution means that nothing was found.
	ResolveTweet(twt tweet.Tweet) (*Resolution, error)
}

// LocationIndex gives access to every location loaded from the
// database by its id.
type LocationIndex interface {
	LocationByID(id int) (*location.Location, error)
}

// Factory creates a resolver with the given options.
type Factory func(opts Options, index LocationIndex) (Resolver, error)

// DefaultFactories returns a fresh mapping of bundled resolver names to
// their factories. Callers may add their own or remove some before
// passing it to NewResolverSet.
func DefaultFactories() map[string]Factory {
	return map[string]Factory{
		NamePlace:    NewPlaceResolver,
		NameGeocode:  NewGeocodeResolver,
		NameProfile:  NewProfileResolver,
		NameTimezone: NewTimezoneResolver,
	}
}

func notFound() (*Resolution, error) {
	return nil, nil
}

func confirmed(loc *location.Location) (*Resolution, error) {
	return &Resolution{Location: loc}, nil
}

func provisional(loc *location.Location) (*Resolution, error) {
	return &Resolution{Provisional: true, Location: loc}, nil
}
