package location

import (
	"encoding/json"
	"strings"
)

// UnknownIDStart is the first id given to locations which were
// discovered in tweets but are absent in the database. It is big enough
// to never collide with real database ids.
const UnknownIDStart = 1000000

// Earth is a location which is an ancestor of every other location. It
// has all fields empty and is never a real place.
var Earth = Location{ID: -1, ParentID: -1}

// Canonical is a lowercased name of the location. It is comparable so
// it can be used as a map key for exact name matching.
type Canonical struct {
	Country string
	State   string
	County  string
	City    string
}

// Location contains information about a geographic unit and how it was
// identified. Only one of City, County, State, Country is the most
// specific one but all higher levels are populated if known. Empty
// string means that the field does not apply to this location.
type Location struct {
	ID       int
	ParentID int

	Latitude  float64
	Longitude float64

	Country string
	State   string
	County  string
	City    string

	Aliases []string

	// Known is true if location comes from the database.
	Known bool

	// ResolutionMethod is a name of the resolver which produced this
	// location for a tweet.
	ResolutionMethod string

	TwitterURL string
	TwitterID  string
}

// Name returns country, state, county and city names as is.
func (l *Location) Name() Canonical {
	return Canonical{
		Country: l.Country,
		State:   l.State,
		County:  l.County,
		City:    l.City,
	}
}

// Canonical returns case-insensitive version of Name.
func (l *Location) Canonical() Canonical {
	return Canonical{
		Country: strings.ToLower(l.Country),
		State:   strings.ToLower(l.State),
		County:  strings.ToLower(l.County),
		City:    strings.ToLower(l.City),
	}
}

// Parent returns a location for the administrative unit above this
// one. It contains names only: ids and coordinates are unknown.
func (l *Location) Parent() *Location {
	parent := &Location{ID: -1, ParentID: -1}

	switch {
	case l.City != "":
		parent.Country = l.Country
		parent.State = l.State
		parent.County = l.County
	case l.County != "":
		parent.Country = l.Country
		parent.State = l.State
	case l.State != "":
		parent.Country = l.Country
	}

	return parent
}

// IsEarth checks if location has no names at all.
func (l *Location) IsEarth() bool {
	return l.Canonical() == Canonical{}
}

// Granularity returns a name of the most specific level.
func (l *Location) Granularity() string {
	switch {
	case l.City != "":
		return "city"
	case l.County != "":
		return "county"
	case l.State != "":
		return "state"
	case l.Country != "":
		return "country"
	}

	return ""
}

func (l *Location) String() string {
	parts := make([]string, 0, 4)

	for _, v := range []string{l.City, l.County, l.State, l.Country} {
		if v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, ", ")
}

// MarshalJSON is to conform json.Marshaller interface. It produces a
// reduced set of fields which are attached to resolved tweets. Empty
// values are omitted.
func (l *Location) MarshalJSON() ([]byte, error) {
	rawStruct := struct {
		Country          string  `json:"country,omitempty"`
		State            string  `json:"state,omitempty"`
		County           string  `json:"county,omitempty"`
		City             string  `json:"city,omitempty"`
		ID               int     `json:"id,omitempty"`
		Latitude         float64 `json:"latitude,omitempty"`
		Longitude        float64 `json:"longitude,omitempty"`
		ResolutionMethod string  `json:"resolution_method,omitempty"`
	}{
		Country:          l.Country,
		State:            l.State,
		County:           l.County,
		City:             l.City,
		ID:               l.ID,
		Latitude:         l.Latitude,
		Longitude:        l.Longitude,
		ResolutionMethod: l.ResolutionMethod,
	}

	return json.Marshal(&rawStruct)
}
