package locdb

import (
	"github.com/9seconds/carmen/location"
)

// Record presents a line of the location database. Unset string fields
// are empty strings.
type Record struct {
	ID          int      `json:"id"`
	ParentID    int      `json:"parent_id"`
	Country     string   `json:"country"`
	State       string   `json:"state"`
	County      string   `json:"county"`
	City        string   `json:"city"`
	CountryCode string   `json:"countrycode"`
	StateCode   string   `json:"statecode"`
	CountyCode  string   `json:"countycode"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Aliases     []string `json:"aliases"`

	Postal string  `json:"postal,omitempty"`
	UZip   string  `json:"uzip,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// Location converts record into a known location.
func (r *Record) Location() *location.Location {
	aliases := make([]string, len(r.Aliases))
	copy(aliases, r.Aliases)

	return &location.Location{
		ID:        r.ID,
		ParentID:  r.ParentID,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Country:   r.Country,
		State:     r.State,
		County:    r.County,
		City:      r.City,
		Aliases:   aliases,
		Known:     true,
	}
}
