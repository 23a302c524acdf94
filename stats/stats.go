package stats

import (
	"encoding/json"
	"sort"

	"github.com/9seconds/carmen/location"
	"github.com/9seconds/carmen/tweet"
)

// Stats collects summary statistics of a run: how many tweets carry
// geolocation signals and how they were resolved.
type Stats struct {
	Total    uint64
	Skipped  uint64
	Resolved uint64

	HasPlace           uint64
	HasCoordinates     uint64
	HasGeo             uint64
	HasProfileLocation uint64

	Granularity map[string]uint64
	Methods     map[string]uint64
}

// Seen registers a tweet before resolution.
func (s *Stats) Seen(twt tweet.Tweet) {
	s.Total++

	if twt.Place() != nil {
		s.HasPlace++
	}

	if twt.IsV2() {
		if twt.Object("data", "geo", "coordinates") != nil {
			s.HasCoordinates++
		}
		if twt.Object("data", "geo") != nil {
			s.HasGeo++
		}
	} else {
		if twt.Object("coordinates") != nil {
			s.HasCoordinates++
		}
		if twt.Object("geo") != nil {
			s.HasGeo++
		}
	}

	if tweet.GetString(twt.User(), "location") != "" {
		s.HasProfileLocation++
	}
}

// ResolvedTo registers a resolved location.
func (s *Stats) ResolvedTo(loc *location.Location) {
	s.Resolved++
	s.Granularity[loc.Granularity()]++
	s.Methods[loc.ResolutionMethod]++
}

// Skip registers a line which was not a tweet.
func (s *Stats) Skip() {
	s.Skipped++
}

// MethodNames returns resolution methods sorted by name.
func (s *Stats) MethodNames() []string {
	rv := make([]string, 0, len(s.Methods))
	for k := range s.Methods {
		rv = append(rv, k)
	}
	sort.Strings(rv)

	return rv
}

// MarshalJSON is to conform json.Marshaller interface.
func (s *Stats) MarshalJSON() ([]byte, error) {
	rawStruct := struct {
		Total              uint64            `json:"total"`
		Skipped            uint64            `json:"skipped"`
		Resolved           uint64            `json:"resolved"`
		HasPlace           uint64            `json:"has_place"`
		HasCoordinates     uint64            `json:"has_coordinates"`
		HasGeo             uint64            `json:"has_geo"`
		HasProfileLocation uint64            `json:"has_profile_location"`
		Granularity        map[string]uint64 `json:"granularity"`
		Methods            map[string]uint64 `json:"methods"`
	}{
		Total:              s.Total,
		Skipped:            s.Skipped,
		Resolved:           s.Resolved,
		HasPlace:           s.HasPlace,
		HasCoordinates:     s.HasCoordinates,
		HasGeo:             s.HasGeo,
		HasProfileLocation: s.HasProfileLocation,
		Granularity:        s.Granularity,
		Methods:            s.Methods,
	}

	return json.Marshal(&rawStruct)
}

// New creates empty statistics.
func New() *Stats {
	return &Stats{
		Granularity: map[string]uint64{},
		Methods:     map[string]uint64{},
	}
}
