package resolvers

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/juju/errors"

	"github.com/9seconds/carmen/location"
	"github.com/9seconds/carmen/names"
	"github.com/9seconds/carmen/tweet"
)

// Twitter Place types.
const (
	PlaceTypeCountry      = "country"
	PlaceTypeAdmin        = "admin"
	PlaceTypeCity         = "city"
	PlaceTypeNeighborhood = "neighborhood"
	PlaceTypePOI          = "poi"
)

var stateRegexp = regexp.MustCompile(`.+,\s*(\w+)`)

// PlaceResolver locates a tweet by matching Twitter Place metadata with
// a known location. If allowUnknown is set, unknown Places are returned
// as new locations (and remembered if rememberUnknown is set).
// Otherwise, if resolveToAncestor is set, tweets with unknown Places are
// provisionally resolved to the nearest known location containing that
// Place. With none of them set only exact matches are returned.
type PlaceResolver struct {
	allowUnknown      bool
	rememberUnknown   bool
	resolveToAncestor bool

	locationsByName map[location.Canonical]*location.Location
	nextUnknownID   int
}

// Name returns a name of the resolver.
func (pr *PlaceResolver) Name() string {
	return NamePlace
}

// AddLocation indexes location by its canonical name.
func (pr *PlaceResolver) AddLocation(loc *location.Location) {
	pr.locationsByName[loc.Canonical()] = loc
}

// ResolveTweet resolves tweet by its Place.
func (pr *PlaceResolver) ResolveTweet(twt tweet.Tweet) (*Resolution, error) {
	place := twt.Place()
	if place == nil {
		return notFound()
	}

	name, ok := pr.placeName(place)
	if !ok {
		return notFound()
	}

	if loc := pr.find(name); loc != nil {
		return confirmed(loc)
	}

	if !pr.allowUnknown && !pr.resolveToAncestor {
		return notFound()
	}

	unknown := pr.makeUnknown(name, place, twt.IsV2())

	if pr.allowUnknown {
		if pr.rememberUnknown {
			pr.AddLocation(unknown)
		}

		log.WithFields(log.Fields{
			"location":   unknown.String(),
			"id":         unknown.ID,
			"twitter_id": unknown.TwitterID,
		}).Debug("New unknown location.")

		return confirmed(unknown)
	}

	// Place itself is unknown but it may be that its county, state or
	// country is. Walking parents clears city, then county, then state.
	for ancestor := unknown.Parent(); !ancestor.IsEarth(); ancestor = ancestor.Parent() {
		if loc := pr.find(ancestor); loc != nil {
			return provisional(loc)
		}
	}

	return notFound()
}

func (pr *PlaceResolver) find(loc *location.Location) *location.Location {
	return pr.locationsByName[loc.Canonical()]
}

func (pr *PlaceResolver) placeName(place tweet.Object) (*location.Location, bool) {
	country := tweet.GetString(place, "country")
	if country == "" {
		log.WithFields(log.Fields{
			"place_id": tweet.GetString(place, "id"),
		}).Warn("Tweet has Place with no country.")
		return nil, false
	}

	country = names.NormalizeCountry(country)
	name := &location.Location{Country: country}
	fullName := tweet.GetString(place, "full_name")

	switch placeType := strings.ToLower(tweet.GetString(place, "place_type")); placeType {
	case PlaceTypeCountry:
	case PlaceTypeAdmin:
		name.State = tweet.GetString(place, "name")
	case PlaceTypeCity:
		name.City = tweet.GetString(place, "name")

		if strings.ToLower(country) != "united states" {
			break
		}
		if fullName == "" {
			log.WithFields(log.Fields{
				"place_id": tweet.GetString(place, "id"),
			}).Warn("Tweet has Place with no city full name.")
			break
		}
		if match := stateRegexp.FindStringSubmatch(fullName); match != nil {
			name.State = usState(match[1])
		}
	case PlaceTypeNeighborhood, PlaceTypePOI:
		if fullName == "" {
			log.WithFields(log.Fields{
				"place_id":   tweet.GetString(place, "id"),
				"place_type": placeType,
			}).Warn("Tweet has Place with no neighborhood or point of interest full name.")
			break
		}
		if chunks := strings.Split(fullName, ","); len(chunks) > 1 {
			name.City = strings.TrimSpace(chunks[len(chunks)-1])
		}
	default:
		log.WithFields(log.Fields{
			"place_id":   tweet.GetString(place, "id"),
			"place_type": placeType,
		}).Warn("Tweet has unknown place type.")
		return nil, false
	}

	return name, true
}

func (pr *PlaceResolver) makeUnknown(name *location.Location, place tweet.Object, v2 bool) *location.Location {
	unknown := &location.Location{
		ID:        pr.nextUnknownID,
		ParentID:  -1,
		Country:   name.Country,
		State:     name.State,
		County:    name.County,
		City:      name.City,
		TwitterID: tweet.GetString(place, "id"),
	}
	pr.nextUnknownID++

	// places of the nested schema have no url
	if !v2 {
		unknown.TwitterURL = tweet.GetString(place, "url")
	}

	return unknown
}

func usState(token string) string {
	token = strings.ToLower(token)

	if state, ok := names.USStateAbbreviations[token]; ok {
		token = state
	}

	return names.USStates[token]
}

// NewPlaceResolver creates a resolver from the options
// allow_unknown_locations, remember_unknown_locations and
// resolve_to_known_ancestor.
func NewPlaceResolver(opts Options, _ LocationIndex) (Resolver, error) {
	allowUnknown, err := opts.Bool("allow_unknown_locations", false)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create place resolver")
	}

	rememberUnknown, err := opts.Bool("remember_unknown_locations", true)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create place resolver")
	}

	resolveToAncestor, err := opts.Bool("resolve_to_known_ancestor", false)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create place resolver")
	}

	return &PlaceResolver{
		allowUnknown:      allowUnknown,
		rememberUnknown:   rememberUnknown,
		resolveToAncestor: resolveToAncestor,
		locationsByName:   map[location.Canonical]*location.Location{},
		nextUnknownID:     location.UnknownIDStart,
	}, nil
}
