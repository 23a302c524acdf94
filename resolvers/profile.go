package resolvers

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	log "github.com/sirupsen/logrus"

	"github.com/juju/errors"

	"github.com/9seconds/carmen/location"
	"github.com/9seconds/carmen/names"
	"github.com/9seconds/carmen/tweet"
)

// DefaultProfileCacheSize is a number of memoized profile strings.
const DefaultProfileCacheSize = 4096

var (
	normalizationRegexp = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
	lastCommaRegexp     = regexp.MustCompile(`.+,\s*([^,]+)$`)
)

// Normalize strips punctuation, collapses runs of whitespace into a
// single space and lowercases the name. If preserveCommas is set, runs
// containing a comma are collapsed into comma instead.
func Normalize(name string, preserveCommas bool) string {
	normalized := normalizationRegexp.ReplaceAllStringFunc(name, func(match string) string {
		if preserveCommas && strings.Contains(match, ",") {
			return ","
		}
		return " "
	})

	return strings.ToLower(strings.TrimSpace(normalized))
}

// ProfileResolver locates a tweet by matching the author profile
// location with the names and aliases of known locations. Matching is
// exact, there is no fuzziness here.
type ProfileResolver struct {
	locationsByName map[string]*location.Location
	cache           *lru.Cache
}

// Name returns a name of the resolver.
func (pr *ProfileResolver) Name() string {
	return NameProfile
}

// AddLocation indexes every alias and its normalized version.
func (pr *ProfileResolver) AddLocation(loc *location.Location) {
	for _, alias := range loc.Aliases {
		for _, key := range []string{alias, Normalize(alias, false)} {
			if key == "" {
				continue
			}
			if previous, ok := pr.locationsByName[key]; ok && previous != loc {
				log.WithFields(log.Fields{
					"name":     key,
					"previous": previous.ID,
					"current":  loc.ID,
				}).Debug("Duplicate location name.")
			}
			pr.locationsByName[key] = loc
		}
	}

	if pr.cache != nil {
		pr.cache.Purge()
	}
}

// ResolveTweet resolves tweet by the profile location of its author.
func (pr *ProfileResolver) ResolveTweet(twt tweet.Tweet) (*Resolution, error) {
	profileLocation := tweet.GetString(twt.User(), "location")
	if profileLocation == "" {
		return notFound()
	}

	loc := pr.lookup(profileLocation)
	if loc == nil {
		return notFound()
	}

	return confirmed(loc)
}

func (pr *ProfileResolver) lookup(profileLocation string) *location.Location {
	normalized := Normalize(profileLocation, false)
	if normalized == "" {
		return nil
	}

	// Commas matter for the lookup so the raw string is the key.
	if pr.cache != nil {
		if value, ok := pr.cache.Get(profileLocation); ok {
			return value.(*location.Location)
		}
	}

	loc := pr.find(normalized, profileLocation)

	if pr.cache != nil {
		pr.cache.Add(profileLocation, loc)
	}

	return loc
}

func (pr *ProfileResolver) find(normalized, profileLocation string) *location.Location {
	if loc, ok := pr.locationsByName[normalized]; ok {
		return loc
	}

	// Something like "Towson, MD": try to get at least a state or a
	// country from the last part.
	match := lastCommaRegexp.FindStringSubmatch(Normalize(profileLocation, true))
	if match == nil {
		return nil
	}

	afterComma := strings.TrimSpace(match[1])
	name := ""

	if _, ok := names.USStates[afterComma]; ok {
		name = afterComma
	} else if _, ok := names.Countries[afterComma]; ok {
		name = afterComma
	} else if state, ok := names.USStateAbbreviations[afterComma]; ok {
		name = state
	} else if country, ok := names.CountryCodes[afterComma]; ok {
		name = country
	}

	if name == "" {
		return nil
	}

	return pr.locationsByName[Normalize(name, false)]
}

// NewProfileResolver creates a resolver from the option cache_size.
// Zero cache size disables memoization.
func NewProfileResolver(opts Options, _ LocationIndex) (Resolver, error) {
	cacheSize, err := opts.Int("cache_size", DefaultProfileCacheSize)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create profile resolver")
	}
	if cacheSize < 0 {
		return nil, errors.Errorf("Incorrect cache size %d", cacheSize)
	}

	rv := &ProfileResolver{
		locationsByName: map[string]*location.Location{},
	}

	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, errors.Annotate(err, "Cannot create profile cache")
		}
		rv.cache = cache
	}

	return rv, nil
}
