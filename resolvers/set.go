package resolvers

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/juju/errors"

	"github.com/9seconds/carmen/location"
	"github.com/9seconds/carmen/locdb"
	"github.com/9seconds/carmen/tweet"
)

// ResolverSet is a supervising resolver which asks child resolvers in
// the priority order and picks the best answer.
type ResolverSet struct {
	Resolvers []Resolver

	registry *locdb.Registry
}

// AddLocation informs every resolver about location.
func (rs *ResolverSet) AddLocation(loc *location.Location) {
	if !loc.IsEarth() {
		rs.registry.Add(loc)
	}

	for _, v := range rs.Resolvers {
		v.AddLocation(loc)
	}
}

// LoadLocations reads location database and returns a number of loaded
// locations. Earth is added at the end so ancestor walks terminate.
func (rs *ResolverSet) LoadLocations(reader io.Reader) (int, error) {
	dbReader := locdb.NewReader(reader)
	count := 0

	for {
		record, err := dbReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, errors.Annotate(err, "Cannot load locations")
		}

		rs.AddLocation(record.Location())
		count++
	}

	earth := location.Earth
	rs.AddLocation(&earth)

	log.WithFields(log.Fields{
		"locations": count,
		"lines":     dbReader.Line(),
	}).Info("Locations are loaded.")

	return count, nil
}

// LocationByID returns a loaded location.
func (rs *ResolverSet) LocationByID(id int) (*location.Location, error) {
	return rs.registry.LocationByID(id)
}

// ResolveTweet returns the first non-provisional location proposed by
// resolvers in priority order. If there is none, the first provisional
// one is returned. Returned location is a copy with ResolutionMethod
// set to the name of the resolver. nil means nothing was found.
func (rs *ResolverSet) ResolveTweet(twt tweet.Tweet) (*location.Location, error) {
	var fallback *Resolution
	fallbackName := ""

	for _, v := range rs.Resolvers {
		resolution, err := v.ResolveTweet(twt)
		if err != nil {
			return nil, errors.Annotatef(err, "Resolver %s has failed", v.Name())
		}
		if resolution == nil || resolution.Location == nil {
			continue
		}

		if !resolution.Provisional {
			return tagged(resolution.Location, v.Name()), nil
		}

		if fallback == nil {
			fallback = resolution
			fallbackName = v.Name()
		}
	}

	if fallback == nil {
		return nil, nil
	}

	return tagged(fallback.Location, fallbackName), nil
}

func tagged(loc *location.Location, name string) *location.Location {
	rv := *loc
	rv.ResolutionMethod = name

	return &rv
}

// NewResolverSet creates resolvers with the given names in the given
// order. Empty order means DefaultOrder. options are keyed by resolver
// name; factories is usually DefaultFactories().
func NewResolverSet(order []string, options map[string]Options, factories map[string]Factory) (*ResolverSet, error) {
	if len(order) == 0 {
		order = DefaultOrder
	}

	set := &ResolverSet{
		Resolvers: make([]Resolver, 0, len(order)),
		registry:  locdb.NewRegistry(),
	}
	seen := map[string]struct{}{}

	for _, name := range order {
		if _, ok := seen[name]; ok {
			return nil, errors.Errorf("Resolver %s is duplicated", name)
		}
		seen[name] = struct{}{}

		factory, ok := factories[name]
		if !ok {
			return nil, errors.Errorf("Unknown resolver %s", name)
		}

		opts := options[name]
		if opts == nil {
			opts = Options{}
		}

		resolver, err := factory(opts, set)
		if err != nil {
			return nil, errors.Annotatef(err, "Cannot create resolver %s", name)
		}

		set.Resolvers = append(set.Resolvers, resolver)
	}

	log.WithFields(log.Fields{
		"order": order,
	}).Debug("Resolvers are created.")

	return set, nil
}
