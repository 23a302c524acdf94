package resolvers

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/juju/errors"

	"github.com/9seconds/carmen/location"
	"github.com/9seconds/carmen/tweet"
)

const (
	// DefaultMaxDistance is in miles.
	DefaultMaxDistance = 25.0
	// DefaultCellSize is in degrees.
	DefaultCellSize = 1.0

	earthRadiusMiles = 3958.7613
	milesPerDegree   = earthRadiusMiles * math.Pi / 180
)

type geocodeCell struct {
	latitude  int
	longitude int
}

// GeocodeResolver locates a tweet by finding the known location with
// the shortest great-circle distance from the tweet coordinates.
//
// Locations are bucketed into a grid of cells. A query considers the
// cell of the point and at least its 8 neighbours. The window grows if
// maxDistance spans more than one cell; longitude cells get narrower
// toward the poles so the window is widened there as well.
type GeocodeResolver struct {
	maxDistance float64
	cellSize    float64
	cells       map[geocodeCell][]*location.Location
}

// Name returns a name of the resolver.
func (gr *GeocodeResolver) Name() string {
	return NameGeocode
}

// AddLocation puts location into its grid cell. Locations without
// coordinates are ignored.
func (gr *GeocodeResolver) AddLocation(loc *location.Location) {
	if loc.Latitude == 0 && loc.Longitude == 0 {
		return
	}

	cell := gr.cellFor(loc.Latitude, loc.Longitude)
	gr.cells[cell] = append(gr.cells[cell], loc)
}

// ResolveTweet resolves tweet by its coordinates.
func (gr *GeocodeResolver) ResolveTweet(twt tweet.Tweet) (*Resolution, error) {
	latitude, longitude, ok := tweetCoordinates(twt)
	if !ok {
		return notFound()
	}

	point := s2.LatLngFromDegrees(latitude, longitude)
	center := gr.cellFor(latitude, longitude)

	var closest *location.Location
	closestDistance := math.Inf(1)

	latSpan, lonSpan := gr.spans(latitude)
	lonCells := gr.longitudeCells()

	for dLat := -latSpan; dLat <= latSpan; dLat++ {
		for dLon := -lonSpan; dLon <= lonSpan; dLon++ {
			if 2*lonSpan+1 > lonCells && dLon >= lonCells-lonSpan {
				break
			}

			cell := geocodeCell{
				latitude:  center.latitude + dLat,
				longitude: gr.wrapLongitude(center.longitude + dLon),
			}

			for _, candidate := range gr.cells[cell] {
				distance := distanceMiles(point,
					s2.LatLngFromDegrees(candidate.Latitude, candidate.Longitude))
				if distance < closestDistance {
					closest = candidate
					closestDistance = distance
				}
			}
		}
	}

	if closest != nil && closestDistance < gr.maxDistance {
		return confirmed(closest)
	}

	return notFound()
}

func (gr *GeocodeResolver) cellFor(latitude, longitude float64) geocodeCell {
	return geocodeCell{
		latitude:  int(math.Floor(latitude / gr.cellSize)),
		longitude: gr.wrapLongitude(int(math.Floor(longitude / gr.cellSize))),
	}
}

// spans returns how many cells around the center of both axes may hold
// locations closer than maxDistance.
func (gr *GeocodeResolver) spans(latitude float64) (int, int) {
	degrees := gr.maxDistance / milesPerDegree
	latSpan := int(math.Ceil(degrees / gr.cellSize))
	if latSpan < 1 {
		latSpan = 1
	}

	lonCells := gr.longitudeCells()
	farthest := math.Min(math.Abs(latitude)+degrees, 90)
	cos := math.Cos(farthest * math.Pi / 180)
	if cos < 1e-9 {
		return latSpan, lonCells
	}

	lonSpan := int(math.Ceil(degrees / (gr.cellSize * cos)))
	if lonSpan < 1 {
		lonSpan = 1
	}
	if lonSpan > lonCells {
		lonSpan = lonCells
	}

	return latSpan, lonSpan
}

func (gr *GeocodeResolver) longitudeCells() int {
	return int(math.Ceil(360 / gr.cellSize))
}

// wrapLongitude keeps cell index within [-180, 180) degrees so the
// window may cross the antimeridian.
func (gr *GeocodeResolver) wrapLongitude(cell int) int {
	first := int(math.Floor(-180 / gr.cellSize))
	count := gr.longitudeCells()

	return first + ((cell-first)%count+count)%count
}

func distanceMiles(first, second s2.LatLng) float64 {
	return first.Distance(second).Radians() * earthRadiusMiles
}

// tweetCoordinates extracts latitude and longitude. Exact point is
// preferred; otherwise a centre of the Place bounding box is used.
func tweetCoordinates(twt tweet.Tweet) (float64, float64, bool) {
	if twt.IsV2() {
		lon, lat, ok := tweet.Point(twt.Object("data", "geo", "coordinates")["coordinates"])
		if ok {
			return lat, lon, true
		}

		return bboxCenter(tweet.GetArray(twt.Place(), "geo", "bbox"))
	}

	lon, lat, ok := tweet.Point(twt.Object("coordinates")["coordinates"])
	if ok {
		return lat, lon, true
	}

	polygons := tweet.GetArray(twt.Place(), "bounding_box", "coordinates")
	if len(polygons) == 0 {
		return 0, 0, false
	}

	polygon, _ := polygons[0].([]interface{})

	return polygonCenter(polygon)
}

// bboxCenter takes [west, south, east, north].
func bboxCenter(bbox []interface{}) (float64, float64, bool) {
	if len(bbox) != 4 {
		return 0, 0, false
	}

	values := [4]float64{}
	for i, v := range bbox {
		value, ok := tweet.Float(v)
		if !ok {
			return 0, 0, false
		}
		values[i] = value
	}

	return (values[1] + values[3]) / 2, (values[0] + values[2]) / 2, true
}

// polygonCenter averages [longitude, latitude] points.
func polygonCenter(polygon []interface{}) (float64, float64, bool) {
	if len(polygon) == 0 {
		return 0, 0, false
	}

	sumLat, sumLon := 0.0, 0.0
	for _, v := range polygon {
		lon, lat, ok := tweet.Point(v)
		if !ok {
			return 0, 0, false
		}
		sumLat += lat
		sumLon += lon
	}

	count := float64(len(polygon))

	return sumLat / count, sumLon / count, true
}

// NewGeocodeResolver creates a resolver from the options max_distance
// (miles) and cell_size (degrees).
func NewGeocodeResolver(opts Options, _ LocationIndex) (Resolver, error) {
	maxDistance, err := opts.Float("max_distance", DefaultMaxDistance)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create geocode resolver")
	}
	if maxDistance < 0 {
		return nil, errors.Errorf("Incorrect max distance %f", maxDistance)
	}

	cellSize, err := opts.Float("cell_size", DefaultCellSize)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create geocode resolver")
	}
	if cellSize <= 0 {
		return nil, errors.Errorf("Incorrect cell size %f", cellSize)
	}

	return &GeocodeResolver{
		maxDistance: maxDistance,
		cellSize:    cellSize,
		cells:       map[geocodeCell][]*location.Location{},
	}, nil
}
