package tweet

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/juju/errors"

	"github.com/9seconds/carmen/location"
)

// LocationKey is a key of the resolved location in the output record.
const LocationKey = "location"

// Object is a decoded JSON object.
type Object = map[string]interface{}

// Tweet is a decoded tweet. Both legacy flat schema (place, coordinates
// and user at the top level) and nested schema (data, includes) are
// supported; nested one is detected by the presence of data key.
type Tweet map[string]interface{}

// IsV2 tells if tweet uses nested schema.
func (t Tweet) IsV2() bool {
	return t["data"] != nil
}

// Object returns nested object by the given path or nil.
func (t Tweet) Object(keys ...string) Object {
	return GetObject(Object(t), keys...)
}

// Array returns nested array by the given path or nil.
func (t Tweet) Array(keys ...string) []interface{} {
	return GetArray(Object(t), keys...)
}

// String returns nested string by the given path or empty string.
func (t Tweet) String(keys ...string) string {
	return GetString(Object(t), keys...)
}

// Place returns an annotated Twitter Place of the tweet if any.
func (t Tweet) Place() Object {
	if !t.IsV2() {
		return t.Object("place")
	}

	places := t.Array("includes", "places")
	if len(places) == 0 {
		return nil
	}

	place, _ := places[0].(Object)

	return place
}

// User returns an author of the tweet.
func (t Tweet) User() Object {
	if !t.IsV2() {
		return t.Object("user")
	}

	users := t.Array("includes", "users")
	if len(users) == 0 {
		return nil
	}

	authorID := t.String("data", "author_id")
	for _, v := range users {
		if user, ok := v.(Object); ok && authorID != "" && GetString(user, "id") == authorID {
			return user
		}
	}

	user, _ := users[0].(Object)

	return user
}

// SetLocation attaches resolved location to the tweet.
func (t Tweet) SetLocation(loc *location.Location) {
	t[LocationKey] = loc
}

// Parse decodes a tweet. Numbers are kept as json.Number so tweet ids
// are serialized back without loss of precision.
func Parse(data []byte) (Tweet, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	rv := Tweet{}
	if err := decoder.Decode(&rv); err != nil {
		return nil, errors.Annotate(err, "Cannot decode tweet")
	}

	return rv, nil
}

// GetObject walks nested objects. Absent keys, nulls and values of
// wrong types give nil.
func GetObject(obj Object, keys ...string) Object {
	current := obj

	for _, key := range keys {
		if current == nil {
			return nil
		}

		next, ok := current[key].(Object)
		if !ok {
			return nil
		}
		current = next
	}

	return current
}

// GetArray returns an array on the given path.
func GetArray(obj Object, keys ...string) []interface{} {
	if len(keys) == 0 {
		return nil
	}

	parent := GetObject(obj, keys[:len(keys)-1]...)
	if parent == nil {
		return nil
	}

	rv, _ := parent[keys[len(keys)-1]].([]interface{})

	return rv
}

// GetString returns a string on the given path. Numbers are formatted.
func GetString(obj Object, keys ...string) string {
	if len(keys) == 0 {
		return ""
	}

	parent := GetObject(obj, keys[:len(keys)-1]...)
	if parent == nil {
		return ""
	}

	switch value := parent[keys[len(keys)-1]].(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	return ""
}

// Float converts decoded JSON value to float64.
func Float(value interface{}) (float64, bool) {
	switch value := value.(type) {
	case float64:
		return value, true
	case json.Number:
		rv, err := value.Float64()
		return rv, err == nil
	case string:
		rv, err := strconv.ParseFloat(value, 64)
		return rv, err == nil
	}

	return 0, false
}

// Point converts [longitude, latitude] JSON array into a pair of
// floats. GeoJSON order is used everywhere in tweets.
func Point(value interface{}) (longitude float64, latitude float64, ok bool) {
	arr, isArray := value.([]interface{})
	if !isArray || len(arr) != 2 {
		return 0, 0, false
	}

	longitude, okLon := Float(arr[0])
	latitude, okLat := Float(arr[1])

	return longitude, latitude, okLon && okLat
}
