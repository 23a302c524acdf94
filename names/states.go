package names

import "strings"

// USStateAbbreviations maps lowercased postal abbreviations of US states
// and territories to their lowercased full names.
var USStateAbbreviations = map[string]string{
	"al": "alabama",
	"ak": "alaska",
	"az": "arizona",
	"ar": "arkansas",
	"ca": "california",
	"co": "colorado",
	"ct": "connecticut",
	"de": "delaware",
	"dc": "district of columbia",
	"fl": "florida",
	"ga": "georgia",
	"hi": "hawaii",
	"id": "idaho",
	"il": "illinois",
	"in": "indiana",
	"ia": "iowa",
	"ks": "kansas",
	"ky": "kentucky",
	"la": "louisiana",
	"me": "maine",
	"md": "maryland",
	"ma": "massachusetts",
	"mi": "michigan",
	"mn": "minnesota",
	"ms": "mississippi",
	"mo": "missouri",
	"mt": "montana",
	"ne": "nebraska",
	"nv": "nevada",
	"nh": "new hampshire",
	"nj": "new jersey",
	"nm": "new mexico",
	"ny": "new york",
	"nc": "north carolina",
	"nd": "north dakota",
	"oh": "ohio",
	"ok": "oklahoma",
	"or": "oregon",
	"pa": "pennsylvania",
	"ri": "rhode island",
	"sc": "south carolina",
	"sd": "south dakota",
	"tn": "tennessee",
	"tx": "texas",
	"ut": "utah",
	"vt": "vermont",
	"va": "virginia",
	"wa": "washington",
	"wv": "west virginia",
	"wi": "wisconsin",
	"wy": "wyoming",

	"as": "american samoa",
	"gu": "guam",
	"mp": "northern mariana islands",
	"pr": "puerto rico",
	"vi": "virgin islands",
}

// USStates maps lowercased full names of US states and territories to
// their properly capitalized versions.
var USStates = map[string]string{}

func init() {
	for _, v := range USStateAbbreviations {
		USStates[v] = capitalize(v)
	}
}

func capitalize(name string) string {
	words := strings.Fields(name)

	for i, word := range words {
		if i > 0 && word == "of" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
