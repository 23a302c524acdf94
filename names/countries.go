package names

import "strings"

// AlternativeCountryNames maps lowercased spellings which are used by
// Twitter Places to the names which are used in the location database.
var AlternativeCountryNames = map[string]string{
	"united states of america":              "United States",
	"usa":                                   "United States",
	"us":                                    "United States",
	"u.s.":                                  "United States",
	"u.s.a.":                                "United States",
	"uk":                                    "United Kingdom",
	"great britain":                         "United Kingdom",
	"england":                               "United Kingdom",
	"the netherlands":                       "Netherlands",
	"holland":                               "Netherlands",
	"russian federation":                    "Russia",
	"republic of korea":                     "South Korea",
	"korea, republic of":                    "South Korea",
	"korea":                                 "South Korea",
	"democratic people's republic of korea": "North Korea",
	"türkiye":                               "Turkey",
	"turkiye":                               "Turkey",
	"czechia":                               "Czech Republic",
	"viet nam":                              "Vietnam",
	"iran, islamic republic of":             "Iran",
	"islamic republic of iran":              "Iran",
	"syrian arab republic":                  "Syria",
	"lao people's democratic republic":      "Laos",
	"brunei darussalam":                     "Brunei",
	"republic of the philippines":           "Philippines",
	"people's republic of china":            "China",
	"hong kong sar china":                   "Hong Kong",
	"macao sar china":                       "Macao",
	"macau":                                 "Macao",
	"taiwan, province of china":             "Taiwan",
	"republic of ireland":                   "Ireland",
	"côte d'ivoire":                         "Ivory Coast",
	"cote d'ivoire":                         "Ivory Coast",
	"cabo verde":                            "Cape Verde",
	"eswatini":                              "Swaziland",
	"north macedonia":                       "Macedonia",
	"republic of north macedonia":           "Macedonia",
	"myanmar (burma)":                       "Myanmar",
	"burma":                                 "Myanmar",
	"timor-leste":                           "East Timor",
	"democratic republic of the congo":      "Democratic Republic of the Congo",
	"congo, the democratic republic of the": "Democratic Republic of the Congo",
	"republic of the congo":                 "Republic of the Congo",
	"congo":                                 "Republic of the Congo",
	"the bahamas":                           "Bahamas",
	"the gambia":                            "Gambia",
	"vatican city":                          "Vatican",
	"holy see":                              "Vatican",
	"palestinian territory":                 "Palestinian Territory",
	"palestine":                             "Palestinian Territory",
	"state of palestine":                    "Palestinian Territory",
	"moldova, republic of":                  "Moldova",
	"tanzania, united republic of":          "Tanzania",
	"bolivia, plurinational state of":       "Bolivia",
	"venezuela, bolivarian republic of":     "Venezuela",
	"micronesia, federated states of":       "Micronesia",
	"united states minor outlying islands":  "United States Minor Outlying Islands",
	"virgin islands, u.s.":                  "U.S. Virgin Islands",
	"virgin islands, british":               "British Virgin Islands",
}

// CountryCodes maps lowercased ISO 3166 alpha-2 codes to lowercased
// country names as they are stored in the location database.
var CountryCodes = map[string]string{
	"ad": "andorra",
	"ae": "united arab emirates",
	"af": "afghanistan",
	"ag": "antigua and barbuda",
	"ai": "anguilla",
	"al": "albania",
	"am": "armenia",
	"ao": "angola",
	"aq": "antarctica",
	"ar": "argentina",
	"as": "american samoa",
	"at": "austria",
	"au": "australia",
	"aw": "aruba",
	"ax": "aland islands",
	"az": "azerbaijan",
	"ba": "bosnia and herzegovina",
	"bb": "barbados",
	"bd": "bangladesh",
	"be": "belgium",
	"bf": "burkina faso",
	"bg": "bulgaria",
	"bh": "bahrain",
	"bi": "burundi",
	"bj": "benin",
	"bl": "saint barthelemy",
	"bm": "bermuda",
	"bn": "brunei",
	"bo": "bolivia",
	"bq": "bonaire, saint eustatius and saba",
	"br": "brazil",
	"bs": "bahamas",
	"bt": "bhutan",
	"bw": "botswana",
	"by": "belarus",
	"bz": "belize",
	"ca": "canada",
	"cc": "cocos islands",
	"cd": "democratic republic of the congo",
	"cf": "central african republic",
	"cg": "republic of the congo",
	"ch": "switzerland",
	"ci": "ivory coast",
	"ck": "cook islands",
	"cl": "chile",
	"cm": "cameroon",
	"cn": "china",
	"co": "colombia",
	"cr": "costa rica",
	"cu": "cuba",
	"cv": "cape verde",
	"cw": "curacao",
	"cx": "christmas island",
	"cy": "cyprus",
	"cz": "czech republic",
	"de": "germany",
	"dj": "djibouti",
	"dk": "denmark",
	"dm": "dominica",
	"do": "dominican republic",
	"dz": "algeria",
	"ec": "ecuador",
	"ee": "estonia",
	"eg": "egypt",
	"eh": "western sahara",
	"er": "eritrea",
	"es": "spain",
	"et": "ethiopia",
	"fi": "finland",
	"fj": "fiji",
	"fk": "falkland islands",
	"fm": "micronesia",
	"fo": "faroe islands",
	"fr": "france",
	"ga": "gabon",
	"gb": "united kingdom",
	"gd": "grenada",
	"ge": "georgia",
	"gf": "french guiana",
	"gg": "guernsey",
	"gh": "ghana",
	"gi": "gibraltar",
	"gl": "greenland",
	"gm": "gambia",
	"gn": "guinea",
	"gp": "guadeloupe",
	"gq": "equatorial guinea",
	"gr": "greece",
	"gt": "guatemala",
	"gu": "guam",
	"gw": "guinea-bissau",
	"gy": "guyana",
	"hk": "hong kong",
	"hn": "honduras",
	"hr": "croatia",
	"ht": "haiti",
	"hu": "hungary",
	"id": "indonesia",
	"ie": "ireland",
	"il": "israel",
	"im": "isle of man",
	"in": "india",
	"iq": "iraq",
	"ir": "iran",
	"is": "iceland",
	"it": "italy",
	"je": "jersey",
	"jm": "jamaica",
	"jo": "jordan",
	"jp": "japan",
	"ke": "kenya",
	"kg": "kyrgyzstan",
	"kh": "cambodia",
	"ki": "kiribati",
	"km": "comoros",
	"kn": "saint kitts and nevis",
	"kp": "north korea",
	"kr": "south korea",
	"kw": "kuwait",
	"ky": "cayman islands",
	"kz": "kazakhstan",
	"la": "laos",
	"lb": "lebanon",
	"lc": "saint lucia",
	"li": "liechtenstein",
	"lk": "sri lanka",
	"lr": "liberia",
	"ls": "lesotho",
	"lt": "lithuania",
	"lu": "luxembourg",
	"lv": "latvia",
	"ly": "libya",
	"ma": "morocco",
	"mc": "monaco",
	"md": "moldova",
	"me": "montenegro",
	"mf": "saint martin",
	"mg": "madagascar",
	"mh": "marshall islands",
	"mk": "macedonia",
	"ml": "mali",
	"mm": "myanmar",
	"mn": "mongolia",
	"mo": "macao",
	"mp": "northern mariana islands",
	"mq": "martinique",
	"mr": "mauritania",
	"ms": "montserrat",
	"mt": "malta",
	"mu": "mauritius",
	"mv": "maldives",
	"mw": "malawi",
	"mx": "mexico",
	"my": "malaysia",
	"mz": "mozambique",
	"na": "namibia",
	"nc": "new caledonia",
	"ne": "niger",
	"nf": "norfolk island",
	"ng": "nigeria",
	"ni": "nicaragua",
	"nl": "netherlands",
	"no": "norway",
	"np": "nepal",
	"nr": "nauru",
	"nu": "niue",
	"nz": "new zealand",
	"om": "oman",
	"pa": "panama",
	"pe": "peru",
	"pf": "french polynesia",
	"pg": "papua new guinea",
	"ph": "philippines",
	"pk": "pakistan",
	"pl": "poland",
	"pm": "saint pierre and miquelon",
	"pn": "pitcairn",
	"pr": "puerto rico",
	"ps": "palestinian territory",
	"pt": "portugal",
	"pw": "palau",
	"py": "paraguay",
	"qa": "qatar",
	"re": "reunion",
	"ro": "romania",
	"rs": "serbia",
	"ru": "russia",
	"rw": "rwanda",
	"sa": "saudi arabia",
	"sb": "solomon islands",
	"sc": "seychelles",
	"sd": "sudan",
	"se": "sweden",
	"sg": "singapore",
	"sh": "saint helena",
	"si": "slovenia",
	"sk": "slovakia",
	"sl": "sierra leone",
	"sm": "san marino",
	"sn": "senegal",
	"so": "somalia",
	"sr": "suriname",
	"ss": "south sudan",
	"st": "sao tome and principe",
	"sv": "el salvador",
	"sx": "sint maarten",
	"sy": "syria",
	"sz": "swaziland",
	"tc": "turks and caicos islands",
	"td": "chad",
	"tg": "togo",
	"th": "thailand",
	"tj": "tajikistan",
	"tk": "tokelau",
	"tl": "east timor",
	"tm": "turkmenistan",
	"tn": "tunisia",
	"to": "tonga",
	"tr": "turkey",
	"tt": "trinidad and tobago",
	"tv": "tuvalu",
	"tw": "taiwan",
	"tz": "tanzania",
	"ua": "ukraine",
	"ug": "uganda",
	"us": "united states",
	"uy": "uruguay",
	"uz": "uzbekistan",
	"va": "vatican",
	"vc": "saint vincent and the grenadines",
	"ve": "venezuela",
	"vg": "british virgin islands",
	"vi": "u.s. virgin islands",
	"vn": "vietnam",
	"vu": "vanuatu",
	"wf": "wallis and futuna",
	"ws": "samoa",
	"xk": "kosovo",
	"ye": "yemen",
	"yt": "mayotte",
	"za": "south africa",
	"zm": "zambia",
	"zw": "zimbabwe",

	// legacy codes which are still met in the wild
	"uk": "united kingdom",
	"yu": "serbia",
}

// Countries is a set of lowercased country names.
var Countries = map[string]struct{}{}

// NormalizeCountry returns a database spelling of the country name.
// Unknown names are returned as is.
func NormalizeCountry(country string) string {
	if name, ok := AlternativeCountryNames[strings.ToLower(country)]; ok {
		return name
	}

	return country
}

func init() {
	for _, v := range CountryCodes {
		Countries[v] = struct{}{}
	}
}
