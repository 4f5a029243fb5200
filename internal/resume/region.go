package resume

import "strings"

const (
	RegionNorthAmerica = "North America"
	RegionEurope       = "Europe"
	RegionAsiaPacific  = "Asia Pacific"
)

var northAmericaCodes = map[string]struct{}{
	"us": {}, "usa": {}, "ca": {}, "canada": {}, "united states": {},
	// US state codes seen in locations like "Austin, TX"
	"ny": {}, "tx": {}, "wa": {}, "ma": {}, "il": {}, "co": {}, "ga": {}, "or": {},
}

var europeCodes = map[string]struct{}{
	"uk": {}, "gb": {}, "fr": {}, "es": {}, "de": {}, "ie": {}, "pl": {}, "nl": {}, "it": {}, "se": {}, "pt": {},
	"united kingdom": {}, "france": {}, "spain": {}, "germany": {}, "ireland": {}, "poland": {},
}

// ClassifyRegion maps a free-form "City, CC" location to a region label. The
// last comma separated part decides. Empty locations map to North America.
func ClassifyRegion(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return RegionNorthAmerica
	}

	parts := strings.Split(location, ",")
	tail := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))

	if _, ok := northAmericaCodes[tail]; ok {
		return RegionNorthAmerica
	}
	if _, ok := europeCodes[tail]; ok {
		return RegionEurope
	}
	return RegionAsiaPacific
}
