// Package locale resolves the visitor's country, language, and commercial
// region from request signals, and provides region-specific formatting.
package locale

// Supported language codes.
const (
	LangEsAR = "es-AR"
	LangPtBR = "pt-BR"
	LangEsMX = "es-MX"
)

// Region groups countries into commercial regions.
type Region string

const (
	RegionLATAM        Region = "LATAM"
	RegionEurope       Region = "EUROPE"
	RegionNorthAmerica Region = "NORTH_AMERICA"
)

// Locale identifies the visitor's market context.
type Locale struct {
	Country string `json:"country"`
	Lang    string `json:"lang"`
	Region  Region `json:"region"`
}

// Default returns the fallback locale used when no signal matches.
func Default() Locale {
	return Locale{Country: "AR", Lang: LangEsAR, Region: RegionLATAM}
}

// regionByCountry maps ISO country codes to commercial regions.
var regionByCountry = map[string]Region{
	"AR": RegionLATAM,
	"BR": RegionLATAM,
	"MX": RegionLATAM,
	"CO": RegionLATAM,
	"CL": RegionLATAM,
	"PE": RegionLATAM,
	"UY": RegionLATAM,
	"ES": RegionEurope,
	"IT": RegionEurope,
	"FR": RegionEurope,
	"DE": RegionEurope,
	"US": RegionNorthAmerica,
	"CA": RegionNorthAmerica,
}

// RegionForCountry returns the commercial region for a country code.
// Unknown countries map to LATAM.
func RegionForCountry(country string) Region {
	if region, ok := regionByCountry[country]; ok {
		return region
	}
	return RegionLATAM
}

// Languages returns all supported language codes with the default first.
func Languages() []string {
	return []string{LangEsAR, LangEsMX, LangPtBR}
}
