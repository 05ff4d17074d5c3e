package locale

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// timezoneHeader carries the client's IANA timezone, when the frontend
// forwards it, to disambiguate Spanish speakers between MX and AR.
const timezoneHeader = "X-Timezone"

// Resolve determines the visitor's locale from request signals, in
// priority order:
//
//  1. Explicit country and lang query parameters (both required,
//     country is uppercased)
//  2. Hostname hints (site domains and market aliases)
//  3. Accept-Language header, with the timezone hint splitting
//     Spanish between Mexico and Argentina
//  4. The default locale (Argentina)
func Resolve(r *http.Request) Locale {
	query := r.URL.Query()
	countryParam := query.Get("country")
	langParam := query.Get("lang")

	if countryParam != "" && langParam != "" {
		country := strings.ToUpper(countryParam)
		return Locale{
			Country: country,
			Lang:    langParam,
			Region:  RegionForCountry(country),
		}
	}

	if loc, ok := fromHostname(hostnameOf(r)); ok {
		return loc
	}

	if loc, ok := fromAcceptLanguage(r.Header.Get("Accept-Language"), r.Header.Get(timezoneHeader)); ok {
		return loc
	}

	return Default()
}

func hostnameOf(r *http.Request) string {
	host := r.Host
	if idx := strings.LastIndex(host, ":"); idx > 0 && !strings.Contains(host[idx+1:], "]") {
		host = host[:idx]
	}
	return strings.ToLower(host)
}

func fromHostname(hostname string) (Locale, bool) {
	switch {
	case strings.Contains(hostname, "mercadolivre.com.br") || strings.Contains(hostname, "brasil"):
		return Locale{Country: "BR", Lang: LangPtBR, Region: RegionLATAM}, true
	case strings.Contains(hostname, "mercadolibre.com.ar") || strings.Contains(hostname, "argentina"):
		return Locale{Country: "AR", Lang: LangEsAR, Region: RegionLATAM}, true
	case strings.Contains(hostname, "mercadolibre.com.mx") || strings.Contains(hostname, "mexico"):
		return Locale{Country: "MX", Lang: LangEsMX, Region: RegionLATAM}, true
	}
	return Locale{}, false
}

func fromAcceptLanguage(header, timezone string) (Locale, bool) {
	if header == "" {
		return Locale{}, false
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Locale{}, false
	}

	base, _ := tags[0].Base()
	switch base.String() {
	case "pt":
		return Locale{Country: "BR", Lang: LangPtBR, Region: RegionLATAM}, true
	case "es":
		if strings.Contains(timezone, "Mexico") {
			return Locale{Country: "MX", Lang: LangEsMX, Region: RegionLATAM}, true
		}
		return Locale{Country: "AR", Lang: LangEsAR, Region: RegionLATAM}, true
	}

	return Locale{}, false
}
