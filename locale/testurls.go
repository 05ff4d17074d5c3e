package locale

// TestURLs returns per-market URLs that force a locale through query
// parameters. Used by the development locale switcher.
func TestURLs(baseURL string) map[string]string {
	return map[string]string{
		"argentina": baseURL + "?country=AR&lang=" + LangEsAR,
		"brasil":    baseURL + "?country=BR&lang=" + LangPtBR,
		"mexico":    baseURL + "?country=MX&lang=" + LangEsMX,
	}
}
