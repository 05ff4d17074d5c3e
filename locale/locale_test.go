package locale_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agusnobile/checkout-verification/locale"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	newRequest := func(target, host string, headers map[string]string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		if host != "" {
			r.Host = host
		}
		for k, v := range headers {
			r.Header.Set(k, v)
		}
		return r
	}

	t.Run("query params take priority", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/?country=br&lang=pt-BR", "www.mercadolibre.com.ar", nil)
		loc := locale.Resolve(r)
		assert.Equal(t, locale.Locale{Country: "BR", Lang: "pt-BR", Region: locale.RegionLATAM}, loc)
	})

	t.Run("query needs both params", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/?country=BR", "www.mercadolibre.com.ar", nil)
		loc := locale.Resolve(r)
		assert.Equal(t, "AR", loc.Country)
	})

	t.Run("query with european country", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/?country=ES&lang=es-AR", "localhost", nil)
		loc := locale.Resolve(r)
		assert.Equal(t, locale.RegionEurope, loc.Region)
	})

	t.Run("hostname detection", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			host string
			want locale.Locale
		}{
			{"www.mercadolivre.com.br", locale.Locale{Country: "BR", Lang: "pt-BR", Region: locale.RegionLATAM}},
			{"www.mercadolibre.com.ar", locale.Locale{Country: "AR", Lang: "es-AR", Region: locale.RegionLATAM}},
			{"www.mercadolibre.com.mx:8080", locale.Locale{Country: "MX", Lang: "es-MX", Region: locale.RegionLATAM}},
			{"checkout.brasil.example.com", locale.Locale{Country: "BR", Lang: "pt-BR", Region: locale.RegionLATAM}},
			{"argentina.example.com", locale.Locale{Country: "AR", Lang: "es-AR", Region: locale.RegionLATAM}},
			{"mexico.example.com", locale.Locale{Country: "MX", Lang: "es-MX", Region: locale.RegionLATAM}},
		}

		for _, tc := range cases {
			r := newRequest("/", tc.host, nil)
			assert.Equal(t, tc.want, locale.Resolve(r), "host %s", tc.host)
		}
	})

	t.Run("accept language portuguese", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/", "localhost", map[string]string{"Accept-Language": "pt-BR,pt;q=0.9"})
		loc := locale.Resolve(r)
		assert.Equal(t, "BR", loc.Country)
		assert.Equal(t, "pt-BR", loc.Lang)
	})

	t.Run("accept language spanish defaults to argentina", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/", "localhost", map[string]string{"Accept-Language": "es-ES,es;q=0.9"})
		loc := locale.Resolve(r)
		assert.Equal(t, "AR", loc.Country)
	})

	t.Run("accept language spanish with mexico timezone", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/", "localhost", map[string]string{
			"Accept-Language": "es-MX",
			"X-Timezone":      "America/Mexico_City",
		})
		loc := locale.Resolve(r)
		assert.Equal(t, "MX", loc.Country)
		assert.Equal(t, "es-MX", loc.Lang)
	})

	t.Run("unsupported language falls back to default", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/", "localhost", map[string]string{"Accept-Language": "en-US,en;q=0.9"})
		assert.Equal(t, locale.Default(), locale.Resolve(r))
	})

	t.Run("no signals fall back to default", func(t *testing.T) {
		t.Parallel()

		r := newRequest("/", "localhost", nil)
		assert.Equal(t, locale.Default(), locale.Resolve(r))
	})
}

func TestRegionForCountry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locale.RegionLATAM, locale.RegionForCountry("AR"))
	assert.Equal(t, locale.RegionLATAM, locale.RegionForCountry("UY"))
	assert.Equal(t, locale.RegionEurope, locale.RegionForCountry("DE"))
	assert.Equal(t, locale.RegionNorthAmerica, locale.RegionForCountry("US"))
	assert.Equal(t, locale.RegionLATAM, locale.RegionForCountry("ZZ"))
}

func TestFormatPhoneNumber(t *testing.T) {
	t.Parallel()

	br := locale.Locale{Country: "BR"}
	ar := locale.Locale{Country: "AR"}
	mx := locale.Locale{Country: "MX"}

	t.Run("brazil eleven digits", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "(11) 99999-8888", locale.FormatPhoneNumber("11999998888", br))
	})

	t.Run("brazil strips punctuation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "(11) 99999-8888", locale.FormatPhoneNumber("(11) 99999-8888", br))
	})

	t.Run("argentina at least ten digits", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "+54 11 4444-5555", locale.FormatPhoneNumber("1144445555", ar))
	})

	t.Run("mexico exactly ten digits", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "+52 555 123 4567", locale.FormatPhoneNumber("5551234567", mx))
	})

	t.Run("unmatched length returned unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "123", locale.FormatPhoneNumber("123", br))
		assert.Equal(t, "12345", locale.FormatPhoneNumber("12345", mx))
	})

	t.Run("unknown country returned unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "5551234567", locale.FormatPhoneNumber("5551234567", locale.Locale{Country: "US"}))
	})
}

func TestTestURLs(t *testing.T) {
	t.Parallel()

	urls := locale.TestURLs("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080/?country=AR&lang=es-AR", urls["argentina"])
	assert.Equal(t, "http://localhost:8080/?country=BR&lang=pt-BR", urls["brasil"])
	assert.Equal(t, "http://localhost:8080/?country=MX&lang=es-MX", urls["mexico"])
}
