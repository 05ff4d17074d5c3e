// Package captcha gates form submission behind a verification widget.
//
// The widget is loaded lazily: a Loader starts idle and only probes the
// provider script once the form is complete enough to need it. A failed
// probe is terminal for the Loader, matching the widget's behavior of
// showing a permanent error message rather than hammering the provider.
//
// Usage:
//
//	loader := captcha.New()
//	if err := loader.Load(ctx); err != nil {
//		// render the error message for loader.MessageKey()
//	}
package captcha
