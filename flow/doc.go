// Package flow implements the identity verification form state machine.
//
// A Form tracks field values, per-field validation errors, and the
// captcha gate, moving through a fixed set of states from initial
// parameter checks to final submission. Field edits trigger validation
// after a quiet period so rapid typing does not re-validate on every
// keystroke; handlers call Flush before reading results.
//
// Usage:
//
//	form := flow.NewForm(flow.Options{
//		Referrer:   "/dashboard",
//		Token:      token,
//		Country:    loc.Country,
//		Translator: translator,
//	})
//	form.LoadProfile(profile)
//	form.Edit("email", "ana@example.com")
//	form.Flush()
//	if sub, ok := form.Submit(); ok {
//		// redirect to checkout with sub.Referrer and sub.Token
//	}
package flow
