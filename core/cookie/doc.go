// Package cookie provides secure HTTP cookie management with HMAC signing,
// key rotation, and read-once flash values.
//
// # Basic Usage
//
//	manager, err := cookie.New([]string{"secret-key-32-bytes-minimum!!!!!"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Plain cookie
//	manager.Set(w, "theme", "dark")
//
//	// Tamper-proof signed cookie
//	manager.SetSigned(w, "user_id", "12345")
//	value, err := manager.GetSigned(r, "user_id")
//
// # Flash Values
//
// Flash cookies carry a JSON payload across exactly one redirect. Reading
// a flash deletes it:
//
//	manager.SetFlash(w, "checkout", state)
//
//	var state CheckoutState
//	err := manager.GetFlash(w, r, "checkout", &state)
//
// # Key Rotation
//
// Pass multiple secrets to support rotation. The first secret signs new
// cookies; all secrets are tried when verifying:
//
//	manager, err := cookie.New([]string{newSecret, oldSecret})
//
// # Configuration
//
// Config loads settings from environment variables:
//
//	cfg := config.MustLoad[cookie.Config]()
//	manager, err := cookie.NewFromConfig(cfg)
package cookie
