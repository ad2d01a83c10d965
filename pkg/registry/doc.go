// Package registry provides the immutable configuration value consulted by
// every rollcall validator: numeric bounds, compiled format patterns, upload
// limits per file category, the common-password deny-list and the tunable
// business policy (edit window, clock skew, age tolerance, batch ceilings and
// the duplicate-attendance key).
//
// Build the registry once at start-up and pass the pointer to the validators:
//
//	reg := registry.New(
//	    registry.WithAttendanceEditWindow(30),
//	    registry.WithDuplicateKey(registry.DuplicateKey{Subject: true}),
//	)
//
// or from environment-backed configuration:
//
//	var cfg registry.Config
//	if err := config.Load(&cfg, config.WithPrefix("ROLLCALL_")); err != nil {
//	    return err
//	}
//	reg, err := registry.FromConfig(cfg)
//
// Bounds are fixed. Accessors return copies, so a shared *Registry is safe for
// concurrent use and cannot be altered after construction.
package registry
