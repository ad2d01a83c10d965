// Package sanitizer provides pure string normalization applied before values
// are compared or matched against patterns.
//
// Every exported transform is idempotent: running it on its own output returns
// the output unchanged. Transforms that strip content loop to a fixed point so
// that removing one fragment cannot reveal another.
//
// Sanitizers are for comparison and storage hygiene only. They are not an
// authorization mechanism and do not replace output encoding at render time.
//
//	name := sanitizer.Name("  José   <b>Rizal</b> ")  // "José Rizal"
//	code := sanitizer.Identifier(" math-101 ")         // "MATH-101"
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.Lower)
package sanitizer
