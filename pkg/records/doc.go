// Package records defines the explicit entity types the engine reasons about:
// existing records supplied in a Snapshot, proposed inputs coming from forms
// and imports, the closed status enumerations, and the canonical ID type used
// for every identifier comparison.
package records
