// Package business holds the cross-entity rules of the attendance console:
// uniqueness, capacity, temporal windows, duplicate detection, enrollment
// eligibility and age/birthdate consistency.
//
// Every rule judges a proposed value against a snapshot the caller supplies
// and returns a validator.Result. Nothing is fetched and nothing is retained,
// so the outcome is advisory: two concurrent callers can both pass the same
// check before either write lands. The persistence tier must still enforce
// uniqueness and capacity with its own constraints.
//
// Basic usage:
//
//	bv := business.New(reg)
//	res := bv.EnrollmentCapacity(subject.Capacity, snap.EnrolledCount(subject), 1)
//	if !res.Valid {
//		// res.Error: "Enrollment would exceed the subject capacity of 30. Only 0 spot(s) available."
//	}
package business
