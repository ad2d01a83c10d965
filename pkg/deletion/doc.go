// Package deletion guards deletes that would orphan related records.
//
// Each guard counts the records in the caller's snapshot that reference the
// entity. When any count is non-zero the delete is blocked, the non-zero
// counts are listed as human-readable strings and the reason suggests
// deactivating the entity instead:
//
//	check := deletion.Student(id, snap.Enrollments, snap.Attendance)
//	// check.RelatedEntities: ["2 subject enrollment(s)", "5 attendance record(s)"]
package deletion
