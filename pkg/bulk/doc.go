// Package bulk validates multi-row operations before they are dispatched:
// batch size ceilings and duplicate detection within the batch.
//
//	bv := bulk.New(reg)
//	res := bv.Attendance(ids, "2025-01-15", "present")
//	// ids [1, 2, 2] fail with kind batch_duplicate_violation
package bulk
