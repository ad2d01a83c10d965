package bulk_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rollcall/pkg/bulk"
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/validator"
)

func newValidator(opts ...registry.Option) *bulk.Validator {
	opts = append([]registry.Option{registry.WithLocation(time.UTC)}, opts...)
	return bulk.New(registry.New(opts...), bulk.WithClock(func() time.Time {
		return time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC)
	}))
}

func decodeIDs(t *testing.T, raw string) []records.ID {
	t.Helper()
	var ids []records.ID
	require.NoError(t, json.Unmarshal([]byte(raw), &ids))
	return ids
}

func TestSize(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.Size(1, 10).Valid)
	assert.True(t, v.Size(10, 10).Valid)

	res := v.Size(0, 10)
	assert.Equal(t, validator.KindBatchSize, res.Kind)
	assert.Equal(t, "bulk.size.empty", res.Key)

	res = v.Size(11, 10)
	assert.Equal(t, "You can only process up to 10 items at once", res.Error)

	assert.True(t, v.Edit(100).Valid)
	assert.False(t, v.Edit(101).Valid)
	assert.False(t, newValidator(registry.WithBulkLimits(5, 0)).Edit(6).Valid)
}

func TestAttendance(t *testing.T) {
	t.Parallel()
	v := newValidator()

	tests := []struct {
		name   string
		ids    string
		date   string
		status string
		kind   validator.Kind
	}{
		{name: "unique numeric ids", ids: `[1,2,3]`, date: "2025-01-15", status: "present"},
		{name: "duplicate numeric ids", ids: `[1,2,2]`, date: "2025-01-15", status: "present", kind: validator.KindBatchDuplicate},
		{name: "mixed number and string collide", ids: `[1,"2",2]`, date: "2025-01-15", status: "present", kind: validator.KindBatchDuplicate},
		{name: "mixed unique", ids: `["1",2,"3"]`, date: "2025-01-15", status: "late"},
		{name: "empty batch", ids: `[]`, date: "2025-01-15", status: "present", kind: validator.KindBatchSize},
		{name: "bad date", ids: `[1]`, date: "2025-02-30", status: "present", kind: validator.KindFormat},
		{name: "bad status", ids: `[1]`, date: "2025-01-15", status: "tardy", kind: validator.KindFormat},
		{name: "future date", ids: `[1]`, date: "2025-01-21", status: "present", kind: validator.KindTemporal},
		{name: "null id", ids: `[1,null]`, date: "2025-01-15", status: "present", kind: validator.KindFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Attendance(decodeIDs(t, tt.ids), tt.date, tt.status)
			if tt.kind == "" {
				assert.True(t, res.Valid, res.Error)
				return
			}
			assert.False(t, res.Valid)
			assert.Equal(t, tt.kind, res.Kind, res.Error)
		})
	}

	t.Run("ceiling", func(t *testing.T) {
		ids := make([]records.ID, 501)
		for i := range ids {
			ids[i] = records.ParseID(i + 1)
		}
		assert.Equal(t, validator.KindBatchSize, v.Attendance(ids, "2025-01-15", "present").Kind)
		assert.True(t, v.Attendance(ids[:500], "2025-01-15", "present").Valid)
	})
}

func TestDuplicateKeys(t *testing.T) {
	t.Parallel()
	v := newValidator()

	assert.True(t, v.DuplicateKeys(nil).Valid)
	assert.True(t, v.DuplicateKeys([]string{"a", "b"}).Valid)

	res := v.DuplicateKeys([]string{"a", "b", "a", "c", "a", "b"})
	require.False(t, res.Valid)
	assert.Equal(t, `Duplicate entry "a" found at positions 1, 3, 5`, res.Error)
	assert.Equal(t, []int{1, 3, 5}, res.Params["positions"])
}
