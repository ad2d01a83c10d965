package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rollcall/pkg/binder"
	"github.com/dmitrymomot/rollcall/pkg/forms"
	"github.com/dmitrymomot/rollcall/pkg/logger"
	"github.com/dmitrymomot/rollcall/pkg/rbac"
	"github.com/dmitrymomot/rollcall/pkg/records"
)

type submissionRequest struct {
	Data     json.RawMessage  `json:"data"`
	Snapshot records.Snapshot `json:"snapshot"`
	IsUpdate bool             `json:"is_update"`
}

// validateSubmission checks a proposed create or update of one entity kind.
// Editing attendance needs attendance.edit on top of the route permission.
func (a *API) validateSubmission(kind string) http.HandlerFunc {
	return route(a, func(ctx Context, req submissionRequest) Response {
		if kind == forms.KindAttendance && req.IsUpdate {
			if err := a.authz.CanFromContext(ctx, rbac.AttendanceEdit); err != nil {
				return Fail(err)
			}
		}

		sub, err := forms.NewSubmission(kind, req.Data, req.IsUpdate)
		if err != nil {
			return Fail(err)
		}
		res := a.forms.Validate(sub, req.Snapshot)

		a.log.LogAttrs(ctx, slog.LevelDebug, "submission checked",
			logger.Component(kind),
			slog.Bool("valid", res.Valid),
			logger.Issues(len(res.Issues)),
		)
		return JSON(a.form(ctx.Lang(), res))
	}, binder.JSON())
}

type bulkAttendanceRequest struct {
	StudentIDs []records.ID `json:"student_ids"`
	Date       string       `json:"date"`
	Status     string       `json:"status"`
}

func (a *API) validateBulkAttendance(ctx Context, req bulkAttendanceRequest) Response {
	res := a.bulk.Attendance(req.StudentIDs, req.Date, req.Status)
	a.log.LogAttrs(ctx, slog.LevelDebug, "bulk attendance checked",
		slog.Int("count", len(req.StudentIDs)),
		slog.Bool("valid", res.Valid),
		logger.Kind(res.Kind),
	)
	return JSON(a.result(ctx.Lang(), res))
}
