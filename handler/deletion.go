package handler

import (
	"github.com/dmitrymomot/rollcall/pkg/deletion"
	"github.com/dmitrymomot/rollcall/pkg/records"
)

type deletionRequest struct {
	ID       records.ID       `path:"id" json:"-"`
	Snapshot records.Snapshot `json:"snapshot"`
}

func (a *API) studentDeletion(ctx Context, req deletionRequest) Response {
	check := deletion.Student(req.ID, req.Snapshot.Enrollments, req.Snapshot.Attendance)
	return JSON(a.deletion(ctx.Lang(), check))
}

func (a *API) subjectDeletion(ctx Context, req deletionRequest) Response {
	check := deletion.Subject(req.ID, req.Snapshot.Enrollments, req.Snapshot.Attendance)
	return JSON(a.deletion(ctx.Lang(), check))
}

func (a *API) userDeletion(ctx Context, req deletionRequest) Response {
	check := deletion.User(req.ID, deletion.UserReferencesFrom(req.Snapshot))
	return JSON(a.deletion(ctx.Lang(), check))
}
