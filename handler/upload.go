package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/dmitrymomot/rollcall/pkg/file"
	"github.com/dmitrymomot/rollcall/pkg/logger"
	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/spreadsheet"
)

type fileRequest struct {
	Category string                `query:"category"`
	File     *multipart.FileHeader `file:"file"`
}

func (a *API) validateFile(ctx Context, req fileRequest) Response {
	res := file.Check(a.fields, req.File, registry.FileCategory(req.Category))
	return JSON(a.result(ctx.Lang(), res))
}

type importRequest struct {
	// Snapshot is a JSON-encoded records.Snapshot.
	Snapshot string                `form:"snapshot"`
	File     *multipart.FileHeader `file:"file"`
}

// validateImport checks an attendance spreadsheet. The upload itself must
// pass the spreadsheet file limits before any row is read.
func (a *API) validateImport(ctx Context, req importRequest) Response {
	lang := ctx.Lang()
	if res := file.Check(a.fields, req.File, registry.CategorySpreadsheet); !res.Valid {
		return JSON(a.report(lang, spreadsheet.Rejected(res)))
	}

	var snap records.Snapshot
	if raw := strings.TrimSpace(req.Snapshot); raw != "" {
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			return Fail(errors.Join(ErrBadRequest, err))
		}
	}

	format, err := spreadsheet.ParseFormat(req.File.Filename)
	if err != nil {
		if format, err = spreadsheet.ParseFormat(req.File.Header.Get("Content-Type")); err != nil {
			return Fail(err)
		}
	}

	f, err := req.File.Open()
	if err != nil {
		return Fail(errors.Join(file.ErrFailedToOpenFile, err))
	}
	defer func() { _ = f.Close() }()

	report, err := a.importer.ValidateFile(f, format, snap)
	if err != nil {
		return Fail(err)
	}

	a.log.LogAttrs(ctx, slog.LevelInfo, "attendance import checked",
		slog.String("format", string(format)),
		slog.Int("rows", report.TotalRows),
		slog.Int("valid_rows", report.ValidRows),
		logger.Issues(len(report.Issues)),
	)
	return JSON(a.report(lang, report))
}
