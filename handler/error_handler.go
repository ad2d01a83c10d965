package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/rollcall/pkg/binder"
	"github.com/dmitrymomot/rollcall/pkg/file"
	"github.com/dmitrymomot/rollcall/pkg/forms"
	"github.com/dmitrymomot/rollcall/pkg/i18n"
	"github.com/dmitrymomot/rollcall/pkg/logger"
	"github.com/dmitrymomot/rollcall/pkg/ratelimit"
	"github.com/dmitrymomot/rollcall/pkg/rbac"
	"github.com/dmitrymomot/rollcall/pkg/spreadsheet"
)

// ErrorInfo is the classification of an error for the response.
type ErrorInfo struct {
	StatusCode int
	Key        string
	// Args are translation parameters as name/value pairs.
	Args     []string
	LogLevel slog.Level
}

func determineLogLevel(statusCode int) slog.Level {
	if statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status code and message key. Anything not
// recognized is an internal error.
func classifyError(ctx context.Context, err error) ErrorInfo {
	info := ErrorInfo{StatusCode: ErrInternalServerError.Code, Key: ErrInternalServerError.Key}
	set := func(e HTTPError, args ...string) {
		info.StatusCode, info.Key, info.Args = e.Code, e.Key, args
	}

	var (
		maxErr  *http.MaxBytesError
		httpErr HTTPError
	)
	switch {
	case errors.As(err, &maxErr):
		set(ErrRequestEntityTooLarge, "max", strconv.FormatInt(maxErr.Limit, 10))
	case errors.As(err, &httpErr):
		set(httpErr)
	case errors.Is(err, ratelimit.ErrRateLimitExceeded):
		set(ErrTooManyRequests)
	case errors.Is(err, rbac.ErrRoleNotInContext):
		set(ErrMissingRole)
	case errors.Is(err, rbac.ErrInsufficientPermissions), errors.Is(err, rbac.ErrInvalidRole):
		role, _ := rbac.RoleFromContext(ctx)
		set(ErrForbidden, "role", role)
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		set(ErrUnsupportedMediaType)
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
		set(ErrUnsupportedFormat)
	case errors.Is(err, spreadsheet.ErrUnreadable),
		errors.Is(err, spreadsheet.ErrNoSheets),
		errors.Is(err, file.ErrFailedToOpenFile),
		errors.Is(err, file.ErrFailedToReadFile):
		set(ErrUnreadableFile)
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath),
		errors.Is(err, forms.ErrInvalidSubmission),
		errors.Is(err, forms.ErrUnknownSubmission):
		set(ErrBadRequest)
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// NewErrorHandler returns the error handler used by every API route. It logs
// the error and writes the JSON error envelope, localizing the message when
// tr is set.
func NewErrorHandler(log *slog.Logger, tr *i18n.Translator) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(ctx, err)

		log.LogAttrs(ctx, info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		message := info.Key
		if tr != nil {
			message = tr.T(ctx.Lang(), "errors."+info.Key, info.Args...)
		}

		resp := JSON(&ErrorDetail{Code: info.Key, Message: message}, WithJSONStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(ctx, slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
