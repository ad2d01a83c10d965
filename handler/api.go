package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/rollcall/pkg/binder"
	"github.com/dmitrymomot/rollcall/pkg/bulk"
	"github.com/dmitrymomot/rollcall/pkg/fields"
	"github.com/dmitrymomot/rollcall/pkg/forms"
	"github.com/dmitrymomot/rollcall/pkg/httpserver"
	"github.com/dmitrymomot/rollcall/pkg/i18n"
	"github.com/dmitrymomot/rollcall/pkg/logger"
	"github.com/dmitrymomot/rollcall/pkg/ratelimit"
	"github.com/dmitrymomot/rollcall/pkg/rbac"
	"github.com/dmitrymomot/rollcall/pkg/registry"
	"github.com/dmitrymomot/rollcall/pkg/requestid"
	"github.com/dmitrymomot/rollcall/pkg/spreadsheet"
)

// DefaultMaxBodyBytes caps request bodies unless WithMaxBodyBytes says otherwise.
const DefaultMaxBodyBytes = 10 << 20 // 10 MB

// API serves the pre-flight validation endpoints.
type API struct {
	reg     *registry.Registry
	authz   *rbac.Authorizer
	tr      *i18n.Translator
	log     *slog.Logger
	now     func() time.Time
	maxBody int64
	checks  map[string]httpserver.Check
	limiter ratelimit.Limiter

	fields   *fields.Validator
	forms    *forms.Validator
	bulk     *bulk.Validator
	importer *spreadsheet.Importer
	onError  ErrorHandler[Context]
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithTranslator enables localized responses.
func WithTranslator(tr *i18n.Translator) Option {
	return func(a *API) {
		a.tr = tr
	}
}

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		if now != nil {
			a.now = now
		}
	}
}

// WithMaxBodyBytes sets the request body cap.
func WithMaxBodyBytes(n int64) Option {
	return func(a *API) {
		a.maxBody = n
	}
}

// WithHealthChecks adds named checks to GET /healthz.
func WithHealthChecks(checks map[string]httpserver.Check) Option {
	return func(a *API) {
		a.checks = checks
	}
}

// WithRateLimit throttles /v1 requests per client IP.
func WithRateLimit(l ratelimit.Limiter) Option {
	return func(a *API) {
		a.limiter = l
	}
}

// NewAPI builds the API. A nil reg uses registry defaults and a nil authz
// uses the console roles.
func NewAPI(reg *registry.Registry, authz *rbac.Authorizer, opts ...Option) (*API, error) {
	a := &API{
		reg:     reg,
		authz:   authz,
		log:     logger.Discard(),
		now:     time.Now,
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.reg == nil {
		a.reg = registry.New()
	}
	if a.authz == nil {
		var err error
		if a.authz, err = rbac.NewAuthorizer(rbac.ConsoleRoles()); err != nil {
			return nil, err
		}
	}

	a.fields = fields.New(a.reg, fields.WithClock(a.now))
	a.forms = forms.New(a.reg, forms.WithClock(a.now))
	a.bulk = bulk.New(a.reg, bulk.WithClock(a.now))
	a.importer = spreadsheet.NewImporter(a.reg, spreadsheet.WithClock(a.now))
	a.onError = NewErrorHandler(a.log, a.tr)
	return a, nil
}

// Routes returns the router with every endpoint and middleware mounted.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		Role,
		Logging(a.log),
		middleware.Recoverer,
		i18n.Middleware(a.languages()),
		BodyLimit(a.maxBody),
	)
	r.NotFound(a.fail(ErrNotFound))
	r.MethodNotAllowed(a.fail(ErrMethodNotAllowed))

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, a.checks))

	r.Route("/v1", func(r chi.Router) {
		if a.limiter != nil {
			// The role header is caller-controlled, so buckets are per client IP only.
			r.Use(ratelimit.Middleware(a.limiter, ratelimit.ClientIP,
				func(w http.ResponseWriter, r *http.Request, _ *ratelimit.Result) {
					a.onError(NewContext(w, r), ratelimit.ErrRateLimitExceeded)
				},
			))
		}

		r.With(a.require(rbac.StudentsWrite)).Post("/students/validate", a.validateSubmission(forms.KindStudent))
		r.With(a.require(rbac.SubjectsWrite)).Post("/subjects/validate", a.validateSubmission(forms.KindSubject))
		r.With(a.require(rbac.EnrollmentsWrite)).Post("/enrollments/validate", a.validateSubmission(forms.KindEnrollment))
		r.With(a.require(rbac.AttendanceMark)).Post("/attendance/validate", a.validateSubmission(forms.KindAttendance))
		r.With(a.require(rbac.UsersManage)).Post("/users/validate", a.validateSubmission(forms.KindUser))

		r.With(a.require(rbac.AttendanceMark)).Post("/attendance/bulk/validate",
			route(a, a.validateBulkAttendance, binder.JSON()))

		r.With(a.require(rbac.StudentsDelete)).Post("/students/{id}/deletion-check",
			route(a, a.studentDeletion, binder.Path(chi.URLParam), binder.JSON()))
		r.With(a.require(rbac.SubjectsDelete)).Post("/subjects/{id}/deletion-check",
			route(a, a.subjectDeletion, binder.Path(chi.URLParam), binder.JSON()))
		r.With(a.require(rbac.UsersManage)).Post("/users/{id}/deletion-check",
			route(a, a.userDeletion, binder.Path(chi.URLParam), binder.JSON()))

		r.With(a.require(rbac.FilesUpload)).Post("/files/validate",
			route(a, a.validateFile, binder.Query(), binder.Form()))
		r.With(a.require(rbac.AttendanceImport)).Post("/attendance/import/validate",
			route(a, a.validateImport, binder.Form()))
		r.With(a.require(rbac.AttendanceExport)).Post("/attendance/export",
			route(a, a.exportAttendance, binder.Query(), binder.JSON()))
	})
	return r
}

// route wraps h with the API's error handler and the given binders.
func route[R any](a *API, h func(Context, R) Response, binders ...Bind) http.HandlerFunc {
	return Wrap(HandlerFunc[Context, R](h),
		WithBinders[Context, R](binders...),
		WithErrorHandler[Context, R](a.onError),
	)
}

// require rejects requests whose console role lacks permission before the
// body is read.
func (a *API) require(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := a.authz.CanFromContext(r.Context(), permission); err != nil {
				a.onError(NewContext(w, r), err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *API) fail(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.onError(NewContext(w, r), err)
	}
}

func (a *API) languages() []string {
	if a.tr == nil {
		return []string{i18n.DefaultLanguage}
	}
	return a.tr.SupportedLanguages()
}
