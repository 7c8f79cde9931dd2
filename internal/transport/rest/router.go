package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/transport/middleware"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
// UploadLimit, when set, guards the upload route only.
type Handlers struct {
	Health      *HealthHandler
	Submission  *SubmissionHandler
	Review      *ReviewHandler
	Annotation  *AnnotationHandler
	UploadLimit middleware.Middleware
}

// NewRouter builds the HTTP routes. mws wrap every /v1 route, outermost first;
// health checks stay outside them.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	uploadLimit := h.UploadLimit
	if uploadLimit == nil {
		uploadLimit = middleware.Chain()
	}

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/v1", func(r chi.Router) {
		for _, mw := range mws {
			r.Use(mw)
		}

		r.Route("/applications/{applicationID}/slots/{slot}", func(r chi.Router) {
			r.Get("/submissions", h.Submission.ListChain)
			r.With(uploadLimit).Post("/submissions", h.Submission.Submit)
			r.Get("/submissions/current", h.Submission.GetCurrent)
			r.Get("/next-version", h.Submission.NextVersion)
			r.Get("/comments", h.Annotation.ListChainComments)
		})

		r.Route("/submissions/{submissionID}", func(r chi.Router) {
			r.Get("/", h.Submission.GetSubmission)
			r.Get("/comments", h.Annotation.ListComments)
			r.Post("/comments", h.Annotation.AddComment)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/revision-request", h.Review.RequestRevision)
				r.Post("/approve", h.Review.Approve)
				r.Post("/reopen", h.Review.Reopen)
				r.Get("/history", h.Review.History)
			})
		})

		r.Post("/comments/{commentID}/replies", h.Annotation.AddReply)
		r.Delete("/comments/{commentID}", h.Annotation.DeleteComment)
		r.Delete("/replies/{replyID}", h.Annotation.DeleteReply)
	})

	return r
}

// requireAdmin lets only authenticated admins through.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", domain.ErrUnauthorized.Error())
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", domain.ErrForbidden.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
