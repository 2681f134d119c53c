package rest

import (
	"errors"
	"net/http"

	"github.com/oapi-codegen/runtime"
	"github.com/philly/spacetraveling/internal/adapters/rest/middleware"
	"github.com/philly/spacetraveling/internal/posts/application"
)

// PreviewMessage is the body of a rejected preview request
type PreviewMessage struct {
	Message string `json:"message"`
}

// PreviewHandler turns CMS preview links into preview sessions
type PreviewHandler struct {
	*BaseHandler
	service *application.PreviewService
	session *middleware.PreviewSession
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(base *BaseHandler, service *application.PreviewService, session *middleware.PreviewSession) *PreviewHandler {
	return &PreviewHandler{
		BaseHandler: base,
		service:     service,
		session:     session,
	}
}

// Preview starts a preview session and redirects to the previewed page
// GET /api/preview?token=T&documentId=D
func (h *PreviewHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var token, documentID *string
	if err := runtime.BindQueryParameter("form", true, false, "token", r.URL.Query(), &token); err != nil {
		h.HandleError(w, r, invalidParameter("token", err))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "documentId", r.URL.Query(), &documentID); err != nil {
		h.HandleError(w, r, invalidParameter("documentId", err))
		return
	}

	path, err := h.service.ResolveRedirect(r.Context(), optional(token), optional(documentID))
	if err != nil {
		if errors.Is(err, application.ErrInvalidPreviewToken) {
			h.WriteJSONResponse(w, r, PreviewMessage{Message: application.ErrInvalidPreviewToken.Message}, http.StatusUnauthorized)
			return
		}
		h.HandleError(w, r, err)
		return
	}

	if err := h.session.Start(w, optional(token)); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.logger.Info(r.Context(), "preview session started", "document_id", optional(documentID), "path", path)
	http.Redirect(w, r, path, http.StatusFound)
}

// ExitPreview ends the preview session
// GET /api/exit-preview
func (h *PreviewHandler) ExitPreview(w http.ResponseWriter, r *http.Request) {
	h.session.End(w)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}
