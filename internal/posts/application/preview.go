package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/philly/spacetraveling/internal/platform/apperror"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/philly/spacetraveling/internal/posts/ports"
)

// ErrInvalidPreviewToken is returned when a preview token is missing or
// rejected by the CMS. The message is what the preview endpoint answers.
var ErrInvalidPreviewToken = apperror.New(
	apperror.CodeUnauthorized,
	apperror.BusinessCodeInvalidPreviewToken,
	"Invalid token",
	http.StatusUnauthorized,
)

// PreviewService turns a CMS preview link into the page to show
type PreviewService struct {
	resolver ports.PreviewResolver
	logger   logger.Logger
}

// NewPreviewService creates a new preview service
func NewPreviewService(resolver ports.PreviewResolver, logger logger.Logger) *PreviewService {
	return &PreviewService{
		resolver: resolver,
		logger:   logger,
	}
}

// ResolveRedirect returns the path to redirect a previewing editor to.
// Documents that cannot be found or have no page of their own resolve
// to the site root.
func (s *PreviewService) ResolveRedirect(ctx context.Context, token string, documentID string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidPreviewToken
	}

	doc, err := s.resolver.ResolvePreview(ctx, token, documentID)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidPreviewToken) {
			s.logger.Warn(ctx, "preview token rejected", "document_id", documentID)
			return "", ErrInvalidPreviewToken
		}
		s.logger.Error(ctx, "failed to resolve preview", "document_id", documentID, "error", err)
		return "", ErrCMSUnavailable.WithInner(err)
	}

	if doc == nil {
		s.logger.Info(ctx, "preview document not found, falling back to root", "document_id", documentID)
		return "/", nil
	}
	return domain.ResolveLink(*doc), nil
}
