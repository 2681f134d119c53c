package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/philly/spacetraveling/internal/platform/logger"
)

// PreviewCookieName holds the signed preview ref
const PreviewCookieName = "preview_data"

const refClaim = "ref"

var (
	ErrMissingPreviewSecret = errors.New("preview secret is required")
	ErrMissingRefClaim      = errors.New("missing ref in preview token")
)

type previewContextKey string

const PreviewRefContextKey previewContextKey = "preview_ref"

// PreviewConfig carries the settings of preview sessions
type PreviewConfig struct {
	Secret string
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only
	Secure bool
}

// PreviewSession signs, reads and clears the preview cookie. The cookie
// is an HS256 JWT whose ref claim is the CMS ref to read content under.
type PreviewSession struct {
	key    []byte
	maxAge time.Duration
	secure bool
	logger logger.Logger
}

// NewPreviewSession creates a preview session manager
func NewPreviewSession(cfg PreviewConfig, log logger.Logger) (*PreviewSession, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingPreviewSecret
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &PreviewSession{
		key:    []byte(cfg.Secret),
		maxAge: maxAge,
		secure: cfg.Secure,
		logger: log,
	}, nil
}

// Start sets a preview cookie for ref
func (p *PreviewSession) Start(w http.ResponseWriter, ref string) error {
	now := time.Now()
	token, err := jwt.NewBuilder().
		JwtID(uuid.NewString()).
		IssuedAt(now).
		Expiration(now.Add(p.maxAge)).
		Claim(refClaim, ref).
		Build()
	if err != nil {
		return fmt.Errorf("build preview token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), p.key))
	if err != nil {
		return fmt.Errorf("sign preview token: %w", err)
	}

	http.SetCookie(w, p.cookie(string(signed), int(p.maxAge.Seconds())))
	return nil
}

// End clears the preview cookie
func (p *PreviewSession) End(w http.ResponseWriter) {
	http.SetCookie(w, p.cookie("", -1))
}

func (p *PreviewSession) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     PreviewCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Verify returns the ref of a signed preview token
func (p *PreviewSession) Verify(signed string) (string, error) {
	token, err := jwt.ParseString(
		signed,
		jwt.WithKey(jwa.HS256(), p.key),
		jwt.WithValidate(true),
	)
	if err != nil {
		return "", err
	}

	var ref string
	if err := token.Get(refClaim, &ref); err != nil || ref == "" {
		return "", ErrMissingRefClaim
	}
	return ref, nil
}

// Middleware puts the ref of a valid preview cookie into the request
// context. Missing, tampered or expired cookies leave the request as is.
func (p *PreviewSession) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(PreviewCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ref, err := p.Verify(cookie.Value)
		if err != nil {
			p.logger.Debug(r.Context(), "ignoring preview cookie", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPreviewRef(r.Context(), ref)))
	})
}

// WithPreviewRef returns a context reading content under ref
func WithPreviewRef(ctx context.Context, ref string) context.Context {
	return context.WithValue(ctx, PreviewRefContextKey, ref)
}

// PreviewRef extracts the preview ref set by the preview middleware
func PreviewRef(ctx context.Context) (string, bool) {
	ref, ok := ctx.Value(PreviewRefContextKey).(string)
	return ref, ok && ref != ""
}
