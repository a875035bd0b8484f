package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwellhq/inkwell/pkg/clientip"
	"github.com/inkwellhq/inkwell/pkg/jwt"
	"github.com/inkwellhq/inkwell/pkg/logger"
	"github.com/inkwellhq/inkwell/pkg/ratelimiter"
	"github.com/inkwellhq/inkwell/pkg/response"
	"github.com/inkwellhq/inkwell/pkg/schema"
	"github.com/inkwellhq/inkwell/pkg/validator"
)

// User-facing error messages. These strings are part of the API contract
// consumed by the web client; change them there first.
const (
	msgEmailTaken        = "A account already exists with this email."
	msgUserNotFound      = "User not found. Please signup"
	msgWrongPassword     = "Wrong password. Please try again with correct password."
	msgTooManySessions   = "Too many sessions. Please try again later."
	msgSessionCapReached = "Too many sessions"
	msgInvalidTokenEmail = "Invalid token or email"
	msgInvalidToken      = "Invalid token"
	msgGoogleEmailTaken  = "User with this email already exists"
	msgNoSuchUser        = "No such user exit"
	msgNoSuchToken       = "No such token"
	msgIdentityRequired  = "Token and email are required and must be non-empty"
)

// Handler mounts the auth HTTP surface and translates service errors into
// response envelopes.
type Handler struct {
	svc     *Service
	tokens  *jwt.Service
	limiter *ratelimiter.Bucket
	log     *slog.Logger
}

// HandlerOption configures the Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger supplies a logger for unexpected failures.
func WithHandlerLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMagicLoginLimiter rate limits the magic login endpoint per client IP.
func WithMagicLoginLimiter(b *ratelimiter.Bucket) HandlerOption {
	return func(h *Handler) {
		h.limiter = b
	}
}

// NewHandler returns the auth HTTP handler.
func NewHandler(svc *Service, tokens *jwt.Service, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:    svc,
		tokens: tokens,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the router for mounting under /auth.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(schema.Middleware(credentialsSchema)).Post("/signup", h.signup)
	r.With(schema.Middleware(credentialsSchema)).Post("/login", h.login)
	r.With(schema.Middleware(emailSchema)).Post("/magic", h.magic)

	magicLogin := []func(http.Handler) http.Handler{schema.Middleware(magicLoginSchema)}
	if h.limiter != nil {
		magicLogin = append([]func(http.Handler) http.Handler{
			ratelimiter.Middleware(h.limiter, ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByPath)),
		}, magicLogin...)
	}
	r.With(magicLogin...).Post("/magic_login", h.magicLogin)

	r.With(schema.Middleware(tokenSchema)).Post("/google", h.google)
	r.With(schema.Middleware(tokenSchema)).Post("/google_login", h.googleLogin)

	r.With(jwt.Middleware(h.tokens)).Post("/logout", h.logout)
	r.With(jwt.Middleware(h.tokens)).Post("/logout_all", h.logoutAll)

	return r
}

func (h *Handler) device(r *http.Request) Device {
	return Device{
		IPAddress: clientip.GetIP(r),
		UserAgent: r.UserAgent(),
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	v, err := schema.FromContext(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	res, err := h.svc.Signup(r.Context(), v.BodyString("email"), v.BodyString("password"), h.device(r))
	switch {
	case err == nil:
		response.OK(w, res)
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Fail(w, http.StatusConflict, msgEmailTaken)
	default:
		h.unexpected(w, r, "signup", err)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	v, err := schema.FromContext(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	res, err := h.svc.Login(r.Context(), v.BodyString("email"), v.BodyString("password"), h.device(r))
	switch {
	case err == nil:
		response.OK(w, res)
	case errors.Is(err, ErrUserNotFound):
		response.Fail(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, ErrInvalidCredentials):
		response.Fail(w, http.StatusUnauthorized, msgWrongPassword)
	case errors.Is(err, ErrTooManySessions):
		response.Fail(w, http.StatusTooManyRequests, msgTooManySessions)
	default:
		h.unexpected(w, r, "login", err)
	}
}

func (h *Handler) magic(w http.ResponseWriter, r *http.Request) {
	v, err := schema.FromContext(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	link, err := h.svc.RequestMagicLink(r.Context(), v.BodyString("email"))
	if err != nil {
		h.unexpected(w, r, "magic", err)
		return
	}
	response.OK(w, map[string]string{"magicLink": link})
}

func (h *Handler) magicLogin(w http.ResponseWriter, r *http.Request) {
	v, err := schema.FromContext(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	res, err := h.svc.MagicLogin(r.Context(), v.BodyString("email"), v.BodyString("token"), h.device(r))
	switch {
	case err == nil:
		response.OK(w, res)
	case errors.Is(err, ErrMagicLinkInvalid), errors.Is(err, ErrMagicLinkExpired):
		response.Fail(w, http.StatusUnauthorized, msgInvalidTokenEmail)
	case errors.Is(err, ErrTooManySessions):
		response.Fail(w, http.StatusUnauthorized, msgSessionCapReached)
	default:
		h.unexpected(w, r, "magic_login", err)
	}
}

func (h *Handler) google(w http.ResponseWriter, r *http.Request) {
	v, err := schema.FromContext(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	res, err := h.svc.GoogleSignup(r.Context(), v.BodyString("token"))
	switch {
	case err == nil:
		response.OK(w, res)
	case errors.Is(err, ErrProviderTokenInvalid):
		response.Fail(w, http.StatusUnauthorized, msgInvalidToken)
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Fail(w, http.StatusConflict, msgGoogleEmailTaken)
	default:
		h.unexpected(w, r, "google", err)
	}
}

func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	v, err := schema.FromContext(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	res, err := h.svc.GoogleLogin(r.Context(), v.BodyString("token"), h.device(r))
	switch {
	case err == nil:
		response.OK(w, res)
	case errors.Is(err, ErrProviderTokenInvalid), errors.Is(err, ErrUserNotFound):
		response.Fail(w, http.StatusUnauthorized, msgInvalidToken)
	case errors.Is(err, ErrTooManySessions):
		response.Fail(w, http.StatusUnauthorized, msgSessionCapReached)
	default:
		h.unexpected(w, r, "google_login", err)
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Logout(r.Context(), id.Email, id.Token)
	switch {
	case err == nil:
		response.OK(w, res)
	case errors.Is(err, ErrUserNotFound):
		response.Fail(w, http.StatusUnauthorized, msgNoSuchUser)
	case errors.Is(err, ErrSessionNotFound):
		response.Fail(w, http.StatusUnauthorized, msgNoSuchToken)
	default:
		h.unexpected(w, r, "logout", err)
	}
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	res, err := h.svc.LogoutAll(r.Context(), id.Email, id.Token)
	switch {
	case err == nil:
		response.OK(w, res)
	case errors.Is(err, ErrUserNotFound):
		response.Fail(w, http.StatusUnauthorized, msgInvalidTokenEmail)
	default:
		h.unexpected(w, r, "logout_all", err)
	}
}

// identity pulls the authenticated principal set by the JWT middleware and
// insists on non-empty token and email.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (jwt.Identity, bool) {
	id, err := jwt.IdentityFromContext(r.Context())
	if err != nil || id.Token == "" || id.Email == "" {
		response.Fail(w, http.StatusBadRequest, msgIdentityRequired)
		return jwt.Identity{}, false
	}
	return id, true
}

// unexpected maps residual errors: validation failures that slipped past
// the schema middleware get a 400, everything else is an opaque 500.
func (h *Handler) unexpected(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		response.Fail(w, http.StatusBadRequest, errs[0].Message)
		return
	}
	h.log.ErrorContext(r.Context(), "Auth operation failed",
		slog.String("operation", op),
		logger.Error(err))
	response.InternalError(w)
}
