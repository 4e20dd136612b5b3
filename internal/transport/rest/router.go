package rest

import (
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/config"
	"github.com/tjwls11/diary111/internal/transport/middleware"
)

// tokenValidator validates access tokens for protected routes.
type tokenValidator interface {
	Validate(token string) (string, error)
}

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Log       *slog.Logger
	CORS      config.CORSConfig
	Validator tokenValidator

	Auth     *AuthHandler
	User     *UserHandler
	Diary    *DiaryHandler
	Calendar *CalendarHandler
	Sticker  *StickerHandler
	Quote    *QuoteHandler
	Health   *HealthHandler

	// UploadsDir is served statically under /uploads/.
	UploadsDir string
}

// NewRouter builds the HTTP handler: all routes, the auth gate on protected
// ones, and the base middleware chain around everything.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Auth(deps.Validator)
	protect := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}

	// Public routes.
	mux.HandleFunc("POST /signup", deps.Auth.Signup)
	mux.HandleFunc("POST /login", deps.Auth.Login)
	mux.HandleFunc("GET /random-quote", deps.Quote.Random)
	mux.HandleFunc("GET /stickers", deps.Sticker.Catalog)

	// Profile.
	mux.Handle("GET /get-user-info", protect(deps.User.GetInfo))
	mux.Handle("POST /change-password", protect(deps.Auth.ChangePassword))
	mux.Handle("POST /upload-profile-picture", protect(deps.User.UploadProfilePicture))

	// Diary.
	mux.Handle("GET /get-diaries", protect(deps.Diary.List))
	mux.Handle("GET /get-diary/{id}", protect(deps.Diary.Get))
	mux.Handle("POST /add-diary", protect(deps.Diary.Add))
	mux.Handle("PUT /edit-diary/{id}", protect(deps.Diary.Edit))
	mux.Handle("DELETE /delete-diary/{id}", protect(deps.Diary.Delete))
	mux.Handle("GET /checkDiary", protect(deps.Diary.Check))

	// Calendar.
	mux.Handle("POST /set-mood-color", protect(deps.Calendar.SetColor))
	mux.Handle("POST /mood-tags", protect(deps.Calendar.SetTag))
	mux.Handle("GET /get-user-calendar", protect(deps.Calendar.Calendar))
	mux.Handle("GET /get-user-tags", protect(deps.Calendar.Tags))

	// Sticker shop.
	mux.Handle("POST /purchase-sticker", protect(deps.Sticker.Purchase))
	mux.Handle("GET /get-user-stickers", protect(deps.Sticker.Owned))

	// Uploaded profile pictures.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(deps.UploadsDir))))

	// Probes.
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	)

	return chain(mux)
}
