package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/wedding-app/server/docs"
	"github.com/wedding-app/server/internal/api/handlers"
	"github.com/wedding-app/server/internal/api/middleware"
)

type RouterDeps struct {
	Handler *handlers.Handler
	Auth    *middleware.Authenticator
	// Limiter may be nil to disable rate limiting.
	Limiter *middleware.RateLimiter
	Log     zerolog.Logger
	Cors    cors.Options
}

// routes registers API endpoints together with their policy entry.
type routes struct {
	mux     *http.ServeMux
	auth    *middleware.Authenticator
	limiter *middleware.RateLimiter
}

func (rt routes) handle(pattern, resource, action string, h http.HandlerFunc) {
	rt.mux.Handle(pattern, middleware.Instrument(resource, action, rt.auth.Authorize(resource, action, h)))
}

// limited is handle for public writes, which are rate limited per client.
func (rt routes) limited(pattern, resource, action string, h http.HandlerFunc) {
	rt.mux.Handle(pattern, middleware.Instrument(resource, action,
		rt.auth.Authorize(resource, action, rt.limiter.Limit(h))))
}

func SetupRouter(d RouterDeps) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(d.Cors)
	h := d.Handler

	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mainMux.Handle("GET /metrics", middleware.MetricsHandler())
	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	apiMux := http.NewServeMux()
	rt := routes{mux: apiMux, auth: d.Auth, limiter: d.Limiter}

	rt.handle("GET /guests", "guests", middleware.ActionList, h.ListGuests)
	rt.limited("POST /guests", "guests", middleware.ActionCreate, h.CreateGuest)
	rt.limited("POST /guests/rsvp", "guests", middleware.ActionRSVP, h.CreateGuest)
	rt.handle("GET /guests/{id}", "guests", middleware.ActionRetrieve, h.RetrieveGuest)
	rt.handle("PUT /guests/{id}", "guests", middleware.ActionUpdate, h.UpdateGuest(false))
	rt.handle("PATCH /guests/{id}", "guests", middleware.ActionUpdate, h.UpdateGuest(true))
	rt.handle("DELETE /guests/{id}", "guests", middleware.ActionDelete, h.DeleteGuest)

	rt.handle("GET /gifts", "gifts", middleware.ActionList, h.ListGifts)
	rt.handle("POST /gifts", "gifts", middleware.ActionCreate, h.CreateGift)
	rt.handle("GET /gifts/{id}", "gifts", middleware.ActionRetrieve, h.RetrieveGift)
	rt.handle("PUT /gifts/{id}", "gifts", middleware.ActionUpdate, h.UpdateGift(false))
	rt.handle("PATCH /gifts/{id}", "gifts", middleware.ActionUpdate, h.UpdateGift(true))
	rt.handle("DELETE /gifts/{id}", "gifts", middleware.ActionDelete, h.DeleteGift)
	rt.limited("PATCH /gifts/{id}/reserve", "gifts", middleware.ActionReserve, h.ReserveGift)

	rt.handle("GET /wishes", "wishes", middleware.ActionList, h.ListWishes)
	rt.limited("POST /wishes", "wishes", middleware.ActionCreate, h.CreateWish)
	rt.handle("GET /wishes/{id}", "wishes", middleware.ActionRetrieve, h.RetrieveWish)
	rt.handle("PUT /wishes/{id}", "wishes", middleware.ActionUpdate, h.UpdateWish(false))
	rt.handle("PATCH /wishes/{id}", "wishes", middleware.ActionUpdate, h.UpdateWish(true))
	rt.handle("DELETE /wishes/{id}", "wishes", middleware.ActionDelete, h.DeleteWish)

	rt.handle("GET /gallery", "gallery", middleware.ActionList, h.ListGallery)
	rt.limited("POST /gallery", "gallery", middleware.ActionCreate, h.CreateGalleryItem)
	rt.limited("POST /gallery/upload", "gallery", middleware.ActionUpload, h.UploadGalleryPhoto)
	rt.limited("POST /gallery/presign", "gallery", middleware.ActionPresign, h.PresignGalleryUpload)
	rt.handle("GET /gallery/{id}", "gallery", middleware.ActionRetrieve, h.RetrieveGalleryItem)
	rt.handle("PUT /gallery/{id}", "gallery", middleware.ActionUpdate, h.UpdateGalleryItem)
	rt.handle("PATCH /gallery/{id}", "gallery", middleware.ActionUpdate, h.UpdateGalleryItem)
	rt.handle("DELETE /gallery/{id}", "gallery", middleware.ActionDelete, h.DeleteGalleryItem)

	rt.handle("GET /auth/init", "auth", "init", h.GoogleAuthInit)
	rt.handle("GET /auth/callback", "auth", "callback", h.GoogleAuthCallback)
	rt.limited("POST /drive/upload", "drive", middleware.ActionUpload, h.DriveUpload)
	rt.handle("GET /uploads", "uploads", middleware.ActionList, h.ListUploads)

	rt.limited("POST /token", "token", "obtain", h.ObtainToken)
	rt.handle("POST /token/refresh", "token", "refresh", h.RefreshToken)

	mainMux.Handle("/api/", http.StripPrefix("/api", trimTrailingSlash(apiMux)))

	d.Log.Info().Msg("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(d.Log)(handler)
	return handler
}

// trimTrailingSlash lets /gifts/ and /gifts reach the same route.
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
			r2 := new(http.Request)
			*r2 = *r
			u := *r.URL
			u.Path = strings.TrimRight(u.Path, "/")
			u.RawPath = ""
			r2.URL = &u
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}
