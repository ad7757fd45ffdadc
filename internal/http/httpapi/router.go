package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fotostudio/internal/http/handlers"
	"fotostudio/internal/middleware"
)

// NewRouter assembles the HTTP surface: the generation endpoints, the
// retention admin endpoints, and static serving of the output directory so
// relative asset URLs resolve.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS([]string{"*"}),
		middleware.I18N("en", lookup),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)

		// Generation is the expensive surface, so it carries its own
		// per-IP limit on top of whatever the provider enforces.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(30, time.Minute))
			r.Post("/generate-image", app.GenerateImage)
			r.Post("/generate-product-image", app.GenerateProductImage)
			r.Post("/generate-dalle", app.GenerateDalle)
			r.Post("/fashion-try-on", app.FashionTryOn)
		})

		r.Get("/cleanup", app.CleanupStats)
		r.Post("/cleanup", app.RunCleanup)
		r.Delete("/cleanup", app.ForceCleanup)

		r.Get("/images/archive", app.ImagesArchive)
	})

	// Generated assets are addressed as /<filename> by the generation
	// responses; everything else under / is the front-end's concern.
	fileServer := http.FileServer(http.Dir(app.Config.OutputDir))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}
