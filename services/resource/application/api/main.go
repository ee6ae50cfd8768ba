package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/communityhub/pkg/app"
	"github.com/ghuser/communityhub/pkg/auth"
	"github.com/ghuser/communityhub/services/resource/application/handlers"
	appsvcs "github.com/ghuser/communityhub/services/resource/application/services"
)

// ResourceRoutes registers resource endpoints on the provided chi router.
func ResourceRoutes(r chi.Router, a *app.Application) {
	Routes(r, handlers.Deps{
		Services:     appsvcs.New(a),
		Sessions:     a.SessionStore,
		Logger:       a.Logger,
		IsProduction: a.IsProduction(),
	})
}

// Routes mounts the handlers on r. Reads are public; every write needs an
// authenticated session.
func Routes(r chi.Router, d handlers.Deps) {
	log := d.Logger
	r.Group(func(r chi.Router) {
		r.Use(auth.LoadActor(d.Sessions, log))

		r.Get("/activities", handlers.NewActivityLogHandler(d).Execute)

		r.Route("/resources/{type}", func(r chi.Router) {
			r.Get("/", handlers.NewListResourcesHandler(d).Execute)
			r.Get("/{id}", handlers.NewGetResourceHandler(d).Execute)
			r.Get("/{id}/activities", handlers.NewListActivitiesHandler(d).Execute)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth(d.Sessions, log))
				r.Post("/", handlers.NewCreateResourceHandler(d).Execute)
				r.Put("/{id}", handlers.NewUpdateResourceHandler(d).Execute)
				r.Post("/{id}/delete", handlers.NewRequestDeleteHandler(d).Execute)
				r.Post("/delete/confirm", handlers.NewConfirmDeleteHandler(d).Execute)
				r.Post("/delete/cancel", handlers.NewCancelDeleteHandler(d).Execute)
			})
		})

		r.With(auth.RequireAuth(d.Sessions, log)).
			Post("/uploads", handlers.NewUploadImagesHandler(d).Execute)
	})
}
