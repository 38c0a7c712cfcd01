package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(store TournamentStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", Healthz)
	r.Get("/topologies/{slots}", GetTopology)
	r.Get("/topologies/{slots}/next/{place}", GetNextPosition)
	r.Get("/topologies/{slots}/tree", GetTopologyTree)

	if store != nil {
		r.Post("/tournaments", CreateTournament(store))
		r.Get("/tournaments/{id}", GetTournament(store))
		r.Get("/tournaments/{id}/tree", GetTournamentTree(store))
		r.Put("/tournaments/{id}/matches/{match}/payload", SetMatchPayload(store))
		r.Get("/tournaments/{id}/matches/{match}/payload", GetMatchPayload(store))
	}
	return r
}
