package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/booking/booking-backend/internal/http/bookings_post"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	port := os.Getenv("BOOKING_BACKEND_PORT")
	if port == "" {
		port = "9090"
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Post("/bookings", bookings_post.New().ServeHTTP)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("booking backend stub listening on :%s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("booking backend stub: %v", err)
	}
}
