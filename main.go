package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimfu/bracketeer/config"
	"github.com/dimfu/bracketeer/database"
	"github.com/dimfu/bracketeer/discord"
	"github.com/dimfu/bracketeer/httpapi"
	"github.com/dimfu/bracketeer/models"
)

func main() {
	config.Init()
	cfg := config.GetEnv()

	db := database.Init()
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:    cfg.HTTP_ADDR,
		Handler: httpapi.SetupRoutes(models.NewStore(db)),
	}
	go func() {
		log.Printf("listening on %s", cfg.HTTP_ADDR)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go discord.Init(ctx)

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	<-stopChan
	log.Println("Shutting down...")

	cancel()

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error shutting down http server: %v", err)
	}

	log.Println("Shutdown complete")
}
