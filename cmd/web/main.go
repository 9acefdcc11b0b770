package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studybuddy/internal/platform/config"
	"studybuddy/internal/platform/sessions"
	"studybuddy/internal/web"
	"studybuddy/internal/web/apiclient"
	"studybuddy/internal/web/session"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize Redis (session store backend)
	sessions.ConnectRedis()
	defer sessions.CloseRedis()
	fmt.Println("Redis connected.")

	// 3. Initialize session store and API client
	store := session.NewStore(sessions.RDB, config.AppConfig.SessionCookie, config.AppConfig.SessionIdleTTL)
	api := apiclient.New(config.AppConfig.APIBaseURL, config.AppConfig.APIClientTimeout)

	// 4. Initialize Router & HTTP Server
	router := web.NewRouter(api, store)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.WebPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 5. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Web server starting on port %s", config.AppConfig.WebPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.WebPort, err)
		}
	}()
	log.Println("Web server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down web server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Web server stopped gracefully.")
}
