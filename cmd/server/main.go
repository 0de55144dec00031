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

	"equiedge/config"
	"equiedge/internal/chat"
	"equiedge/internal/database"
	"equiedge/internal/router"
	"equiedge/pkg/cloudinary"
	"equiedge/pkg/cometchat"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cloud, err := cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		log.Fatalf("cloudinary: %v", err)
	}

	var sdk chat.SDK
	if cfg.CometChat.AuthKey != "" {
		sdk = cometchat.NewClient(cometchat.Config{
			AppID:   cfg.CometChat.AppID,
			Region:  cfg.CometChat.Region,
			AuthKey: cfg.CometChat.AuthKey,
		})
	} else {
		// Local development without provider credentials.
		log.Printf("[chat] COMETCHAT_AUTH_KEY not set, using in-memory stub")
		sdk = cometchat.NewStub()
	}

	engine := router.Setup(cfg, db, cloud, sdk)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
