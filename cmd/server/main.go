package main

import (
	"context"
	"log"

	"github.com/rbarroso/auth-backend/internal/server"
	"github.com/rbarroso/auth-backend/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
