// Command authctl is the operator tool for the authentication backend:
//
//	authctl create-user -e user@example.com
//	authctl reset-password -e user@example.com
//	authctl inspect-schema
//
// Store settings come from the same environment variables as the server
// (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rbarroso/auth-backend/internal/authctl"
	"github.com/rbarroso/auth-backend/internal/server/config"
	"github.com/rbarroso/auth-backend/internal/server/storage"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: authctl <create-user|reset-password|inspect-schema> [flags]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.LoadStoreConfig()
	store, err := storage.NewPostgresRepositoryManager(cfg.DatabaseDSN())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer store.Close()

	app := authctl.NewApp(store, os.Stdout)
	ctx := context.Background()

	var runErr error
	switch os.Args[1] {
	case "create-user":
		email := parseEmailFlag(os.Args[2:])
		password, err := authctl.GetPassword(os.Stderr)
		if err != nil {
			runErr = err
			break
		}
		runErr = app.CreateUser(ctx, email, password)
	case "reset-password":
		email := parseEmailFlag(os.Args[2:])
		password, err := authctl.GetPassword(os.Stderr)
		if err != nil {
			runErr = err
			break
		}
		runErr = app.ResetPassword(ctx, email, password)
	case "inspect-schema":
		runErr = app.InspectSchema(ctx)
	default:
		usage()
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func parseEmailFlag(args []string) string {
	fs := flag.NewFlagSet("authctl", flag.ExitOnError)
	email := fs.String("e", "", "credential email")
	_ = fs.Parse(args)
	if *email == "" {
		fmt.Fprintln(os.Stderr, "missing -e <email>")
		os.Exit(2)
	}
	return *email
}
