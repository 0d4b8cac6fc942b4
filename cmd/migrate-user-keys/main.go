package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/databases"
)

// Rewrites legacy email valued userId fields to the owning user's id.
// Usage: DB_URI=... go run ./cmd/migrate-user-keys
func main() {
	conf := config.New()
	if conf.URL == "" {
		fmt.Println("Usage: DB_URI=mongodb://... [DB_NAME=health-tracker] go run ./cmd/migrate-user-keys")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := databases.NewClient(conf)
	if err != nil {
		zap.S().With(zap.Error(err)).Fatal("failed to create new client")
	}
	if err := client.Connect(ctx); err != nil {
		zap.S().With(zap.Error(err)).Fatal("failed to connect to database")
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	db := databases.NewDatabase(conf, client)
	users, err := databases.NewUserDatabase(db).List(ctx)
	if err != nil {
		zap.S().With(zap.Error(err)).Fatal("failed to list users")
	}

	changed, err := databases.MigrateUserKeys(ctx, db, users)
	for collection, n := range changed {
		fmt.Printf("%s: %d documents updated\n", collection, n)
	}
	if err != nil {
		zap.S().With(zap.Error(err)).Fatal("migration stopped early")
	}
	fmt.Printf("Migrated keys for %d users\n", len(users))
}
