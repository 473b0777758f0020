package main

import (
	"caps-service/internal/app/config"
	"caps-service/internal/app/drivers/database"
	"context"
	"log"
	"time"
)

// Creates the unique indexes the service relies on. Safe to run repeatedly.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, mongoDB, driverConfig.MongoDB.DbName); err != nil {
		log.Fatalf("Error ensuring indexes: %v", err)
	}

	if err := mongoDB.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting from MongoDB: %v", err)
	}

	log.Println("Indexes ensured!")
}
