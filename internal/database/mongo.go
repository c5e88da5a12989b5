package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens and pings the Mongo deployment used when
// STORE_DRIVER=mongo.
func Connect(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("mongo connect:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("mongo ping:", err)
	}
	log.Println("Connected to MongoDB")
	return client
}
