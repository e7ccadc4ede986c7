package main

import (
	"context"
	"log"
	"time"

	"fakeshop-io/api/internal/routers"
	"fakeshop-io/api/pkg/util"
)

func main() {
	client := util.ConnectDB()
	db := util.GetDatabase(client)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := util.EnsureIndexes(ctx, db)
	cancel()
	if err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	redisClient := util.ConnectRedis()
	mailer := util.NewMailer()

	router := routers.InitRoute(db, redisClient, mailer)

	port := util.LoadEnvFor("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
