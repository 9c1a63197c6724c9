package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/config"
	"github.com/MERN-ing-the-midnight-oil/shelf-elf/handlers"
	"github.com/MERN-ing-the-midnight-oil/shelf-elf/middleware"
)

func main() {
	// Load configuration and connect to the database
	config.Load()
	config.InitDB()

	// Create a new Gin router
	r := gin.Default()

	r.Use(middleware.CORSMiddleware(config.App.ClientOrigin))

	handlers.RegisterRoutes(r)

	log.Printf("listening on :%s", config.App.Port)
	if err := r.Run(":" + config.App.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
