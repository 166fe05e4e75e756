package main

import (
	"fmt"
	"log"
	"net/http"

	"taskboard/app/config"
	"taskboard/app/controllers"
	"taskboard/app/routes"
	"taskboard/app/services"
	"taskboard/app/views"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// Schema failures are advisory; the server still starts.
	if err := config.EnsureSchema(db); err != nil {
		log.Println("Schema setup failed, continuing anyway:", err)
	}

	renderer, err := views.New(cfg.TemplateDir)
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	// Initialize the service layer
	userService := services.NewUserService(db)

	// Initialize the controller layer
	userController := controllers.NewUserController(userService, renderer)

	// Setup HTTP server
	handler := routes.NewHandler(cfg.StaticDir, userController)

	fmt.Println("Server is running on http://0.0.0.0:" + cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
