package app

import (
	"log"
	"microblog/configs"
	"microblog/internal/handlers"
	"microblog/internal/repositories"
	"microblog/internal/servers/database"
	"microblog/internal/servers/http"
	"microblog/internal/services"
	"sync"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	app.configs = cfg

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	messageRepo := repositories.NewMessageRepository(db)
	messageService := services.NewMessageService(messageRepo)
	restHandler := handlers.NewRestHandler(messageService)

	http.NewHttpServer(cfg, restHandler).Run()
}
