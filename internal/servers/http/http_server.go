package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"microblog/configs"
	"microblog/internal/errs"
	"microblog/internal/handlers"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	configs *configs.Config
	router  *gin.Engine
	handler *handlers.RestHandler
}

func NewHttpServer(configs *configs.Config, handler *handlers.RestHandler) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			configs: configs,
			handler: handler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.router = SetupRouter(hs.handler)
	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

// SetupRouter builds the gin engine with the message resource routes.
// Unknown verbs on known paths answer 405 with the error envelope.
func SetupRouter(handler *handlers.RestHandler) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	router.NoMethod(func(ctx *gin.Context) {
		handlers.RespondError(ctx, errs.MethodNotSupported())
	})
	router.NoRoute(func(ctx *gin.Context) {
		handlers.RespondError(ctx, errs.NotFound(ctx.Request.URL.Path))
	})

	messages := router.Group("/api/messages")
	{
		messages.GET("/", handler.ListMessages)
		messages.POST("/", handler.CreateMessage)
		messages.GET("/:id", handler.GetMessage)
		messages.PATCH("/:id", handler.PatchMessage)
		messages.DELETE("/:id", handler.DeleteMessage)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	return router
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%d", hs.configs.Viper.GetInt("APP_SERVER_PORT"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Println("HTTP server started on", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
