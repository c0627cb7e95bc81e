package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"library-system/pkg/database"
	"library-system/pkg/dto"
)

func newRouter() *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery(), requestLogger(), newIPRateLimiter(cfg.RateLimit).middleware())

	api := server.Group("/api")

	bookRoutes := api.Group("/books")
	bookResource := resource[dto.BookDTO, *dto.BookDTO]{collection: "books", entity: "book", svc: books}
	bookResource.register(bookRoutes)
	bookRoutes.POST("/:id/borrow", borrowBook)
	bookRoutes.POST("/:id/return", returnBook)

	memberResource := resource[dto.MemberDTO, *dto.MemberDTO]{collection: "members", entity: "member", svc: members}
	memberResource.register(api.Group("/members"))

	loanRoutes := api.Group("/loans")
	loanResource := resource[dto.LoanDTO, *dto.LoanDTO]{collection: "loans", entity: "loan", svc: loans}
	loanResource.register(loanRoutes)
	loanRoutes.POST("/:id/return", returnLoan)
	loanRoutes.POST("/:id/renew", renewLoan)

	server.GET("/manage/health", healthCheck)
	server.GET("/", redirectToSwagger)
	server.GET("/swagger/*any", swaggerHandler())

	return server
}

// serve runs the API until SIGINT or SIGTERM, then drains in-flight requests.
func serve(handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("library service listening", "address", srv.Addr)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		return err
	}

	logger.Info("server stopped", "address", srv.Addr)
	return nil
}

// requestLogger replaces gin.Logger so access lines go through the same slog handler as the rest of the service.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request completed", attrs...)
			return
		}
		logger.Info("request completed", attrs...)
	}
}

func healthCheck(ctx *gin.Context) {
	if err := database.Ping(ctx.Request.Context(), db); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database ping failed",
			"error":   err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"details": "Database " + cfg.DB.Target() + " is reachable",
	})
}
