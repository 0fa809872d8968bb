package main

import (
	"context"
	"microblog/microblog/config"
	"microblog/microblog/controllers"
	"microblog/microblog/middlewares"
	"microblog/microblog/routes"
	"microblog/microblog/services/search"
	"microblog/microblog/sources/psql"
	"microblog/microblog/sources/psql/dao"
	"microblog/microblog/utils/logging"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	index, err := search.Open(cfg.SearchIndexPath)
	if err != nil {
		logging.ErrorLogger.Error("search index open error", zap.Error(err))
		os.Exit(1)
	}
	defer index.Close()

	userDAO := dao.NewUserDAO(db.DB)
	followDAO := dao.NewFollowDAO(db.DB)
	postDAO := dao.NewPostDAO(db.DB)

	socialCtrl := controllers.NewSocialController(userDAO, followDAO, postDAO)
	authCtrl := controllers.NewAuthController(userDAO, socialCtrl, cfg)
	userCtrl := controllers.NewUserController(userDAO, followDAO)
	postCtrl := controllers.NewPostController(postDAO, userDAO, index)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/auth", routes.AuthRoutes(authCtrl, userCtrl))
	r.Mount("/users", routes.UserRoutes(userCtrl, socialCtrl, postCtrl, cfg, userDAO))
	r.Mount("/posts", routes.PostRoutes(postCtrl, cfg, userDAO))
	r.Mount("/feed", routes.FeedRoutes(socialCtrl, cfg, userDAO))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
