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
	"github.com/joho/godotenv"

	"github.com/careerfolio/backend/config"
	"github.com/careerfolio/backend/internal/api/handlers"
	"github.com/careerfolio/backend/internal/api/middleware"
	"github.com/careerfolio/backend/internal/api/routes"
	"github.com/careerfolio/backend/internal/logger"
	mongorepo "github.com/careerfolio/backend/internal/repositories/mongo"
	pgrepo "github.com/careerfolio/backend/internal/repositories/postgres"
	"github.com/careerfolio/backend/internal/services"
	"github.com/careerfolio/backend/internal/sessionstore"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	ctx := context.Background()

	pg, err := config.InitPostgres()
	if err != nil {
		log.Fatalf("postgres init: %v", err)
	}
	log.Info("postgres connected")

	mongoClient, err := config.InitMongo(ctx)
	if err != nil {
		log.Fatalf("mongo init: %v", err)
	}
	log.Info("mongo connected")
	if err := config.EnsureMongoIndexes(mongoClient); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	rdb, err := config.InitRedis(ctx)
	if err != nil {
		log.Fatalf("redis init: %v", err)
	}
	log.Info("redis connected")

	db := mongoClient.Database(config.MongoDBName())

	userRepo := pgrepo.NewUserRepo(pg)
	profileRepo := pgrepo.NewProfileRepo(pg)
	sessions := sessionstore.NewRedisStore(rdb)

	sectionSvc := services.NewSectionService(
		mongorepo.NewAboutRepo(db),
		mongorepo.NewPortfolioRepo(db),
		mongorepo.NewSkillsRepo(db),
		mongorepo.NewEducationRepo(db),
		mongorepo.NewExperienceRepo(db),
		mongorepo.NewProjectRepo(db),
		mongorepo.NewCertificationRepo(db),
	)
	authSvc := services.NewAuthService(userRepo, profileRepo, sessions)
	profileSvc := services.NewProfileService(profileRepo, sectionSvc)

	if os.Getenv("GO_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:    handlers.NewAuthHandler(authSvc),
		Profile: handlers.NewProfileHandler(authSvc, profileSvc, sectionSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	_ = mongoClient.Disconnect(shutdownCtx)
	_ = rdb.Close()
}
