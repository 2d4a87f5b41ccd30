package main

import (
	_ "Backend-PlanujSmeny/docs"
	"Backend-PlanujSmeny/src/config"
	"Backend-PlanujSmeny/src/controllers"
	"Backend-PlanujSmeny/src/database"
	"Backend-PlanujSmeny/src/jobs"
	"Backend-PlanujSmeny/src/routes"
	"Backend-PlanujSmeny/src/seeder"
	"Backend-PlanujSmeny/src/services/auth"
	"Backend-PlanujSmeny/src/services/catalog"
	"Backend-PlanujSmeny/src/services/checkin"
	"Backend-PlanujSmeny/src/utils"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)

	// Redis เป็น optional: ไม่มีก็รันได้ แต่ไม่มี blacklist / throttling / job
	database.InitRedis(cfg.RedisURI)
	database.InitAsynq()

	source := catalogSource(cfg)

	sessions := checkin.NewStore(nil)
	authService, err := auth.NewService(auth.DemoCredentials(), sessions, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Error preparing accounts: %v", err)
	}

	worker, err := jobs.StartWorker(sessions)
	if err != nil {
		log.Fatalf("Error starting worker: %v", err)
	}

	loc := cfg.Location()
	app := routes.NewApp(routes.Controllers{
		Auth:      controllers.NewAuthController(authService, cfg.TokenTTL),
		CheckIn:   controllers.NewCheckInController(sessions, source, loc, cfg.ShiftOverrunAfter),
		Locations: controllers.NewLocationController(source),
		Clock:     controllers.NewClockController(loc),
	}, cfg.AllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("🚀 Server is running on port " + cfg.AppPort)
		if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppPort))); err != nil {
			log.Printf("❌ server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("⚠️ shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	database.CloseAsynq()
	database.CloseRedis()
	database.DisconnectMongoDB(shutdownCtx)
}

// catalogSource เลือกแหล่งข้อมูลสาขา: MongoDB ถ้าตั้งค่าไว้ ไม่งั้นใช้ข้อมูลในโค้ด
func catalogSource(cfg *config.Config) catalog.Source {
	if cfg.MongoURI == "" {
		return catalog.Default()
	}
	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Printf("⚠️ MongoDB unavailable, using built-in locations: %v", err)
		return catalog.Default()
	}

	if cfg.SeedCatalog {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := seeder.SeedSampleLocations(ctx, database.LocationCollection); err != nil {
			log.Fatalf("Error seeding locations: %v", err)
		}
	}
	return catalog.NewMongoSource(database.LocationCollection)
}
