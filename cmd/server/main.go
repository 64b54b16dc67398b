package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"Resep-HPP/cmd/config"
	migration "Resep-HPP/cmd/database/migrate"
	"Resep-HPP/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal(err)
	}

	if *migrate {
		if err := migration.Migrate(db); err != nil {
			log.Fatal(err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Errorf("shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
