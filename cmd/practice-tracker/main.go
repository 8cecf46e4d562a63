package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"practice-tracker/internal/config"
	"practice-tracker/internal/controllers"
	"practice-tracker/internal/logger"
	"practice-tracker/internal/models"
	"practice-tracker/internal/shutdown"
	"practice-tracker/internal/store"
	"practice-tracker/internal/views"
)

const (
	AppName    = "Practice App"
	AppID      = "com.practiceapp.practice-tracker"
	AppVersion = "1.0.0"
)

func main() {
	cfg := loadConfig()
	appLogger := buildLogger(cfg)

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version": AppVersion,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	dataPath, err := cfg.DataFile()
	if err != nil {
		log.Fatalf("resolve data file: %v", err)
	}

	fileStore := store.NewFileStore(dataPath, appLogger)
	repo := models.NewRepository(fileStore, appLogger)

	mainView := views.NewMainView(window)
	mainView.SetDataFile(dataPath)

	controller := controllers.NewMainController(repo, appLogger)
	controller.SetMainView(mainView)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("controller", controller.Shutdown)
	shutdownManager.Listen(func() {
		fyne.Do(fyneApp.Quit)
	})

	window.SetCloseIntercept(func() {
		shutdownManager.Shutdown()
		window.Close()
	})

	if err := controller.Start(); err != nil {
		// Corrupt data is fatal; the file stays on disk untouched so the
		// user can repair it by hand.
		appLogger.Error("Application", err, map[string]interface{}{
			"data_file": dataPath,
		})
		mainView.ShowStartupFailure(err, func() {
			fyneApp.Quit()
		})
	}

	mainView.Show()
	fyneApp.Run()

	shutdownManager.Shutdown()
	appLogger.Info("Application", "terminated", nil)
}

func loadConfig() *config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		log.Printf("config path unavailable, using defaults: %v", err)
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
		return config.Default()
	}
	return cfg
}

func buildLogger(cfg *config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.Log.Level)
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}

	if cfg.Log.File != "" {
		return logger.NewTeeLogger(cfg.Log.File, level, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	}
	return logger.NewConsoleLogger(level)
}
