package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/image-compressor/internal/compress"
	"github.com/ytget/image-compressor/internal/config"
	"github.com/ytget/image-compressor/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Log version information
	log.Printf("%s v%s starting...", config.AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(config.AppID)

	// Apply dark theme
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	settings := config.NewSettings()
	myWindow := newMainWindow(myApp, settings)

	// Initialize services
	compressSvc := compress.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, compressSvc, settings)

	// Show and run
	myWindow.ShowAndRun()
	log.Printf("%s exited", config.AppName)
}

// newMainWindow creates the main window, frameless when the driver supports it
func newMainWindow(a fyne.App, settings *config.Settings) fyne.Window {
	var w fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok && settings.IsFrameless() {
		w = drv.CreateSplashWindow()
	} else {
		w = a.NewWindow(config.AppName)
	}

	w.SetTitle(config.AppName)
	w.SetFullScreen(settings.IsFullScreen())
	w.SetMaster()
	return w
}
