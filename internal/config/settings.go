package config

import (
	"github.com/ytget/image-compressor/internal/compress"
	"github.com/ytget/image-compressor/internal/platform"
)

// Application identity
const (
	AppID   = "com.ytget.image-compressor"
	AppName = "Image Compressor Pro"
)

// Default values
const (
	DefaultFullScreen      = true
	DefaultFrameless       = true
	DefaultOutputSuffix    = "_compressed"
	DefaultOutputExtension = ".jpg"
	DefaultLanguage        = "en"
	DefaultPreviewMargin   = 40
)

// Preset describes one of the two fixed export presets
type Preset struct {
	Name             string
	Extensions       []string
	Quality          int
	CompressionLevel int
	Optimize         bool
}

// Settings holds the application configuration for one run.
// Nothing is persisted; every run starts from the defaults.
type Settings struct {
	language   string
	fullScreen bool
	frameless  bool
}

// NewSettings creates settings initialised with the defaults
func NewSettings() *Settings {
	return &Settings{
		language:   DefaultLanguage,
		fullScreen: DefaultFullScreen,
		frameless:  DefaultFrameless,
	}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	if s.language == "" {
		return DefaultLanguage
	}
	return s.language
}

// SetLanguage sets the application language for this run
func (s *Settings) SetLanguage(lang string) {
	if lang == "" || lang == "system" {
		lang = DefaultLanguage
	}
	s.language = lang
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// IsFullScreen reports whether the main window starts full screen
func (s *Settings) IsFullScreen() bool {
	return s.fullScreen
}

// SetFullScreen toggles full screen for this run
func (s *Settings) SetFullScreen(fullScreen bool) {
	s.fullScreen = fullScreen
}

// IsFrameless reports whether the main window is created without decorations
func (s *Settings) IsFrameless() bool {
	return s.frameless
}

// GetOutputSuffix returns the suffix appended to suggested output names
func (s *Settings) GetOutputSuffix() string {
	return DefaultOutputSuffix
}

// GetOutputExtension returns the extension of suggested output names
func (s *Settings) GetOutputExtension() string {
	return DefaultOutputExtension
}

// GetOpenExtensions returns the extensions accepted by the open dialog
func (s *Settings) GetOpenExtensions() []string {
	return platform.ImageExtensions
}

// GetSaveExtensions returns the extensions offered by the save dialog
func (s *Settings) GetSaveExtensions() []string {
	return []string{".jpg", ".jpeg", ".png"}
}

// GetPresets returns the fixed export presets, JPEG first
func (s *Settings) GetPresets() []Preset {
	return []Preset{
		{
			Name:       "JPEG",
			Extensions: []string{".jpg", ".jpeg"},
			Quality:    compress.JPEGQuality,
		},
		{
			Name:             "PNG",
			Extensions:       []string{".png"},
			CompressionLevel: compress.PNGCompressionLevel,
			Optimize:         compress.PNGOptimize,
		},
	}
}

// GetPreviewMargin returns the padding kept around the preview image
func (s *Settings) GetPreviewMargin() float32 {
	return DefaultPreviewMargin
}
