package session

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ytget/image-compressor/internal/compress"
	"github.com/ytget/image-compressor/internal/config"
	"github.com/ytget/image-compressor/internal/imaging"
	"github.com/ytget/image-compressor/internal/model"
	"github.com/ytget/image-compressor/internal/platform"
)

// User-facing message texts
const (
	TextInvalidImage = "Selected file is not a valid image."
	TextNoImage      = "First load an image using the button above."
	TextOpenFailed   = "Failed to open image: %s"
	TextSaveFailed   = "Failed to save image: %s"
	TextSaved        = "Image successfully saved to:\n%s"
)

// Session is the state carried between user actions: at most one loaded image.
// Operations take a Session and return the next one instead of mutating it.
type Session struct {
	Source *model.SourceImage
}

// HasImage reports whether an image has been loaded
func (s Session) HasImage() bool {
	return s.Source != nil && s.Source.Bitmap != nil
}

// Load decodes path and returns a session holding it. When the file is not a
// decodable image the input session is returned unchanged with an error message.
func Load(s Session, path string) (Session, model.Message, bool) {
	if !platform.IsImageExtension(path) {
		log.Printf("Loading %s: unrecognised extension, detecting format from content", path)
	}

	img, format, size, err := imaging.Decode(path)
	if err != nil {
		log.Printf("Failed to load %s: %v", path, err)
		return s, model.ErrorMessage(TextInvalidImage), false
	}

	src := model.NewSourceImage(path, img, format, size)
	log.Printf("Loaded %s (%s, %dx%d, %s)", path, format, src.Width(), src.Height(), humanize.Bytes(uint64(size)))
	return Session{Source: src}, model.Message{}, true
}

// RequireImage returns the "No Image" message when nothing is loaded
func RequireImage(s Session) (model.Message, bool) {
	if !s.HasImage() {
		return model.InfoMessage(model.TitleNoImage, TextNoImage), false
	}
	return model.Message{}, true
}

// Reopen decodes the loaded image's file again. It runs before a destination
// is chosen, so a source that was deleted or damaged after loading is
// reported without touching any output file. On failure the input session is
// returned unchanged.
func Reopen(s Session) (Session, model.Message, bool) {
	if msg, ok := RequireImage(s); !ok {
		return s, msg, false
	}

	img, format, size, err := imaging.Decode(s.Source.Path)
	if err != nil {
		log.Printf("Failed to reopen %s: %v", s.Source.Path, err)
		return s, model.ErrorMessage(fmt.Sprintf(TextOpenFailed, err.Error())), false
	}
	return Session{Source: model.NewSourceImage(s.Source.Path, img, format, size)}, model.Message{}, true
}

// SuggestedName returns the save dialog's default name for the loaded image,
// "<basename>_compressed.jpg" with the default settings.
func SuggestedName(s Session, settings *config.Settings) string {
	if !s.HasImage() {
		return ""
	}
	return platform.SuggestedOutputName(s.Source.Path, settings.GetOutputSuffix(), settings.GetOutputExtension())
}

// Save re-reads the loaded image from disk and exports it to destinationPath.
// It returns the message to show and the export result (nil when nothing ran).
func Save(s Session, destinationPath string, exporter compress.Exporter) (model.Message, *model.ExportResult) {
	if msg, ok := RequireImage(s); !ok {
		return msg, nil
	}

	result := exporter.ExportFile(s.Source.Path, destinationPath)
	if result.OK() {
		return model.InfoMessage(model.TitleDone, savedText(s.Source, result)), result
	}

	if errors.Is(result.Err, compress.ErrSourceUnreadable) {
		reason := strings.TrimPrefix(result.Reason(), compress.ErrSourceUnreadable.Error()+": ")
		return model.ErrorMessage(fmt.Sprintf(TextOpenFailed, reason)), result
	}
	return model.ErrorMessage(fmt.Sprintf(TextSaveFailed, result.Reason())), result
}

// savedText formats the success message with a size comparison line
func savedText(src *model.SourceImage, result *model.ExportResult) string {
	text := fmt.Sprintf(TextSaved, result.Path)
	if src.Size <= 0 {
		return text
	}

	before := humanize.Bytes(uint64(src.Size))
	after := humanize.Bytes(uint64(result.BytesWritten))
	change := float64(src.Size-result.BytesWritten) / float64(src.Size) * 100
	if change >= 0 {
		return fmt.Sprintf("%s\n\n%s → %s (%.1f%% smaller)", text, before, after, change)
	}
	return fmt.Sprintf("%s\n\n%s → %s (%.1f%% larger)", text, before, after, -change)
}
