package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/dustin/go-humanize"

	"github.com/ytget/image-compressor/internal/compress"
	"github.com/ytget/image-compressor/internal/config"
	"github.com/ytget/image-compressor/internal/imaging"
	"github.com/ytget/image-compressor/internal/model"
	"github.com/ytget/image-compressor/internal/platform"
	"github.com/ytget/image-compressor/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	exporter     compress.Exporter
	settings     *config.Settings
	localization *Localization

	// State of the current run; only touched from UI callbacks
	session    session.Session
	lastExport string

	titleText      *canvas.Text
	descLabel      *widget.Label
	previewCard    *fyne.Container
	preview        *canvas.Image
	placeholder    *widget.Label
	imageInfo      *widget.Label
	presetHint     *widget.Label
	statusLabel    *widget.Label
	loadBtn        *widget.Button
	compressBtn    *widget.Button
	closeBtn       *widget.Button
	revealBtn      *widget.Button
	languageSelect *widget.Select

	// notify presents a message; replaced in tests
	notify func(model.Message)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, exporter compress.Exporter, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		exporter:     exporter,
		settings:     settings,
		localization: localization,
	}
	ui.notify = ui.presentDialog

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for export status updates
	ui.exporter.SetUpdateCallback(ui.onExportUpdate)

	ui.setupUI()
	log.Printf("UI setup completed successfully")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), ColorForeground)
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.Alignment = fyne.TextAlignCenter

	ui.descLabel = widget.NewLabel(ui.descriptionText())
	ui.descLabel.Alignment = fyne.TextAlignCenter
	ui.descLabel.Wrapping = fyne.TextWrapWord

	ui.languageSelect = widget.NewSelect(ui.languageNames(), ui.onLanguageSelected)
	ui.languageSelect.PlaceHolder = ui.localization.GetText(KeyLanguage)
	ui.languageSelect.SetSelected(ui.settings.GetLanguageOptions()[ui.localization.GetCurrentLanguage()])
	topBar := container.NewHBox(layout.NewSpacer(), ui.languageSelect)

	header := container.NewVBox(topBar, ui.titleText, ui.descLabel)

	// Preview card
	ui.placeholder = widget.NewLabelWithStyle(ui.localization.GetText(KeyNoImageLoaded), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.preview = canvas.NewImageFromImage(nil)
	ui.preview.FillMode = canvas.ImageFillContain
	ui.preview.ScaleMode = canvas.ImageScaleSmooth
	ui.preview.Hide()

	cardBg := canvas.NewRectangle(ColorCard)
	cardBg.CornerRadius = CardRadius
	cardContent := container.New(
		layout.NewCustomPaddedLayout(CardPadding, CardPadding, CardPadding, CardPadding),
		container.NewStack(container.NewCenter(ui.placeholder), ui.preview),
	)
	ui.previewCard = container.NewStack(cardBg, cardContent)
	cardSection := container.New(layout.NewCustomPaddedLayout(SectionSpacing, SectionSpacing, 0, 0), ui.previewCard)

	ui.imageInfo = widget.NewLabel("")
	ui.imageInfo.Alignment = fyne.TextAlignCenter
	ui.imageInfo.Truncation = fyne.TextTruncateEllipsis

	// Buttons
	buttonSize := fyne.NewSize(ButtonMinWidth, ButtonMinHeight)
	ui.loadBtn = widget.NewButton(ui.localization.GetText(KeyLoadImage), ui.onLoadClick)
	ui.compressBtn = widget.NewButton(ui.localization.GetText(KeyCompressSave), ui.onCompressClick)
	ui.closeBtn = widget.NewButton(ui.localization.GetText(KeyClose), ui.onCloseClick)

	ui.statusLabel = widget.NewLabel("")
	ui.revealBtn = widget.NewButton(ui.localization.GetText(KeyShowInFolder), ui.onRevealClick)
	ui.revealBtn.Importance = widget.LowImportance
	ui.revealBtn.Disable()
	statusRow := container.NewHBox(layout.NewSpacer(), ui.statusLabel, ui.revealBtn, layout.NewSpacer())

	buttonBar := container.NewBorder(nil, nil,
		container.NewGridWrap(buttonSize, ui.loadBtn),
		container.NewGridWrap(buttonSize, ui.closeBtn),
		container.NewCenter(container.NewGridWrap(buttonSize, ui.compressBtn)),
	)

	ui.presetHint = widget.NewLabel(ui.presetText())
	ui.presetHint.Alignment = fyne.TextAlignCenter
	ui.presetHint.Importance = widget.LowImportance

	footer := container.NewVBox(ui.imageInfo, statusRow, buttonBar, ui.presetHint)

	content := container.NewBorder(header, footer, nil, nil, cardSection)
	ui.window.SetContent(container.New(
		layout.NewCustomPaddedLayout(WindowMargin, WindowMargin, WindowMargin, WindowMargin),
		content,
	))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
}

// onTypedKey toggles full screen on F11
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	if ev.Name != fyne.KeyF11 {
		return
	}
	ui.settings.SetFullScreen(!ui.settings.IsFullScreen())
	ui.window.SetFullScreen(ui.settings.IsFullScreen())
}

// descriptionText returns the bullet list shown under the title
func (ui *RootUI) descriptionText() string {
	return BulletPrefix + ui.localization.GetText(KeyDescLoad) + "\n" +
		BulletPrefix + ui.localization.GetText(KeyDescCompress) + "\n" +
		BulletPrefix + ui.localization.GetText(KeyDescClose)
}

// presetText describes the fixed export presets on one line
func (ui *RootUI) presetText() string {
	parts := make([]string, 0, len(ui.settings.GetPresets()))
	for _, preset := range ui.settings.GetPresets() {
		detail := fmt.Sprintf("zlib %d", preset.CompressionLevel)
		if preset.Quality > 0 {
			detail = fmt.Sprintf("q%d", preset.Quality)
		} else if preset.Optimize {
			detail = "optimized"
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s)", preset.Name, strings.Join(preset.Extensions, " "), detail))
	}
	return strings.Join(parts, " · ")
}

// languageNames returns the display names of the languages, ordered by code
func (ui *RootUI) languageNames() []string {
	options := ui.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, options[code])
	}
	return names
}

// onLanguageSelected handles language change from the selector
func (ui *RootUI) onLanguageSelected(name string) {
	for code, label := range ui.settings.GetLanguageOptions() {
		if label != name {
			continue
		}
		if code == ui.localization.GetCurrentLanguage() {
			return
		}
		ui.localization.SetLanguage(code)
		ui.settings.SetLanguage(code)
		ui.refreshUITexts()
		return
	}
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()
	ui.descLabel.SetText(ui.descriptionText())
	ui.placeholder.SetText(ui.localization.GetText(KeyNoImageLoaded))
	ui.compressBtn.SetText(ui.localization.GetText(KeyCompressSave))
	ui.closeBtn.SetText(ui.localization.GetText(KeyClose))
	ui.revealBtn.SetText(ui.localization.GetText(KeyShowInFolder))
	ui.languageSelect.PlaceHolder = ui.localization.GetText(KeyLanguage)
	if ui.session.HasImage() {
		ui.loadBtn.SetText(ui.localization.GetText(KeyChangeImage))
	} else {
		ui.loadBtn.SetText(ui.localization.GetText(KeyLoadImage))
	}
}

// onLoadClick opens the file dialog for choosing a source image
func (ui *RootUI) onLoadClick() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showMessage(model.ErrorMessage(err.Error()))
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		ui.loadImage(path)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(ui.settings.GetOpenExtensions()))
	if dir, err := platform.GetHomePicturesDir(); err == nil {
		ui.setDialogLocation(fd, dir)
	}
	fd.Resize(ui.dialogSize())
	fd.Show()
}

// loadImage loads path into the session and shows the preview
func (ui *RootUI) loadImage(path string) {
	next, msg, ok := session.Load(ui.session, path)
	if !ok {
		ui.showMessage(msg)
		return
	}

	ui.session = next
	ui.loadBtn.SetText(ui.localization.GetText(KeyChangeImage))
	ui.statusLabel.SetText("")
	ui.updatePreview()
}

// updatePreview renders the loaded image scaled to the preview card
func (ui *RootUI) updatePreview() {
	src := ui.session.Source
	if src == nil {
		return
	}

	size := ui.previewCard.Size()
	maxW := int(size.Width - 2*CardPadding - ui.settings.GetPreviewMargin())
	maxH := int(size.Height - 2*CardPadding - ui.settings.GetPreviewMargin())
	if maxW <= 0 || maxH <= 0 {
		maxW, maxH = FallbackPreviewWidth, FallbackPreviewHeight
	}

	ui.preview.Image = imaging.Thumbnail(src.Bitmap, maxW, maxH)
	ui.preview.Show()
	ui.preview.Refresh()
	ui.placeholder.Hide()

	ui.imageInfo.SetText(fmt.Sprintf(ui.localization.GetText(KeyImageInfoTemplate),
		src.BaseName(), src.Width(), src.Height(), humanize.Bytes(uint64(src.Size))))
}

// onCompressClick asks for a destination and exports the loaded image
func (ui *RootUI) onCompressClick() {
	if msg, ok := session.RequireImage(ui.session); !ok {
		ui.showMessage(msg)
		return
	}

	// The save dialog creates the chosen file, so the source must be readable first
	next, msg, ok := session.Reopen(ui.session)
	if !ok {
		ui.showMessage(msg)
		return
	}
	ui.session = next

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showMessage(model.ErrorMessage(err.Error()))
			return
		}
		if writer == nil {
			return // cancelled
		}
		path := writer.URI().Path()
		writer.Close()
		ui.saveImage(path)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(ui.settings.GetSaveExtensions()))
	fd.SetFileName(session.SuggestedName(ui.session, ui.settings))
	ui.setDialogLocation(fd, filepath.Dir(ui.session.Source.Path))
	fd.Resize(ui.dialogSize())
	fd.Show()
}

// saveImage exports the session image to path and reports the outcome
func (ui *RootUI) saveImage(path string) {
	msg, result := session.Save(ui.session, path, ui.exporter)
	if result != nil {
		if result.OK() {
			ui.lastExport = result.Path
			ui.revealBtn.Enable()
		} else {
			discardEmptyFile(path)
		}
	}
	ui.showMessage(msg)
}

// onExportUpdate reflects export status changes in the status line
func (ui *RootUI) onExportUpdate(result *model.ExportResult) {
	if ui.statusLabel == nil {
		return
	}

	if result.Status.IsActive() {
		ui.loadBtn.Disable()
		ui.compressBtn.Disable()
	} else if result.Status.IsFinished() {
		ui.loadBtn.Enable()
		ui.compressBtn.Enable()
	}

	switch result.Status {
	case model.ExportStatusEncoding:
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusEncoding))
	case model.ExportStatusCompleted:
		ui.statusLabel.SetText(fmt.Sprintf("%s: %s (%s)",
			ui.localization.GetText(KeyStatusCompleted), filepath.Base(result.Path),
			humanize.Bytes(uint64(result.BytesWritten))))
	case model.ExportStatusError:
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusError))
	default:
		ui.statusLabel.SetText(DashPlaceholder)
	}
}

// onRevealClick reveals the last exported file in the system file manager
func (ui *RootUI) onRevealClick() {
	if ui.lastExport == "" {
		return
	}

	if err := platform.OpenFileInManager(ui.lastExport); err != nil {
		log.Printf("Error revealing file %s: %v", ui.lastExport, err)
		ui.showMessage(model.ErrorMessage(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error()))
		return
	}
	log.Printf("File revealed successfully: %s", ui.lastExport)
}

// onCloseClick closes the main window, which ends the application
func (ui *RootUI) onCloseClick() {
	log.Printf("Close requested")
	ui.window.Close()
}

// setDialogLocation starts the file dialog in dir when dir is listable
func (ui *RootUI) setDialogLocation(fd *dialog.FileDialog, dir string) {
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}

// dialogSize returns a file dialog size that fits the window
func (ui *RootUI) dialogSize() fyne.Size {
	size := ui.window.Canvas().Size()
	return fyne.NewSize(size.Width*0.8, size.Height*0.8)
}

// discardEmptyFile removes the zero-length file the save dialog creates when
// choosing a new destination, so a failed export leaves nothing behind.
func discardEmptyFile(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() != 0 {
		return
	}
	if err := os.Remove(path); err != nil {
		log.Printf("Failed to remove empty file %s: %v", path, err)
	}
}
