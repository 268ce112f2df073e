package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDescLoad          = "desc_load"
	KeyDescCompress      = "desc_compress"
	KeyDescClose         = "desc_close"
	KeyNoImageLoaded     = "no_image_loaded"
	KeyLoadImage         = "load_image"
	KeyChangeImage       = "change_image"
	KeyCompressSave      = "compress_save"
	KeyClose             = "close"
	KeyShowInFolder      = "show_in_folder"
	KeyLanguage          = "language"
	KeyStatusEncoding    = "status_encoding"
	KeyStatusCompleted   = "status_completed"
	KeyStatusError       = "status_error"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyImageInfoTemplate = "image_info_template"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Compressor Pro",
		KeyDescLoad:          "Load or change an image with the button below.",
		KeyDescCompress:      "Compress the image and save.",
		KeyDescClose:         "Use “Close” to exit the application at any time.",
		KeyNoImageLoaded:     "No Image Loaded",
		KeyLoadImage:         "Load Image",
		KeyChangeImage:       "Change Image",
		KeyCompressSave:      "Compress & Save",
		KeyClose:             "Close",
		KeyShowInFolder:      "Show in Folder",
		KeyLanguage:          "Language",
		KeyStatusEncoding:    "Compressing...",
		KeyStatusCompleted:   "Saved",
		KeyStatusError:       "Failed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyImageInfoTemplate: "%s · %d×%d · %s",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Image Compressor Pro",
		KeyDescLoad:          "Загрузите или смените изображение кнопкой ниже.",
		KeyDescCompress:      "Сожмите изображение и сохраните.",
		KeyDescClose:         "Нажмите «Закрыть», чтобы выйти в любой момент.",
		KeyNoImageLoaded:     "Изображение не загружено",
		KeyLoadImage:         "Загрузить",
		KeyChangeImage:       "Сменить",
		KeyCompressSave:      "Сжать и сохранить",
		KeyClose:             "Закрыть",
		KeyShowInFolder:      "Показать в папке",
		KeyLanguage:          "Язык",
		KeyStatusEncoding:    "Сжатие...",
		KeyStatusCompleted:   "Сохранено",
		KeyStatusError:       "Ошибка",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyImageInfoTemplate: "%s · %d×%d · %s",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Image Compressor Pro",
		KeyDescLoad:          "Carregue ou troque uma imagem com o botão abaixo.",
		KeyDescCompress:      "Comprima a imagem e salve.",
		KeyDescClose:         "Use “Fechar” para sair do aplicativo a qualquer momento.",
		KeyNoImageLoaded:     "Nenhuma imagem carregada",
		KeyLoadImage:         "Carregar imagem",
		KeyChangeImage:       "Trocar imagem",
		KeyCompressSave:      "Comprimir e salvar",
		KeyClose:             "Fechar",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyLanguage:          "Idioma",
		KeyStatusEncoding:    "Comprimindo...",
		KeyStatusCompleted:   "Salvo",
		KeyStatusError:       "Falhou",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyImageInfoTemplate: "%s · %d×%d · %s",
	}
}
