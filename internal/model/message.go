package model

// Dialog titles shown by the UI
const (
	TitleError   = "Error"
	TitleNoImage = "No Image"
	TitleDone    = "Done"
)

// Message is a modal status message produced by a user action
type Message struct {
	Severity Severity
	Title    string
	Text     string
}

// InfoMessage creates an informational message
func InfoMessage(title, text string) Message {
	return Message{Severity: SeverityInfo, Title: title, Text: text}
}

// ErrorMessage creates an error message titled "Error"
func ErrorMessage(text string) Message {
	return Message{Severity: SeverityError, Title: TitleError, Text: text}
}

// IsZero reports whether the message carries nothing to show
func (m Message) IsZero() bool {
	return m.Title == "" && m.Text == ""
}
