package model

// ExportStatus represents the status of a single export
type ExportStatus string

const (
	// ExportStatusPending means the request is built but encoding has not started
	ExportStatusPending ExportStatus = "Pending"

	// ExportStatusEncoding means the bitmap is being encoded and written
	ExportStatusEncoding ExportStatus = "Encoding"

	// ExportStatusCompleted means the destination file was fully written
	ExportStatusCompleted ExportStatus = "Completed"

	// ExportStatusError means the export failed and the destination was left untouched
	ExportStatusError ExportStatus = "Error"
)

// String returns the string representation of ExportStatus
func (s ExportStatus) String() string {
	return string(s)
}

// IsActive returns true while the export is running
func (s ExportStatus) IsActive() bool {
	return s == ExportStatusEncoding
}

// IsFinished returns true if the export is in a finished state (completed or error)
func (s ExportStatus) IsFinished() bool {
	return s == ExportStatusCompleted || s == ExportStatusError
}

// Severity selects how a message is presented to the user.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
