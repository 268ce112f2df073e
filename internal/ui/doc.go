package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the load and save buttons to the session workflow and the export
// service, renders the preview, and shows status dialogs. Labels are localized
// via Localization; dialog titles are fixed.
