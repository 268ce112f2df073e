package model

import "testing"

func TestExportStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   ExportStatus
		expected bool
	}{
		{ExportStatusPending, false},
		{ExportStatusEncoding, true},
		{ExportStatusCompleted, false},
		{ExportStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("ExportStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestExportStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   ExportStatus
		expected bool
	}{
		{ExportStatusPending, false},
		{ExportStatusEncoding, false},
		{ExportStatusCompleted, true},
		{ExportStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("ExportStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestExportStatus_String(t *testing.T) {
	status := ExportStatusEncoding
	expected := "Encoding"
	result := status.String()

	if result != expected {
		t.Errorf("ExportStatus.String() = %s, expected %s", result, expected)
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, "info"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}

	for _, test := range tests {
		if got := test.severity.String(); got != test.expected {
			t.Errorf("Severity(%d).String() = %s, expected %s", int(test.severity), got, test.expected)
		}
	}
}
