package constants

import "strings"

// ReportFormat selects the row granularity and sheet layout of the output.
type ReportFormat string

const (
	// FormatBasic emits one sheet with one row per (transcript, domain) pair.
	FormatBasic ReportFormat = "basic"
	// FormatCompact emits one sheet with one row per transcript; domains are
	// folded into a single delimited column.
	FormatCompact ReportFormat = "compact"
	// FormatExpanded emits one sheet per transcript, labeled by transcript ID.
	FormatExpanded ReportFormat = "expanded"
)

var allFormats = []ReportFormat{FormatBasic, FormatCompact, FormatExpanded}

// Formats returns the supported report formats as strings.
func Formats() []string {
	result := make([]string, len(allFormats))
	for i, f := range allFormats {
		result[i] = string(f)
	}
	return result
}

// ParseFormat resolves a configured format value to its canonical constant.
func ParseFormat(input string) (ReportFormat, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, f := range allFormats {
		if normalized == string(f) {
			return f, true
		}
	}
	return "", false
}
