// Package security scans note content for secrets before it leaves the machine
package security

import (
	"fmt"
	"os"
	"strings"

	"github.com/zricethezav/gitleaks/v8/detect"
	"github.com/zricethezav/gitleaks/v8/report"
)

// Scanner detects secrets in text with the default gitleaks rules
type Scanner struct {
	detector *detect.Detector
}

// Finding represents a detected secret
type Finding struct {
	RuleID      string
	Description string
	Line        int
	Secret      string // Redacted
}

// NewScanner creates a scanner with default gitleaks rules
func NewScanner() (*Scanner, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gitleaks config: %w", err)
	}

	detector.Redact = 80 // Redact 80% of the secret

	return &Scanner{
		detector: detector,
	}, nil
}

// ScanContent returns the secrets found in content
func (s *Scanner) ScanContent(content string) []Finding {
	return buildFindings(s.detector.DetectString(content))
}

// LoadIgnore loads fingerprints to skip from a .gitleaksignore file, if it exists
func (s *Scanner) LoadIgnore(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	return s.detector.AddGitleaksIgnore(path)
}

func buildFindings(findings []report.Finding) []Finding {
	out := make([]Finding, 0, len(findings))

	for _, f := range findings {
		out = append(out, Finding{
			RuleID:      f.RuleID,
			Description: f.Description,
			Line:        f.StartLine,
			Secret:      f.Secret, // Already redacted by detector
		})
	}

	return out
}

// FormatFindings formats findings for display
func FormatFindings(findings []Finding) string {
	if len(findings) == 0 {
		return ""
	}

	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "\n⚠️  Found %d potential secret(s):\n\n", len(findings))

	for i, f := range findings {
		_, _ = fmt.Fprintf(&sb, "  %d. %s\n", i+1, f.Description)
		_, _ = fmt.Fprintf(&sb, "     Rule: %s\n", f.RuleID)
		_, _ = fmt.Fprintf(&sb, "     Line: %d\n", f.Line)
		_, _ = fmt.Fprintf(&sb, "     Secret: %s\n", f.Secret)
		sb.WriteString("\n")
	}

	return sb.String()
}
