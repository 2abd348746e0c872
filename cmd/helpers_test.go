package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/yasu691/fragmenta/internal/model"
)

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "yes\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer

			got := promptConfirm(strings.NewReader(tt.input), &out, "Sure? [y/N]: ")
			if got != tt.want {
				t.Errorf("promptConfirm(%q) = %v, want %v", tt.input, got, tt.want)
			}

			if out.String() != "Sure? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "(none)"},
		{input: "short", want: "*****"},
		{input: "ghp_abcdefghijkl", want: "ghp_********"},
	}

	for _, tt := range tests {
		if got := maskToken(tt.input); got != tt.want {
			t.Errorf("maskToken(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{input: "hello", maxLen: 10, want: "hello"},
		{input: "hello world", maxLen: 8, want: "hello..."},
		{input: "hello", maxLen: 3, want: "hel"},
		{input: "日本語のメモです", maxLen: 5, want: "日本..."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("\n\n  buy milk  \nand eggs", 40); got != "buy milk" {
		t.Errorf("firstLine() = %q, want %q", got, "buy milk")
	}

	if got := firstLine("   ", 40); got != "" {
		t.Errorf("firstLine() = %q, want empty", got)
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 10 * time.Second, want: "just now"},
		{ago: 5 * time.Minute, want: "5m ago"},
		{ago: 3 * time.Hour, want: "3h ago"},
		{ago: 48 * time.Hour, want: "2d ago"},
	}

	for _, tt := range tests {
		if got := formatAge(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("formatAge(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestPrintInfoBox(t *testing.T) {
	var buf bytes.Buffer

	printInfoBox(&buf, "Repository", map[string]string{"Owner": "alice", "Repo": "notes"}, []string{"Owner", "Repo", "Missing"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("printInfoBox() printed %d lines, want 6:\n%s", len(lines), buf.String())
	}

	for _, line := range lines {
		if n := len([]rune(line)); n != boxWidth {
			t.Errorf("line %q has width %d, want %d", line, n, boxWidth)
		}
	}
}

func TestApplySettingsFlags(t *testing.T) {
	fs := pflag.NewFlagSet("settings", pflag.ContinueOnError)
	fs.Bool("auto-save", true, "")
	fs.Int("retry-attempts", 3, "")
	fs.Int("retry-delay", 1000, "")

	if err := fs.Parse([]string{"--retry-delay", "250", "--auto-save=false"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	s := model.AppSettings{AutoSaveDraft: true, RetryAttempts: 7, RetryDelay: 1000}
	applySettingsFlags(fs, &s)

	want := model.AppSettings{AutoSaveDraft: false, RetryAttempts: 7, RetryDelay: 250}
	if s != want {
		t.Errorf("applySettingsFlags() = %+v, want %+v", s, want)
	}
}
