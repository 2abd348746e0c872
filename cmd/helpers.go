package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Delete all history? [y/N]: ")
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(response)

	return response == "y" || response == "Y"
}

// readSecret reads a secret from the terminal without echoing
func readSecret(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr) // New line after input

		if err != nil {
			return "", err
		}

		return strings.TrimSpace(string(secret)), nil
	}

	// Fallback for non-terminal (piped input)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}

	return "", fmt.Errorf("failed to read token")
}

// maskToken keeps the first four characters of a token
func maskToken(token string) string {
	if token == "" {
		return "(none)"
	}

	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}

	return token[:4] + strings.Repeat("*", 8)
}

// firstLine returns the first non-empty line of s, truncated to maxLen
func firstLine(s string, maxLen int) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return truncateString(line, maxLen)
		}
	}

	return ""
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

// formatAge formats a time as a human-readable age string
func formatAge(t time.Time, now time.Time) string {
	d := now.Sub(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format(time.DateOnly)
	}
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}

	padding := (width - len(s)) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-len(s)-padding, "")
}

// printInfoBox prints a box with a title and label/value lines in order
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	_, _ = fmt.Fprintln(w, "╔"+strings.Repeat("═", boxWidth-2)+"╗")
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintln(w, "╠"+strings.Repeat("═", boxWidth-2)+"╣")

	for _, key := range order {
		val, ok := items[key]
		if !ok {
			continue
		}

		content := truncateString(fmt.Sprintf("  %s: %s", key, val), boxWidth-2)
		padding := boxWidth - 2 - len([]rune(content))

		_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
	}

	_, _ = fmt.Fprintln(w, "╚"+strings.Repeat("═", boxWidth-2)+"╝")
}
