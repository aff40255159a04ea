package commands

import (
	"errors"
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
)

// splitLines turns operator input into distinct non-empty trimmed lines,
// keeping the order of first appearance.
func splitLines(raw string) []string {
	seen := make(map[string]struct{})
	lines := make([]string, 0)
	for line := range strings.Lines(raw) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	return lines
}

// lineWarning renders a per-line failure for the operator.
func lineWarning(code string, err error) string {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Sprintf("track code %q not found", code)
	case errors.Is(err, ErrTrackCodeOfAnotherCustomer):
		return fmt.Sprintf("track code %q belongs to another customer", code)
	case errors.Is(err, errs.ErrInvalidTransition):
		return fmt.Sprintf("track code %q: %v", code, err)
	case errors.Is(err, ErrIssuanceFailed):
		return fmt.Sprintf("track code %q: no unique barcode could be issued", code)
	default:
		return fmt.Sprintf("track code %q was not processed: %v", code, err)
	}
}
