package usecase

import (
	"fmt"
	"unicode/utf8"
)

const (
	maxErrorLen    = 200
	maxErrorsShown = 50
)

// errorList accumulates per item failures for display. Messages are
// truncated and the list is capped; the dropped remainder is summarised in
// a final entry.
type errorList struct {
	items   []string
	dropped int
}

func (l *errorList) add(format string, args ...any) {
	if len(l.items) >= maxErrorsShown {
		l.dropped++
		return
	}
	msg := fmt.Sprintf(format, args...)
	if utf8.RuneCountInString(msg) > maxErrorLen {
		msg = string([]rune(msg)[:maxErrorLen]) + "..."
	}
	l.items = append(l.items, msg)
}

func (l *errorList) len() int {
	return len(l.items) + l.dropped
}

func (l *errorList) list() []string {
	if l.dropped == 0 {
		return l.items
	}
	return append(l.items, fmt.Sprintf("and %d more errors", l.dropped))
}
