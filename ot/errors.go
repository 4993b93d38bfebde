package ot

import (
	"fmt"
	"slices"
)

// ErrorSeverity tells how far a problem in a font impairs repairing it.
type ErrorSeverity int

const (
	// SeverityCritical: the font cannot be read at all.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor: a table cannot be interpreted and is kept as opaque bytes.
	SeverityMajor
	// SeverityMinor: a value is out of range and will be replaced on repair.
	SeverityMinor
)

func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	}
	return "UNKNOWN"
}

// FontError is a problem found while reading a font or installing a table.
// Errors are collected and do not stop parsing unless they are critical.
type FontError struct {
	Table    Tag           // table the problem belongs to
	Section  string        // part of the table or directory, e.g. "Header" or "Bounds"
	Issue    string        // description
	Severity ErrorSeverity
	Offset   uint32        // offset within the font binary, 0 if unknown
}

func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Table, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Table, e.Section, e.Issue)
}

// FontWarning is an irregularity of a font which repairing either ignores or
// fixes. Reconciliation of 'cmap' and 'name' reports lossy steps as
// warnings as well.
type FontWarning struct {
	Table  Tag    // table the warning belongs to
	Issue  string // description
	Offset uint32 // offset within the font binary, 0 if unknown
}

func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector gathers the problems of one Parse or SetTable call.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

func (ec *errorCollector) addError(table Tag, section string, issue string, severity ErrorSeverity, offset uint32) {
	ec.errors = append(ec.errors, FontError{
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: severity,
		Offset:   offset,
	})
}

func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	ec.warnings = append(ec.warnings, FontWarning{Table: table, Issue: issue, Offset: offset})
}

func isCritical(e FontError) bool {
	return e.Severity == SeverityCritical
}

// criticalOnly filters critical errors.
func criticalOnly(errs []FontError) []FontError {
	var critical []FontError
	for _, e := range errs {
		if isCritical(e) {
			critical = append(critical, e)
		}
	}
	return critical
}

func hasCritical(errs []FontError) bool {
	return slices.ContainsFunc(errs, isCritical)
}
