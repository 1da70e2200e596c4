package grader

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	correctRe = regexp.MustCompile(`(?im)^\s*Correct:\s*(yes|no)\b`)
	gradeRe   = regexp.MustCompile(`(?im)^\s*Grade:\s*(\d+)`)
	hintRe    = regexp.MustCompile(`(?im)^\s*Hint:\s*(.+)$`)
)

// gradeResult is a parsed model completion.
type gradeResult struct {
	IsCorrect      bool
	Grade          *int
	NextHint       string
	FullEvaluation string
}

// parseGrading extracts the structured fields from a model completion.
// The completion format is prompted but not guaranteed, so every field
// degrades independently: a missing grade leaves Grade nil, a missing
// Correct line falls back to the grade threshold, and the raw text is
// always preserved as FullEvaluation.
func parseGrading(content string) gradeResult {
	res := gradeResult{
		FullEvaluation: strings.TrimSpace(content),
	}

	if m := gradeRe.FindStringSubmatch(content); m != nil {
		if g, err := strconv.Atoi(m[1]); err == nil {
			if g < 0 {
				g = 0
			}
			if g > 10 {
				g = 10
			}
			res.Grade = &g
		}
	}

	if m := correctRe.FindStringSubmatch(content); m != nil {
		res.IsCorrect = strings.EqualFold(m[1], "yes")
	} else if res.Grade != nil {
		res.IsCorrect = *res.Grade >= 7
	}

	if m := hintRe.FindStringSubmatch(content); m != nil {
		hint := strings.TrimSpace(m[1])
		if !strings.EqualFold(hint, "none") {
			res.NextHint = hint
		}
	}

	return res
}
