package grader

import "testing"

func TestParseGrading(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantCorrect bool
		wantGrade   *int
		wantHint    string
	}{
		{
			name:        "full response",
			content:     "Correct: Yes\nGrade: 8\nHint: mention durability\n\nGood coverage of the basics.",
			wantCorrect: true,
			wantGrade:   ptr(8),
			wantHint:    "mention durability",
		},
		{
			name:        "incorrect with hint",
			content:     "Correct: No\nGrade: 3\nHint: start from the definition",
			wantCorrect: false,
			wantGrade:   ptr(3),
			wantHint:    "start from the definition",
		},
		{
			name:        "hint none is suppressed",
			content:     "Correct: Yes\nGrade: 10\nHint: none",
			wantCorrect: true,
			wantGrade:   ptr(10),
			wantHint:    "",
		},
		{
			name:        "lowercase labels",
			content:     "correct: yes\ngrade: 7\nhint: NONE",
			wantCorrect: true,
			wantGrade:   ptr(7),
			wantHint:    "",
		},
		{
			name:        "grade clamped to 10",
			content:     "Correct: Yes\nGrade: 99",
			wantCorrect: true,
			wantGrade:   ptr(10),
		},
		{
			name:        "missing correct line falls back to grade threshold",
			content:     "Grade: 7\nSolid.",
			wantCorrect: true,
			wantGrade:   ptr(7),
		},
		{
			name:        "grade below threshold without correct line",
			content:     "Grade: 6\nNeeds work.",
			wantCorrect: false,
			wantGrade:   ptr(6),
		},
		{
			name:        "free text only",
			content:     "The answer looks fine to me.",
			wantCorrect: false,
			wantGrade:   nil,
		},
		{
			name:        "labels with leading whitespace",
			content:     "  Correct: No\n  Grade: 2\n  Hint: reread the chapter",
			wantCorrect: false,
			wantGrade:   ptr(2),
			wantHint:    "reread the chapter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGrading(tt.content)

			if got.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", got.IsCorrect, tt.wantCorrect)
			}
			switch {
			case tt.wantGrade == nil && got.Grade != nil:
				t.Errorf("Grade = %d, want nil", *got.Grade)
			case tt.wantGrade != nil && got.Grade == nil:
				t.Errorf("Grade = nil, want %d", *tt.wantGrade)
			case tt.wantGrade != nil && *got.Grade != *tt.wantGrade:
				t.Errorf("Grade = %d, want %d", *got.Grade, *tt.wantGrade)
			}
			if got.NextHint != tt.wantHint {
				t.Errorf("NextHint = %q, want %q", got.NextHint, tt.wantHint)
			}
			if got.FullEvaluation == "" {
				t.Error("FullEvaluation must always carry the raw text")
			}
		})
	}
}

func ptr(n int) *int { return &n }
