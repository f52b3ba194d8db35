package textproc

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"already clean", "build a website", "build a website"},
		{"collapses runs", "build   a \t website", "build a website"},
		{"trims edges", "  build a website  ", "build a website"},
		{"newlines collapse", "build\na\nwebsite", "build a website"},
		{"windows line endings", "build\r\na website", "build a website"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := "  We   need\ta\nchatbot.  "
	once := Normalize(input)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not idempotent: %q != %q", once, twice)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"build a website", "Build A Website"},
		{"DATABASE TO FRONTEND", "Database To Frontend"},
		{"api", "Api"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.input); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
