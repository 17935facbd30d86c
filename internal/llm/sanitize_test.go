package llm

import "testing"

func TestSanitizeJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already clean JSON is unchanged",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "json fence with language tag",
			input: "```json\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "prose around the object",
			input: "Here is your JSON:\n{\"skills\": [\"Go\"]}\nHope that helps!",
			want:  `{"skills": ["Go"]}`,
		},
		{
			name:  "nested braces kept intact",
			input: "```json\n{\"outer\": {\"inner\": 1}}\n```",
			want:  `{"outer": {"inner": 1}}`,
		},
		{
			name:  "no braces returns trimmed text",
			input: "  I could not produce JSON  ",
			want:  "I could not produce JSON",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeJSON(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSanitizeJSON_Idempotent verifies that sanitizing twice equals sanitizing once.
func TestSanitizeJSON_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a":1}`,
		"```json\n{\"a\":1}\n```",
		"text without json",
	}
	for _, in := range inputs {
		once := SanitizeJSON(in)
		twice := SanitizeJSON(once)
		if once != twice {
			t.Errorf("SanitizeJSON not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
