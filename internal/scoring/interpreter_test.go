package scoring

import (
	"strings"
	"testing"
)

// fakeResolver mimics the registry: first encounter of a name scores 10,
// every later one scores 1.
type fakeResolver struct {
	seen  map[string]bool
	calls int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{seen: make(map[string]bool)}
}

func (f *fakeResolver) Resolve(name string) (string, int) {
	f.calls++
	canonical := strings.ToLower(name)
	if f.seen[canonical] {
		return canonical, 1
	}
	f.seen[canonical] = true
	return canonical, 10
}

func TestProcess_WrappedJSON(t *testing.T) {
	interp := NewInterpreter(newFakeResolver(), nil)

	input := `blah {"Name":"Sun Picture","detected_category":"Landscape","detail_count":4} blah`

	// First encounter: novelty bonus 10 + 4 details.
	got := interp.Process(input)
	if got.Total != 14 || got.Category != "landscape" || got.DetailScore != 4 || got.DrawingName != "Sun Picture" {
		t.Errorf("First call = %+v, want (14, landscape, 4, Sun Picture)", got)
	}

	// Reuse: bonus drops to 1.
	got = interp.Process(input)
	if got.Total != 5 || got.Category != "landscape" {
		t.Errorf("Second call = %+v, want (5, landscape, 4, Sun Picture)", got)
	}
}

func TestProcess_Sentinel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"No braces", "the model wrote prose instead of JSON"},
		{"Open brace only", "here it comes {"},
		{"Close brace only", "} all done"},
		{"Braces reversed", "} nothing useful {"},
		{"Invalid JSON between braces", `result: {"Name": "Sun Picture", "detail_count":`},
		{"Garbage between braces", "{this is not json}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := newFakeResolver()
			interp := NewInterpreter(resolver, nil)

			got := interp.Process(tt.input)
			if got != Sentinel() {
				t.Errorf("Process(%q) = %+v, want sentinel", tt.input, got)
			}
			if resolver.calls != 0 {
				t.Errorf("Resolver consulted %d times on unusable input", resolver.calls)
			}
		})
	}
}

func TestProcess_FieldCoercion(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantCategory string
		wantDetails  int
		wantName     string
	}{
		{
			name:         "All fields missing",
			input:        `{}`,
			wantCategory: "unknown",
			wantDetails:  0,
			wantName:     "unknown",
		},
		{
			name:         "Numeric name is formatted",
			input:        `{"Name": 7, "detected_category": "abstract", "detail_count": 2}`,
			wantCategory: "abstract",
			wantDetails:  2,
			wantName:     "7",
		},
		{
			name:         "Detail count as numeric string",
			input:        `{"Name": "Boat", "detected_category": "seascape", "detail_count": "6"}`,
			wantCategory: "seascape",
			wantDetails:  6,
			wantName:     "Boat",
		},
		{
			name:         "Non-numeric detail count falls back to zero",
			input:        `{"Name": "Boat", "detected_category": "seascape", "detail_count": "lots"}`,
			wantCategory: "seascape",
			wantDetails:  0,
			wantName:     "Boat",
		},
		{
			name:         "Negative detail count clamps to zero",
			input:        `{"Name": "Boat", "detected_category": "seascape", "detail_count": -3}`,
			wantCategory: "seascape",
			wantDetails:  0,
			wantName:     "Boat",
		},
		{
			name:         "Fractional detail count truncates",
			input:        `{"Name": "Boat", "detected_category": "seascape", "detail_count": 4.9}`,
			wantCategory: "seascape",
			wantDetails:  4,
			wantName:     "Boat",
		},
		{
			name:         "Wrong-kind category falls back",
			input:        `{"Name": "Boat", "detected_category": ["seascape"], "detail_count": 1}`,
			wantCategory: "unknown",
			wantDetails:  1,
			wantName:     "Boat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := NewInterpreter(newFakeResolver(), nil)

			got := interp.Process(tt.input)
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.DetailScore != tt.wantDetails {
				t.Errorf("DetailScore = %d, want %d", got.DetailScore, tt.wantDetails)
			}
			if got.DrawingName != tt.wantName {
				t.Errorf("DrawingName = %q, want %q", got.DrawingName, tt.wantName)
			}
			// Category bonus is always added, even on defaults.
			want := float64(10 + tt.wantDetails)
			if got.Total != want {
				t.Errorf("Total = %v, want %v", got.Total, want)
			}
		})
	}
}

func TestExtractAnalysis_Robustness(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{
			name:   "Clean JSON",
			input:  `{"detected_category": "landscape"}`,
			wantOK: true,
		},
		{
			name:   "Markdown wrapped",
			input:  "```json\n" + `{"detected_category": "landscape"}` + "\n```",
			wantOK: true,
		},
		{
			name:   "Prefix text",
			input:  `Here is my analysis: {"detected_category": "landscape"}`,
			wantOK: true,
		},
		{
			name:   "Suffix text",
			input:  `{"detected_category": "landscape"} Let me know if you need more.`,
			wantOK: true,
		},
		{
			name:   "Nested braces",
			input:  `{"detected_category": "landscape", "extra": {"depth": 1}}`,
			wantOK: true,
		},
		{
			name:   "Invalid JSON",
			input:  `{"detected_category": `,
			wantOK: false,
		},
		{
			name:   "No JSON object",
			input:  `just some text`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := extractAnalysis(tt.input)
			if ok != tt.wantOK {
				t.Errorf("extractAnalysis() ok = %v, want %v", ok, tt.wantOK)
				return
			}
			if ok && doc["detected_category"] != "landscape" {
				t.Errorf("Unexpected parsed content: %+v", doc)
			}
		})
	}
}
