package match

import (
	"slices"
	"testing"
)

func TestRankCandidates(t *testing.T) {
	names := []string{"first_name", "firstName", "lastName", "id", "firstName"}

	candidates := RankCandidates("firstName", names)

	// duplicates are ranked once
	if len(candidates) != 4 {
		t.Fatalf("Expected 4 candidates, got %d", len(candidates))
	}

	// exact and normalized-equal names tie at 1.0 and sort by name
	if candidates[0].Name != "firstName" || candidates[1].Name != "first_name" {
		t.Errorf("Expected firstName, first_name first, got %s, %s", candidates[0].Name, candidates[1].Name)
	}

	if candidates[0].Score != 1.0 || candidates[1].Score != 1.0 {
		t.Errorf("Expected perfect scores, got %f, %f", candidates[0].Score, candidates[1].Score)
	}

	if candidates[0].Normalized != "firstname" {
		t.Errorf("Expected normalized name 'firstname', got %q", candidates[0].Normalized)
	}

	if candidates[3].Name != "id" {
		t.Errorf("Expected 'id' last, got %q", candidates[3].Name)
	}
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Name: "a", Score: 0.9},
		{Name: "b", Score: 0.8},
		{Name: "c", Score: 0.7},
	}

	if top := candidates.Top(2); len(top) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top))
	}

	if top := candidates.Top(10); len(top) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top))
	}

	if top := candidates.Top(1); top[0].Name != "a" {
		t.Errorf("Expected top candidate 'a', got %v", top[0])
	}

	if top := (CandidateList{}).Top(1); len(top) != 0 {
		t.Errorf("Expected no candidates, got %v", top)
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Name: "a", Score: 0.9},
		{Name: "b", Score: 0.6},
		{Name: "c", Score: 0.3},
	}

	got := candidates.AboveThreshold(0.6).Names()
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("AboveThreshold(0.6) = %v", got)
	}

	if names := candidates.AboveThreshold(0.95).Names(); names != nil {
		t.Errorf("Expected no names, got %v", names)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		target   string
		names    []string
		expected []string
	}{
		{"defualt", []string{"key", "default", "custom", "map"}, []string{"default"}},
		{"custm", []string{"key", "default", "custom", "map"}, []string{"custom"}},
		{"upper", []string{"identity", "keys", "upperCase"}, nil},
		{"idenity", []string{"identity", "keys"}, []string{"identity"}},
		{"key", []string{"key", "keys"}, []string{"keys"}},
		{"zzz", []string{"key", "default"}, nil},
		{"x", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := Suggest(tt.target, tt.names)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Suggest(%q, %v) = %v, want %v", tt.target, tt.names, got, tt.expected)
			}
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	names := []string{"name1", "name2", "name3", "name4", "name5"}

	got := Suggest("name", names)
	if len(got) != DefaultMaxSuggestions {
		t.Fatalf("Expected %d suggestions, got %v", DefaultMaxSuggestions, got)
	}

	if !slices.Equal(got, []string{"name1", "name2", "name3"}) {
		t.Errorf("Suggest(name) = %v", got)
	}
}
