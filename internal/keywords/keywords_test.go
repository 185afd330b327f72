package keywords

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultTaxonomyHasNoDuplicates(t *testing.T) {
	tax := Default()
	if tax.Size() == 0 {
		t.Fatal("default taxonomy is empty")
	}
	seen := make(map[string]bool)
	for _, term := range tax.Terms() {
		if seen[term] {
			t.Fatalf("duplicate term %q", term)
		}
		seen[term] = true
	}
}

func TestMatchReturnsTaxonomyOrder(t *testing.T) {
	tax := New([]string{"leadership", "teamwork", "communication"})

	got := tax.Match("Strong communication and leadership record.")
	want := []string{"leadership", "communication"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Match = %v, want %v", got, want)
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	tax := New([]string{"project management"})

	if got := tax.Match("PROJECT MANAGEMENT office"); len(got) != 1 {
		t.Fatalf("Match = %v, want one hit", got)
	}
}

func TestMatchSingleWordsRespectBoundaries(t *testing.T) {
	tax := New([]string{"sales"})

	if got := tax.Match("certified Salesforce administrator"); len(got) != 0 {
		t.Fatalf("Match = %v, want no hits", got)
	}
	if got := tax.Match("regional sales lead"); len(got) != 1 {
		t.Fatalf("Match = %v, want one hit", got)
	}
}

func TestMatchPhrasesAsSubstrings(t *testing.T) {
	tax := New([]string{"data analysis"})

	if got := tax.Match("hands-on data analysis experience"); len(got) != 1 {
		t.Fatalf("Match = %v, want one hit", got)
	}
}

func TestMatchDoesNotRepeatTerms(t *testing.T) {
	tax := New([]string{"testing"})

	if got := tax.Match("testing, testing and more testing"); len(got) != 1 {
		t.Fatalf("Match = %v, want one hit", got)
	}
}

func TestNewDeduplicatesCaseInsensitive(t *testing.T) {
	tax := New([]string{"Go", "go", " GO ", "SQL"})

	want := []string{"Go", "SQL"}
	if !reflect.DeepEqual(tax.Terms(), want) {
		t.Fatalf("Terms = %v, want %v", tax.Terms(), want)
	}
}

func TestTermsReturnsACopy(t *testing.T) {
	tax := New([]string{"leadership"})

	terms := tax.Terms()
	terms[0] = "mutated"
	if tax.Terms()[0] != "leadership" {
		t.Fatal("Terms exposed internal state")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.txt")
	content := "# custom list\nkubernetes\n\nterraform\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write taxonomy: %v", err)
	}

	tax, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"kubernetes", "terraform"}
	if !reflect.DeepEqual(tax.Terms(), want) {
		t.Fatalf("Terms = %v, want %v", tax.Terms(), want)
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# nothing here\n"), 0o600); err != nil {
		t.Fatalf("write taxonomy: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty taxonomy")
	}
}
