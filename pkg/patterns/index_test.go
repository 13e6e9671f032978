package patterns

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ============================================================================
// Build Tests
// ============================================================================

func TestBuild_Basic(t *testing.T) {
	idx, err := Build(map[string][]string{
		"explosives": {"how to make a bomb", "pipe bomb instructions"},
		"violence":   {"how to kill someone"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if idx.Len() != 3 {
		t.Errorf("Expected 3 patterns, got %d", idx.Len())
	}

	category, ok := idx.ExactCategory("how to make a bomb")
	if !ok || category != "explosives" {
		t.Errorf("ExactCategory = (%q, %v), want (explosives, true)", category, ok)
	}

	if _, ok := idx.ExactCategory("completely unrelated"); ok {
		t.Error("ExactCategory matched text that is not stored")
	}
}

func TestBuild_NormalizesPhrases(t *testing.T) {
	// Phrases are stored normalized, so an obfuscated stored phrase and a
	// normalized query meet in the middle.
	idx, err := Build(map[string][]string{
		"explosives": {"H0w t0 m4k3 @ b0mb"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := idx.ExactCategory("how to make a bomb"); !ok {
		t.Error("Expected stored phrase to be normalized for exact lookup")
	}
}

func TestBuild_KeywordIndex(t *testing.T) {
	idx, err := Build(map[string][]string{
		"explosives": {"how to make a bomb", "pipe bomb instructions"},
		"violence":   {"how to kill someone"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// "bomb" (len 4) is indexed; both explosive phrases contain it.
	cats := idx.KeywordCategories("bomb")
	if !cats["explosives"] {
		t.Error("Expected keyword 'bomb' to map to explosives")
	}
	if cats["violence"] {
		t.Error("Keyword 'bomb' must not map to violence")
	}

	// Words of length <= 3 are not indexed.
	if idx.KeywordCategories("how") != nil {
		t.Error("Short word 'how' must not be indexed")
	}

	// Every indexed word appears in at least one stored pattern.
	if idx.KeywordCategories("unrelated") != nil {
		t.Error("Unstored word must not be indexed")
	}
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		table map[string][]string
		want  error
	}{
		{
			name:  "empty table",
			table: map[string][]string{},
			want:  ErrNoPatterns,
		},
		{
			name:  "empty category name",
			table: map[string][]string{"": {"phrase here"}},
			want:  ErrEmptyCategory,
		},
		{
			name:  "empty phrase",
			table: map[string][]string{"cat": {""}},
			want:  ErrEmptyPhrase,
		},
		{
			name:  "phrase normalizing to empty",
			table: map[string][]string{"cat": {"  ​  "}},
			want:  ErrEmptyPhrase,
		},
		{
			name:  "duplicate within category",
			table: map[string][]string{"cat": {"same phrase", "same phrase"}},
			want:  ErrDuplicatePhrase,
		},
		{
			name:  "duplicate after normalization",
			table: map[string][]string{"cat": {"make a bomb", "m4k3 @ b0mb"}},
			want:  ErrDuplicatePhrase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.table)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	idx := Default()
	if idx.Len() == 0 {
		t.Fatal("Default index is empty")
	}
	if _, ok := idx.ExactCategory("how to make a bomb"); !ok {
		t.Error("Default table is missing a core phrase")
	}
	if len(idx.Categories()) == 0 {
		t.Error("Default index has no categories")
	}
}

// ============================================================================
// Loader Tests
// ============================================================================

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	content := `explosives:
  - how to make a bomb
violence:
  - how to kill someone
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if idx.Len() != 2 {
		t.Errorf("Expected 2 patterns, got %d", idx.Len())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("explosives: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
