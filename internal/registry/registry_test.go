package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store that counts writes.
type memStore struct {
	categories []string
	loadErr    error
	saveErr    error
	saveCount  int
}

func (m *memStore) Load() ([]string, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]string(nil), m.categories...), nil
}

func (m *memStore) Save(categories []string) error {
	m.saveCount++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.categories = append([]string(nil), categories...)
	return nil
}

func TestResolve_NewCategoryScoresHigh(t *testing.T) {
	store := &memStore{}
	reg := New(store, nil)

	name, score := reg.Resolve("Landscape")
	assert.Equal(t, "landscape", name)
	assert.Equal(t, ScoreNewCategory, score)
	assert.Equal(t, 1, store.saveCount)
	assert.Equal(t, []string{"landscape"}, store.categories)
}

func TestResolve_CaseVariantsHitTheSameEntry(t *testing.T) {
	store := &memStore{}
	reg := New(store, nil)

	_, first := reg.Resolve("Portrait")
	require.Equal(t, ScoreNewCategory, first)

	for _, variant := range []string{"portrait", "PORTRAIT", "PoRtRaIt"} {
		name, score := reg.Resolve(variant)
		assert.Equal(t, "portrait", name)
		assert.Equal(t, ScoreKnownCategory, score, "variant %q", variant)
	}

	// Exactly one write for the genuinely new category, none for reuse.
	assert.Equal(t, 1, store.saveCount)
}

func TestResolve_MixedCaseStoredEntriesStillMatch(t *testing.T) {
	// Hand-edited store files may carry mixed-case entries.
	store := &memStore{categories: []string{"Still Life"}}
	reg := New(store, nil)

	name, score := reg.Resolve("still life")
	assert.Equal(t, "still life", name)
	assert.Equal(t, ScoreKnownCategory, score)
	assert.Zero(t, store.saveCount)
}

func TestResolve_LoadFaultDegradesToEmpty(t *testing.T) {
	store := &memStore{loadErr: os.ErrPermission}
	reg := New(store, nil)

	_, score := reg.Resolve("abstract")
	assert.Equal(t, ScoreNewCategory, score)
}

func TestResolve_SaveFaultStillScoresHigh(t *testing.T) {
	store := &memStore{saveErr: os.ErrPermission}
	reg := New(store, nil)

	name, score := reg.Resolve("Sketch")
	assert.Equal(t, "sketch", name)
	assert.Equal(t, ScoreNewCategory, score)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art_categories.json")
	fs := NewFileStore(path)

	want := []string{"landscape", "portrait", "abstract"}
	require.NoError(t, fs.Save(want))

	got, err := fs.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("category round-trip mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"categories\"")
	assert.Contains(t, string(data), "  \"landscape\"", "expected 2-space indentation")
}

func TestFileStore_MissingFileIsAnError(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := fs.Load()
	assert.Error(t, err)
}

func TestFileStore_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art_categories.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	fs := NewFileStore(path)
	_, err := fs.Load()
	assert.Error(t, err)
}

func TestRegistry_KnownCategoryNeverTouchesTheFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art_categories.json")
	fs := NewFileStore(path)

	first := New(fs, nil)
	_, score := first.Resolve("Cartoon")
	require.Equal(t, ScoreNewCategory, score)

	info, err := os.Stat(path)
	require.NoError(t, err)

	// A fresh registry reloads the persisted set; reuse must not rewrite.
	second := New(fs, nil)
	_, score = second.Resolve("CARTOON")
	assert.Equal(t, ScoreKnownCategory, score)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), after.ModTime())
	assert.Equal(t, info.Size(), after.Size())
}
