package staging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := New(filepath.Join(dir, "uploads"), filepath.Join(dir, "outputs"))
	require.NoError(t, err)
	return store
}

func TestNew_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	uploadDir := filepath.Join(dir, "a", "uploads")
	outputDir := filepath.Join(dir, "b", "outputs")

	_, err := New(uploadDir, outputDir)
	require.NoError(t, err)

	assert.DirExists(t, uploadDir)
	assert.DirExists(t, outputDir)
}

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		ext      string
		allowed  bool
	}{
		{"resume.pdf", "pdf", true},
		{"resume.PDF", "pdf", true},
		{"resume.docx", "docx", true},
		{"resume.doc", "doc", true},
		{"resume.txt", "txt", false},
		{"resume", "", false},
		{"archive.tar.gz", "gz", false},
	}

	for _, tt := range tests {
		ext, allowed := AllowedExtension(tt.filename)
		assert.Equal(t, tt.ext, ext, tt.filename)
		assert.Equal(t, tt.allowed, allowed, tt.filename)
	}
}

func TestSaveUpload_WritesContent(t *testing.T) {
	store := newTestStore(t)

	path, err := store.SaveUpload("resume.pdf", strings.NewReader("%PDF-fake"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
	assert.True(t, strings.HasSuffix(path, "_resume.pdf"))
}

func TestSaveUpload_SanitizesHostileFilenames(t *testing.T) {
	store := newTestStore(t)

	path, err := store.SaveUpload("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, store.uploadDir, filepath.Dir(path))
	assert.NotContains(t, filepath.Base(path), "/")

	path, err = store.SaveUpload(`..\..\boot.ini`, strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, store.uploadDir, filepath.Dir(path))
}

func TestSaveUpload_DistinctNamesForSameFilename(t *testing.T) {
	store := newTestStore(t)

	first, err := store.SaveUpload("resume.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.SaveUpload("resume.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"my resume (final).pdf", "my_resume__final_.pdf"},
		{"../../../etc/passwd", "passwd"},
		{"...", "upload"},
		{"", "upload"},
		{"résumé.pdf", "r_sum_.pdf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}

func TestOutputPath_AcceptsIssuedNames(t *testing.T) {
	store := newTestStore(t)

	filename, path := store.NewOutput()
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	got, err := store.OutputPath(filename)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestOutputPath_RejectsTraversalAndForeignNames(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{
		"../secrets.pdf",
		"optimized_../../etc/passwd",
		"plain.pdf",
		"optimized_abc.txt",
		"optimized_missing.pdf",
	} {
		_, err := store.OutputPath(name)
		assert.Error(t, err, name)
	}
}

func TestRemove_DeletesStagedFile(t *testing.T) {
	store := newTestStore(t)

	path, err := store.SaveUpload("resume.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	store.Remove(path)
	assert.NoFileExists(t, path)
}

func TestRemove_IgnoresMissingFiles(t *testing.T) {
	store := newTestStore(t)
	store.Remove(filepath.Join(store.uploadDir, "never-existed"))
}

func TestCleanup_RemovesOnlyStaleFiles(t *testing.T) {
	store := newTestStore(t)

	stale, err := store.SaveUpload("old.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	fresh, err := store.SaveUpload("new.pdf", strings.NewReader("y"))
	require.NoError(t, err)

	_, stalePDF := store.NewOutput()
	require.NoError(t, os.WriteFile(stalePDF, []byte("%PDF"), 0o644))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(stalePDF, old, old))

	removed, err := store.Cleanup(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.NoFileExists(t, stale)
	assert.NoFileExists(t, stalePDF)
	assert.FileExists(t, fresh)
}
