package ngram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWords(t *testing.T) {
	words := NormalizeWords("The Court's judgment, per 28 U.S.C. § 2109, is AFFIRMED.")
	assert.Equal(t, []string{"the", "courts", "judgment", "per", "28", "usc", "§", "2109", "is", "affirmed"}, words)
}

func TestCountGrams(t *testing.T) {
	words := []string{"qualified", "immunity", "qualified", "immunity", "doctrine"}

	unigrams := CountGrams(words, 1)
	assert.Equal(t, 2, unigrams["qualified"])
	assert.Equal(t, 1, unigrams["doctrine"])

	bigrams := CountGrams(words, 2)
	assert.Equal(t, 2, bigrams["qualified immunity"])
	assert.Equal(t, 1, bigrams["immunity qualified"])

	trigrams := CountGrams(words, 3)
	assert.Equal(t, 1, trigrams["qualified immunity doctrine"])

	assert.Empty(t, CountGrams([]string{"one"}, 2))
}

func TestIndexDirUsesTextCache(t *testing.T) {
	dir := t.TempDir()
	// A .pdf placeholder plus a pre-extracted sidecar: extraction must be
	// skipped in favor of the cache.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "petition.pdf"), []byte("%PDF-stub"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "petition.txt"), []byte("qualified immunity qualified immunity"), 0o644))

	ix, err := IndexDir(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, ix.GramSearch("petition.pdf", 2, "qualified immunity"))
	assert.Equal(t, 2, ix.GramSearch("petition.pdf", 1, "Immunity"))
	assert.Equal(t, 0, ix.GramSearch("petition.pdf", 1, "mandamus"))
	assert.Equal(t, 0, ix.GramSearch("missing.pdf", 1, "immunity"))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.GramSearch("petition.pdf", 2, "qualified immunity"))
}

func TestLoadMissingIndex(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestGramSearchNilIndex(t *testing.T) {
	var ix *Index
	assert.Equal(t, 0, ix.GramSearch("petition.pdf", 1, "immunity"))
}
