// Package ngram builds and queries n-gram frequency indexes over the PDF
// documents attached to a docket. Extracted text is cached next to the PDF
// so reindexing skips the expensive extraction step.
package ngram

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

const indexFileName = "indexes.json"

// Grams maps n-gram size labels ("1-gram", "2-gram", "3-gram") to frequency
// tables.
type Grams map[string]map[string]int

// Index holds the per-file gram tables for one docket directory.
type Index struct {
	Files map[string]Grams `json:"files"`
}

// GramSearch returns the number of occurrences of term in the n-gram table
// of the named file, or zero when the file or term is unknown.
func (ix *Index) GramSearch(file string, n int, term string) int {
	if ix == nil || ix.Files == nil {
		return 0
	}
	grams, ok := ix.Files[file]
	if !ok {
		return 0
	}
	table, ok := grams[gramKey(n)]
	if !ok {
		return 0
	}
	return table[strings.ToLower(term)]
}

func gramKey(n int) string {
	return fmt.Sprintf("%d-gram", n)
}

// IndexDir indexes every PDF in the directory and persists the result as
// indexes.json alongside them. Unreadable PDFs are skipped.
func IndexDir(dir string, logger *zap.Logger) (*Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	ix := &Index{Files: map[string]Grams{}}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".pdf") {
			continue
		}
		words, err := documentWords(dir, name)
		if err != nil {
			logger.Sugar().Warnw("skipping unreadable pdf", "file", name, "error", err)
			continue
		}
		ix.Files[name] = Grams{
			gramKey(1): CountGrams(words, 1),
			gramKey(2): CountGrams(words, 2),
			gramKey(3): CountGrams(words, 3),
		}
	}

	payload, err := json.Marshal(ix)
	if err != nil {
		return nil, fmt.Errorf("marshal index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, indexFileName), payload, 0o644); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}
	return ix, nil
}

// Load reads a previously persisted index from the directory.
func Load(dir string) (*Index, error) {
	payload, err := os.ReadFile(filepath.Join(dir, indexFileName))
	if err != nil {
		return nil, err
	}
	ix := &Index{}
	if err := json.Unmarshal(payload, ix); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	return ix, nil
}

// documentWords returns the normalized word list for one PDF, preferring the
// cached .txt sidecar when present.
func documentWords(dir, name string) ([]string, error) {
	txtPath := filepath.Join(dir, strings.TrimSuffix(name, ".pdf")+".txt")
	if cached, err := os.ReadFile(txtPath); err == nil {
		return strings.Fields(string(cached)), nil
	}

	text, err := extractText(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	words := NormalizeWords(text)
	if err := os.WriteFile(txtPath, []byte(strings.Join(words, " ")), 0o644); err != nil {
		return nil, fmt.Errorf("write text cache: %w", err)
	}
	return words, nil
}

func extractText(path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for page := 1; page <= doc.NumPage(); page++ {
		p := doc.Page(page)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			// Pages without extractable content are common in scanned
			// filings.
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// NormalizeWords lowercases the text and strips unicode punctuation, keeping
// symbols like section marks that matter in legal citations.
func NormalizeWords(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Fields(b.String())
}

// CountGrams builds the frequency table for n-token sequences.
func CountGrams(words []string, n int) map[string]int {
	out := map[string]int{}
	for i := 0; i+n <= len(words); i++ {
		out[strings.Join(words[i:i+n], " ")]++
	}
	return out
}
