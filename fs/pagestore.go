// Package fs provides file-based storage for scraped pages.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagescrape"
)

// File names written for every saved page.
const (
	WordsFile = "words.txt"
	LinksFile = "links.txt"
	PageFile  = "page.json"
)

var ownedFiles = map[string]bool{
	WordsFile: true,
	LinksFile: true,
	PageFile:  true,
}

// Ensure FileStore implements pagescrape.PageStore at compile time.
var _ pagescrape.PageStore = (*FileStore)(nil)

// FileStore implements pagescrape.PageStore with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the page words, links and JSON form into the temp directory.
// Saving again before Commit replaces the previous files.
func (s *FileStore) Save(ctx context.Context, page *pagescrape.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if page == nil {
		return pagescrape.Errorf(pagescrape.EINVALID, "page required")
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	doc, err := pagescrape.FormatJSON(page)
	if err != nil {
		return err
	}

	files := map[string]string{
		WordsFile: withNewline(pagescrape.FormatWords(page)),
		LinksFile: withNewline(pagescrape.FormatLinks(page)),
		PageFile:  withNewline(doc),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(s.tempDir(), name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

func withNewline(s string) string {
	if s == "" {
		return s
	}
	return s + "\n"
}

// Commit replaces the final directory with the temp directory.
// An existing final directory is only replaced when it holds nothing but
// files written by a previous Save; otherwise Commit returns EINVALID and
// leaves it untouched.
func (s *FileStore) Commit() error {
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return pagescrape.Errorf(pagescrape.ENOTFOUND, "nothing saved to %s", s.tempDir())
	}

	if err := s.checkReplaceable(); err != nil {
		return err
	}

	// Remove previous output if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// checkReplaceable rejects a final directory that holds anything the store
// did not write.
func (s *FileStore) checkReplaceable() error {
	info, err := os.Stat(s.finalDir())
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return pagescrape.Errorf(pagescrape.EINVALID, "%s exists and is not a directory", s.finalDir())
	}

	entries, err := os.ReadDir(s.finalDir())
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !ownedFiles[e.Name()] {
			return pagescrape.Errorf(pagescrape.EINVALID, "refusing to replace %s: it contains %s", s.finalDir(), e.Name())
		}
	}
	return nil
}

// Abort discards the temp directory.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
