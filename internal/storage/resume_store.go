package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/lshigami/auriter/config"
	"github.com/rs/zerolog/log"
)

const (
	maxResumeBytes = 10 << 20
	// minExtractedTextLength rejects scanned PDFs that yield no real text.
	minExtractedTextLength = 50
	maxExtractedText       = 20000
)

var (
	ErrUnsupportedResume = errors.New("unsupported resume file type")
	ErrResumeTooLarge    = errors.New("resume exceeds 10MB")
)

var allowedResumeExt = map[string]bool{".pdf": true, ".doc": true, ".docx": true, ".txt": true, ".md": true}

type ResumeStore interface {
	// Save writes the upload as <userID>-<unix ms><ext> and returns its path.
	Save(userID uint, filename string, r io.Reader) (string, error)
	Remove(path string) error
	ExtractText(ctx context.Context, path string) (string, error)
}

type diskResumeStore struct {
	dir string
	now func() time.Time
}

func NewResumeStore(cfg *config.Config) (ResumeStore, error) {
	dir := filepath.Join(cfg.UploadDir, "resumes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create resume dir %s: %w", dir, err)
	}
	return &diskResumeStore{dir: dir, now: time.Now}, nil
}

func (s *diskResumeStore) Save(userID uint, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedResumeExt[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedResume, ext)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%d-%d%s", userID, s.now().UnixMilli(), ext))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(r, maxResumeBytes+1))
	closeErr := f.Close()
	if err == nil && n > maxResumeBytes {
		err = ErrResumeTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *diskResumeStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove resume file")
		return err
	}
	return nil
}

// ExtractText reads text resumes directly and PDFs through pdftotext.
func (s *diskResumeStore) ExtractText(ctx context.Context, path string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		var b []byte
		b, err = os.ReadFile(path)
		text = string(b)
	case ".pdf":
		text, err = extractPDF(ctx, path)
	default:
		return "", fmt.Errorf("%w: text extraction not available for %s", ErrUnsupportedResume, filepath.Ext(path))
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if len(text) < minExtractedTextLength {
		return "", fmt.Errorf("extracted text is too short (likely failed extraction) from: %s", path)
	}
	if len(text) > maxExtractedText {
		text = text[:maxExtractedText]
	}
	return text, nil
}

func extractPDF(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, "pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("PDF extraction requires 'pdftotext' (install poppler-utils): %w", err)
	}
	return string(out), nil
}
