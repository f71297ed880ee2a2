// Package snapshot writes the published documents consumed by the static
// front end: the leaderboard snapshot and the public guest token mirror.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gravina/gamenight/internal/adapters/tokens"
	"github.com/gravina/gamenight/internal/domain/board"
)

// Default published file names inside the public directory.
const (
	defaultBoardFile  = "leaderboard.json"
	defaultTokensFile = "guest_tokens.json"

	dirPermission  = 0o755
	filePermission = 0o644
)

// Sentinel kinds for writer errors.
var (
	ErrWrite = errors.New("snapshot write failed")
)

// Writer persists snapshots under a public directory.
type Writer struct {
	dir        string
	boardFile  string
	tokensFile string
}

// Option applies a configuration option to the Writer.
type Option func(*Writer)

// WithBoardFileName overrides the leaderboard file name.
func WithBoardFileName(name string) Option {
	return func(w *Writer) {
		if name != "" {
			w.boardFile = name
		}
	}
}

// WithTokensFileName overrides the public token mirror file name.
func WithTokensFileName(name string) Option {
	return func(w *Writer) {
		if name != "" {
			w.tokensFile = name
		}
	}
}

// New creates a snapshot writer rooted at dir.
func New(dir string, opts ...Option) *Writer {
	w := &Writer{
		dir:        dir,
		boardFile:  defaultBoardFile,
		tokensFile: defaultTokensFile,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// BoardPath returns the path of the published leaderboard document.
func (w *Writer) BoardPath() string { return filepath.Join(w.dir, w.boardFile) }

// TokensPath returns the path of the public guest token mirror.
func (w *Writer) TokensPath() string { return filepath.Join(w.dir, w.tokensFile) }

// WriteBoard persists the snapshot verbatim.
func (w *Writer) WriteBoard(_ context.Context, snap board.Snapshot) error {
	return writeJSON(w.BoardPath(), snap)
}

// WriteTokens mirrors the guest token payload into the public directory.
func (w *Writer) WriteTokens(_ context.Context, payload tokens.Payload) error {
	if payload.Tokens == nil {
		payload.Tokens = map[string]string{}
	}
	return writeJSON(w.TokensPath(), payload)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermission); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}
