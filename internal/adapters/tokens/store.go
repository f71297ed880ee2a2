// Package tokens manages the guest greeting tokens handed out to players.
// Tokens are short URL-safe strings mapped to a guest name; the payload is
// mirrored into the public directory on every rebuild.
package tokens

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultFileName = "guest_tokens.json"
	tokenByteLength = 5

	dirPermission  = 0o755
	filePermission = 0o644
)

// Payload is the on-disk token document.
type Payload struct {
	Tokens map[string]string `json:"tokens"`
}

// Store reads and writes the guest token ledger.
type Store struct {
	path string
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithFileName overrides the token file name.
func WithFileName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.path = filepath.Join(filepath.Dir(s.path), name)
		}
	}
}

// New creates a token store rooted at dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{path: filepath.Join(dir, defaultFileName)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the token file path.
func (s *Store) Path() string { return s.path }

// Load reads the token payload, dropping malformed or empty entries.
// A missing file is an empty payload.
func (s *Store) Load(_ context.Context) (Payload, error) {
	payload := Payload{Tokens: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return payload, nil
		}
		return payload, fmt.Errorf("%w: %s: %w", ErrLoad, s.path, err)
	}

	var raw struct {
		Tokens map[string]any `json:"tokens"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payload, fmt.Errorf("%w: %s: %w", ErrLoad, s.path, err)
	}

	for key, value := range raw.Tokens {
		name, ok := value.(string)
		if !ok {
			continue
		}
		token := strings.TrimSpace(key)
		name = strings.TrimSpace(name)
		if token == "" || name == "" {
			continue
		}
		payload.Tokens[token] = name
	}
	return payload, nil
}

// Save writes the token payload.
func (s *Store) Save(_ context.Context, payload Payload) error {
	if payload.Tokens == nil {
		payload.Tokens = map[string]string{}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirPermission); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, s.path, err)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, s.path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, filePermission); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, s.path, err)
	}
	return nil
}

// Add creates a unique token for every new name and persists the payload.
// Names that already hold a token keep their existing one and are reported
// in existing. ErrNoTokens is returned when nothing was created.
func (s *Store) Add(ctx context.Context, names []string) (created, existing map[string]string, err error) {
	payload, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	created = map[string]string{}
	existing = map[string]string{}
	for _, name := range names {
		cleaned := strings.TrimSpace(name)
		if cleaned == "" {
			continue
		}
		if token, ok := tokenForName(payload.Tokens, cleaned); ok {
			existing[cleaned] = token
			continue
		}
		token := generateUnique(payload.Tokens)
		payload.Tokens[token] = cleaned
		created[cleaned] = token
	}

	if len(created) == 0 {
		return created, existing, ErrNoTokens
	}
	if err := s.Save(ctx, payload); err != nil {
		return nil, nil, err
	}
	return created, existing, nil
}

// Remove deletes tokens by value and persists the payload. Unknown tokens
// are reported in missing. ErrNoTokens is returned when nothing was removed.
func (s *Store) Remove(ctx context.Context, values []string) (removed map[string]string, missing []string, err error) {
	payload, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	removed = map[string]string{}
	for _, token := range values {
		name, ok := payload.Tokens[token]
		if !ok {
			missing = append(missing, token)
			continue
		}
		delete(payload.Tokens, token)
		removed[token] = name
	}

	if len(removed) == 0 {
		return removed, missing, ErrNoTokens
	}
	if err := s.Save(ctx, payload); err != nil {
		return nil, nil, err
	}
	return removed, missing, nil
}

// tokenForName finds the token already assigned to a name, if any.
// Duplicate names with different tokens are never created by Add.
func tokenForName(existing map[string]string, name string) (string, bool) {
	for token, holder := range existing {
		if holder == name {
			return token, true
		}
	}
	return "", false
}

// generateUnique produces a short URL-safe token not present in existing.
func generateUnique(existing map[string]string) string {
	for {
		buf := make([]byte, tokenByteLength)
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand never fails on supported platforms.
			panic(err)
		}
		token := base64.RawURLEncoding.EncodeToString(buf)
		if _, taken := existing[token]; !taken {
			return token
		}
	}
}
