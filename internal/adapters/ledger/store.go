// Package ledger persists the two append-only ledgers: award events and
// game plays. Records are immutable once written; mutators only append.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gravina/gamenight/internal/domain/model"
)

// Default ledger file names inside the data directory.
const (
	defaultEventsFile = "events.json"
	defaultPlaysFile  = "plays.json"

	dirPermission  = 0o755
	filePermission = 0o644
)

// eventsDocument is the on-disk shape of the events ledger.
type eventsDocument struct {
	Events []model.AwardEvent `json:"events"`
}

// playsDocument is the on-disk shape of the plays ledger.
type playsDocument struct {
	Plays []model.PlayRecord `json:"plays"`
}

// Store reads and appends to the JSON ledgers under a data directory.
type Store struct {
	dir        string
	eventsFile string
	playsFile  string
}

// New creates a ledger store rooted at dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:        dir,
		eventsFile: defaultEventsFile,
		playsFile:  defaultPlaysFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EventsPath returns the path of the events ledger file.
func (s *Store) EventsPath() string { return filepath.Join(s.dir, s.eventsFile) }

// PlaysPath returns the path of the plays ledger file.
func (s *Store) PlaysPath() string { return filepath.Join(s.dir, s.playsFile) }

// LoadEvents reads the events ledger. A missing file is an empty ledger.
func (s *Store) LoadEvents(_ context.Context) ([]model.AwardEvent, error) {
	var doc eventsDocument
	if err := loadJSON(s.EventsPath(), &doc); err != nil {
		return nil, err
	}
	return doc.Events, nil
}

// LoadPlays reads the plays ledger. A missing file is an empty ledger.
func (s *Store) LoadPlays(_ context.Context) ([]model.PlayRecord, error) {
	var doc playsDocument
	if err := loadJSON(s.PlaysPath(), &doc); err != nil {
		return nil, err
	}
	return doc.Plays, nil
}

// AppendAward appends an award to the event identified by (name, date),
// creating the event when it does not exist yet.
func (s *Store) AppendAward(ctx context.Context, eventName, date string, award model.AwardRecord) error {
	events, err := s.LoadEvents(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range events {
		if events[i].Name == eventName && events[i].Date == date {
			events[i].Awards = append(events[i].Awards, award)
			found = true
			break
		}
	}
	if !found {
		events = append(events, model.AwardEvent{
			Name:   eventName,
			Date:   date,
			Awards: []model.AwardRecord{award},
		})
	}

	return saveJSON(s.EventsPath(), eventsDocument{Events: events})
}

// SaveEvents replaces the events ledger wholesale. Intended for seeding
// tools; interactive paths only append.
func (s *Store) SaveEvents(_ context.Context, events []model.AwardEvent) error {
	if events == nil {
		events = []model.AwardEvent{}
	}
	return saveJSON(s.EventsPath(), eventsDocument{Events: events})
}

// SavePlays replaces the plays ledger wholesale. Intended for seeding
// tools; interactive paths only append.
func (s *Store) SavePlays(_ context.Context, plays []model.PlayRecord) error {
	if plays == nil {
		plays = []model.PlayRecord{}
	}
	return saveJSON(s.PlaysPath(), playsDocument{Plays: plays})
}

// AppendPlay appends a play record to the plays ledger.
func (s *Store) AppendPlay(ctx context.Context, play model.PlayRecord) error {
	plays, err := s.LoadPlays(ctx)
	if err != nil {
		return err
	}
	plays = append(plays, play)
	return saveJSON(s.PlaysPath(), playsDocument{Plays: plays})
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	return nil
}

func saveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermission); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}
	return nil
}
