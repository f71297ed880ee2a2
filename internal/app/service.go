// Package service provides the core business service behind the CLI:
// it loads the ledgers, runs the aggregation, and publishes the snapshot.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gravina/gamenight/internal/adapters/ledger"
	"github.com/gravina/gamenight/internal/adapters/snapshot"
	"github.com/gravina/gamenight/internal/adapters/tokens"
	"github.com/gravina/gamenight/internal/config"
	"github.com/gravina/gamenight/internal/domain/board"
	"github.com/gravina/gamenight/internal/domain/model"
	"github.com/gravina/gamenight/pkg/logger"
	"github.com/gravina/gamenight/pkg/metrics"
)

const dateLayout = "2006-01-02"

// Service wires the ledgers, the aggregation core and the snapshot writer.
type Service struct {
	cfg         *config.Config
	ledgers     *ledger.Store
	guestTokens *tokens.Store
	writer      *snapshot.Writer
	logger      logger.Logger
	now         func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLedgerStore overrides the ledger store.
func WithLedgerStore(store *ledger.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.ledgers = store
		}
	}
}

// WithTokenStore overrides the guest token store.
func WithTokenStore(store *tokens.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.guestTokens = store
		}
	}
}

// WithSnapshotWriter overrides the snapshot writer.
func WithSnapshotWriter(w *snapshot.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.writer = w
		}
	}
}

// New constructs a Service from the process configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		cfg:         cfg,
		ledgers:     ledger.New(cfg.DataDir),
		guestTokens: tokens.New(cfg.DataDir),
		writer:      snapshot.New(cfg.PublicDir),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

func (s *Service) settings() board.Settings {
	return board.Settings{
		Title:        s.cfg.Title,
		Tagline:      s.cfg.Tagline,
		SeasonLabel:  s.cfg.SeasonLabel,
		ScoringRules: s.cfg.ScoringRules,
		RecentLimit:  s.cfg.RecentEventsLimit,
	}
}

// Rebuild recomputes the snapshot from the full ledgers and publishes it
// together with the public guest token mirror.
func (s *Service) Rebuild(ctx context.Context) (board.Snapshot, error) {
	start := time.Now()

	events, err := s.ledgers.LoadEvents(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}
	plays, err := s.ledgers.LoadPlays(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}

	snap := board.Aggregate(s.settings(), events, plays, s.now())

	if err := s.writer.WriteBoard(ctx, snap); err != nil {
		return board.Snapshot{}, err
	}
	payload, err := s.guestTokens.Load(ctx)
	if err != nil {
		return board.Snapshot{}, err
	}
	if err := s.writer.WriteTokens(ctx, payload); err != nil {
		return board.Snapshot{}, err
	}

	awardCount := 0
	for _, e := range events {
		awardCount += len(e.Awards)
	}
	metrics.RecordAwardsFolded(awardCount)
	metrics.RecordPlaysFolded(len(plays))
	metrics.UpdateLedgerSizes(len(events), len(plays))
	metrics.UpdatePlayerCount(len(snap.Leaderboard))
	metrics.RecordRebuild(time.Since(start))

	s.logger.Info(ctx, "snapshot rebuilt",
		logger.Int("events", len(events)),
		logger.Int("plays", len(plays)),
		logger.Int("players", len(snap.Leaderboard)),
		logger.String("path", s.writer.BoardPath()),
	)
	return snap, nil
}

// AwardInput carries one manual point grant. Empty optional fields take
// the documented defaults.
type AwardInput struct {
	Player    string
	Points    int
	Reason    string
	Event     string
	Date      string
	Timestamp string
}

// Award appends a point grant to the events ledger and rebuilds.
// The entered player casing is preserved; the award fold keys players
// case-sensitively.
func (s *Service) Award(ctx context.Context, in AwardInput) error {
	player := strings.TrimSpace(in.Player)
	if player == "" {
		return ErrPlayerRequired
	}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = board.DefaultReason
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.now().Format(dateLayout)
	}
	eventName := strings.TrimSpace(in.Event)
	if eventName == "" {
		eventName = "Game Night " + date
	}
	timestamp := strings.TrimSpace(in.Timestamp)
	if timestamp == "" {
		timestamp = s.now().UTC().Format(time.RFC3339)
	}

	award := model.AwardRecord{
		Player:    player,
		Points:    in.Points,
		Reason:    reason,
		Timestamp: timestamp,
	}
	if err := s.ledgers.AppendAward(ctx, eventName, date, award); err != nil {
		return err
	}

	s.logger.Info(ctx, "award recorded",
		logger.String("player", player),
		logger.Int("points", in.Points),
		logger.String("reason", reason),
		logger.String("event", eventName),
	)

	_, err := s.Rebuild(ctx)
	return err
}

// PlayResultInput is one player's finish in a play submission.
type PlayResultInput struct {
	Player    string
	Placement *int
}

// PlayInput carries one game session submission.
type PlayInput struct {
	Game    string
	Date    string
	Event   string
	Scored  bool
	Notes   string
	Results []PlayResultInput
}

// RecordPlay appends a play to the plays ledger, derives point awards from
// scored plays when auto-award is enabled, and rebuilds.
//
// Unlike the award path, player names here are case-folded before storing.
// The two ledgers deliberately disagree on casing; see DESIGN.md.
func (s *Service) RecordPlay(ctx context.Context, in PlayInput) (model.PlayRecord, error) {
	game := strings.TrimSpace(in.Game)
	if game == "" {
		game = board.DefaultGame
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.now().Format(dateLayout)
	}

	results := make([]model.PlacementResult, 0, len(in.Results))
	for _, r := range in.Results {
		name := strings.ToLower(strings.TrimSpace(r.Player))
		if name == "" {
			continue
		}
		points := 0
		if in.Scored {
			points, _ = s.placementValue(r.Placement, game)
		}
		results = append(results, model.PlacementResult{
			Player:    name,
			Placement: r.Placement,
			Points:    points,
		})
	}
	if len(results) == 0 {
		return model.PlayRecord{}, ErrNoResults
	}

	play := model.PlayRecord{
		ID:        uuid.New().String(),
		Game:      game,
		Date:      date,
		Event:     strings.TrimSpace(in.Event),
		Scored:    in.Scored,
		Notes:     strings.TrimSpace(in.Notes),
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Results:   results,
	}
	if err := s.ledgers.AppendPlay(ctx, play); err != nil {
		return model.PlayRecord{}, err
	}

	if in.Scored && s.cfg.AutoAward {
		if err := s.autoAward(ctx, play); err != nil {
			return model.PlayRecord{}, err
		}
	}

	s.logger.Info(ctx, "play recorded",
		logger.String("id", play.ID),
		logger.String("game", play.Game),
		logger.Int("results", len(play.Results)),
		logger.Bool("scored", play.Scored),
	)

	if _, err := s.Rebuild(ctx); err != nil {
		return model.PlayRecord{}, err
	}
	return play, nil
}

// autoAward appends one derived award per point-earning result.
// Zero-point placements produce no ledger entry.
func (s *Service) autoAward(ctx context.Context, play model.PlayRecord) error {
	eventName := play.Event
	if eventName == "" {
		eventName = "Game Night " + play.Date
	}

	for _, result := range play.Results {
		points, reason := s.placementValue(result.Placement, play.Game)
		if points <= 0 {
			continue
		}
		award := model.AwardRecord{
			Player:    result.Player,
			Points:    points,
			Reason:    reason,
			Timestamp: play.Timestamp,
		}
		if err := s.ledgers.AppendAward(ctx, eventName, play.Date, award); err != nil {
			return err
		}
	}
	return nil
}

// placementValue maps a placement to its configured points and award reason.
// Placements outside the podium count as participation.
func (s *Service) placementValue(placement *int, game string) (int, string) {
	if placement != nil {
		switch *placement {
		case 1:
			return s.cfg.FirstPlacePoints, "1st place in " + game
		case 2:
			return s.cfg.SecondPlacePoints, "2nd place in " + game
		case 3:
			return s.cfg.ThirdPlacePoints, "3rd place in " + game
		}
	}
	return s.cfg.ParticipationPoints, "Played " + game
}

// AddTokens creates guest tokens and refreshes the public mirror.
func (s *Service) AddTokens(ctx context.Context, names []string) (created, existing map[string]string, err error) {
	created, existing, err = s.guestTokens.Add(ctx, names)
	if err != nil {
		return created, existing, err
	}
	_, err = s.Rebuild(ctx)
	return created, existing, err
}

// RemoveTokens deletes guest tokens and refreshes the public mirror.
func (s *Service) RemoveTokens(ctx context.Context, values []string) (removed map[string]string, missing []string, err error) {
	removed, missing, err = s.guestTokens.Remove(ctx, values)
	if err != nil {
		return removed, missing, err
	}
	_, err = s.Rebuild(ctx)
	return removed, missing, err
}

// ListTokens returns the current guest token table.
func (s *Service) ListTokens(ctx context.Context) (map[string]string, error) {
	payload, err := s.guestTokens.Load(ctx)
	if err != nil {
		return nil, err
	}
	return payload.Tokens, nil
}

// EventLog returns the raw event ledger, most recent date first.
func (s *Service) EventLog(ctx context.Context) ([]model.AwardEvent, error) {
	events, err := s.ledgers.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})
	return events, nil
}

// PlayLog returns the raw play ledger, most recent date first.
func (s *Service) PlayLog(ctx context.Context) ([]model.PlayRecord, error) {
	plays, err := s.ledgers.LoadPlays(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Date > plays[j].Date
	})
	return plays, nil
}

// PublicDir returns the directory the preview server should serve.
func (s *Service) PublicDir() string { return s.cfg.PublicDir }
