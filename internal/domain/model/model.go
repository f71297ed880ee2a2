// Package model contains the ledger record shapes shared between layers.
//
// The ledgers are hand-edited JSON, so decoding is forgiving: wrong-typed
// fields coerce to a safe zero value instead of failing the whole document.
package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AwardRecord is a single point grant inside an event.
type AwardRecord struct {
	Player    string `json:"player"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp,omitempty"`
}

// AwardEvent groups the awards handed out on one game night.
type AwardEvent struct {
	Name   string        `json:"name"`
	Date   string        `json:"date"`
	Awards []AwardRecord `json:"awards"`
}

// PlacementResult records one player's finish in a play.
// Placement is 1, 2 or 3 for podium finishes; nil means "participated".
type PlacementResult struct {
	Player    string `json:"player"`
	Placement *int   `json:"placement"`
	Points    int    `json:"points"`
}

// PlayRecord is one logged game session.
type PlayRecord struct {
	ID        string            `json:"id"`
	Game      string            `json:"game"`
	Date      string            `json:"date"`
	Event     string            `json:"event,omitempty"`
	Scored    bool              `json:"scored"`
	Notes     string            `json:"notes,omitempty"`
	Timestamp string            `json:"timestamp,omitempty"`
	Results   []PlacementResult `json:"results"`
}

// UnmarshalJSON coerces wrong-typed award fields to safe defaults.
func (r *AwardRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not an object at all; leave the record zero so the fold drops it.
		*r = AwardRecord{}
		return nil
	}
	r.Player = coerceString(raw["player"])
	r.Points = coerceInt(raw["points"])
	r.Reason = coerceString(raw["reason"])
	r.Timestamp = coerceString(raw["timestamp"])
	return nil
}

// UnmarshalJSON coerces wrong-typed event fields to safe defaults.
func (e *AwardEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   json.RawMessage `json:"name"`
		Date   json.RawMessage `json:"date"`
		Awards []AwardRecord   `json:"awards"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*e = AwardEvent{}
		return nil
	}
	e.Name = coerceString(raw.Name)
	e.Date = coerceString(raw.Date)
	e.Awards = raw.Awards
	return nil
}

// UnmarshalJSON coerces wrong-typed result fields to safe defaults.
func (p *PlacementResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = PlacementResult{}
		return nil
	}
	p.Player = coerceString(raw["player"])
	p.Placement = coercePlacement(raw["placement"])
	p.Points = coerceInt(raw["points"])
	return nil
}

// UnmarshalJSON coerces wrong-typed play fields to safe defaults.
func (p *PlayRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage   `json:"id"`
		Game      json.RawMessage   `json:"game"`
		Date      json.RawMessage   `json:"date"`
		Event     json.RawMessage   `json:"event"`
		Scored    json.RawMessage   `json:"scored"`
		Notes     json.RawMessage   `json:"notes"`
		Timestamp json.RawMessage   `json:"timestamp"`
		Results   []PlacementResult `json:"results"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = PlayRecord{}
		return nil
	}
	p.ID = coerceString(raw.ID)
	p.Game = coerceString(raw.Game)
	p.Date = coerceString(raw.Date)
	p.Event = coerceString(raw.Event)
	p.Scored = coerceBool(raw.Scored)
	p.Notes = coerceString(raw.Notes)
	p.Timestamp = coerceString(raw.Timestamp)
	p.Results = raw.Results
	return nil
}

func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// coerceInt accepts numbers, numeric strings and bools; anything else is 0.
func coerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0
		}
		return n
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil && b {
		return 1
	}
	return 0
}

func coerceBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

// coercePlacement keeps integral numbers; everything else becomes nil
// ("participated").
func coercePlacement(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	if f != float64(int(f)) {
		return nil
	}
	n := int(f)
	return &n
}
