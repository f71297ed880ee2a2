package board

// BreakdownEntry summarizes one reason bucket for a player.
type BreakdownEntry struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
	Points int    `json:"points"`
}

// PlayerStanding is one ranked leaderboard row.
type PlayerStanding struct {
	Player    string           `json:"player"`
	Points    int              `json:"points"`
	Breakdown []BreakdownEntry `json:"breakdown"`
	Rank      int              `json:"rank"`
}

// GameCount tracks how often a player has played one game.
type GameCount struct {
	Game  string `json:"game"`
	Count int    `json:"count"`
}

// Podiums counts first, second and third place finishes.
type Podiums struct {
	First  int `json:"1"`
	Second int `json:"2"`
	Third  int `json:"3"`
}

// PlayerActivity summarizes a player's participation across all plays.
type PlayerActivity struct {
	Player        string      `json:"player"`
	TotalPlays    int         `json:"totalPlays"`
	ScoredPlays   int         `json:"scoredPlays"`
	UnscoredPlays int         `json:"unscoredPlays"`
	Games         []GameCount `json:"games"`
	Podiums       Podiums     `json:"podiums"`
}

// AwardSummary is one award as published in the recent-events feed.
// Timestamp is the resolved instant in RFC 3339, empty when unresolvable.
type AwardSummary struct {
	Player    string `json:"player"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp,omitempty"`
}

// EventSummary is one event as published in the recent-events feed.
type EventSummary struct {
	Name   string         `json:"name"`
	Date   string         `json:"date"`
	Awards []AwardSummary `json:"awards"`
}

// ResultSummary is one placement as published in the recent-plays feed.
type ResultSummary struct {
	Player    string `json:"player"`
	Placement *int   `json:"placement"`
	Points    int    `json:"points"`
}

// PlaySummary is one play as published in the recent-plays feed.
type PlaySummary struct {
	ID        string          `json:"id"`
	Game      string          `json:"game"`
	Date      string          `json:"date"`
	Event     string          `json:"event,omitempty"`
	Scored    bool            `json:"scored"`
	Notes     string          `json:"notes,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
	Results   []ResultSummary `json:"results"`
}

// Snapshot is the fully recomputed leaderboard document. It is a pure
// projection of the two ledgers plus presentation settings; it is never
// read back as an input.
type Snapshot struct {
	Title          string           `json:"title"`
	Tagline        string           `json:"tagline"`
	SeasonLabel    string           `json:"seasonLabel"`
	LastUpdated    string           `json:"lastUpdated"`
	Leaderboard    []PlayerStanding `json:"leaderboard"`
	ScoringRules   []string         `json:"scoringRules"`
	RecentEvents   []EventSummary   `json:"recentEvents"`
	RecentPlays    []PlaySummary    `json:"recentPlays"`
	PlayerActivity []PlayerActivity `json:"playerActivity"`
}
