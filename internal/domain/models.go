package domain

import (
	"time"
)

type MatchResult string

const (
	ResultWin  MatchResult = "W"
	ResultLoss MatchResult = "L"
	ResultDraw MatchResult = "D"
)

// SideConfidence records how the player's side of a match was resolved.
// "assumed" means neither listed team matched the player's current team and
// team-1 was taken as the player's side, so the W/L label may be wrong.
type SideConfidence string

const (
	SideExact   SideConfidence = "exact"
	SideAssumed SideConfidence = "assumed"
)

type PlayerIdentity struct {
	ID       string
	Name     string
	TeamName string
	TeamTag  string
}

type PlayerMatchStats struct {
	ACS         float64 `json:"acs"`
	KD          float64 `json:"kd"`
	ADR         float64 `json:"adr"`
	HSPercent   float64 `json:"hs_percent"`
	Kills       int     `json:"kills"`
	Deaths      int     `json:"deaths"`
	Assists     int     `json:"assists"`
	FirstKills  int     `json:"first_kills"`
	FirstDeaths int     `json:"first_deaths"`
}

type ProcessedMatch struct {
	MatchID        string           `json:"match_id"`
	Date           time.Time        `json:"date"`
	Event          string           `json:"event"`
	EventLogo      string           `json:"event_logo"`
	Opponent       string           `json:"opponent"`
	OpponentTag    string           `json:"opponent_tag"`
	OpponentLogo   string           `json:"opponent_logo"`
	Result         MatchResult      `json:"result"`
	Score          string           `json:"score"` // "{playerScore}-{opponentScore}"
	MatchURL       string           `json:"match_url"`
	SideConfidence SideConfidence   `json:"side_confidence"`
	PlayerStats    PlayerMatchStats `json:"player_match_stats"`
	MapPlayed      string           `json:"map_played"`
	AgentPlayed    string           `json:"agent_played"`
}

type AgentStatSummary struct {
	AgentName     string  `json:"agent_name"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
	TotalACS      float64 `json:"total_acs"`
	TotalKD       float64 `json:"total_kd"`
	ACSAvg        float64 `json:"acs_avg"`
	KDRatioAvg    float64 `json:"kd_ratio_avg"`
}

type MapStatSummary struct {
	MapName       string  `json:"map_name"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
}

type PhaseKeyStats struct {
	MatchesPlayed int     `json:"matches_played"`
	WinRate       string  `json:"win_rate"` // whole-number percentage, e.g. "62%"
	AvgACS        float64 `json:"avg_acs"`
	AvgKD         float64 `json:"avg_kd"`
	TitlesWon     int     `json:"titles_won"` // always 0, no trophy signal upstream
}

// CareerPhase is a date-bounded tenure with one team. EndDate is either a
// calendar date or the sentinel "present". Synthetic marks the illustrative
// placeholder phases emitted when a player has no affiliation history.
type CareerPhase struct {
	TeamName    string        `json:"team_name"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Description string        `json:"description"`
	KeyStats    PhaseKeyStats `json:"key_stats"`
	Synthetic   bool          `json:"synthetic"`
}

type PerformanceTrendPoint struct {
	Date      time.Time `json:"date"`
	ACS       float64   `json:"acs"`
	KD        float64   `json:"kd"`
	HSPercent float64   `json:"hs_percent"`
}

type PlayerProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Country    string `json:"country"`
	Image      string `json:"image"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	TeamTag    string `json:"team_tag"`
	TwitterURL string `json:"twitter_url"`
	TwitchURL  string `json:"twitch_url"`
}

// PlayerGrowthStory is built fresh on every request and never persisted.
type PlayerGrowthStory struct {
	StoryID           string                  `json:"story_id"`
	GeneratedAt       time.Time               `json:"generated_at"`
	Profile           PlayerProfile           `json:"profile"`
	Matches           []ProcessedMatch        `json:"matches"`
	PerformanceTrends []PerformanceTrendPoint `json:"performance_trends"`
	AgentStats        []AgentStatSummary      `json:"agent_stats"`
	MapStats          []MapStatSummary        `json:"map_stats"`
	CareerPhases      []CareerPhase           `json:"career_phases"`
}

// ComparisonSide resolves independently: either a story or an error, never
// both. One side failing does not affect the other.
type ComparisonSide struct {
	PlayerID string             `json:"player_id"`
	Story    *PlayerGrowthStory `json:"story,omitempty"`
	Error    string             `json:"error,omitempty"`
	NotFound bool               `json:"not_found,omitempty"`
}

type PlayerComparison struct {
	PlayerA ComparisonSide `json:"player_a"`
	PlayerB ComparisonSide `json:"player_b"`
}
