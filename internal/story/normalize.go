package story

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"vlr-growth/internal/api"
	"vlr-growth/internal/domain"
)

// NormalizeMatches converts raw result records into ProcessedMatch values.
// Records missing a usable date or the per-match stat block are dropped;
// everything else degrades to defaults rather than failing. The returned
// slice is sorted ascending by date.
func NormalizeMatches(identity domain.PlayerIdentity, raw []api.RawMatch) []domain.ProcessedMatch {
	out := make([]domain.ProcessedMatch, 0, len(raw))

	for _, m := range raw {
		date, ok := parseDate(m.Date)
		if !ok || m.Stats == nil {
			continue
		}

		playerSide, opponentSide, confidence := resolveSides(identity, m)
		playerScore := parsePoints(playerSide.Points)
		opponentScore := parsePoints(opponentSide.Points)

		pm := domain.ProcessedMatch{
			MatchID:        m.ID,
			Date:           date,
			Event:          m.Event.Name,
			EventLogo:      m.Event.Logo,
			Opponent:       defaultString(opponentSide.Name, "N/A"),
			OpponentTag:    opponentSide.Tag,
			OpponentLogo:   opponentSide.Logo,
			Result:         deriveResult(playerScore, opponentScore),
			Score:          fmt.Sprintf("%d-%d", playerScore, opponentScore),
			MatchURL:       m.URL,
			SideConfidence: confidence,
			PlayerStats: domain.PlayerMatchStats{
				ACS:         m.Stats.ACS,
				KD:          m.Stats.KD,
				ADR:         m.Stats.ADR,
				HSPercent:   m.Stats.HSPercent,
				Kills:       m.Stats.Kills,
				Deaths:      m.Stats.Deaths,
				Assists:     m.Stats.Assists,
				FirstKills:  m.Stats.FirstKills,
				FirstDeaths: m.Stats.FirstDeaths,
			},
		}

		// map and agent come from the first maps entry only
		if len(m.Maps) > 0 {
			pm.MapPlayed = m.Maps[0].Name
			pm.AgentPlayed = m.Maps[0].Agent
		}

		out = append(out, pm)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// resolveSides matches team name or tag (case-insensitive) against the
// player's current team. When neither side matches, team-1 is assumed to be
// the player's side and the match is marked SideAssumed.
func resolveSides(identity domain.PlayerIdentity, m api.RawMatch) (player, opponent api.RawMatchTeam, confidence domain.SideConfidence) {
	switch {
	case teamMatches(identity, m.Team1):
		return m.Team1, m.Team2, domain.SideExact
	case teamMatches(identity, m.Team2):
		return m.Team2, m.Team1, domain.SideExact
	default:
		return m.Team1, m.Team2, domain.SideAssumed
	}
}

func teamMatches(identity domain.PlayerIdentity, team api.RawMatchTeam) bool {
	if identity.TeamName != "" && strings.EqualFold(team.Name, identity.TeamName) {
		return true
	}
	if identity.TeamTag != "" && strings.EqualFold(team.Tag, identity.TeamTag) {
		return true
	}
	return false
}

func deriveResult(playerScore, opponentScore int) domain.MatchResult {
	switch {
	case playerScore > opponentScore:
		return domain.ResultWin
	case playerScore < opponentScore:
		return domain.ResultLoss
	default:
		return domain.ResultDraw
	}
}

func parsePoints(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
