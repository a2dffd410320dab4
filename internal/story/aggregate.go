package story

import (
	"math"
	"sort"

	"vlr-growth/internal/domain"
)

// AggregateByAgent folds matches into per-agent summaries. Matches with no
// recorded agent are excluded. Draws count toward matches played but are
// neither wins nor losses.
func AggregateByAgent(matches []domain.ProcessedMatch) []domain.AgentStatSummary {
	byAgent := make(map[string]*domain.AgentStatSummary)

	for _, m := range matches {
		if m.AgentPlayed == "" {
			continue
		}
		s, ok := byAgent[m.AgentPlayed]
		if !ok {
			s = &domain.AgentStatSummary{AgentName: m.AgentPlayed}
			byAgent[m.AgentPlayed] = s
		}
		s.MatchesPlayed++
		switch m.Result {
		case domain.ResultWin:
			s.Wins++
		case domain.ResultLoss:
			s.Losses++
		}
		s.TotalACS += m.PlayerStats.ACS
		s.TotalKD += m.PlayerStats.KD
	}

	out := make([]domain.AgentStatSummary, 0, len(byAgent))
	for _, s := range byAgent {
		if s.MatchesPlayed > 0 {
			s.WinRate = float64(s.Wins) / float64(s.MatchesPlayed)
			s.ACSAvg = round1(s.TotalACS / float64(s.MatchesPlayed))
			s.KDRatioAvg = round2(s.TotalKD / float64(s.MatchesPlayed))
		}
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchesPlayed != out[j].MatchesPlayed {
			return out[i].MatchesPlayed > out[j].MatchesPlayed
		}
		return out[i].AgentName < out[j].AgentName
	})
	return out
}

// AggregateByMap is the map-keyed counterpart, without ACS/KD rollups.
func AggregateByMap(matches []domain.ProcessedMatch) []domain.MapStatSummary {
	byMap := make(map[string]*domain.MapStatSummary)

	for _, m := range matches {
		if m.MapPlayed == "" {
			continue
		}
		s, ok := byMap[m.MapPlayed]
		if !ok {
			s = &domain.MapStatSummary{MapName: m.MapPlayed}
			byMap[m.MapPlayed] = s
		}
		s.MatchesPlayed++
		switch m.Result {
		case domain.ResultWin:
			s.Wins++
		case domain.ResultLoss:
			s.Losses++
		}
	}

	out := make([]domain.MapStatSummary, 0, len(byMap))
	for _, s := range byMap {
		if s.MatchesPlayed > 0 {
			s.WinRate = float64(s.Wins) / float64(s.MatchesPlayed)
		}
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchesPlayed != out[j].MatchesPlayed {
			return out[i].MatchesPlayed > out[j].MatchesPlayed
		}
		return out[i].MapName < out[j].MapName
	})
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
