package story

import (
	"fmt"
	"math"
	"sort"
	"time"

	"vlr-growth/internal/api"
	"vlr-growth/internal/domain"
)

type affiliation struct {
	teamName string
	joined   time.Time
	left     time.Time
	hasLeft  bool
}

// SegmentCareer partitions a player's team history into date-bounded phases
// and attributes matches plus derived stats to each. If no affiliation has a
// usable join date, two fixed illustrative phases are returned instead, each
// flagged Synthetic so consumers never mistake them for measured data.
func SegmentCareer(pastTeams []api.TeamStint, currentTeam *api.TeamStint, matches []domain.ProcessedMatch) []domain.CareerPhase {
	return segmentCareerAt(pastTeams, currentTeam, matches, time.Now())
}

func segmentCareerAt(pastTeams []api.TeamStint, currentTeam *api.TeamStint, matches []domain.ProcessedMatch, now time.Time) []domain.CareerPhase {
	affiliations := collectAffiliations(pastTeams, currentTeam)
	if len(affiliations) == 0 {
		return syntheticPhases()
	}

	phases := make([]domain.CareerPhase, 0, len(affiliations))
	for i, a := range affiliations {
		end, open := phaseEnd(affiliations, i)

		phaseMatches := matchesWithin(matches, a.joined, end, open, now)
		endLabel := PresentMarker
		if !open {
			endLabel = end.Format(dateLayout)
		}

		phases = append(phases, domain.CareerPhase{
			TeamName:    a.teamName,
			StartDate:   a.joined.Format(dateLayout),
			EndDate:     endLabel,
			Description: fmt.Sprintf("Played for %s from %s to %s.", a.teamName, a.joined.Format(dateLayout), endLabel),
			KeyStats:    phaseKeyStats(phaseMatches),
		})
	}
	return phases
}

// collectAffiliations builds the ordered affiliation list: past teams plus
// the current team as an open-ended stint. Stints without a parseable join
// date cannot be placed on the timeline and are skipped.
func collectAffiliations(pastTeams []api.TeamStint, currentTeam *api.TeamStint) []affiliation {
	var affiliations []affiliation

	for _, t := range pastTeams {
		joined, ok := parseDate(t.Joined)
		if !ok {
			continue
		}
		a := affiliation{teamName: t.Name, joined: joined}
		if left, ok := parseDate(t.Left); ok {
			a.left = left
			a.hasLeft = true
		}
		affiliations = append(affiliations, a)
	}

	if currentTeam != nil {
		if joined, ok := parseDate(currentTeam.Joined); ok {
			affiliations = append(affiliations, affiliation{teamName: currentTeam.Name, joined: joined})
		}
	}

	sort.SliceStable(affiliations, func(i, j int) bool {
		return affiliations[i].joined.Before(affiliations[j].joined)
	})
	return affiliations
}

// phaseEnd resolves a phase's end date: the explicit leave date when known,
// otherwise one day before the next affiliation's join date, otherwise open.
func phaseEnd(affiliations []affiliation, i int) (end time.Time, open bool) {
	a := affiliations[i]
	if a.hasLeft {
		return a.left, false
	}
	if i+1 < len(affiliations) {
		return affiliations[i+1].joined.AddDate(0, 0, -1), false
	}
	return time.Time{}, true
}

// matchesWithin filters to matches dated within [start, end] inclusive; an
// open end is treated as now.
func matchesWithin(matches []domain.ProcessedMatch, start, end time.Time, open bool, now time.Time) []domain.ProcessedMatch {
	if open {
		end = now
	}
	var in []domain.ProcessedMatch
	for _, m := range matches {
		if m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		in = append(in, m)
	}
	return in
}

func phaseKeyStats(matches []domain.ProcessedMatch) domain.PhaseKeyStats {
	stats := domain.PhaseKeyStats{
		MatchesPlayed: len(matches),
		WinRate:       "0%",
	}
	if len(matches) == 0 {
		return stats
	}

	wins := 0
	var acsSum, kdSum float64
	for _, m := range matches {
		if m.Result == domain.ResultWin {
			wins++
		}
		acsSum += m.PlayerStats.ACS
		kdSum += m.PlayerStats.KD
	}

	n := float64(len(matches))
	stats.WinRate = fmt.Sprintf("%d%%", int(math.Round(float64(wins)/n*100)))
	stats.AvgACS = round1(acsSum / n)
	stats.AvgKD = round2(kdSum / n)
	return stats
}

// syntheticPhases is the display fallback for players with no recorded team
// history. The numbers are illustrative, not measured.
func syntheticPhases() []domain.CareerPhase {
	return []domain.CareerPhase{
		{
			TeamName:    "Early Grind",
			StartDate:   "2021-01-01",
			EndDate:     "2022-06-30",
			Description: "Climbing through open qualifiers and tier-two events.",
			KeyStats: domain.PhaseKeyStats{
				MatchesPlayed: 40,
				WinRate:       "55%",
				AvgACS:        205.3,
				AvgKD:         1.02,
			},
			Synthetic: true,
		},
		{
			TeamName:    "Breakout Run",
			StartDate:   "2022-07-01",
			EndDate:     PresentMarker,
			Description: "Establishing a name on the international stage.",
			KeyStats: domain.PhaseKeyStats{
				MatchesPlayed: 65,
				WinRate:       "62%",
				AvgACS:        231.8,
				AvgKD:         1.14,
			},
			Synthetic: true,
		},
	}
}
