package story

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"vlr-growth/internal/domain"
)

func match(agent, mapName string, result domain.MatchResult, acs, kd float64) domain.ProcessedMatch {
	return domain.ProcessedMatch{
		AgentPlayed: agent,
		MapPlayed:   mapName,
		Result:      result,
		PlayerStats: domain.PlayerMatchStats{ACS: acs, KD: kd},
	}
}

func TestAggregateByAgent_SingleAgent(t *testing.T) {
	var matches []domain.ProcessedMatch
	for i := 0; i < 7; i++ {
		matches = append(matches, match("Jett", "Ascent", domain.ResultWin, 250, 1.3))
	}
	for i := 0; i < 3; i++ {
		matches = append(matches, match("Jett", "Ascent", domain.ResultLoss, 180, 0.9))
	}

	out := AggregateByAgent(matches)
	if len(out) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(out))
	}
	s := out[0]
	if s.AgentName != "Jett" || s.MatchesPlayed != 10 || s.Wins != 7 || s.Losses != 3 {
		t.Errorf("summary = %+v, want Jett 10/7/3", s)
	}
	if s.WinRate != 0.7 {
		t.Errorf("win_rate = %v, want 0.7", s.WinRate)
	}
	if s.ACSAvg != 229.0 {
		t.Errorf("acs_avg = %v, want 229.0", s.ACSAvg)
	}
	if s.KDRatioAvg != 1.18 {
		t.Errorf("kd_ratio_avg = %v, want 1.18", s.KDRatioAvg)
	}
}

func TestAggregateByAgent_DrawsCountNeitherWinNorLoss(t *testing.T) {
	matches := []domain.ProcessedMatch{
		match("Omen", "Bind", domain.ResultWin, 200, 1.0),
		match("Omen", "Bind", domain.ResultDraw, 200, 1.0),
		match("Omen", "Bind", domain.ResultLoss, 200, 1.0),
	}

	out := AggregateByAgent(matches)
	s := out[0]
	if s.MatchesPlayed != 3 || s.Wins != 1 || s.Losses != 1 {
		t.Errorf("summary = %+v, want 3 played, 1 win, 1 loss", s)
	}
	if s.Wins+s.Losses > s.MatchesPlayed {
		t.Errorf("wins+losses %d exceeds matches played %d", s.Wins+s.Losses, s.MatchesPlayed)
	}
}

func TestAggregateByAgent_ExcludesMatchesWithoutAgent(t *testing.T) {
	matches := []domain.ProcessedMatch{
		match("", "Ascent", domain.ResultWin, 300, 2.0),
		match("Sova", "Ascent", domain.ResultWin, 210, 1.1),
	}

	out := AggregateByAgent(matches)
	if len(out) != 1 || out[0].AgentName != "Sova" || out[0].MatchesPlayed != 1 {
		t.Fatalf("expected only Sova with 1 match, got %+v", out)
	}
}

func TestAggregateByAgent_OrderIndependent(t *testing.T) {
	var matches []domain.ProcessedMatch
	agents := []string{"Jett", "Omen", "Sova", "Jett", "Jett", "Omen"}
	results := []domain.MatchResult{
		domain.ResultWin, domain.ResultLoss, domain.ResultWin,
		domain.ResultDraw, domain.ResultWin, domain.ResultWin,
	}
	for i := range agents {
		matches = append(matches, match(agents[i], "Split", results[i], float64(150+10*i), 1.0))
	}

	baseline := AggregateByAgent(matches)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]domain.ProcessedMatch(nil), matches...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := AggregateByAgent(shuffled)
		if !reflect.DeepEqual(got, baseline) {
			t.Fatalf("shuffled aggregation differs:\n got %+v\nwant %+v", got, baseline)
		}
	}
}

func TestAggregateByAgent_SortedByMatchesPlayedDescending(t *testing.T) {
	matches := []domain.ProcessedMatch{
		match("Sova", "Ascent", domain.ResultWin, 200, 1.0),
		match("Jett", "Ascent", domain.ResultWin, 200, 1.0),
		match("Jett", "Ascent", domain.ResultWin, 200, 1.0),
		match("Omen", "Ascent", domain.ResultWin, 200, 1.0),
	}

	out := AggregateByAgent(matches)
	if out[0].AgentName != "Jett" {
		t.Errorf("first = %q, want Jett with most matches", out[0].AgentName)
	}
	// tie broken by name for a stable order
	if out[1].AgentName != "Omen" || out[2].AgentName != "Sova" {
		t.Errorf("tie order = %q, %q; want Omen, Sova", out[1].AgentName, out[2].AgentName)
	}
}

func TestAggregateByAgent_WinRateBounds(t *testing.T) {
	matches := []domain.ProcessedMatch{
		match("Viper", "Icebox", domain.ResultLoss, 150, 0.7),
		match("Viper", "Icebox", domain.ResultDraw, 150, 0.7),
	}

	out := AggregateByAgent(matches)
	s := out[0]
	if s.WinRate < 0 || s.WinRate > 1 {
		t.Errorf("win_rate %v out of [0,1]", s.WinRate)
	}
	if s.WinRate != 0 {
		t.Errorf("win_rate = %v, want 0 with no wins", s.WinRate)
	}
}

func TestAggregateByMap(t *testing.T) {
	matches := []domain.ProcessedMatch{
		match("Jett", "Ascent", domain.ResultWin, 200, 1.0),
		match("Jett", "Ascent", domain.ResultLoss, 200, 1.0),
		match("Jett", "Bind", domain.ResultWin, 200, 1.0),
		match("Jett", "", domain.ResultWin, 200, 1.0),
	}

	out := AggregateByMap(matches)
	if len(out) != 2 {
		t.Fatalf("expected 2 map summaries, got %d", len(out))
	}
	if out[0].MapName != "Ascent" || out[0].MatchesPlayed != 2 || out[0].WinRate != 0.5 {
		t.Errorf("ascent summary = %+v", out[0])
	}
	if out[1].MapName != "Bind" || out[1].WinRate != 1.0 {
		t.Errorf("bind summary = %+v", out[1])
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	if out := AggregateByAgent(nil); len(out) != 0 {
		t.Errorf("agent aggregation of nil = %+v, want empty", out)
	}
	if out := AggregateByMap(nil); len(out) != 0 {
		t.Errorf("map aggregation of nil = %+v, want empty", out)
	}
}
