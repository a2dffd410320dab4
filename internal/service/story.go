package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vlr-growth/internal/api"
	"vlr-growth/internal/constants"
	"vlr-growth/internal/domain"
	"vlr-growth/internal/story"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrPlayerNotFound is returned when the upstream detail endpoint answers
// without a data payload. Transient faults surface instead as wrapped
// *api.TransportError / *api.DecodeError values.
var ErrPlayerNotFound = errors.New("player not found")

// VLRClient is the slice of the API client the story pipeline needs.
type VLRClient interface {
	GetPlayer(ctx context.Context, id string) (*api.PlayerDetailResponse, error)
}

type StoryService struct {
	vlr    VLRClient
	logger zerolog.Logger
}

func NewStoryService(vlr VLRClient, logger zerolog.Logger) *StoryService {
	return &StoryService{vlr: vlr, logger: logger}
}

// BuildStory runs the full pipeline for one player: fetch detail, normalize
// matches, aggregate by agent and map, segment the career, assemble.
func (s *StoryService) BuildStory(ctx context.Context, playerID string) (*domain.PlayerGrowthStory, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("player_id", playerID).Msg("building growth story")

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	resp, err := s.vlr.GetPlayer(apiCtx, playerID)
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to fetch player detail")
		return nil, fmt.Errorf("failed to fetch player %s: %w", playerID, err)
	}
	if resp.Data == nil {
		s.logger.Info().Str("player_id", playerID).Msg("player not found upstream")
		return nil, ErrPlayerNotFound
	}
	detail := resp.Data

	identity := domain.PlayerIdentity{
		ID:   detail.Info.ID,
		Name: detail.Info.User,
	}
	if detail.Team != nil {
		identity.TeamName = detail.Team.Name
		identity.TeamTag = detail.Team.Tag
	}

	matches := story.NormalizeMatches(identity, detail.Results)
	s.logger.Debug().
		Str("player_id", playerID).
		Int("raw_count", len(detail.Results)).
		Int("normalized_count", len(matches)).
		Msg("matches normalized")

	storyID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate story id: %w", err)
	}

	result := &domain.PlayerGrowthStory{
		StoryID:           storyID,
		GeneratedAt:       time.Now(),
		Profile:           buildProfile(detail),
		Matches:           matches,
		PerformanceTrends: performanceTrends(matches),
		AgentStats:        story.AggregateByAgent(matches),
		MapStats:          story.AggregateByMap(matches),
		CareerPhases:      story.SegmentCareer(detail.PastTeams, detail.Team, matches),
	}

	s.logger.Info().
		Str("player_id", playerID).
		Str("story_id", storyID).
		Int("matches", len(result.Matches)).
		Int("phases", len(result.CareerPhases)).
		Msg("growth story built")
	return result, nil
}

// ComparePlayers builds both stories concurrently. Each side resolves on its
// own; a failed lookup on one side never cancels or fails the other.
func (s *StoryService) ComparePlayers(ctx context.Context, playerA, playerB string) (*domain.PlayerComparison, error) {
	s.logger.Info().Str("player_a", playerA).Str("player_b", playerB).Msg("comparing players")

	var sideA, sideB domain.ComparisonSide

	g := new(errgroup.Group)
	g.Go(func() error {
		sideA = s.buildSide(ctx, playerA)
		return nil
	})
	g.Go(func() error {
		sideB = s.buildSide(ctx, playerB)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.PlayerComparison{PlayerA: sideA, PlayerB: sideB}, nil
}

func (s *StoryService) buildSide(ctx context.Context, playerID string) domain.ComparisonSide {
	side := domain.ComparisonSide{PlayerID: playerID}

	result, err := s.BuildStory(ctx, playerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("player_id", playerID).Msg("comparison side failed")
		side.Error = err.Error()
		side.NotFound = errors.Is(err, ErrPlayerNotFound)
		return side
	}

	side.Story = result
	return side
}

func buildProfile(detail *api.PlayerDetail) domain.PlayerProfile {
	profile := domain.PlayerProfile{
		ID:         detail.Info.ID,
		Name:       detail.Info.User,
		FullName:   detail.Info.Name,
		Country:    detail.Info.Country,
		Image:      detail.Info.Img,
		TwitterURL: detail.Socials.TwitterURL,
		TwitchURL:  detail.Socials.TwitchURL,
	}
	if detail.Team != nil {
		profile.TeamID = detail.Team.ID
		profile.TeamName = detail.Team.Name
		profile.TeamTag = detail.Team.Tag
	}
	return profile
}

// performanceTrends projects normalized matches onto (date, ACS, K/D, HS%)
// points; the input is already sorted ascending by date.
func performanceTrends(matches []domain.ProcessedMatch) []domain.PerformanceTrendPoint {
	points := make([]domain.PerformanceTrendPoint, 0, len(matches))
	for _, m := range matches {
		points = append(points, domain.PerformanceTrendPoint{
			Date:      m.Date,
			ACS:       m.PlayerStats.ACS,
			KD:        m.PlayerStats.KD,
			HSPercent: m.PlayerStats.HSPercent,
		})
	}
	return points
}
