package services

import (
	"context"
	"sync"

	"partyboard/backend"
	"partyboard/models"
)

// LeaderboardService serves the scoreboard and leaderboard pages. Every
// snapshot is treated as fully replaceable: a refresh swaps the whole
// thing, there is no incremental merge. The previous snapshot stays
// visible while a silent refresh is in flight.
type LeaderboardService interface {
	// Refresh fetches the tournament leaderboard and replaces the cached
	// snapshot.
	Refresh(ctx context.Context) (*models.LeaderboardSnapshot, error)
	// Current returns the cached snapshot without touching the backend;
	// nil before the first successful Refresh.
	Current() *models.LeaderboardSnapshot
	// Loaded reports whether an initial snapshot has arrived. Pages show a
	// loading state only before this flips; later refreshes are silent.
	Loaded() bool
	// ForGame fetches a single game's leaderboard (never cached).
	ForGame(ctx context.Context, gameID string) (*models.LeaderboardSnapshot, error)
}

type leaderboardService struct {
	api backend.Client

	mu       sync.RWMutex
	snapshot *models.LeaderboardSnapshot
}

func NewLeaderboardService(api backend.Client) LeaderboardService {
	return &leaderboardService{api: api}
}

func (s *leaderboardService) Refresh(ctx context.Context) (*models.LeaderboardSnapshot, error) {
	snapshot, err := s.api.TournamentsLeaderboard(ctx)
	if err != nil {
		// Stale-but-visible: the cached snapshot is kept on any failure.
		return nil, err
	}
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
	return snapshot, nil
}

func (s *leaderboardService) Current() *models.LeaderboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *leaderboardService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot != nil
}

func (s *leaderboardService) ForGame(ctx context.Context, gameID string) (*models.LeaderboardSnapshot, error) {
	return s.api.GameLeaderboard(ctx, gameID)
}

// DisplayState tracks which team cards are expanded on a scoreboard view.
// Pure presentation: it survives silent refreshes but not a page reload.
type DisplayState struct {
	mu       sync.Mutex
	expanded map[string]bool
}

func NewDisplayState() *DisplayState {
	return &DisplayState{expanded: make(map[string]bool)}
}

// Toggle flips a team card and returns its new expanded state.
func (d *DisplayState) Toggle(teamID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.expanded[teamID] = !d.expanded[teamID]
	return d.expanded[teamID]
}

// Expanded reports whether a team card is open.
func (d *DisplayState) Expanded(teamID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expanded[teamID]
}

// Collapse closes every card, used when a new snapshot drops teams.
func (d *DisplayState) Collapse() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.expanded = make(map[string]bool)
}
