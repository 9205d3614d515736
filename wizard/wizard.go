// Package wizard implements the multi-step tournament creation flow:
// details, teams/players, game selection, review. One Wizard holds one
// unified draft that every step edits in place, so navigating backwards
// never loses anything already entered.
package wizard

import (
	"errors"
	"strings"

	"partyboard/models"
)

// Step is the wizard's position. Steps are strictly linear.
type Step int

const (
	StepDetails Step = iota
	StepTeamsPlayers
	StepGameSelection
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepTeamsPlayers:
		return "teams_players"
	case StepGameSelection:
		return "game_selection"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// Forward guard errors, one per rule. Each is shown next to the offending
// step, never as a page error.
var (
	ErrNameRequired         = errors.New("tournament name is required")
	ErrNotEnoughTeams       = errors.New("at least two teams are required")
	ErrTeamNameRequired     = errors.New("every team needs a name")
	ErrTeamNeedsPlayers     = errors.New("every team needs at least one player")
	ErrPlayerNameRequired   = errors.New("every player needs a name")
	ErrPlayerAvatarRequired = errors.New("every player needs an avatar")
	ErrNoGamesSelected      = errors.New("select at least one game")
	ErrAlreadyAtReview      = errors.New("wizard is already at the review step")
)

// PlayerDraft is one player row on the teams/players step.
type PlayerDraft struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TeamDraft is one team block on the teams/players step.
type TeamDraft struct {
	Name    string        `json:"name"`
	Players []PlayerDraft `json:"players"`
}

// Draft is the unified state object accumulated across all steps.
type Draft struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Teams       []TeamDraft `json:"teams"`
	GameIDs     []string    `json:"gameIds"`
}

// Wizard is one in-flight tournament creation.
type Wizard struct {
	step      Step
	draft     Draft
	submitErr string
}

func New() *Wizard {
	return &Wizard{step: StepDetails}
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) Draft() Draft { return w.draft }

// SubmitError returns the inline error recorded by a failed submission,
// empty when none.
func (w *Wizard) SubmitError() string { return w.submitErr }

// SetDetails records the details step fields.
func (w *Wizard) SetDetails(name, description string) {
	w.draft.Name = name
	w.draft.Description = description
}

// SetTeams replaces the teams/players block wholesale. Partial entries are
// legal here; the guard only runs on Next.
func (w *Wizard) SetTeams(teams []TeamDraft) {
	w.draft.Teams = teams
}

// SetGames replaces the selected game ids.
func (w *Wizard) SetGames(gameIDs []string) {
	w.draft.GameIDs = gameIDs
}

// Next advances one step if the current step's forward guard passes.
func (w *Wizard) Next() error {
	if w.step == StepReview {
		return ErrAlreadyAtReview
	}
	if err := w.guard(w.step); err != nil {
		return err
	}
	w.step++
	return nil
}

// Back moves one step backwards, keeping every entered value.
func (w *Wizard) Back() {
	if w.step > StepDetails {
		w.step--
	}
}

// guard enforces the forward condition of the given step.
func (w *Wizard) guard(step Step) error {
	switch step {
	case StepDetails:
		if strings.TrimSpace(w.draft.Name) == "" {
			return ErrNameRequired
		}
	case StepTeamsPlayers:
		if len(w.draft.Teams) < 2 {
			return ErrNotEnoughTeams
		}
		for _, team := range w.draft.Teams {
			if strings.TrimSpace(team.Name) == "" {
				return ErrTeamNameRequired
			}
			if len(team.Players) == 0 {
				return ErrTeamNeedsPlayers
			}
			for _, p := range team.Players {
				if strings.TrimSpace(p.Name) == "" {
					return ErrPlayerNameRequired
				}
				if p.Avatar == "" {
					return ErrPlayerAvatarRequired
				}
			}
		}
	case StepGameSelection:
		if len(w.draft.GameIDs) == 0 {
			return ErrNoGamesSelected
		}
	}
	return nil
}

// Payload assembles the accumulated draft into the creation request body.
// Only valid once every guard up to review has passed.
func (w *Wizard) Payload() models.CreateTournamentInput {
	input := models.CreateTournamentInput{
		Name:        strings.TrimSpace(w.draft.Name),
		Description: strings.TrimSpace(w.draft.Description),
		GameIDs:     w.draft.GameIDs,
	}
	for _, team := range w.draft.Teams {
		teamInput := models.CreateTeamInput{Name: strings.TrimSpace(team.Name)}
		for _, p := range team.Players {
			teamInput.Players = append(teamInput.Players, models.CreatePlayerInput{
				Name:   strings.TrimSpace(p.Name),
				Avatar: p.Avatar,
			})
		}
		input.Teams = append(input.Teams, teamInput)
	}
	return input
}

// RecordSubmitError keeps a failed submission's message for inline display
// on the review step. The wizard neither advances nor resets.
func (w *Wizard) RecordSubmitError(msg string) {
	w.submitErr = msg
}

// ClearSubmitError drops the inline error, typically after an edit.
func (w *Wizard) ClearSubmitError() {
	w.submitErr = ""
}
