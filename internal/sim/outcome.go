package sim

import (
	"fmt"
	"math"
)

// EndReason records why a match finished.
type EndReason int

const (
	EndRoundsExhausted EndReason = iota // last round timed out, decided on health
	EndTankDestroyed                    // a tank reached zero health under DeathEndsMatch
)

func (r EndReason) String() string {
	switch r {
	case EndRoundsExhausted:
		return "rounds_exhausted"
	case EndTankDestroyed:
		return "tank_destroyed"
	default:
		return "unknown"
	}
}

// Outcome is the resolved result of a finished match.
type Outcome struct {
	MatchID      string
	Winner       Side
	Reason       EndReason
	Round        int
	Score        int
	PlayerHealth float64
	AIHealth     float64
}

// PlayerWon reports whether the human side took the match.
func (o Outcome) PlayerWon() bool {
	return o.Winner == SidePlayer
}

// Headline is the banner text for the game-over screen.
func (o Outcome) Headline() string {
	if o.PlayerWon() {
		return "You Win!"
	}
	return "Game Over"
}

// Summary is a one-line description suitable for logs and the clipboard.
func (o Outcome) Summary() string {
	return fmt.Sprintf("match %s: %s wins (%s) round=%d score=%d player_hp=%.0f ai_hp=%.0f",
		o.MatchID, o.Winner, o.Reason, o.Round, o.Score, o.PlayerHealth, o.AIHealth)
}

// Score is round*perRound plus the winner's remaining health, floored.
func Score(round, perRound int, winnerHealth float64) int {
	return round*perRound + int(math.Floor(winnerHealth))
}

// DetermineOutcome decides a match on health: the side with health greater
// than or equal to its opponent's wins, so ties go to the player.
func DetermineOutcome(player, ai *Tank, round, perRound int) Outcome {
	winner := SideAI
	winnerHealth := ai.Health
	if player.Health >= ai.Health {
		winner = SidePlayer
		winnerHealth = player.Health
	}
	return Outcome{
		Winner:       winner,
		Reason:       EndRoundsExhausted,
		Round:        round,
		Score:        Score(round, perRound, winnerHealth),
		PlayerHealth: player.Health,
		AIHealth:     ai.Health,
	}
}

// destroyedOutcome resolves a match where loser's tank was destroyed.
func destroyedOutcome(player, ai *Tank, loser Side, round, perRound int) Outcome {
	winner := loser.Opponent()
	winnerHealth := player.Health
	if winner == SideAI {
		winnerHealth = ai.Health
	}
	return Outcome{
		Winner:       winner,
		Reason:       EndTankDestroyed,
		Round:        round,
		Score:        Score(round, perRound, winnerHealth),
		PlayerHealth: player.Health,
		AIHealth:     ai.Health,
	}
}
