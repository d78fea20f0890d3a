// Package scoring maps round outcomes to score deltas. All functions are
// pure: they never touch room state, callers apply the returned deltas to
// the room's cumulative score map.
package scoring

// SpyGuess scores a spy's direct location guess. A correct guess awards the
// spy 2 points; a wrong one awards every other player 1 point.
func SpyGuess(correct bool, spyID string, playerIDs []string) map[string]int {
	deltas := make(map[string]int)
	if correct {
		deltas[spyID] = 2
		return deltas
	}
	for _, id := range playerIDs {
		if id != spyID {
			deltas[id] = 1
		}
	}
	return deltas
}

// Accusation scores a unanimously-approved accusation. If the accused really
// was the spy, every non-spy player gets 1 point and the accuser 2 more on
// top. If the group convicted the wrong player, the spy gets 2 points.
// A non-unanimous accusation never reaches scoring: it is discarded.
func Accusation(accusedWasSpy bool, accuserID, spyID string, playerIDs []string) map[string]int {
	deltas := make(map[string]int)
	if !accusedWasSpy {
		deltas[spyID] = 2
		return deltas
	}
	for _, id := range playerIDs {
		if id != spyID {
			deltas[id] = 1
		}
	}
	deltas[accuserID] += 2
	return deltas
}

// FinalVote scores the end-of-clock vote: each voter whose target is the spy
// earns 1 point. It also returns the per-voter correctness judgments for the
// outcome broadcast.
func FinalVote(votes map[string]string, spyID string) (map[string]int, map[string]bool) {
	deltas := make(map[string]int)
	correctness := make(map[string]bool, len(votes))
	for voterID, targetID := range votes {
		correct := targetID == spyID
		correctness[voterID] = correct
		if correct {
			deltas[voterID] = 1
		}
	}
	return deltas, correctness
}

// Apply adds deltas onto a cumulative score map in place.
func Apply(scores map[string]int, deltas map[string]int) {
	for id, d := range deltas {
		scores[id] += d
	}
}
