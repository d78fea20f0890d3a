package game

import (
	"math/rand"
	"sync"
	"time"

	"spyroom/internal/events"
	"spyroom/internal/locations"
	"spyroom/internal/players"
	"spyroom/internal/scoring"
)

// MinPlayers is the minimum roster size required to start a round.
const MinPlayers = 3

type Config struct {
	RoundDuration time.Duration
	MinPlayers    int
}

func DefaultConfig() Config {
	return Config{
		RoundDuration: 6 * time.Minute,
		MinPlayers:    MinPlayers,
	}
}

// Game is the per-room aggregate: the ordered roster, the cumulative score
// map and the current session. Every mutation, including the round-clock
// callback, runs under the single mutex, so no two transitions on the same
// room ever interleave.
type Game struct {
	mu      sync.Mutex
	code    string
	hostID  string
	roster  []*players.Player
	scores  map[string]int
	session *Session
	clock   Timer // pending round-clock handle, nil when idle

	cfg   Config
	bus   *events.Bus
	sched Scheduler
}

func New(code, hostID string, cfg Config, bus *events.Bus, sched Scheduler) *Game {
	if cfg.MinPlayers == 0 {
		cfg.MinPlayers = MinPlayers
	}
	return &Game{
		code:   code,
		hostID: hostID,
		roster: make([]*players.Player, 0, 8),
		scores: make(map[string]int),
		cfg:    cfg,
		bus:    bus,
		sched:  sched,
	}
}

func (g *Game) Code() string   { return g.code }
func (g *Game) HostID() string { return g.hostID }

// PlayerCount returns the current roster size.
func (g *Game) PlayerCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.roster)
}

// AddPlayer validates the name and appends a player in join order. The score
// entry is initialized once and survives later departures.
func (g *Game) AddPlayer(id, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.memberLocked(id) {
		return ErrAlreadyInRoom
	}
	p, err := players.New(id, name)
	if err != nil {
		return err
	}
	g.roster = append(g.roster, p)
	if _, ok := g.scores[id]; !ok {
		g.scores[id] = 0
	}

	g.bus.Emit([]string{id}, events.JoinedRoom, g.rosterPayloadLocked(""))
	g.bus.Emit(g.recipientsLocked(), events.UserJoined, g.rosterPayloadLocked(id))
	return nil
}

// RemovePlayer drops a player from the roster, keeping their score entry and
// any votes they already cast. It reports whether the player was present and
// whether the room is now empty; when it empties, the pending clock is
// cancelled here and the caller destroys the room.
func (g *Game) RemovePlayer(id string) (removed, empty bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := -1
	for i, p := range g.roster {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, false
	}
	g.roster = append(g.roster[:idx], g.roster[idx+1:]...)

	if len(g.roster) == 0 {
		g.stopClockLocked()
		if g.session != nil {
			g.session.Ended = true
			g.session = nil
		}
		return true, true
	}

	g.bus.Emit(g.recipientsLocked(), events.UserLeft, g.rosterPayloadLocked(id))
	return true, false
}

// Stop cancels any pending clock and discards the session. Used on room
// destruction.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopClockLocked()
	if g.session != nil {
		g.session.Ended = true
		g.session = nil
	}
}

// Start begins a round: host-only, needs the minimum roster. The spy and the
// location are drawn independently and uniformly, the clock is armed, and
// each player gets their own start payload. The spy's payload carries no
// location in any form.
func (g *Game) Start(requesterID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if requesterID != g.hostID {
		return ErrNotHost
	}
	if g.session != nil {
		return ErrGameInProgress
	}
	if len(g.roster) < g.cfg.MinPlayers {
		return ErrInsufficientPlayers
	}

	spy := g.roster[rand.Intn(len(g.roster))]
	s := &Session{
		Active:    true,
		SpyID:     spy.ID,
		Location:  locations.Random(),
		StartedAt: time.Now(),
		Duration:  g.cfg.RoundDuration,
	}
	g.session = s
	g.clock = g.sched.AfterFunc(s.Duration, func() { g.clockExpired(s) })

	for _, p := range g.roster {
		payload := events.GameStartedPayload{
			RoomCode:  g.code,
			IsSpy:     p.ID == s.SpyID,
			StartedAt: s.StartedAt,
			Duration:  int(s.Duration / time.Second),
		}
		if p.ID != s.SpyID {
			loc := s.Location
			payload.Location = &loc
		}
		g.bus.Emit([]string{p.ID}, events.GameStarted, payload)
	}
	return nil
}

// clockExpired is the round-clock callback. A session that already ended, or
// was replaced by a newer one, makes it a no-op.
func (g *Game) clockExpired(s *Session) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session != s || !s.Active || s.Ended {
		return
	}
	g.clock = nil
	s.Accusation = nil
	s.FinalVoting = &FinalVoting{
		Active: true,
		Votes:  make(map[string]string),
	}
	g.bus.Emit(g.recipientsLocked(), events.VotingStarted, events.VotingStartedPayload{RoomCode: g.code})
}

// End terminates the round without scoring. Host-only.
func (g *Game) End(requesterID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if requesterID != g.hostID {
		return ErrNotHost
	}
	s := g.session
	if s == nil || !s.Active {
		return ErrNoActiveGame
	}

	g.stopClockLocked()
	g.endSessionLocked(s, events.GameEndedPayload{
		RoomCode: g.code,
		Reason:   events.ReasonHost,
	})
	return nil
}

// SpyGuess resolves the round by the spy naming a location.
func (g *Game) SpyGuess(requesterID string, locationID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s == nil || !s.Active {
		return ErrNoActiveGame
	}
	if requesterID != s.SpyID {
		return ErrNotSpy
	}
	guessed, ok := locations.ByID(locationID)
	if !ok {
		return ErrLocationNotFound
	}

	g.stopClockLocked()
	correct := guessed.ID == s.Location.ID
	scoring.Apply(g.scores, scoring.SpyGuess(correct, s.SpyID, g.playerIDsLocked()))

	g.endSessionLocked(s, events.GameEndedPayload{
		RoomCode: g.code,
		Reason:   events.ReasonSpyGuess,
		Correct:  &correct,
		Guessed:  &guessed,
	})
	return nil
}

// StartAccusation opens a unanimous-vote challenge against a room member.
// The accuser's approval is pre-recorded, which can meet the quorum on its
// own, so resolution is checked immediately after the start notice.
func (g *Game) StartAccusation(accuserID, accusedID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s == nil || !s.Active {
		return ErrNoActiveGame
	}
	if s.FinalVoting != nil {
		return ErrVotingActive
	}
	if s.Accusation != nil {
		return ErrAccusationPending
	}
	if accusedID == accuserID {
		return ErrSelfTarget
	}
	if !g.memberLocked(accuserID) || !g.memberLocked(accusedID) {
		return ErrPlayerNotFound
	}

	a := &Accusation{
		AccuserID: accuserID,
		AccusedID: accusedID,
		Votes:     map[string]bool{accuserID: true},
	}
	s.Accusation = a

	g.bus.Emit(g.recipientsLocked(), events.AccusationStarted, g.accusationPayloadLocked(s, a))
	g.resolveAccusationLocked(s)
	return nil
}

// VoteAccusation records one vote, overwriting any earlier vote from the
// same voter. The accused and the spy are ineligible.
func (g *Game) VoteAccusation(voterID string, vote bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s == nil || !s.Active {
		return ErrNoActiveGame
	}
	a := s.Accusation
	if a == nil {
		return ErrNoAccusation
	}
	if voterID == a.AccusedID {
		return ErrAccusedCannotVote
	}
	if voterID == s.SpyID {
		return ErrSpyCannotVote
	}
	if !g.memberLocked(voterID) {
		return ErrPlayerNotFound
	}

	a.Votes[voterID] = vote
	g.bus.Emit(g.recipientsLocked(), events.AccusationVoteUpdate, g.accusationPayloadLocked(s, a))
	g.resolveAccusationLocked(s)
	return nil
}

// CancelAccusation withdraws a pending accusation. Accuser-only.
func (g *Game) CancelAccusation(requesterID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s == nil || !s.Active {
		return ErrNoActiveGame
	}
	a := s.Accusation
	if a == nil {
		return ErrNoAccusation
	}
	if requesterID != a.AccuserID {
		return ErrNotAccuser
	}

	s.Accusation = nil
	g.bus.Emit(g.recipientsLocked(), events.AccusationCancelled, events.AccusationPayload{
		RoomCode:  g.code,
		AccuserID: a.AccuserID,
		AccusedID: a.AccusedID,
	})
	return nil
}

// FinalVote records an end-of-clock suspicion, overwriting the voter's
// earlier choice. Once every current player has voted, the round resolves.
func (g *Game) FinalVote(voterID, targetID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	fv := (*FinalVoting)(nil)
	if s != nil {
		fv = s.FinalVoting
	}
	if fv == nil || !fv.Active {
		return ErrVotingNotActive
	}
	if targetID == voterID {
		return ErrSelfTarget
	}
	if !g.memberLocked(voterID) || !g.memberLocked(targetID) {
		return ErrPlayerNotFound
	}

	fv.Votes[voterID] = targetID
	g.bus.Emit(g.recipientsLocked(), events.FinalVoteUpdate, events.FinalVotePayload{
		RoomCode: g.code,
		Voted:    len(fv.Votes),
		Total:    len(g.roster),
	})

	if len(fv.Votes) >= len(g.roster) {
		g.resolveFinalVoteLocked(s, fv)
	}
	return nil
}

// resolveAccusationLocked checks the tally once the distinct-voter count
// reaches quorum. Unanimous approval resolves the round; a single rejection
// discards the accusation with no score change, whoever the accused was.
func (g *Game) resolveAccusationLocked(s *Session) {
	a := s.Accusation
	quorum := g.accusationQuorumLocked(s, a)
	if len(a.Votes) < quorum {
		return
	}

	for _, approve := range a.Votes {
		if !approve {
			s.Accusation = nil
			g.bus.Emit(g.recipientsLocked(), events.AccusationFailed, events.AccusationPayload{
				RoomCode:  g.code,
				AccuserID: a.AccuserID,
				AccusedID: a.AccusedID,
				Votes:     copyBoolMap(a.Votes),
			})
			return
		}
	}

	accusedWasSpy := a.AccusedID == s.SpyID
	g.stopClockLocked()
	scoring.Apply(g.scores, scoring.Accusation(accusedWasSpy, a.AccuserID, s.SpyID, g.playerIDsLocked()))

	g.endSessionLocked(s, events.GameEndedPayload{
		RoomCode:      g.code,
		Reason:        events.ReasonAccusation,
		AccuserID:     a.AccuserID,
		AccusedID:     a.AccusedID,
		AccusedWasSpy: &accusedWasSpy,
	})
}

func (g *Game) resolveFinalVoteLocked(s *Session, fv *FinalVoting) {
	deltas, correctness := scoring.FinalVote(fv.Votes, s.SpyID)
	scoring.Apply(g.scores, deltas)
	fv.Active = false

	g.endSessionLocked(s, events.GameEndedPayload{
		RoomCode:    g.code,
		Reason:      events.ReasonFinalVote,
		Correctness: correctness,
	})
}

// accusationQuorumLocked counts the current members minus the accused and
// the spy. Votes already cast by departed players stay in the tally.
func (g *Game) accusationQuorumLocked(s *Session, a *Accusation) int {
	quorum := 0
	for _, p := range g.roster {
		if p.ID == a.AccusedID || p.ID == s.SpyID {
			continue
		}
		quorum++
	}
	return quorum
}

// endSessionLocked fills the common outcome fields, clears the session and
// broadcasts the result with the cumulative scores.
func (g *Game) endSessionLocked(s *Session, payload events.GameEndedPayload) {
	payload.SpyID = s.SpyID
	payload.SpyName = g.nameOfLocked(s.SpyID)
	payload.Location = s.Location
	payload.Scores = g.scoresCopyLocked()

	s.Active = false
	s.Ended = true
	g.session = nil

	g.bus.Emit(g.recipientsLocked(), events.GameEnded, payload)
}

func (g *Game) stopClockLocked() {
	if g.clock != nil {
		g.clock.Stop()
		g.clock = nil
	}
}

func (g *Game) memberLocked(id string) bool {
	for _, p := range g.roster {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (g *Game) nameOfLocked(id string) string {
	for _, p := range g.roster {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (g *Game) recipientsLocked() []string {
	ids := make([]string, len(g.roster))
	for i, p := range g.roster {
		ids[i] = p.ID
	}
	return ids
}

func (g *Game) playerIDsLocked() []string {
	return g.recipientsLocked()
}

func (g *Game) scoresCopyLocked() map[string]int {
	scores := make(map[string]int, len(g.scores))
	for id, s := range g.scores {
		scores[id] = s
	}
	return scores
}

func (g *Game) rosterPayloadLocked(userID string) events.RosterPayload {
	roster := make([]*players.Player, len(g.roster))
	copy(roster, g.roster)
	return events.RosterPayload{
		RoomCode: g.code,
		UserID:   userID,
		Players:  roster,
		HostID:   g.hostID,
		Scores:   g.scoresCopyLocked(),
	}
}

func (g *Game) accusationPayloadLocked(s *Session, a *Accusation) events.AccusationPayload {
	return events.AccusationPayload{
		RoomCode:  g.code,
		AccuserID: a.AccuserID,
		AccusedID: a.AccusedID,
		Votes:     copyBoolMap(a.Votes),
		Quorum:    g.accusationQuorumLocked(s, a),
	}
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
