// internal/game/game.go
package game

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whitecards/czar/internal/deck"
	"github.com/whitecards/czar/internal/models"
	"github.com/whitecards/czar/internal/scores"
)

// Config carries the engine's tunables.
type Config struct {
	HandLimit  int           // max response cards per hand
	MinPlayers int           // players needed before a round can start
	RoundDelay time.Duration // countdown between a winner and the next round
}

func (c *Config) applyDefaults() {
	if c.HandLimit <= 0 {
		c.HandLimit = 3
	}
	if c.MinPlayers <= 0 {
		c.MinPlayers = 2
	}
	if c.RoundDelay <= 0 {
		c.RoundDelay = 10 * time.Second
	}
}

// Game is the session aggregate: players, deck, and the current round,
// all guarded by a single mutex. Every inbound operation holds the lock
// for its full duration, so the completion predicate always observes a
// consistent snapshot of players and submissions. The engine performs
// no socket I/O; outbound traffic goes through the broadcast callbacks.
type Game struct {
	Mu sync.Mutex

	cfg      Config
	deck     *deck.Deck
	registry registry
	round    round
	rng      *rand.Rand

	inProgress bool

	// BroadcastFn sends an event to every connected client. If nil, no
	// broadcast is done.
	BroadcastFn func(ev GameEvent)

	// BroadcastToPlayerFn sends an event to a single player.
	BroadcastToPlayerFn func(playerID uuid.UUID, ev GameEvent)

	// Scores persists scores across sessions. Lookups run before the
	// lock is taken and snapshots on their own goroutine, so a slow
	// store never stalls the session.
	Scores scores.Store

	nextRoundTimer *time.Timer
}

// New builds an engine around a loaded deck.
func New(d *deck.Deck, cfg Config) *Game {
	cfg.applyDefaults()
	return &Game{
		cfg:      cfg,
		deck:     d,
		registry: registry{handLimit: cfg.HandLimit},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// HandleJoin admits a new player, deals their hand, and reports the
// session state back to them. Reaching the minimum player count starts
// the first round; joining mid-round yields a catch-up view instead.
func (g *Game) HandleJoin(id uuid.UUID, name string) error {
	prior := g.lookupScore(name)

	g.Mu.Lock()
	defer g.Mu.Unlock()

	p, err := g.registry.join(id, name, g.deck)
	if err != nil {
		return err
	}
	if prior > 0 {
		p.Score = prior
	}
	log.Printf("player %s joined, %d player(s) total", p.Name, len(g.registry.players))

	g.fireEventToPlayer(p.ID, GameEvent{
		Type:   EventJoinSuccess,
		Hand:   p.Hand,
		Prompt: g.round.prompt,
	})
	g.fireEvent(GameEvent{Type: EventPlayerList, Players: g.registry.views()})

	if !g.inProgress && len(g.registry.players) >= g.cfg.MinPlayers {
		g.startRound()
	} else if g.inProgress {
		g.fireEventToPlayer(p.ID, GameEvent{
			Type:    EventNewRound,
			Prompt:  g.round.prompt,
			Players: g.registry.views(),
		})
	}
	return nil
}

// HandleLeave removes a disconnected player. Judge reassignment leaves
// the prompt and the other players' submissions untouched; the
// completion predicate is then re-checked against the smaller player
// set, since the departed player may have been the last one outstanding.
func (g *Game) HandleLeave(id uuid.UUID) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	p := g.registry.remove(id)
	if p == nil {
		return
	}
	log.Printf("player %s left, %d player(s) remain", p.Name, len(g.registry.players))

	if len(g.registry.players) < g.cfg.MinPlayers {
		g.inProgress = false
		g.round.reset()
	} else if g.round.state == stateAwaitingSubmissions {
		g.round.dropSubmission(p.Name)
		g.maybeReveal()
	} else if p.IsJudge && g.round.state == stateJudging {
		// The reveal went to the departed judge; repeat it for the new one.
		if judge := g.registry.judge(); judge != nil {
			g.fireEventToPlayer(judge.ID, GameEvent{
				Type:        EventAllCardsSubmitted,
				Submissions: g.round.shuffled(g.rng),
			})
		}
	}

	g.fireEvent(GameEvent{Type: EventPlayerList, Players: g.registry.views()})
}

// HandleSubmit validates and records a submission. When the last
// outstanding submission lands, the shuffled set goes to the judge.
func (g *Game) HandleSubmit(id uuid.UUID, cards []models.Card) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	p := g.registry.byID(id)
	if p == nil {
		return ErrUnknownPlayer
	}
	if err := g.round.submit(p, cards); err != nil {
		return err
	}

	g.fireEventToPlayer(p.ID, GameEvent{Type: EventCardSubmitted, Message: "cards submitted"})
	g.fireEventToPlayer(p.ID, GameEvent{Type: EventUpdateHand, Hand: p.Hand})
	g.fireEvent(GameEvent{Type: EventSubmittedCount, Count: len(g.round.submissions)})

	g.maybeReveal()
	return nil
}

// HandleSelectWinner resolves the round: the matching submitter gains
// exactly one point regardless of how many cards the prompt asked for,
// and the next round is scheduled after the countdown delay.
func (g *Game) HandleSelectWinner(cards []models.Card) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	sub, err := g.round.selectWinner(cards)
	if err != nil {
		return err
	}

	if winner := g.registry.byName(sub.PlayerName); winner != nil {
		winner.Score++
	}
	log.Printf("round won by %s", sub.PlayerName)

	g.fireEvent(GameEvent{Type: EventRoundWinner, Cards: sub.Cards, PlayerName: sub.PlayerName})
	g.fireEvent(GameEvent{Type: EventNextRoundCountdown})

	g.snapshotScores()
	g.scheduleNextRound()
	return nil
}

// StartNextRound begins the next round immediately if enough players
// remain. It normally runs off the countdown timer, but callers may
// invoke it directly; the delay is policy, not a correctness rule.
func (g *Game) StartNextRound() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.nextRoundTimer != nil {
		g.nextRoundTimer.Stop()
		g.nextRoundTimer = nil
	}
	if len(g.registry.players) < g.cfg.MinPlayers {
		g.inProgress = false
		g.round.reset()
		return
	}
	g.registry.advanceJudge()
	g.startRound()
}

// InProgress reports whether a round has been started with enough
// players present.
func (g *Game) InProgress() bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.inProgress
}

// startRound draws a new prompt, clears submissions, and tops up every
// hand. Assumes the lock is held.
func (g *Game) startRound() {
	prompt, err := g.deck.DrawPrompt()
	if err != nil {
		log.Printf("cannot start round: %v", err)
		g.fireEvent(GameEvent{Type: EventError, Message: "the deck is out of prompt cards"})
		return
	}

	g.round.begin(prompt)
	if err := g.registry.topUpHands(g.deck); err != nil {
		log.Printf("hand top-up incomplete: %v", err)
	}
	g.inProgress = true

	g.fireEvent(GameEvent{
		Type:    EventNewRound,
		Prompt:  g.round.prompt,
		Players: g.registry.views(),
	})
	for _, p := range g.registry.players {
		g.fireEventToPlayer(p.ID, GameEvent{Type: EventUpdateHand, Hand: p.Hand})
	}
}

// maybeReveal moves to judging once every non-judge player has a full
// submission, revealing the shuffled set to the judge only. Assumes the
// lock is held.
func (g *Game) maybeReveal() {
	if !g.round.complete(len(g.registry.players)) {
		return
	}
	g.round.state = stateJudging
	judge := g.registry.judge()
	if judge == nil {
		return
	}
	g.fireEventToPlayer(judge.ID, GameEvent{
		Type:        EventAllCardsSubmitted,
		Submissions: g.round.shuffled(g.rng),
	})
}

// scheduleNextRound arms the countdown timer. The callback re-acquires
// the lock when it fires, so joins and leaves arriving during the wait
// are applied first. Assumes the lock is held.
func (g *Game) scheduleNextRound() {
	if g.nextRoundTimer != nil {
		g.nextRoundTimer.Stop()
	}
	g.nextRoundTimer = time.AfterFunc(g.cfg.RoundDelay, g.StartNextRound)
}

// lookupScore restores a prior score for a returning name. Runs before
// the lock is taken.
func (g *Game) lookupScore(name string) int {
	if g.Scores == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	score, ok, err := g.Scores.Lookup(ctx, name)
	if err != nil {
		log.Printf("score lookup for %q failed: %v", name, err)
		return 0
	}
	if !ok {
		return 0
	}
	return score
}

// snapshotScores pushes the full score table to the store without
// holding up the round. Assumes the lock is held; the write itself
// happens on its own goroutine.
func (g *Game) snapshotScores() {
	if g.Scores == nil {
		return
	}
	snap := make(map[string]int, len(g.registry.players))
	for _, p := range g.registry.players {
		snap[p.Name] = p.Score
	}
	store := g.Scores
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Snapshot(ctx, snap); err != nil {
			log.Printf("score snapshot failed: %v", err)
		}
	}()
}

func (g *Game) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

func (g *Game) fireEventToPlayer(playerID uuid.UUID, ev GameEvent) {
	if g.BroadcastToPlayerFn != nil {
		g.BroadcastToPlayerFn(playerID, ev)
	}
}
