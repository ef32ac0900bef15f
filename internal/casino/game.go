// Package casino implements the two-player Casino state machine: dealing,
// captures, builds, trailing, round and hand boundaries, scoring and win
// detection. All operations are synchronous; a rejected action returns an
// error and leaves the game exactly as it was.
package casino

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/casino/internal/config"
	"github.com/vovakirdan/casino/internal/core"
	"github.com/vovakirdan/casino/internal/rules"
)

const (
	// HandSize is the number of cards dealt to each player per round.
	HandSize = 4
	// TableSize is the number of cards laid out at the start of a hand.
	TableSize = 4

	cardsPerRound = 2 * HandSize
)

// Phase is the game lifecycle state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseRoundEnd
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundEnd:
		return "round end"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// HandResult records the scoring of one completed hand. Arrays are indexed
// by PlayerID.
type HandResult struct {
	Hand     int
	Dealer   PlayerID
	Awards   [2]rules.Award
	Captured [2]int
	Sweeps   [2]int
	Scores   [2]int // cumulative, after this hand
}

// PlayResult describes the effect of PlayCard.
type PlayResult struct {
	Card     core.Card
	Captured []core.Card
	Builds   []BuildView
	Sweep    bool
}

// Trail reports whether the card was laid on the table.
func (r PlayResult) Trail() bool {
	return len(r.Captured) == 0 && len(r.Builds) == 0
}

type options struct {
	rng      *rand.Rand
	deck     *core.Deck
	players  [2]PlayerSpec
	dealer   PlayerID
	observer Observer
}

// Option configures New.
type Option func(*options)

// WithSeed seeds the shuffle.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses rng for every shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithDeck deals the first hand from d in its current order, without
// shuffling. Later hands reset and shuffle d.
func WithDeck(d *core.Deck) Option {
	return func(o *options) { o.deck = d }
}

// WithPlayers names the two seats.
func WithPlayers(first, second PlayerSpec) Option {
	return func(o *options) { o.players = [2]PlayerSpec{first, second} }
}

// WithDealer picks the first dealer. The default is seat 1, so seat 0 leads.
func WithDealer(id PlayerID) Option {
	return func(o *options) { o.dealer = id }
}

// WithObserver registers the event sink.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// Game is a two-player Casino game.
type Game struct {
	cfg      config.ScoringConfig
	resolver rules.Resolver
	deck     *core.Deck
	obs      Observer

	players     [2]*Player
	firstDealer PlayerID
	dealer      PlayerID
	current     PlayerID

	table       []core.Card
	builds      []*Build
	nextBuildID int

	played       int
	lastCapturer PlayerID
	hasCapturer  bool

	phase   Phase
	winner  PlayerID
	hand    int
	round   int
	results []HandResult
	cards   ledger
}

// New validates cfg, creates the game and deals the first hand.
func New(cfg config.ScoringConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("casino: %w", err)
	}

	o := options{dealer: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.dealer.Valid() {
		return nil, fmt.Errorf("%w: dealer %d", ErrUnknownPlayer, o.dealer)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}

	shuffle := o.deck == nil
	deck := o.deck
	if deck == nil {
		deck = core.NewDeck(o.rng)
	} else if deck.Remaining() < cardsPerRound+TableSize {
		return nil, fmt.Errorf("casino: deck has %d cards, need at least %d", deck.Remaining(), cardsPerRound+TableSize)
	}

	g := &Game{
		deck:        deck,
		obs:         o.observer,
		firstDealer: o.dealer,
		cards:       newLedger(),
	}
	for i := range g.players {
		g.players[i] = newPlayer(PlayerID(i), o.players[i])
	}

	g.start(cfg, shuffle)
	return g, nil
}

// ResetForNewGame starts over under cfg with a freshly shuffled deck. Scores,
// sweeps and breakdowns go back to zero and the first dealer deals again.
func (g *Game) ResetForNewGame(cfg config.ScoringConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("casino: %w", err)
	}
	g.start(cfg, true)
	return nil
}

func (g *Game) start(cfg config.ScoringConfig, shuffle bool) {
	g.cfg = cfg.Clone()
	g.resolver = rules.NewResolver(g.cfg)

	for _, p := range g.players {
		p.resetForNewGame()
	}
	g.dealer = g.firstDealer
	g.table = nil
	g.builds = nil
	g.nextBuildID = 1
	g.played = 0
	g.hasCapturer = false
	g.phase = PhasePlaying
	g.hand = 1
	g.round = 1
	g.results = nil

	if shuffle {
		g.deck.Reset()
		g.deck.Shuffle()
	}
	g.cards.resetTo(g.deck.Cards())

	g.emit(GameStartedEvent{
		Variant: g.cfg.Variant,
		Players: [2]string{g.players[0].name, g.players[1].name},
		Dealer:  g.dealer,
	})

	g.dealHand(g.NonDealer())
	g.dealHand(g.dealer)
	g.dealTable(TableSize)
	g.current = g.NonDealer()
	g.emit(DealtEvent{Hand: g.hand, Round: g.round, Table: slices.Clone(g.table), Remaining: g.deck.Remaining()})
}

// PlayCard plays the card at handIndex. It captures when the card matches
// loose cards or builds, otherwise it trails. A player who owns a build and
// holds its capture card may not trail.
func (g *Game) PlayCard(id PlayerID, handIndex int) (PlayResult, error) {
	plan, err := g.planPlay(id, handIndex)
	if err != nil {
		return PlayResult{}, err
	}

	p := g.players[id]
	card := p.removeAt(handIndex)
	res := PlayResult{Card: card}

	if !plan.captures() {
		g.cards.move(card, inHand(id), onTable)
		g.table = append(g.table, card)
		g.emit(TrailedEvent{Player: id, Card: card})
		g.endTurn()
		return res, nil
	}

	g.cards.move(card, inHand(id), capturedBy(id))
	p.captured = append(p.captured, card)
	for _, c := range plan.loose {
		g.takeFromTable(c, id)
	}
	for _, b := range plan.builds {
		res.Builds = append(res.Builds, b.view())
		g.takeBuild(b, id)
	}
	res.Captured = plan.loose
	g.lastCapturer = id
	g.hasCapturer = true
	g.emit(CapturedEvent{Player: id, Played: card, Cards: slices.Clone(plan.loose), Builds: res.Builds})

	if len(g.table) == 0 && len(g.builds) == 0 {
		p.sweeps++
		res.Sweep = true
		g.emit(SweptEvent{Player: id, Sweeps: p.sweeps})
	}

	g.endTurn()
	return res, nil
}

type playPlan struct {
	loose  []core.Card
	builds []*Build
}

func (pl playPlan) captures() bool {
	return len(pl.loose) > 0 || len(pl.builds) > 0
}

func (g *Game) planPlay(id PlayerID, handIndex int) (playPlan, error) {
	p, err := g.actor(id)
	if err != nil {
		return playPlan{}, err
	}
	if err := checkHandIndex(p, handIndex); err != nil {
		return playPlan{}, err
	}

	card := p.hand[handIndex]
	plan := playPlan{loose: g.resolver.Resolve(card, g.table)}
	if !card.IsFace() {
		for _, b := range g.builds {
			if b.value == card.Value() {
				plan.builds = append(plan.builds, b)
			}
		}
	}

	if !plan.captures() && g.mustCollect(id) {
		return playPlan{}, fmt.Errorf("%w: %s captures nothing", ErrMustCapture, card)
	}
	return plan, nil
}

// CreateBuild combines the hand card with the selected loose table cards into
// a build worth value, owned by the acting player.
func (g *Game) CreateBuild(id PlayerID, handIndex int, tableIndices []int, value int) (BuildView, error) {
	if err := g.checkBuild(id, handIndex, tableIndices, value); err != nil {
		return BuildView{}, err
	}

	picked := make([]core.Card, len(tableIndices))
	for i, idx := range tableIndices {
		picked[i] = g.table[idx]
	}

	p := g.players[id]
	card := p.removeAt(handIndex)
	b := &Build{id: g.nextBuildID, value: value, owner: id}
	g.nextBuildID++

	for _, c := range picked {
		g.table = slices.DeleteFunc(g.table, func(t core.Card) bool { return t == c })
		g.cards.move(c, onTable, inBuild(b.id))
		b.cards = append(b.cards, c)
	}
	g.cards.move(card, inHand(id), inBuild(b.id))
	b.cards = append(b.cards, card)
	g.builds = append(g.builds, b)

	view := b.view()
	g.emit(BuildCreatedEvent{Player: id, Played: card, Build: view})
	g.endTurn()
	return view, nil
}

func (g *Game) checkBuild(id PlayerID, handIndex int, tableIndices []int, value int) error {
	p, err := g.actor(id)
	if err != nil {
		return err
	}
	if err := checkHandIndex(p, handIndex); err != nil {
		return err
	}
	if len(tableIndices) == 0 {
		return ErrEmptyBuild
	}

	card := p.hand[handIndex]
	if card.IsFace() {
		return fmt.Errorf("%w: %s", ErrFaceCardInBuild, card)
	}

	seen := make(map[int]bool, len(tableIndices))
	sum := card.Value()
	for _, idx := range tableIndices {
		if idx < 0 || idx >= len(g.table) || seen[idx] {
			return fmt.Errorf("%w: %d", ErrTableIndex, idx)
		}
		seen[idx] = true
		c := g.table[idx]
		if c.IsFace() {
			return fmt.Errorf("%w: %s", ErrFaceCardInBuild, c)
		}
		sum += c.Value()
	}
	if sum != value {
		return fmt.Errorf("%w: cards make %d, declared %d", ErrBuildSum, sum, value)
	}

	if !p.holdsValue(value, handIndex) {
		return fmt.Errorf("%w: nothing worth %d left after playing %s", ErrNoCaptureCard, value, card)
	}
	if v, ok := g.coversOwnBuilds(id, handIndex, 0); !ok {
		return fmt.Errorf("%w: %s is the last card for the build of %d", ErrCaptureCardReserved, card, v)
	}
	return nil
}

// ModifyBuild adds the hand card to a single build, raising its value. The
// acting player takes ownership.
func (g *Game) ModifyBuild(id PlayerID, buildID, handIndex, value int) (BuildView, error) {
	b, err := g.checkModify(id, buildID, handIndex, value)
	if err != nil {
		return BuildView{}, err
	}

	card := g.players[id].removeAt(handIndex)
	g.cards.move(card, inHand(id), inBuild(b.id))
	b.cards = append(b.cards, card)

	prevOwner, prevValue := b.owner, b.value
	b.value = value
	b.owner = id

	view := b.view()
	g.emit(BuildModifiedEvent{
		Player:        id,
		Played:        card,
		PreviousOwner: prevOwner,
		PreviousValue: prevValue,
		Build:         view,
	})
	g.endTurn()
	return view, nil
}

func (g *Game) checkModify(id PlayerID, buildID, handIndex, value int) (*Build, error) {
	p, err := g.actor(id)
	if err != nil {
		return nil, err
	}
	if err := checkHandIndex(p, handIndex); err != nil {
		return nil, err
	}

	b := g.findBuild(buildID)
	if b == nil {
		return nil, fmt.Errorf("%w: #%d", ErrUnknownBuild, buildID)
	}
	if b.multi {
		return nil, fmt.Errorf("%w: #%d", ErrMultiBuild, buildID)
	}
	if value <= b.value {
		return nil, fmt.Errorf("%w: %d is not above %d", ErrValueNotIncreasing, value, b.value)
	}

	card := p.hand[handIndex]
	if card.IsFace() {
		return nil, fmt.Errorf("%w: %s", ErrFaceCardInBuild, card)
	}
	if sum := core.SumValues(b.cards) + card.Value(); sum != value {
		return nil, fmt.Errorf("%w: cards make %d, declared %d", ErrBuildSum, sum, value)
	}
	if !p.holdsValue(value, handIndex) {
		return nil, fmt.Errorf("%w: nothing worth %d left after playing %s", ErrNoCaptureCard, value, card)
	}
	if v, ok := g.coversOwnBuilds(id, handIndex, b.id); !ok {
		return nil, fmt.Errorf("%w: %s is the last card for the build of %d", ErrCaptureCardReserved, card, v)
	}
	return b, nil
}

// coversOwnBuilds checks that, without the card at skip, the player still
// holds a capture card for every build they own other than except. It
// returns the first uncovered build value.
func (g *Game) coversOwnBuilds(id PlayerID, skip, except int) (int, bool) {
	p := g.players[id]
	for _, b := range g.builds {
		if b.owner != id || b.id == except {
			continue
		}
		if !p.holdsValue(b.value, skip) {
			return b.value, false
		}
	}
	return 0, true
}

func (g *Game) actor(id PlayerID) (*Player, error) {
	if g.phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	if id != g.current {
		return nil, fmt.Errorf("%w: waiting for %s", ErrNotYourTurn, g.players[g.current].name)
	}
	return g.players[id], nil
}

func checkHandIndex(p *Player, i int) error {
	if len(p.hand) == 0 {
		return ErrEmptyHand
	}
	if i < 0 || i >= len(p.hand) {
		return fmt.Errorf("%w: %d (hand has %d cards)", ErrHandIndex, i, len(p.hand))
	}
	return nil
}

// mustCollect reports whether id owns a build and still holds a card that
// captures it. Builds carried into a new round can leave the owner without
// one, and then trailing is allowed again.
func (g *Game) mustCollect(id PlayerID) bool {
	p := g.players[id]
	for _, b := range g.builds {
		if b.owner == id && p.holdsValue(b.value, -1) {
			return true
		}
	}
	return false
}

func (g *Game) findBuild(id int) *Build {
	for _, b := range g.builds {
		if b.id == id {
			return b
		}
	}
	return nil
}

func (g *Game) takeFromTable(c core.Card, id PlayerID) {
	g.table = slices.DeleteFunc(g.table, func(t core.Card) bool { return t == c })
	g.cards.move(c, onTable, capturedBy(id))
	g.players[id].captured = append(g.players[id].captured, c)
}

func (g *Game) takeBuild(b *Build, id PlayerID) {
	for _, c := range b.cards {
		g.cards.move(c, inBuild(b.id), capturedBy(id))
		g.players[id].captured = append(g.players[id].captured, c)
	}
	g.builds = slices.DeleteFunc(g.builds, func(x *Build) bool { return x == b })
}

func (g *Game) endTurn() {
	g.played++
	if g.played >= cardsPerRound {
		g.endRound()
		return
	}
	g.current = g.current.Other()
}

// endRound runs after every player has emptied their hand.
func (g *Game) endRound() {
	g.phase = PhaseRoundEnd
	g.emit(RoundEndedEvent{Hand: g.hand, Round: g.round, DeckRemaining: g.deck.Remaining()})

	// A remainder too small for another round is burned and the hand ends.
	if r := g.deck.Remaining(); r > 0 && r < cardsPerRound {
		burned := g.deck.DrawN(r)
		for _, c := range burned {
			g.cards.move(c, inDeck, discarded)
		}
		g.emit(CardsDiscardedEvent{Cards: burned, Reason: "too few cards left to deal"})
	}

	handOver := g.deck.Remaining() == 0
	if handOver || g.cfg.TableCardTiming == config.AwardAfterEachHand {
		g.awardLeftovers(handOver)
	}
	g.played = 0

	if !handOver {
		g.round++
		g.dealHand(g.NonDealer())
		g.dealHand(g.dealer)
		g.current = g.NonDealer()
		g.phase = PhasePlaying
		g.emit(DealtEvent{Hand: g.hand, Round: g.round, Remaining: g.deck.Remaining()})
		return
	}

	g.scoreHand()
	g.dealer = g.dealer.Other()
	g.emit(DealerSwappedEvent{Dealer: g.dealer})

	if g.checkWin() {
		return
	}
	g.startNextHand()
}

// awardLeftovers gives loose table cards to the last player to capture and
// each remaining build to its owner. With nobody having captured, loose
// cards stay on the table, or leave play when the hand is over.
func (g *Game) awardLeftovers(handOver bool) {
	if len(g.table) > 0 {
		switch {
		case g.hasCapturer:
			cards := g.table
			g.table = nil
			p := g.players[g.lastCapturer]
			for _, c := range cards {
				g.cards.move(c, onTable, capturedBy(p.id))
				p.captured = append(p.captured, c)
			}
			g.emit(TableAwardedEvent{Player: p.id, Cards: cards})
		case handOver:
			cards := g.table
			g.table = nil
			for _, c := range cards {
				g.cards.move(c, onTable, discarded)
			}
			g.emit(CardsDiscardedEvent{Cards: cards, Reason: "no capture this hand"})
		}
	}

	builds := g.builds
	g.builds = nil
	for _, b := range builds {
		p := g.players[b.owner]
		for _, c := range b.cards {
			g.cards.move(c, inBuild(b.id), capturedBy(p.id))
			p.captured = append(p.captured, c)
		}
		g.emit(BuildAwardedEvent{Player: p.id, Build: b.view()})
	}
}

func (g *Game) scoreHand() {
	dealer, nonDealer := g.players[g.dealer], g.players[g.NonDealer()]
	res := rules.Score(
		rules.Tally{Captured: dealer.captured, Sweeps: dealer.sweeps},
		rules.Tally{Captured: nonDealer.captured, Sweeps: nonDealer.sweeps},
		g.cfg,
	)
	dealer.addScore(res.Dealer)
	nonDealer.addScore(res.NonDealer)

	hr := HandResult{Hand: g.hand, Dealer: g.dealer}
	hr.Awards[dealer.id] = res.Dealer
	hr.Awards[nonDealer.id] = res.NonDealer
	for _, p := range g.players {
		hr.Captured[p.id] = len(p.captured)
		hr.Sweeps[p.id] = p.sweeps
		hr.Scores[p.id] = p.score
	}
	g.results = append(g.results, hr)
	g.emit(HandScoredEvent{Result: hr})

	for _, p := range g.players {
		for _, c := range p.captured {
			g.cards.move(c, capturedBy(p.id), discarded)
		}
		p.captured = nil
	}
}

// checkWin ends the game once either score reaches the target. The higher
// score wins; on a tie the dealer for the next hand wins.
func (g *Game) checkWin() bool {
	a, b := g.players[0].score, g.players[1].score
	if a < g.cfg.WinScore && b < g.cfg.WinScore {
		return false
	}

	switch {
	case a > b:
		g.winner = 0
	case b > a:
		g.winner = 1
	default:
		g.winner = g.dealer
	}
	g.phase = PhaseGameOver
	g.emit(GameEndedEvent{
		Winner:     g.winner,
		Scores:     [2]int{a, b},
		Breakdowns: [2]rules.Breakdown{g.players[0].Breakdown(), g.players[1].Breakdown()},
	})
	return true
}

func (g *Game) startNextHand() {
	g.hand++
	g.round = 1
	g.hasCapturer = false

	g.deck.Reset()
	g.deck.Shuffle()
	g.cards.resetTo(g.deck.Cards())

	g.dealTable(TableSize)
	g.dealHand(g.NonDealer())
	g.dealHand(g.dealer)
	g.current = g.NonDealer()
	g.phase = PhasePlaying
	g.emit(DealtEvent{Hand: g.hand, Round: g.round, Table: slices.Clone(g.table), Remaining: g.deck.Remaining()})
}

func (g *Game) dealHand(id PlayerID) {
	p := g.players[id]
	for _, c := range g.deck.DrawN(HandSize) {
		g.cards.move(c, inDeck, inHand(id))
		p.hand = append(p.hand, c)
	}
}

func (g *Game) dealTable(n int) {
	for _, c := range g.deck.DrawN(n) {
		g.cards.move(c, inDeck, onTable)
		g.table = append(g.table, c)
	}
}

func (g *Game) emit(e Event) {
	g.obs.OnEvent(e)
}
