// Package engine is the core scoring and effect pipeline (spec §4.7/§4.8):
// RunState ownership, the play_hand algorithm, blind lifecycle, and the
// shop/voucher/tag/boss integration, wired on top of internal/values,
// internal/expr, internal/classify, internal/rules, internal/flow,
// internal/hooks and internal/content.
//
// Grounded on the teacher's internal/game.Game (single mutable struct
// owning deck/hand/score/jokers/money/shop state, mutated in place by
// PlayHand/Discard/handleBlindCompletion/showShop), generalized from
// hardcoded joker-effect switches to the flow/hook kernel dispatch spec §4
// describes.
package engine

import (
	"github.com/google/uuid"

	"github.com/kevinmchugh/anteforge/internal/classify"
	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/diag"
	"github.com/kevinmchugh/anteforge/internal/hooks"
	"github.com/kevinmchugh/anteforge/internal/rules"
	"github.com/kevinmchugh/anteforge/internal/values"
)

// Phase is the run's state machine position (spec §3).
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseDeal
	PhasePlay
	PhaseScore
	PhaseCleanup
	PhaseShop
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseDeal:
		return "deal"
	case PhasePlay:
		return "play"
	case PhaseScore:
		return "score"
	case PhaseCleanup:
		return "cleanup"
	case PhaseShop:
		return "shop"
	default:
		return "unknown"
	}
}

// BlindKind is small/big/boss, cycling Small -> Big -> Boss -> Small(ante+1).
type BlindKind int

const (
	SmallBlind BlindKind = iota
	BigBlind
	BossBlind
)

func (b BlindKind) String() string {
	switch b {
	case SmallBlind:
		return "small"
	case BigBlind:
		return "big"
	case BossBlind:
		return "boss"
	default:
		return "unknown"
	}
}

// JokerInstance is one owned joker: its content id, a unique instance id
// (google/uuid, grounded on the leanlp-BTC-coinjoin pack's use of uuid for
// instance identity), edition, and any per-instance local variables the
// joker's own effects key state under (spec §4.8's "isolated local vars
// keyed by id").
type JokerInstance struct {
	ID        string
	ContentID string
	Edition   values.Edition
	SellValue int
	Locals    map[string]float64
}

// ConsumableInstance is one owned tarot/planet/spectral card.
type ConsumableInstance struct {
	ID        string
	ContentID string
}

// Inventory is the owned jokers/consumables plus their slot caps.
type Inventory struct {
	Jokers           []JokerInstance
	Consumables      []ConsumableInstance
	JokerSlots       int
	ConsumableSlots  int
}

// ShopOffer is one purchasable slot in the shop: a card (joker/consumable),
// a booster pack, or a voucher.
type ShopOfferKind int

const (
	OfferJoker ShopOfferKind = iota
	OfferConsumable
	OfferPack
	OfferVoucher
)

type ShopOffer struct {
	Kind      ShopOfferKind
	ContentID string
	Price     int
}

// ShopState holds the current shop's offers and reroll counter, present
// only while Phase == PhaseShop.
type ShopState struct {
	Offers      []ShopOffer
	RerollsDone int
	Reentered   bool
}

// PendingPack is an opened booster pack awaiting choose_pack_options/
// skip_pack. Kind is "joker" or "consumable", selecting which acquire path
// ChoosePackOptions routes each chosen option through.
type PendingPack struct {
	PackID  string
	Kind    string
	Options []string
	Picks   int
}

// ScoreTraceEntry records one contributor to a hand's final chips/mult,
// for the "ordered trace of every effect" spec §1 requires.
type ScoreTraceEntry struct {
	SourceID string
	Op       string
	Chips    int
	Mult     float64
}

// RunState is the single mutable aggregate spec §3 describes. Every
// exposed engine method takes *RunState and mutates it in place;
// ownership is single-threaded/exclusive per spec §5 (no internal
// locking).
type RunState struct {
	Config    *content.Config
	Content   *content.CompiledContent
	Diag      *diag.Sink
	HandTable *classify.Table

	RNG   *values.RNG
	Deck  *values.Deck
	Hand  []values.Card

	Inventory Inventory
	Money     int

	Ante      int
	Blind     BlindKind
	Phase     Phase
	HandsLeft int
	HandsMax  int

	DiscardsLeft int
	DiscardsMax  int

	HandSizeBase int
	Target       int
	BlindScore   int

	OrderedTags        []string
	ActiveVouchers     []string
	RoundHandTypes     map[string]bool
	RoundHandLock      bool
	RoundLockedHand    string
	HandPlayCounts     map[string]int
	HandLevels         map[string]int
	PlayedCardIDs      map[uint32]bool
	LastHand           string
	LastConsumable     string
	BossID             string

	Rules *rules.Store
	Hooks *hooks.Registry

	Shop        *ShopState
	PendingPack *PendingPack

	CopyDepth          int
	CopyStack          []string
	JokerAcquireDepth  int
	BossDisabled       bool
	BossDisablePending bool
	LastScoreTrace     []ScoreTraceEntry

	Events []Event
}

// NewRun constructs a fresh RunState seeded deterministically, with a full,
// unshuffled standard deck and an empty hand (Setup phase - callers call
// StartBlind to shuffle and actually deal).
func NewRun(seed int64, cfg *content.Config, c *content.CompiledContent, sink *diag.Sink) *RunState {
	if sink == nil {
		sink = diag.NewDiscardSink()
	}
	return &RunState{
		Config:         cfg,
		Content:        c,
		Diag:           sink,
		HandTable:      buildHandTable(cfg),
		RNG:            values.NewRNG(seed),
		Deck:           values.NewStandardDeck(),
		Money:          4,
		Ante:           1,
		Blind:          SmallBlind,
		Phase:          PhaseSetup,
		HandSizeBase:   7,
		Inventory:      Inventory{JokerSlots: 5, ConsumableSlots: 2},
		RoundHandTypes: make(map[string]bool),
		HandPlayCounts: make(map[string]int),
		HandLevels:     make(map[string]int),
		PlayedCardIDs:  make(map[uint32]bool),
		Rules:          rules.NewStore(),
		Hooks:          hooks.NewRegistry(),
	}
}

// newInstanceID mints a fresh joker/consumable instance id.
func newInstanceID() string {
	return uuid.NewString()
}
