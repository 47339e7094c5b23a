package content

// VoucherEffect is the closed enum of what a voucher does on purchase,
// named directly from spec §3's Vouchers list.
type VoucherEffect string

const (
	AddShopCardSlots      VoucherEffect = "add_shop_card_slots"
	AddTarotWeight        VoucherEffect = "add_tarot_weight"
	AddPlanetWeight       VoucherEffect = "add_planet_weight"
	ReduceRerollBase      VoucherEffect = "reduce_reroll_base"
	SetShopDiscountPercent VoucherEffect = "set_shop_discount_percent"
	AddHandsPerRound      VoucherEffect = "add_hands_per_round"
	AddDiscardsPerRound   VoucherEffect = "add_discards_per_round"
	AddConsumableSlots    VoucherEffect = "add_consumable_slots"
	AddJokerSlots         VoucherEffect = "add_joker_slots"
	AddHandSizeBase       VoucherEffect = "add_hand_size_base"
)

// Voucher is one catalog entry: id, display name, effect kind and its
// magnitude (a fraction of the price for SetShopDiscountPercent, so 0.25
// means 25% off; a flat delta otherwise).
type Voucher struct {
	ID          string
	Name        string
	Description string
	Effect      VoucherEffect
	Magnitude   float64
}

// Vouchers is the static, immutable voucher catalog - spec §5's one
// sanctioned process-wide global, since every run reads the identical
// table and nothing ever mutates it. Grounded on spec §3's voucher-effect
// enum list; magnitudes follow the teacher's reroll/hand-size/discard
// deltas (internal/game/jokers.go's AddHandSize/AddDiscards effect shape)
// scaled to the one-time voucher-purchase context instead of a per-joker
// repeatable effect.
var Vouchers = map[string]Voucher{
	"overstock": {
		ID: "overstock", Name: "Overstock", Effect: AddShopCardSlots, Magnitude: 1,
		Description: "+1 card slot in the shop.",
	},
	"tarot_tycoon": {
		ID: "tarot_tycoon", Name: "Tarot Tycoon", Effect: AddTarotWeight, Magnitude: 0.15,
		Description: "Tarot cards appear more often in the shop.",
	},
	"planet_merchant": {
		ID: "planet_merchant", Name: "Planet Merchant", Effect: AddPlanetWeight, Magnitude: 0.15,
		Description: "Planet cards appear more often in the shop.",
	},
	"reroll_surplus": {
		ID: "reroll_surplus", Name: "Reroll Surplus", Effect: ReduceRerollBase, Magnitude: 2,
		Description: "Rerolls cost $2 less.",
	},
	"clearance_sale": {
		ID: "clearance_sale", Name: "Clearance Sale", Effect: SetShopDiscountPercent, Magnitude: 0.25,
		Description: "All shop items are 25% off.",
	},
	"paint_brush": {
		ID: "paint_brush", Name: "Paint Brush", Effect: AddHandsPerRound, Magnitude: 1,
		Description: "+1 hand per round.",
	},
	"grabber": {
		ID: "grabber", Name: "Grabber", Effect: AddDiscardsPerRound, Magnitude: 1,
		Description: "+1 discard per round.",
	},
	"crystal_ball": {
		ID: "crystal_ball", Name: "Crystal Ball", Effect: AddConsumableSlots, Magnitude: 1,
		Description: "+1 consumable slot.",
	},
	"antimatter": {
		ID: "antimatter", Name: "Antimatter", Effect: AddJokerSlots, Magnitude: 1,
		Description: "+1 joker slot.",
	},
	"nacho_tong": {
		ID: "nacho_tong", Name: "Nacho Tong", Effect: AddHandSizeBase, Magnitude: 1,
		Description: "+1 hand size.",
	},
}
