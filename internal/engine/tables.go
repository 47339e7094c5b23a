package engine

import (
	"github.com/kevinmchugh/anteforge/internal/classify"
	"github.com/kevinmchugh/anteforge/internal/content"
	"github.com/kevinmchugh/anteforge/internal/expr"
	"github.com/kevinmchugh/anteforge/internal/values"
)

// buildHandTable turns a loaded Config's HandBase rows (snake_case keys,
// e.g. "royal_flush") into a classify.Table, whose rows are keyed by
// BuiltinHand.String()'s display form ("Royal Flush"). Config entries are
// matched by normalized name so content authors never need to know the
// classifier's internal key spelling; an entry matching no known hand is
// dropped, falling back to classify.DefaultTable()'s row for that hand.
func buildHandTable(cfg *content.Config) *classify.Table {
	t := classify.DefaultTable()
	if cfg == nil {
		return t
	}

	byNormalized := make(map[string]string, int(values.FlushFive)+1)
	for kind := values.HighCard; kind <= values.FlushFive; kind++ {
		byNormalized[expr.NormalizeString(kind.String())] = kind.String()
	}

	for name, row := range cfg.HandBase {
		display, ok := byNormalized[expr.NormalizeString(name)]
		if !ok {
			continue
		}
		t.Put(display, classify.HandScore{
			BaseChips:  row.Chips,
			BaseMult:   row.Mult,
			ChipsDelta: row.ChipsDelta,
			MultDelta:  row.MultDelta,
		})
	}
	return t
}
