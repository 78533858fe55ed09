package pricing

import (
	"github.com/flexprice/rates/internal/domain/discountbyday"
	"github.com/flexprice/rates/internal/domain/factor"
	"github.com/flexprice/rates/internal/domain/price"
	"github.com/flexprice/rates/internal/domain/pricedefinition"
	"github.com/flexprice/rates/internal/domain/season"
)

// Snapshot is the resolved configuration of one price definition. Optional
// sub-definitions are nil when the definition does not reference them.
// A snapshot must not be mutated once handed to a Calculator.
type Snapshot struct {
	Definition     *pricedefinition.PriceDefinition
	Seasons        *season.Definition
	Factors        *factor.Definition
	DiscountsByDay *discountbyday.Definition
	Prices         *price.Table
}
