package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex season_01HZX3N6M1Q2J9Y0V7A8B5C4D3
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	UUID_PREFIX_PRICE_DEFINITION           = "pdef"
	UUID_PREFIX_PRICE                      = "price"
	UUID_PREFIX_SEASON_DEFINITION          = "sdef"
	UUID_PREFIX_SEASON                     = "season"
	UUID_PREFIX_FACTOR_DEFINITION          = "fdef"
	UUID_PREFIX_FACTOR                     = "factor"
	UUID_PREFIX_DISCOUNT_BY_DAY_DEFINITION = "dbdef"
	UUID_PREFIX_DISCOUNT_BY_DAY            = "dbd"
	UUID_PREFIX_PROMOTION_CODE             = "promo"
	UUID_PREFIX_DISCOUNT                   = "disc"
)
