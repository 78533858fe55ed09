package postgres

import (
	"fmt"

	"github.com/flexprice/rates/internal/types"
)

// listQuery builds a paginated, tenant scoped select over table ordered by
// newest first
func listQuery(table, tenantID string, filter *types.QueryFilter) (string, []interface{}) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE tenant_id = $1 AND status = $2 ORDER BY created_at DESC`, table)
	args := []interface{}{tenantID, filter.GetStatus()}

	if filter.IsUnlimited() {
		return query, args
	}

	query += " LIMIT $3 OFFSET $4"
	args = append(args, filter.GetLimit(), filter.GetOffset())
	return query, args
}
