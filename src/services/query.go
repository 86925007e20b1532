package services

import (
	"context"

	"github.com/tmcybertech/portal-api/src/database"
)

// ExecuteRawQuery runs caller-supplied SQL with positional parameters and
// returns the resulting rows verbatim. There is deliberately no statement
// inspection here; the handler layer gates who can reach this at all.
func ExecuteRawQuery(ctx context.Context, q database.Querier, query string, params []any) ([]map[string]any, error) {
	if query == "" {
		return nil, ErrMissingQuery
	}
	if params == nil {
		params = []any{}
	}

	rows, err := q.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}
