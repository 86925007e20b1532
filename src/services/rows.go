package services

import (
	"github.com/jackc/pgx/v5"
)

// collectRows drains rows into JSON-ready maps keyed by column name. The
// generic handler and the raw query gateway both return rows this way, like
// the driver's own row objects, rather than through per-resource structs.
func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := make([]map[string]any, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
