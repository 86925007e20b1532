package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tmcybertech/portal-api/src/database"
	"github.com/tmcybertech/portal-api/src/resources"
)

// Generic CRUD over a resource descriptor. Every operation issues exactly one
// statement against the caller's request-scoped connection; the secret-aware
// update picks its column list before execution and still runs one UPDATE.

// List returns all rows for the resource, newest first. An empty table is a
// valid empty slice, never nil.
func List(ctx context.Context, q database.Querier, d *resources.Descriptor) ([]map[string]any, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", d.Select, d.From, d.OrderBy)
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

// Get returns the single row matching id, or ErrNotFound
func Get(ctx context.Context, q database.Querier, d *resources.Descriptor, id string) (map[string]any, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", d.Select, d.From, d.IDRef)
	rows, err := q.Query(ctx, sql, id)
	if err != nil {
		return nil, err
	}
	result, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

// Create validates the required fields, hashes any secret field, and inserts
// one row, returning it with secrets omitted.
func Create(ctx context.Context, q database.Querier, d *resources.Descriptor, body map[string]any) (map[string]any, error) {
	if err := requireFields(body, d.CreateFields); err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(d.CreateFields))
	placeholders := make([]string, 0, len(d.CreateFields))
	args := make([]any, 0, len(d.CreateFields))

	for _, field := range d.CreateFields {
		value := body[field]
		column := field
		if secret, ok := d.HasSecret(field); ok {
			plaintext, ok := value.(string)
			if !ok {
				return nil, ErrMissingFields
			}
			hash, err := HashPassword(plaintext)
			if err != nil {
				return nil, err
			}
			column = secret.Column
			value = hash
		}
		columns = append(columns, column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)+1))
		args = append(args, value)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		d.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), d.Returning)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	result, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, errors.New("insert returned no row")
	}
	return result[0], nil
}

// Update rewrites all writable fields of the row matching id. Secret fields
// follow partial-update semantics: a supplied non-empty plaintext is hashed
// and replaces the stored value, otherwise the stored secret is untouched.
func Update(ctx context.Context, q database.Querier, d *resources.Descriptor, id string, body map[string]any) (map[string]any, error) {
	if err := requireFields(body, d.UpdateFields); err != nil {
		return nil, err
	}

	set := make([]string, 0, len(d.UpdateFields)+len(d.Secrets))
	args := make([]any, 0, len(d.UpdateFields)+len(d.Secrets)+1)

	for _, field := range d.UpdateFields {
		args = append(args, body[field])
		set = append(set, fmt.Sprintf("%s = $%d", field, len(args)))
	}

	for _, secret := range d.Secrets {
		plaintext, ok := body[secret.JSONKey].(string)
		if !ok || plaintext == "" {
			continue
		}
		hash, err := HashPassword(plaintext)
		if err != nil {
			return nil, err
		}
		args = append(args, hash)
		set = append(set, fmt.Sprintf("%s = $%d", secret.Column, len(args)))
	}

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		d.Table, strings.Join(set, ", "), d.IDColumn, len(args), d.Returning)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	result, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

// Delete removes the row matching id. ErrNotFound when nothing matched;
// repeating a delete keeps returning ErrNotFound.
func Delete(ctx context.Context, q database.Querier, d *resources.Descriptor, id string) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 RETURNING %s", d.Table, d.IDColumn, d.IDColumn)

	var deleted any
	err := q.QueryRow(ctx, sql, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// requireFields rejects the body when any required field is absent or empty.
// null, "", false and 0 all count as missing, not just absent keys.
func requireFields(body map[string]any, fields []string) error {
	for _, field := range fields {
		if !isPresent(body[field]) {
			return ErrMissingFields
		}
	}
	return nil
}

func isPresent(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	case float64:
		return value != 0
	default:
		return true
	}
}
