package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Schema devuelve el DDL embebido (idempotente).
func Schema() string { return schemaSQL }

// ApplySchema crea las tablas si no existen. Sin argumentos, pgx usa el protocolo simple
// y acepta varias sentencias en un solo Exec.
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
