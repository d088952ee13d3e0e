// Package schema executes a plain SQL schema script statement by statement.
// It backs the one-time setup tool (cmd/setup) used against hosted databases
// where running a migration binary is not an option: the script is cleaned of
// comments, split on semicolons, and applied in order, treating "object
// already exists" failures as a no-op so re-running the tool is safe.
package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlstateDuplicateTable is the Postgres error code for "relation already
// exists" (42P07), raised when a CREATE names an object from a previous run.
const sqlstateDuplicateTable = "42P07"

// Execer is the single database capability Apply needs. *pgx.Conn,
// pgx.Tx, and *pgxpool.Pool all satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Result reports what Apply did with the script.
type Result struct {
	// Applied is the number of statements that executed successfully.
	Applied int
	// Skipped is the number of statements rejected with an
	// "already exists" error and treated as no-ops.
	Skipped int
}

// Apply runs every statement of script against db in order. Statements that
// fail because the object already exists are skipped; the first other
// failure aborts the remaining statements and is returned with the
// statement's position.
func Apply(ctx context.Context, db Execer, script string) (Result, error) {
	var res Result

	statements := Split(script)
	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			if IsAlreadyExists(err) {
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("schema.Apply: statement %d/%d: %w", i+1, len(statements), err)
		}
		res.Applied++
	}

	return res, nil
}

// Split cleans a SQL script and cuts it into executable statements:
// full-line and trailing "--" comments are removed, then the remainder is
// split on semicolons. Semicolons inside dollar-quoted bodies ($$ ... $$)
// do not split, so trigger functions survive intact. Fragments too short to
// be a statement are dropped.
func Split(script string) []string {
	var cleaned []string
	for _, line := range strings.Split(script, "\n") {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	text := strings.Join(cleaned, "\n")

	var statements []string
	var cur strings.Builder
	inDollar := false
	for i := 0; i < len(text); i++ {
		if strings.HasPrefix(text[i:], "$$") {
			inDollar = !inDollar
			cur.WriteString("$$")
			i++
			continue
		}
		if text[i] == ';' && !inDollar {
			appendStatement(&statements, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(text[i])
	}
	appendStatement(&statements, cur.String())

	return statements
}

// appendStatement trims a raw fragment and keeps it if it looks like SQL.
func appendStatement(statements *[]string, raw string) {
	stmt := strings.TrimSpace(raw)
	if len(stmt) < 5 {
		return
	}
	*statements = append(*statements, stmt)
}

// IsAlreadyExists reports whether err means the statement's target object
// was created by a previous run: either the Postgres duplicate-table code
// or an "already exists"/"duplicate" message from the server.
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlstateDuplicateTable {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate")
}
