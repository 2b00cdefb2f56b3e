package store

import (
	"fmt"
	"strings"

	"github.com/ctoks/ctoks/internal/emit"
)

func tableForRole(role emit.Role) (string, error) {
	switch role {
	case emit.Ref:
		return "refs", nil
	case emit.Def:
		return "defs", nil
	case emit.Decl:
		return "decls", nil
	}
	return "", fmt.Errorf("unknown role %q", role)
}

// InsertEntries writes one file's occurrence rows. Call inside
// WithTransaction so the whole file lands atomically.
func (s *Store) InsertEntries(fileID int64, entries []emit.Entry) error {
	for _, e := range entries {
		table, err := tableForRole(e.Role)
		if err != nil {
			return err
		}
		_, err = s.q.Exec(
			`INSERT INTO `+table+` (file_id, line, col_start, col_end, scope, entity, identifier)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			fileID, e.Line, e.ColStart, e.ColEnd, e.Scope, string(e.Entity), e.Identifier)
		if err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}

// LookupRow is one identifier lookup result.
type LookupRow struct {
	Path       string
	Line       int
	ColStart   int
	ColEnd     int
	Scope      string
	Entity     string
	Role       emit.Role
	Identifier string
}

// Lookup finds occurrences by identifier pattern ('?' and '*'
// wildcards) for the given role.
func (s *Store) Lookup(pattern string, role emit.Role) ([]LookupRow, error) {
	table, err := tableForRole(role)
	if err != nil {
		return nil, err
	}

	query := `SELECT f.path, e.line, e.col_start, e.col_end, e.scope, e.entity, e.identifier
		FROM ` + table + ` e JOIN files f ON f.id = e.file_id WHERE e.identifier `
	var arg string
	if strings.ContainsAny(pattern, "*?") {
		query += `GLOB ?`
		arg = pattern
	} else {
		query += `= ?`
		arg = pattern
	}
	query += ` ORDER BY f.path, e.line, e.col_start`

	rows, err := s.q.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", table, err)
	}
	defer rows.Close()

	var out []LookupRow
	for rows.Next() {
		r := LookupRow{Role: role}
		if err := rows.Scan(&r.Path, &r.Line, &r.ColStart, &r.ColEnd,
			&r.Scope, &r.Entity, &r.Identifier); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountEntries returns the row count per role table.
func (s *Store) CountEntries() (refs, defs, decls int, err error) {
	if err = s.q.QueryRow(`SELECT COUNT(*) FROM refs`).Scan(&refs); err != nil {
		return
	}
	if err = s.q.QueryRow(`SELECT COUNT(*) FROM defs`).Scan(&defs); err != nil {
		return
	}
	err = s.q.QueryRow(`SELECT COUNT(*) FROM decls`).Scan(&decls)
	return
}
