package store

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// PrepareForFile registers path with its digest and reports whether the
// file needs analysis. An unchanged digest short-circuits; a changed
// one updates the digest and prunes the file's old rows.
func (s *Store) PrepareForFile(path, digest string) (needed bool, fileID int64, err error) {
	var stored string
	err = s.q.QueryRow(`SELECT id, digest FROM files WHERE path=?`, path).
		Scan(&fileID, &stored)
	switch {
	case err == sql.ErrNoRows:
		res, insErr := s.q.Exec(`INSERT INTO files (path, digest) VALUES (?, ?)`, path, digest)
		if insErr != nil {
			return false, 0, fmt.Errorf("insert file: %w", insErr)
		}
		fileID, err = res.LastInsertId()
		if err != nil {
			return false, 0, err
		}
		return true, fileID, nil
	case err != nil:
		return false, 0, fmt.Errorf("lookup file: %w", err)
	}

	if stored == digest {
		slog.Debug("index.file.skip", "path", path, "digest", digest)
		return false, fileID, nil
	}

	if _, err = s.q.Exec(`UPDATE files SET digest=? WHERE id=?`, digest, fileID); err != nil {
		return false, 0, fmt.Errorf("update digest: %w", err)
	}
	if err = s.pruneEntries(fileID); err != nil {
		return false, 0, err
	}
	return true, fileID, nil
}

// pruneEntries drops all occurrence rows for one file.
func (s *Store) pruneEntries(fileID int64) error {
	for _, table := range []string{"refs", "defs", "decls"} {
		if _, err := s.q.Exec(`DELETE FROM `+table+` WHERE file_id=?`, fileID); err != nil {
			return fmt.Errorf("prune %s: %w", table, err)
		}
	}
	return nil
}

// ListFiles returns every indexed path.
func (s *Store) ListFiles() ([]string, error) {
	rows, err := s.q.Query(`SELECT path FROM files ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()
	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// RemoveFile drops a file and (via cascade) its occurrence rows.
func (s *Store) RemoveFile(path string) error {
	if _, err := s.q.Exec(`DELETE FROM files WHERE path=?`, path); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// PruneMissing removes index rows for files the callback rejects
// (typically: files no longer on disk). Returns how many were removed.
func (s *Store) PruneMissing(exists func(path string) bool) (int, error) {
	paths, err := s.ListFiles()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, p := range paths {
		if exists(p) {
			continue
		}
		if err := s.RemoveFile(p); err != nil {
			return removed, err
		}
		slog.Info("index.file.pruned", "path", p)
		removed++
	}
	return removed, nil
}
