package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/numeronym"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/report"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// SaveResult stores res, replacing any paths archived earlier for the same
// number, and returns the number's id. Every tied word of a span is kept.
// Call it inside a transaction or use Archive.Save.
func SaveResult(db DBExecutor, res numeronym.Result, ix *lexicon.Index) (int64, error) {
	if res.Number.Raw == "" {
		return 0, fmt.Errorf("number must be non-empty")
	}

	var id int64
	err := db.QueryRow(
		`INSERT INTO numbers (number, area_code, digits) VALUES (?, ?, ?)
		 ON CONFLICT(number) DO UPDATE SET solved_at = CURRENT_TIMESTAMP
		 RETURNING id`,
		res.Number.Raw, res.Number.AreaCode, res.Number.Digits,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert number: %w", err)
	}

	if _, err := db.Exec(`DELETE FROM spans WHERE path_id IN (SELECT id FROM paths WHERE number_id = ?)`, id); err != nil {
		return 0, fmt.Errorf("clear spans: %w", err)
	}
	if _, err := db.Exec(`DELETE FROM paths WHERE number_id = ?`, id); err != nil {
		return 0, fmt.Errorf("clear paths: %w", err)
	}

	for i, p := range res.Paths {
		r, err := db.Exec(`INSERT INTO paths (number_id, position) VALUES (?, ?)`, id, i)
		if err != nil {
			return 0, fmt.Errorf("insert path %d: %w", i, err)
		}
		pathID, err := r.LastInsertId()
		if err != nil {
			return 0, err
		}
		for j, words := range report.Expand(ix, p, 0) {
			_, err := db.Exec(
				`INSERT INTO spans (path_id, position, length, words) VALUES (?, ?, ?, ?)`,
				pathID, j, p[j].Length, strings.Join(words, " "),
			)
			if err != nil {
				return 0, fmt.Errorf("insert span %d of path %d: %w", j, i, err)
			}
		}
	}
	return id, nil
}

// LoadPaths returns the archived paths of number in discovery order, each as
// the first word of every span. A number never archived yields no paths.
func LoadPaths(db DBExecutor, number string) ([][]string, error) {
	rows, err := db.Query(
		`SELECT p.position, s.words FROM numbers n
		 JOIN paths p ON p.number_id = n.id
		 JOIN spans s ON s.path_id = p.id
		 WHERE n.number = ?
		 ORDER BY p.position, s.position`,
		number,
	)
	if err != nil {
		return nil, fmt.Errorf("query paths: %w", err)
	}
	defer rows.Close()

	var (
		paths [][]string
		last  = -1
	)
	for rows.Next() {
		var (
			pos   int
			words string
		)
		if err := rows.Scan(&pos, &words); err != nil {
			return nil, err
		}
		if pos != last {
			paths = append(paths, nil)
			last = pos
		}
		first, _, _ := strings.Cut(words, " ")
		paths[len(paths)-1] = append(paths[len(paths)-1], first)
	}
	return paths, rows.Err()
}

// CountPaths returns how many paths are archived for number.
func CountPaths(db DBExecutor, number string) (int, error) {
	var n int
	err := db.QueryRow(
		`SELECT COUNT(p.id) FROM numbers n JOIN paths p ON p.number_id = n.id WHERE n.number = ?`,
		number,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count paths: %w", err)
	}
	return n, nil
}

// Archive writes whole batches of results.
type Archive struct {
	db *sql.DB
	ix *lexicon.Index
}

// NewArchive wraps an initialised database. ix must be the lexicon the
// results were solved against.
func NewArchive(db *sql.DB, ix *lexicon.Index) *Archive {
	return &Archive{db: db, ix: ix}
}

// Save stores results in one transaction; either all of them are archived or none.
func (a *Archive) Save(ctx context.Context, results ...numeronym.Result) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, res := range results {
		if _, err := SaveResult(tx, res, a.ix); err != nil {
			return fmt.Errorf("archive %s: %w", res.Number.Raw, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive (%d numbers): %w", len(results), err)
	}
	return nil
}
