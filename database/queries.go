package database // import "github.com/imgmeta/exifd/database"

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNoExtractionFound is returned when no extraction record
	// matches a lookup
	ErrNoExtractionFound = errors.New("no extraction record found in database")
)

// An ExtractionRecord is the audit trail of a single extraction
// operation. It intentionally carries no field values, only the digest
// of the input and counters, so the audit log never stores image
// metadata on behalf of clients.
type ExtractionRecord struct {
	ID         string
	UserID     string
	Digest     string
	Format     string
	FieldCount int
	CacheHit   bool
	ProcTimeMs int64
	CreatedAt  time.Time
}

// InsertExtraction records an extraction operation. A record ID is
// generated when the caller did not provide one.
func (db *Handler) InsertExtraction(rec ExtractionRecord) (id string, err error) {
	id = rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err = db.Exec(`INSERT INTO extractions(id, user_id, digest, format, field_count, cache_hit, proc_time_ms)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, rec.UserID, rec.Digest, rec.Format, rec.FieldCount, rec.CacheHit, rec.ProcTimeMs)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert extraction record in database")
	}
	return id, nil
}

// GetExtractionsByDigest returns the audit records of past extractions
// of the input with the given sha256 digest, most recent first
func (db *Handler) GetExtractionsByDigest(digest string, limit int) (recs []ExtractionRecord, err error) {
	rows, err := db.Query(`SELECT id, user_id, digest, format, field_count, cache_hit, proc_time_ms, created_at
				FROM extractions WHERE digest=$1
				ORDER BY created_at DESC LIMIT $2`, digest, limit)
	if err == sql.ErrNoRows {
		return nil, ErrNoExtractionFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query extraction records")
	}
	defer rows.Close()
	for rows.Next() {
		var rec ExtractionRecord
		err = rows.Scan(&rec.ID, &rec.UserID, &rec.Digest, &rec.Format,
			&rec.FieldCount, &rec.CacheHit, &rec.ProcTimeMs, &rec.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan extraction record")
		}
		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating over extraction records")
	}
	if len(recs) == 0 {
		return nil, ErrNoExtractionFound
	}
	return recs, nil
}

// CountExtractions returns the number of extractions recorded since
// the given time, for monitoring
func (db *Handler) CountExtractions(since time.Time) (count uint64, err error) {
	err = db.QueryRow(`SELECT COUNT(*) FROM extractions WHERE created_at > $1`,
		since).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count extraction records")
	}
	return count, nil
}

// PruneExtractions deletes audit records older than the given age and
// returns how many were removed
func (db *Handler) PruneExtractions(olderThan time.Duration) (removed int64, err error) {
	cutoff := time.Now().Add(-olderThan)
	res, err := db.Exec(`DELETE FROM extractions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune extraction records")
	}
	removed, err = res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pruned extraction records")
	}
	return removed, nil
}
