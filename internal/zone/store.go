package zone

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) tx(ctx context.Context, txFunc func(*sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	if err := txFunc(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("err: %w, rbErr: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// SelectActive reads the active zones in their stable snapshot order
// and converts them into matcher zones. Rows whose sub-area document
// cannot be decoded are returned as an error; a zone that decodes but
// holds unusable geofence data is kept and left to the matcher's
// eligibility rule.
func (s *Store) SelectActive(ctx context.Context) ([]Zone, error) {
	collection := EntityCollection{}
	if err := collection.SelectActive(ctx, s.DB); err != nil {
		return nil, fmt.Errorf("selecting active zones: %w", err)
	}

	zones := make([]Zone, 0, len(collection))
	for i := range collection {
		z, err := collection[i].ToZone()
		if err != nil {
			return nil, err
		}

		zones = append(zones, z)
	}

	return zones, nil
}

// InsertZoneTx writes a zone row. A zone arriving without an id is
// assigned one. Used by seeding and by tests; the admin tool owns all
// other writes.
func (s *Store) InsertZoneTx(ctx context.Context, e Entity) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	return s.tx(ctx, func(tx *sql.Tx) error {
		_, err := e.Insert(ctx, tx)
		return err
	})
}
