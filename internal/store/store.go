package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ukydev/garage-service/internal/models"
)

// ErrStore marks an underlying persistence read/write failure. It is fatal
// for the request that hit it.
var ErrStore = errors.New("document store failure")

// DocumentStore is the sole persistence primitive: the whole application
// document is loaded, mutated in memory, and written back in full.
type DocumentStore interface {
	// Load returns a snapshot of the full document. A store that has never
	// been written returns an empty initialized document.
	Load(ctx context.Context) (*models.Document, error)

	// Save overwrites the full document.
	Save(ctx context.Context, doc *models.Document) error

	// Update runs mutate inside a serialized read-modify-write cycle. If
	// mutate returns an error nothing is saved, so a rejected mutation never
	// leaves partial state behind. Serialization removes the lost-update
	// race between two requests writing the same document.
	Update(ctx context.Context, mutate func(doc *models.Document) error) error
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
