package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukydev/garage-service/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "garage.json"))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Jobs)
	assert.Empty(t, doc.Parts)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := models.NewDocument()
	doc.Parts = append(doc.Parts, models.Part{ID: "p1", PartName: "Filter", Quantity: 5})
	doc.Users = append(doc.Users, models.User{ID: "u1", Username: "bob", Role: models.RoleMechanic})

	assert.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, doc.Parts, loaded.Parts)
	assert.Equal(t, "bob", loaded.Users[0].Username)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStore(path)
	_, err := s.Load(context.Background())
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)
}

func TestFileStore_UpdateAbortsWithoutSaving(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := models.NewDocument()
	doc.Parts = append(doc.Parts, models.Part{ID: "p1", PartName: "Filter", Quantity: 5})
	assert.NoError(t, s.Save(ctx, doc))

	boom := errors.New("boom")
	err := s.Update(ctx, func(doc *models.Document) error {
		doc.Parts[0].Quantity = 0
		return boom
	})
	assert.Equal(t, boom, err)

	loaded, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5, loaded.Parts[0].Quantity)
}

func TestFileStore_UpdateSerializesMutations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := models.NewDocument()
	doc.Parts = append(doc.Parts, models.Part{ID: "p1", PartName: "Filter", Quantity: 0})
	assert.NoError(t, s.Save(ctx, doc))

	// Concurrent increments must not lose updates.
	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, func(doc *models.Document) error {
				doc.Parts[0].Quantity++
				return nil
			})
		}()
	}
	wg.Wait()

	loaded, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, workers, loaded.Parts[0].Quantity)
}
