package service

import (
	"context"

	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/store"
)

// InventoryService is the parts ledger. Consume is the only mutating entry
// point; there is no restock operation.
type InventoryService struct {
	store store.DocumentStore
}

// NewInventoryService creates a new inventory service
func NewInventoryService(documentStore store.DocumentStore) *InventoryService {
	return &InventoryService{store: documentStore}
}

// Consume decrements a part's stock within the given document and returns
// the updated part. The caller runs it inside a store update so a rejection
// leaves the document untouched.
func (s *InventoryService) Consume(doc *models.Document, partID string, quantity int) (*models.Part, error) {
	part := doc.FindPart(partID)
	if part == nil {
		return nil, notFoundErr("part %s does not exist", partID)
	}
	if part.Quantity < quantity {
		return nil, &InsufficientStockError{PartName: part.PartName, Remaining: part.Quantity}
	}
	part.Quantity -= quantity
	return part, nil
}

// List returns all parts in storage order.
func (s *InventoryService) List(ctx context.Context) ([]models.Part, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Parts, nil
}
