package models

// Part represents an inventory line item with a stock count.
// Quantity is mutated only by the inventory ledger's consume operation
// and never goes negative.
type Part struct {
	ID       string `json:"id" bson:"id"`
	PartName string `json:"part_name" bson:"part_name"`
	Quantity int    `json:"quantity" bson:"quantity"`
}
