package interfaces

import (
	"context"

	"intake_dossier/internal/domain/entities"
)

// IRecordStore abstracts typed CRUD access to named record collections.
//
// Backends (DynamoDB, SQL, memory) must:
//   - assign id and created_date/updated_date on Create
//   - enforce entities.UniqueFields per collection (WriteError on conflict)
//   - merge partial fields on Update and fail with NotFound for unknown ids
//
// Errors wrap ErrNotFound, ErrWrite or ErrStoreUnavailable. Nothing retries.
type IRecordStore interface {
	List(ctx context.Context, collection entities.CollectionName, sort entities.SortSpec) ([]entities.Record, error)
	Filter(ctx context.Context, collection entities.CollectionName, criteria map[string]any, sort entities.SortSpec, limit int) ([]entities.Record, error)
	Create(ctx context.Context, collection entities.CollectionName, record entities.Record) (entities.Record, error)
	Update(ctx context.Context, collection entities.CollectionName, id string, partial entities.Record) (entities.Record, error)
	Delete(ctx context.Context, collection entities.CollectionName, id string) error
}
