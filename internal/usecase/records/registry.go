// Package records exposes the record store as one typed client per
// collection, so call sites never spell collection names as strings.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"
)

var ErrUnknownCollection = errors.New("unknown collection")

// Collection is a record store client bound to one collection name.
type Collection struct {
	name  entities.CollectionName
	store interfaces.IRecordStore
}

func (c *Collection) Name() entities.CollectionName { return c.name }

func (c *Collection) List(ctx context.Context, sort entities.SortSpec) ([]entities.Record, error) {
	return c.store.List(ctx, c.name, sort)
}

func (c *Collection) Filter(ctx context.Context, criteria map[string]any, sort entities.SortSpec, limit int) ([]entities.Record, error) {
	return c.store.Filter(ctx, c.name, criteria, sort, limit)
}

// Get fetches a record by identity through an equality filter.
func (c *Collection) Get(ctx context.Context, id string) (entities.Record, error) {
	found, err := c.store.Filter(ctx, c.name, map[string]any{entities.FieldID: id}, "", 1)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, interfaces.NewStoreError(interfaces.ErrNotFound, c.name, "get", fmt.Errorf("id=%s", id))
	}
	return found[0], nil
}

func (c *Collection) Create(ctx context.Context, record entities.Record) (entities.Record, error) {
	return c.store.Create(ctx, c.name, record)
}

func (c *Collection) Update(ctx context.Context, id string, partial entities.Record) (entities.Record, error) {
	return c.store.Update(ctx, c.name, id, partial)
}

func (c *Collection) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}

// Entities is the registry of collection clients used by the use cases.
type Entities struct {
	Submission      *Collection
	DossierAnalysis *Collection
	Content         *Collection
	Theme           *Collection

	byName map[entities.CollectionName]*Collection
}

func New(store interfaces.IRecordStore) *Entities {
	e := &Entities{byName: make(map[entities.CollectionName]*Collection, len(entities.Collections))}
	for _, name := range entities.Collections {
		e.byName[name] = &Collection{name: name, store: store}
	}
	e.Submission = e.byName[entities.CollectionSubmission]
	e.DossierAnalysis = e.byName[entities.CollectionDossierAnalysis]
	e.Content = e.byName[entities.CollectionContent]
	e.Theme = e.byName[entities.CollectionTheme]
	return e
}

func (e *Entities) Collection(name entities.CollectionName) (*Collection, error) {
	c, ok := e.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

// Decode converts a stored record into a typed entity.
func Decode[T any](r entities.Record) (T, error) {
	var out T
	b, err := json.Marshal(r)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(b, &out)
	return out, err
}

// Encode converts a typed entity into a record, dropping omitempty zero values.
func Encode(v any) (entities.Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out entities.Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
