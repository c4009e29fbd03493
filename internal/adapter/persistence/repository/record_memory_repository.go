package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// RecordMemoryRepository keeps every collection in process memory.
//
// Records are stored as JSON-decoded copies so callers observe the same value
// shapes as with the remote backends, and mutating a returned record never
// touches stored state.
type RecordMemoryRepository struct {
	mu     sync.RWMutex
	rows   map[entities.CollectionName]map[string]entities.Record
	order  map[entities.CollectionName][]string
	claims map[string]string
	now    func() time.Time
	logger *zap.Logger
}

var _ interfaces.IRecordStore = (*RecordMemoryRepository)(nil)

func NewRecordMemoryRepository(logger *zap.Logger) *RecordMemoryRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordMemoryRepository{
		rows:   map[entities.CollectionName]map[string]entities.Record{},
		order:  map[entities.CollectionName][]string{},
		claims: map[string]string{},
		now:    time.Now,
		logger: logger,
	}
}

// WithClock replaces the timestamp source, for tests.
func (r *RecordMemoryRepository) WithClock(now func() time.Time) *RecordMemoryRepository {
	r.now = now
	return r
}

func (r *RecordMemoryRepository) List(ctx context.Context, collection entities.CollectionName, sort entities.SortSpec) ([]entities.Record, error) {
	return r.Filter(ctx, collection, nil, sort, 0)
}

func (r *RecordMemoryRepository) Filter(ctx context.Context, collection entities.CollectionName, criteria map[string]any, sort entities.SortSpec, limit int) ([]entities.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr(interfaces.ErrStoreUnavailable, collection, "filter", err)
	}
	if err := checkCollection(collection, "filter", interfaces.ErrNotFound); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]entities.Record, 0)
	for _, id := range r.order[collection] {
		rec := r.rows[collection][id]
		if matchesCriteria(rec, criteria) {
			out = append(out, normalizeRecord(rec))
		}
	}
	r.mu.RUnlock()

	sortRecords(out, sort)
	return applyLimit(out, limit), nil
}

func (r *RecordMemoryRepository) Create(ctx context.Context, collection entities.CollectionName, record entities.Record) (entities.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr(interfaces.ErrStoreUnavailable, collection, "create", err)
	}
	if err := checkCollection(collection, "create", interfaces.ErrWrite); err != nil {
		return nil, err
	}
	rec, err := jsonCopy(prepareCreate(record, r.now()))
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "create", err)
	}
	claims, err := planClaims(collection, nil, rec)
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "create", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := rec.ID()
	if _, exists := r.rows[collection][id]; exists {
		return nil, storeErr(interfaces.ErrWrite, collection, "create", fmt.Errorf("id %s already exists", id))
	}
	for _, c := range claims {
		if owner, taken := r.claims[c.Key()]; taken {
			return nil, storeErr(interfaces.ErrWrite, collection, "create", claimConflict(c.Field, owner))
		}
	}
	for _, c := range claims {
		r.claims[c.Key()] = id
	}
	if r.rows[collection] == nil {
		r.rows[collection] = map[string]entities.Record{}
	}
	r.rows[collection][id] = rec
	r.order[collection] = append(r.order[collection], id)

	r.logger.Debug("[store][memory] create", zap.String("collection", string(collection)), zap.String("id", id))
	return normalizeRecord(rec), nil
}

func (r *RecordMemoryRepository) Update(ctx context.Context, collection entities.CollectionName, id string, partial entities.Record) (entities.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr(interfaces.ErrStoreUnavailable, collection, "update", err)
	}
	if err := checkCollection(collection, "update", interfaces.ErrWrite); err != nil {
		return nil, err
	}
	changes, err := jsonCopy(prepareUpdate(partial, r.now()))
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "update", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[collection][id]
	if !ok {
		return nil, storeErr(interfaces.ErrNotFound, collection, "update", fmt.Errorf("id=%s", id))
	}
	claims, err := planClaims(collection, existing, changes)
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "update", err)
	}
	for _, c := range claims {
		if owner, taken := r.claims[c.Key()]; taken && owner != id {
			return nil, storeErr(interfaces.ErrWrite, collection, "update", claimConflict(c.Field, owner))
		}
	}
	for _, c := range claims {
		r.claims[c.Key()] = id
	}

	merged := mergeRecord(existing, changes)
	r.rows[collection][id] = merged
	return normalizeRecord(merged), nil
}

func (r *RecordMemoryRepository) Delete(ctx context.Context, collection entities.CollectionName, id string) error {
	if err := ctx.Err(); err != nil {
		return storeErr(interfaces.ErrStoreUnavailable, collection, "delete", err)
	}
	if err := checkCollection(collection, "delete", interfaces.ErrWrite); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[collection][id]
	if !ok {
		return storeErr(interfaces.ErrNotFound, collection, "delete", fmt.Errorf("id=%s", id))
	}
	for _, c := range claimsOf(collection, existing) {
		delete(r.claims, c.Key())
	}
	delete(r.rows[collection], id)
	order := r.order[collection][:0]
	for _, oid := range r.order[collection] {
		if oid != id {
			order = append(order, oid)
		}
	}
	r.order[collection] = order
	return nil
}

// Count returns how many records a collection holds.
func (r *RecordMemoryRepository) Count(collection entities.CollectionName) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows[collection])
}

func jsonCopy(rec entities.Record) (entities.Record, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var out entities.Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
