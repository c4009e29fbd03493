package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"github.com/google/uuid"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func nowString(now time.Time) string {
	return now.UTC().Format(entities.TimestampLayout)
}

// prepareCreate copies the record, assigns an id when missing and stamps
// both timestamps.
func prepareCreate(record entities.Record, now time.Time) entities.Record {
	rec := record.Clone()
	if rec == nil {
		rec = entities.Record{}
	}
	if id, ok := rec[entities.FieldID].(string); !ok || strings.TrimSpace(id) == "" {
		rec[entities.FieldID] = uuid.NewString()
	}
	ts := nowString(now)
	rec[entities.FieldCreatedDate] = ts
	rec[entities.FieldUpdatedDate] = ts
	return rec
}

// prepareUpdate drops store-managed fields from a partial record and stamps
// updated_date.
func prepareUpdate(partial entities.Record, now time.Time) entities.Record {
	rec := partial.Clone()
	if rec == nil {
		rec = entities.Record{}
	}
	delete(rec, entities.FieldID)
	delete(rec, entities.FieldCreatedDate)
	rec[entities.FieldUpdatedDate] = nowString(now)
	return rec
}

func mergeRecord(existing, partial entities.Record) entities.Record {
	out := existing.Clone()
	if out == nil {
		out = entities.Record{}
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

type uniqueClaim struct {
	Collection entities.CollectionName
	Field      string
	Value      string
}

func (c uniqueClaim) Key() string {
	return fmt.Sprintf("%s#%s#%s", c.Collection, c.Field, c.Value)
}

func claimConflict(field, owner string) error {
	return fmt.Errorf("%w: %s held by %s", interfaces.ErrUniqueConflict, field, owner)
}

// planClaims returns the unique-field claims a write has to take.
// existing is nil on create. Changing or clearing a claimed value is rejected.
func planClaims(collection entities.CollectionName, existing, incoming entities.Record) ([]uniqueClaim, error) {
	var claims []uniqueClaim
	for _, field := range entities.UniqueFields(collection) {
		raw, present := incoming[field]
		if !present {
			continue
		}
		newVal, hasNew := entities.UniqueValue(raw)
		oldVal, hasOld := entities.UniqueValue(existing[field])
		if hasOld {
			if !hasNew || newVal != oldVal {
				return nil, fmt.Errorf("%s is immutable once set", field)
			}
			continue
		}
		if hasNew {
			claims = append(claims, uniqueClaim{Collection: collection, Field: field, Value: newVal})
		}
	}
	return claims, nil
}

// claimsOf lists the claims currently held by a stored record.
func claimsOf(collection entities.CollectionName, rec entities.Record) []uniqueClaim {
	var claims []uniqueClaim
	for _, field := range entities.UniqueFields(collection) {
		if v, ok := entities.UniqueValue(rec[field]); ok {
			claims = append(claims, uniqueClaim{Collection: collection, Field: field, Value: v})
		}
	}
	return claims
}

func matchesCriteria(rec entities.Record, criteria map[string]any) bool {
	for field, want := range criteria {
		got, ok := rec[field]
		if !ok {
			if want != nil {
				return false
			}
			continue
		}
		if !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(normalizeJSON(a), normalizeJSON(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// normalizeJSON rewrites values into the shapes produced by decoding JSON:
// numbers become float64, slices []any, nested maps map[string]any.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeJSON(vv)
		}
		return out
	case entities.Record:
		return normalizeJSON(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizeJSON(vv)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = vv
		}
		return out
	default:
		if f, ok := toFloat(v); ok {
			return f
		}
		return v
	}
}

func normalizeRecord(rec entities.Record) entities.Record {
	if rec == nil {
		return nil
	}
	out := make(entities.Record, len(rec))
	for k, v := range rec {
		out[k] = normalizeJSON(v)
	}
	return out
}

// sortRecords orders records in place by spec. An empty spec keeps the
// incoming order.
func sortRecords(recs []entities.Record, spec entities.SortSpec) {
	field := spec.Field()
	if field == "" {
		return
	}
	desc := spec.Descending()
	sort.SliceStable(recs, func(i, j int) bool {
		c := compareValues(recs[i][field], recs[j][field])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func applyLimit(recs []entities.Record, limit int) []entities.Record {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

func storeErr(kind error, collection entities.CollectionName, op string, err error) error {
	return interfaces.NewStoreError(kind, collection, op, err)
}

// checkCollection rejects names outside the collection enum with kind.
func checkCollection(collection entities.CollectionName, op string, kind error) error {
	if !collection.Valid() {
		return storeErr(kind, collection, op, fmt.Errorf("unknown collection"))
	}
	return nil
}
