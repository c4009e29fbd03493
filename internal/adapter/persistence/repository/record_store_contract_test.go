package repository

import (
	"context"
	"testing"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
)

// runRecordStoreContract exercises behaviour every IRecordStore backend that
// evaluates queries itself must share.
func runRecordStoreContract(t *testing.T, newStore func(t *testing.T) interfaces.IRecordStore) {
	ctx := context.Background()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		store := newStore(t)
		rec, err := store.Create(ctx, entities.CollectionTheme, entities.Record{"name": "Default"})
		require.NoError(t, err)
		require.NotEmpty(t, rec.ID())
		require.NotEmpty(t, rec.String(entities.FieldCreatedDate))
		require.Equal(t, rec[entities.FieldCreatedDate], rec[entities.FieldUpdatedDate])
	})

	t.Run("filter by id and by field", func(t *testing.T) {
		store := newStore(t)
		a, err := store.Create(ctx, entities.CollectionContent, entities.Record{"key": "hero.title", "is_active": true})
		require.NoError(t, err)
		_, err = store.Create(ctx, entities.CollectionContent, entities.Record{"key": "hero.body", "is_active": false})
		require.NoError(t, err)

		byID, err := store.Filter(ctx, entities.CollectionContent, map[string]any{"id": a.ID()}, "", 1)
		require.NoError(t, err)
		require.Len(t, byID, 1)
		require.Equal(t, "hero.title", byID[0]["key"])

		active, err := store.Filter(ctx, entities.CollectionContent, map[string]any{"is_active": true}, "", 0)
		require.NoError(t, err)
		require.Len(t, active, 1)
		require.Equal(t, a.ID(), active[0].ID())

		none, err := store.Filter(ctx, entities.CollectionContent, map[string]any{"key": "missing"}, "", 0)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("numbers compare by value", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{"current_step": 3})
		require.NoError(t, err)

		got, err := store.Filter(ctx, entities.CollectionSubmission, map[string]any{"current_step": 3}, "", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, float64(3), got[0]["current_step"])
	})

	t.Run("sort and limit", func(t *testing.T) {
		store := newStore(t)
		for _, name := range []string{"b", "c", "a"} {
			_, err := store.Create(ctx, entities.CollectionTheme, entities.Record{"name": name})
			require.NoError(t, err)
		}

		asc, err := store.List(ctx, entities.CollectionTheme, "name")
		require.NoError(t, err)
		require.Equal(t, []any{"a", "b", "c"}, names(asc))

		desc, err := store.Filter(ctx, entities.CollectionTheme, nil, "-name", 2)
		require.NoError(t, err)
		require.Equal(t, []any{"c", "b"}, names(desc))
	})

	t.Run("update merges and keeps identity", func(t *testing.T) {
		store := newStore(t)
		rec, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{"status": "in_progress", "current_step": 1})
		require.NoError(t, err)

		updated, err := store.Update(ctx, entities.CollectionSubmission, rec.ID(), entities.Record{
			"current_step": 2,
			"id":           "hijack",
			"created_date": "1999-01-01",
		})
		require.NoError(t, err)
		require.Equal(t, rec.ID(), updated.ID())
		require.Equal(t, rec[entities.FieldCreatedDate], updated[entities.FieldCreatedDate])
		require.Equal(t, "in_progress", updated["status"])
		require.Equal(t, float64(2), updated["current_step"])
	})

	t.Run("update missing is not found", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Update(ctx, entities.CollectionSubmission, "nope", entities.Record{"status": "x"})
		require.ErrorIs(t, err, interfaces.ErrNotFound)
	})

	t.Run("unique field is enforced", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Create(ctx, entities.CollectionDossierAnalysis, entities.Record{"submission_id": "s1"})
		require.NoError(t, err)

		_, err = store.Create(ctx, entities.CollectionDossierAnalysis, entities.Record{"submission_id": "s1"})
		require.ErrorIs(t, err, interfaces.ErrWrite)
		require.ErrorIs(t, err, interfaces.ErrUniqueConflict)

		got, err := store.Filter(ctx, entities.CollectionDossierAnalysis, map[string]any{"submission_id": "s1"}, "", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("unique field is immutable once set", func(t *testing.T) {
		store := newStore(t)
		rec, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{"access_code": "AAA"})
		require.NoError(t, err)

		_, err = store.Update(ctx, entities.CollectionSubmission, rec.ID(), entities.Record{"access_code": "BBB"})
		require.ErrorIs(t, err, interfaces.ErrWrite)
		require.NotErrorIs(t, err, interfaces.ErrUniqueConflict)

		_, err = store.Update(ctx, entities.CollectionSubmission, rec.ID(), entities.Record{"access_code": "AAA", "status": "submitted"})
		require.NoError(t, err)
	})

	t.Run("late claim on update", func(t *testing.T) {
		store := newStore(t)
		first, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{"access_code": "AAA"})
		require.NoError(t, err)
		second, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{})
		require.NoError(t, err)

		_, err = store.Update(ctx, entities.CollectionSubmission, second.ID(), entities.Record{"access_code": "AAA"})
		require.ErrorIs(t, err, interfaces.ErrWrite)
		require.ErrorIs(t, err, interfaces.ErrUniqueConflict)

		_, err = store.Update(ctx, entities.CollectionSubmission, second.ID(), entities.Record{"access_code": "BBB"})
		require.NoError(t, err)
		require.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("delete releases unique values", func(t *testing.T) {
		store := newStore(t)
		rec, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{"access_code": "AAA"})
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, entities.CollectionSubmission, rec.ID()))
		require.ErrorIs(t, store.Delete(ctx, entities.CollectionSubmission, rec.ID()), interfaces.ErrNotFound)

		_, err = store.Create(ctx, entities.CollectionSubmission, entities.Record{"access_code": "AAA"})
		require.NoError(t, err)
	})

	t.Run("claims use the stored value", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{"access_code": " ABC "})
		require.NoError(t, err)

		_, err = store.Create(ctx, entities.CollectionSubmission, entities.Record{"access_code": "ABC"})
		require.NoError(t, err)

		got, err := store.Filter(ctx, entities.CollectionSubmission, map[string]any{"access_code": "ABC"}, "", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("unknown collection", func(t *testing.T) {
		store := newStore(t)
		_, err := store.List(ctx, entities.CollectionName("Unknown"), "")
		require.ErrorIs(t, err, interfaces.ErrNotFound)
		_, err = store.Create(ctx, entities.CollectionName("Unknown"), entities.Record{})
		require.ErrorIs(t, err, interfaces.ErrWrite)
	})

	t.Run("nested values round trip", func(t *testing.T) {
		store := newStore(t)
		rec, err := store.Create(ctx, entities.CollectionSubmission, entities.Record{
			"property_data":     map[string]any{"lot_size": 1200},
			"desired_features":  []string{"deck", "pool"},
			"inspiration_empty": []any{},
		})
		require.NoError(t, err)

		got, err := store.Filter(ctx, entities.CollectionSubmission, map[string]any{"id": rec.ID()}, "", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, map[string]any{"lot_size": float64(1200)}, got[0]["property_data"])
		require.Equal(t, []any{"deck", "pool"}, got[0]["desired_features"])
		require.Equal(t, []any{}, got[0]["inspiration_empty"])
	})
}

func names(recs []entities.Record) []any {
	out := make([]any, 0, len(recs))
	for _, r := range recs {
		out = append(out, r["name"])
	}
	return out
}
