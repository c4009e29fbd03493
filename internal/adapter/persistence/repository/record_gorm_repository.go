package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordRow stores one record of any collection as a JSON document.
type recordRow struct {
	Collection string         `gorm:"primaryKey;size:64"`
	ID         string         `gorm:"primaryKey;size:64"`
	Data       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"index"`
}

func (recordRow) TableName() string { return "records" }

// uniqueClaimRow reserves a unique field value for one record.
type uniqueClaimRow struct {
	Collection string `gorm:"primaryKey;size:64"`
	Field      string `gorm:"primaryKey;size:64"`
	Value      string `gorm:"primaryKey;size:255"`
	RecordID   string `gorm:"size:64;index"`
}

func (uniqueClaimRow) TableName() string { return "record_uniques" }

// RecordGormRepository backs every collection with two SQL tables through gorm.
// It runs on any gorm dialect; postgres and sqlite are wired in.
type RecordGormRepository struct {
	db     *gorm.DB
	now    func() time.Time
	logger *zap.Logger
}

var _ interfaces.IRecordStore = (*RecordGormRepository)(nil)

// NewRecordGormRepository migrates the schema and returns the repository.
func NewRecordGormRepository(db *gorm.DB, logger *zap.Logger) (*RecordGormRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.AutoMigrate(&recordRow{}, &uniqueClaimRow{}); err != nil {
		return nil, fmt.Errorf("migrate record tables: %w", err)
	}
	return &RecordGormRepository{db: db, now: time.Now, logger: logger}, nil
}

func (r *RecordGormRepository) List(ctx context.Context, collection entities.CollectionName, sort entities.SortSpec) ([]entities.Record, error) {
	return r.Filter(ctx, collection, nil, sort, 0)
}

func (r *RecordGormRepository) Filter(ctx context.Context, collection entities.CollectionName, criteria map[string]any, sort entities.SortSpec, limit int) ([]entities.Record, error) {
	if err := checkCollection(collection, "filter", interfaces.ErrNotFound); err != nil {
		return nil, err
	}

	// String criteria are pushed into SQL; every criterion is re-checked below
	// because JSON number and null comparisons differ between dialects.
	q := r.db.WithContext(ctx).Where("collection = ?", string(collection))
	for field, want := range criteria {
		s, ok := want.(string)
		if !ok {
			continue
		}
		if field == entities.FieldID {
			q = q.Where("id = ?", s)
			continue
		}
		q = q.Where(datatypes.JSONQuery("data").Equals(s, field))
	}

	var rows []recordRow
	if err := q.Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, classifyGormErr(err, collection, "filter", false)
	}

	out := make([]entities.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, storeErr(interfaces.ErrStoreUnavailable, collection, "filter", err)
		}
		if matchesCriteria(rec, criteria) {
			out = append(out, rec)
		}
	}
	sortRecords(out, sort)
	return applyLimit(out, limit), nil
}

func (r *RecordGormRepository) Create(ctx context.Context, collection entities.CollectionName, record entities.Record) (entities.Record, error) {
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
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "create", err)
	}
	id := rec.ID()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&recordRow{}).Where("collection = ? AND id = ?", string(collection), id).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return storeErr(interfaces.ErrWrite, collection, "create", fmt.Errorf("id %s already exists", id))
		}
		if err := claimValues(tx, collection, "create", id, claims); err != nil {
			return err
		}
		return tx.Create(&recordRow{
			Collection: string(collection),
			ID:         id,
			Data:       datatypes.JSON(data),
			CreatedAt:  r.now(),
		}).Error
	})
	if err != nil {
		r.logger.Warn("[store][gorm] create failed", zap.String("collection", string(collection)), zap.Error(err))
		return nil, classifyGormErr(err, collection, "create", true)
	}
	return rec, nil
}

func (r *RecordGormRepository) Update(ctx context.Context, collection entities.CollectionName, id string, partial entities.Record) (entities.Record, error) {
	if err := checkCollection(collection, "update", interfaces.ErrWrite); err != nil {
		return nil, err
	}
	changes, err := jsonCopy(prepareUpdate(partial, r.now()))
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "update", err)
	}

	var merged entities.Record
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row recordRow
		if err := tx.Where("collection = ? AND id = ?", string(collection), id).First(&row).Error; err != nil {
			return err
		}
		existing, err := decodeRow(row)
		if err != nil {
			return err
		}
		claims, err := planClaims(collection, existing, changes)
		if err != nil {
			return storeErr(interfaces.ErrWrite, collection, "update", err)
		}
		if err := claimValues(tx, collection, "update", id, claims); err != nil {
			return err
		}

		merged = mergeRecord(existing, changes)
		data, err := json.Marshal(merged)
		if err != nil {
			return storeErr(interfaces.ErrWrite, collection, "update", err)
		}
		return tx.Model(&recordRow{}).
			Where("collection = ? AND id = ?", string(collection), id).
			Update("data", datatypes.JSON(data)).Error
	})
	if err != nil {
		return nil, classifyGormErr(err, collection, "update", true)
	}
	return merged, nil
}

func (r *RecordGormRepository) Delete(ctx context.Context, collection entities.CollectionName, id string) error {
	if err := checkCollection(collection, "delete", interfaces.ErrWrite); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("collection = ? AND id = ?", string(collection), id).Delete(&recordRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("collection = ? AND record_id = ?", string(collection), id).Delete(&uniqueClaimRow{}).Error
	})
	if err != nil {
		return classifyGormErr(err, collection, "delete", true)
	}
	return nil
}

func claimValues(tx *gorm.DB, collection entities.CollectionName, op, id string, claims []uniqueClaim) error {
	for _, c := range claims {
		var held uniqueClaimRow
		err := tx.Where("collection = ? AND field = ? AND value = ?", string(c.Collection), c.Field, c.Value).
			Limit(1).Find(&held).Error
		if err != nil {
			return err
		}
		if held.RecordID != "" && held.RecordID != id {
			return storeErr(interfaces.ErrWrite, collection, op, claimConflict(c.Field, held.RecordID))
		}
		if held.RecordID == id {
			continue
		}
		if err := tx.Create(&uniqueClaimRow{
			Collection: string(c.Collection),
			Field:      c.Field,
			Value:      c.Value,
			RecordID:   id,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func decodeRow(row recordRow) (entities.Record, error) {
	rec := entities.Record{}
	if err := json.Unmarshal(row.Data, &rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", row.ID, err)
	}
	return rec, nil
}

func classifyGormErr(err error, collection entities.CollectionName, op string, write bool) error {
	var se *interfaces.StoreError
	if errors.As(err, &se) {
		return se
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storeErr(interfaces.ErrNotFound, collection, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storeErr(interfaces.ErrWrite, collection, op, fmt.Errorf("%w: %w", interfaces.ErrUniqueConflict, err))
	case write && errors.Is(err, gorm.ErrInvalidData):
		return storeErr(interfaces.ErrWrite, collection, op, err)
	default:
		return storeErr(interfaces.ErrStoreUnavailable, collection, op, err)
	}
}
