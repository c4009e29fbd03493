package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const defaultUniquesTableName = "record_uniques"

var defaultTables = map[entities.CollectionName]struct{ env, name string }{
	entities.CollectionSubmission:      {"SUBMISSIONS_TABLE", "submissions"},
	entities.CollectionDossierAnalysis: {"DOSSIER_ANALYSES_TABLE", "dossier_analyses"},
	entities.CollectionContent:         {"CONTENT_TABLE", "content"},
	entities.CollectionTheme:           {"THEMES_TABLE", "themes"},
}

// DynamoAPI is the subset of *dynamodb.Client used by the repository.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// RecordDynamoRepository persists every collection in its own DynamoDB table.
//
// Table requirements:
//   - one table per collection, PK: id (string)
//   - RECORD_UNIQUES_TABLE, PK: id (string) holding "<collection>#<field>#<value>"
//     guard items; a record and its guards are written in one transaction so a
//     unique value can only ever be claimed once.
type RecordDynamoRepository struct {
	ddb          DynamoAPI
	tables       map[entities.CollectionName]string
	uniquesTable string
	now          func() time.Time
	logger       *zap.Logger
}

var _ interfaces.IRecordStore = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb DynamoAPI, logger *zap.Logger) *RecordDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	tables := make(map[entities.CollectionName]string, len(defaultTables))
	for c, t := range defaultTables {
		tables[c] = getenvDefault(t.env, t.name)
	}
	return &RecordDynamoRepository{
		ddb:          ddb,
		tables:       tables,
		uniquesTable: getenvDefault("RECORD_UNIQUES_TABLE", defaultUniquesTableName),
		now:          time.Now,
		logger:       logger,
	}
}

func (r *RecordDynamoRepository) List(ctx context.Context, collection entities.CollectionName, sort entities.SortSpec) ([]entities.Record, error) {
	if err := checkCollection(collection, "list", interfaces.ErrNotFound); err != nil {
		return nil, err
	}
	recs, err := r.scan(ctx, collection, "list", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	sortRecords(recs, sort)
	return recs, nil
}

func (r *RecordDynamoRepository) Filter(ctx context.Context, collection entities.CollectionName, criteria map[string]any, sort entities.SortSpec, limit int) ([]entities.Record, error) {
	if err := checkCollection(collection, "filter", interfaces.ErrNotFound); err != nil {
		return nil, err
	}

	// Identity lookups go straight to the primary key.
	if id, ok := onlyIDCriterion(criteria); ok {
		rec, err := r.getByID(ctx, collection, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return []entities.Record{}, nil
		}
		return []entities.Record{rec}, nil
	}

	expr, names, values, err := buildFilterExpression(criteria)
	if err != nil {
		return nil, storeErr(interfaces.ErrStoreUnavailable, collection, "filter", err)
	}
	recs, err := r.scan(ctx, collection, "filter", expr, names, values)
	if err != nil {
		return nil, err
	}
	sortRecords(recs, sort)
	return applyLimit(recs, limit), nil
}

func (r *RecordDynamoRepository) Create(ctx context.Context, collection entities.CollectionName, record entities.Record) (entities.Record, error) {
	if err := checkCollection(collection, "create", interfaces.ErrWrite); err != nil {
		return nil, err
	}
	rec := prepareCreate(record, r.now())
	claims, err := planClaims(collection, nil, rec)
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "create", err)
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "create", err)
	}

	if len(claims) == 0 {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tables[collection]),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": entities.FieldID,
			},
		})
	} else {
		txItems := []types.TransactWriteItem{{
			Put: &types.Put{
				TableName:           aws.String(r.tables[collection]),
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": entities.FieldID,
				},
			},
		}}
		txItems = append(txItems, r.claimPuts(claims, rec.ID())...)
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: txItems})
	}
	if err != nil {
		r.logger.Warn("[store][dynamodb] create failed", zap.String("collection", string(collection)), zap.Error(err))
		return nil, classifyDynamoErr(err, collection, "create", interfaces.ErrWrite, true)
	}
	return normalizeRecord(rec), nil
}

func (r *RecordDynamoRepository) Update(ctx context.Context, collection entities.CollectionName, id string, partial entities.Record) (entities.Record, error) {
	if err := checkCollection(collection, "update", interfaces.ErrWrite); err != nil {
		return nil, err
	}
	changes := prepareUpdate(partial, r.now())

	var claims []uniqueClaim
	if touchesUniqueField(collection, changes) {
		existing, err := r.getByID(ctx, collection, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, storeErr(interfaces.ErrNotFound, collection, "update", fmt.Errorf("id=%s", id))
		}
		claims, err = planClaims(collection, existing, changes)
		if err != nil {
			return nil, storeErr(interfaces.ErrWrite, collection, "update", err)
		}
	}

	updateExpr, names, values, err := buildUpdateExpression(changes)
	if err != nil {
		return nil, storeErr(interfaces.ErrWrite, collection, "update", err)
	}
	names["#id"] = entities.FieldID
	key := idKey(id)

	if len(claims) == 0 {
		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(r.tables[collection]),
			Key:                       key,
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			UpdateExpression:          aws.String(updateExpr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			return nil, classifyDynamoErr(err, collection, "update", interfaces.ErrNotFound, true)
		}
		return fromItem(out.Attributes, collection, "update")
	}

	txItems := []types.TransactWriteItem{{
		Update: &types.Update{
			TableName:                 aws.String(r.tables[collection]),
			Key:                       key,
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			UpdateExpression:          aws.String(updateExpr),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	}}
	txItems = append(txItems, r.claimPuts(claims, id)...)
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: txItems}); err != nil {
		return nil, classifyDynamoErr(err, collection, "update", interfaces.ErrNotFound, true)
	}

	rec, err := r.getByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, storeErr(interfaces.ErrNotFound, collection, "update", fmt.Errorf("id=%s", id))
	}
	return rec, nil
}

func (r *RecordDynamoRepository) Delete(ctx context.Context, collection entities.CollectionName, id string) error {
	if err := checkCollection(collection, "delete", interfaces.ErrWrite); err != nil {
		return err
	}
	cond := aws.String("attribute_exists(#id)")
	names := map[string]string{"#id": entities.FieldID}

	if len(entities.UniqueFields(collection)) == 0 {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName:                aws.String(r.tables[collection]),
			Key:                      idKey(id),
			ConditionExpression:      cond,
			ExpressionAttributeNames: names,
		})
		if err != nil {
			return classifyDynamoErr(err, collection, "delete", interfaces.ErrNotFound, true)
		}
		return nil
	}

	existing, err := r.getByID(ctx, collection, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return storeErr(interfaces.ErrNotFound, collection, "delete", fmt.Errorf("id=%s", id))
	}
	txItems := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName:                aws.String(r.tables[collection]),
			Key:                      idKey(id),
			ConditionExpression:      cond,
			ExpressionAttributeNames: names,
		},
	}}
	for _, c := range claimsOf(collection, existing) {
		txItems = append(txItems, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.uniquesTable),
				Key:       idKey(c.Key()),
			},
		})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: txItems}); err != nil {
		return classifyDynamoErr(err, collection, "delete", interfaces.ErrNotFound, true)
	}
	return nil
}

func (r *RecordDynamoRepository) getByID(ctx context.Context, collection entities.CollectionName, id string) (entities.Record, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables[collection]),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, classifyDynamoErr(err, collection, "get", interfaces.ErrNotFound, false)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return fromItem(out.Item, collection, "get")
}

func (r *RecordDynamoRepository) scan(
	ctx context.Context,
	collection entities.CollectionName,
	op string,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.Record, error) {
	recs := make([]entities.Record, 0)
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tables[collection]),
			ConsistentRead:            aws.Bool(true),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, classifyDynamoErr(err, collection, op, interfaces.ErrNotFound, false)
		}
		for _, item := range page.Items {
			rec, err := fromItem(item, collection, op)
			if err != nil {
				return nil, err
			}
			recs = append(recs, rec)
		}
		if len(page.LastEvaluatedKey) == 0 {
			return recs, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *RecordDynamoRepository) claimPuts(claims []uniqueClaim, recordID string) []types.TransactWriteItem {
	items := make([]types.TransactWriteItem, 0, len(claims))
	for _, c := range claims {
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.uniquesTable),
				Item: map[string]types.AttributeValue{
					"id":         &types.AttributeValueMemberS{Value: c.Key()},
					"record_id":  &types.AttributeValueMemberS{Value: recordID},
					"collection": &types.AttributeValueMemberS{Value: string(c.Collection)},
					"field":      &types.AttributeValueMemberS{Value: c.Field},
				},
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}
	return items
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		entities.FieldID: &types.AttributeValueMemberS{Value: id},
	}
}

func fromItem(item map[string]types.AttributeValue, collection entities.CollectionName, op string) (entities.Record, error) {
	rec := entities.Record{}
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, storeErr(interfaces.ErrStoreUnavailable, collection, op, err)
	}
	return rec, nil
}

func onlyIDCriterion(criteria map[string]any) (string, bool) {
	if len(criteria) != 1 {
		return "", false
	}
	id, ok := criteria[entities.FieldID].(string)
	return id, ok
}

func touchesUniqueField(collection entities.CollectionName, rec entities.Record) bool {
	for _, f := range entities.UniqueFields(collection) {
		if _, ok := rec[f]; ok {
			return true
		}
	}
	return false
}

// buildFilterExpression renders conjunctive equality. A nil criterion matches
// a missing attribute or a NULL one.
func buildFilterExpression(criteria map[string]any) (*string, map[string]string, map[string]types.AttributeValue, error) {
	if len(criteria) == 0 {
		return nil, nil, nil, nil
	}
	fields := sortedKeys(criteria)
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	expr := ""
	for i, field := range fields {
		n := fmt.Sprintf("#f%d", i)
		v := fmt.Sprintf(":v%d", i)
		names[n] = field
		if i > 0 {
			expr += " AND "
		}
		if criteria[field] == nil {
			values[v] = &types.AttributeValueMemberS{Value: "NULL"}
			expr += fmt.Sprintf("(attribute_not_exists(%s) OR attribute_type(%s, %s))", n, n, v)
			continue
		}
		av, err := attributevalue.Marshal(criteria[field])
		if err != nil {
			return nil, nil, nil, err
		}
		values[v] = av
		expr += fmt.Sprintf("%s = %s", n, v)
	}
	return aws.String(expr), names, values, nil
}

func buildUpdateExpression(changes entities.Record) (string, map[string]string, map[string]types.AttributeValue, error) {
	fields := sortedKeys(changes)
	names := make(map[string]string, len(fields)+1)
	values := make(map[string]types.AttributeValue, len(fields))
	expr := "SET "
	for i, field := range fields {
		n := fmt.Sprintf("#u%d", i)
		v := fmt.Sprintf(":u%d", i)
		av, err := attributevalue.Marshal(changes[field])
		if err != nil {
			return "", nil, nil, err
		}
		names[n] = field
		values[v] = av
		if i > 0 {
			expr += ", "
		}
		expr += fmt.Sprintf("%s = %s", n, v)
	}
	return expr, names, values, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var unavailableCodes = map[string]bool{
	"ProvisionedThroughputExceededException": true,
	"ThrottlingException":                    true,
	"RequestLimitExceeded":                   true,
	"InternalServerError":                    true,
	"ServiceUnavailable":                     true,
	"ResourceNotFoundException":              true,
}

// classifyDynamoErr maps SDK errors onto the store error kinds. conditionKind
// is returned when the record's own condition expression failed.
func classifyDynamoErr(err error, collection entities.CollectionName, op string, conditionKind error, write bool) error {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return storeErr(conditionKind, collection, op, err)
	}

	// The first transaction item is always the record; the rest are claims.
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
				continue
			}
			if i == 0 {
				return storeErr(conditionKind, collection, op, err)
			}
			return storeErr(interfaces.ErrWrite, collection, op, fmt.Errorf("%w: %w", interfaces.ErrUniqueConflict, err))
		}
		return storeErr(interfaces.ErrWrite, collection, op, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if unavailableCodes[apiErr.ErrorCode()] || apiErr.ErrorFault() == smithy.FaultServer {
			return storeErr(interfaces.ErrStoreUnavailable, collection, op, err)
		}
		if write {
			return storeErr(interfaces.ErrWrite, collection, op, err)
		}
	}
	return storeErr(interfaces.ErrStoreUnavailable, collection, op, err)
}
