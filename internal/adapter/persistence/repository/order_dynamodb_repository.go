package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName   = "service_orders"
	defaultCountersTableName = "counters"
	orderNumberCounterName   = "service_orders"
)

type orderItem struct {
	ID            string `dynamodbav:"id"`
	Number        int64  `dynamodbav:"number"`
	Status        string `dynamodbav:"status"`
	CustomerID    string `dynamodbav:"customer_id,omitempty"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerPhone string `dynamodbav:"customer_phone,omitempty"`
	DeviceBrand   string `dynamodbav:"device_brand,omitempty"`
	DeviceModel   string `dynamodbav:"device_model,omitempty"`
	DeviceSerial  string `dynamodbav:"device_serial,omitempty"`
	Problem       string `dynamodbav:"problem,omitempty"`

	Total          float64 `dynamodbav:"total"`
	PaidTotal      float64 `dynamodbav:"paid_total"`
	BudgetAmount   float64 `dynamodbav:"budget_amount"`
	BudgetApproved float64 `dynamodbav:"budget_approved"`

	EntryChecklist string `dynamodbav:"entry_checklist,omitempty"`
	ExitChecklist  string `dynamodbav:"exit_checklist,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - service_orders: PK id (string); total and paid_total are numbers so
//     item and payment transactions can apply ADD expressions to them
//   - counters: PK name (string); holds the order-number sequence
//
// Checklist results are stored as JSON documents in a single attribute and
// overwritten in place.

type OrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

// NextNumber increments the order-number sequence atomically and returns the
// new value. The counter row is created on first use.
func (r *OrderDynamoRepository) NextNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderNumberCounterName},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "current_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	raw, ok := out.Attributes["current_value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterValue
	}
	return strconv.ParseInt(raw.Value, 10, 64)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.ServiceOrder, error) {
	return r.update(ctx, id,
		"SET #status = :to, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :from",
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		map[string]string{"#status": "status"},
	)
}

func (r *OrderDynamoRepository) SaveChecklist(ctx context.Context, id string, result entities.ChecklistResult) (entities.ServiceOrder, error) {
	doc, err := json.Marshal(result)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	attr := "entry_checklist"
	if result.Phase == entities.ChecklistPhaseExit {
		attr = "exit_checklist"
	}
	return r.update(ctx, id,
		"SET #cl = :cl, #updated_at = :updated_at",
		"attribute_exists(#id)",
		map[string]types.AttributeValue{
			":cl": &types.AttributeValueMemberS{Value: string(doc)},
		},
		map[string]string{"#cl": attr},
	)
}

// ApplyTerminalStatus lands the closing transition and the exit checklist
// result in one conditional write.
func (r *OrderDynamoRepository) ApplyTerminalStatus(ctx context.Context, id string, from, to entities.OrderStatus, result entities.ChecklistResult) (entities.ServiceOrder, error) {
	doc, err := json.Marshal(result)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	return r.update(ctx, id,
		"SET #status = :to, #cl = :cl, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :from",
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":cl":   &types.AttributeValueMemberS{Value: string(doc)},
		},
		map[string]string{"#status": "status", "#cl": "exit_checklist"},
	)
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.ServiceOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	values[":updated_at"] = &types.AttributeValueMemberS{Value: now}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String(conditionExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ServiceOrder{}, mapConditionErr(err)
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.ServiceOrder) (orderItem, error) {
	entry, err := marshalChecklist(o.EntryChecklist)
	if err != nil {
		return orderItem{}, err
	}
	exit, err := marshalChecklist(o.ExitChecklist)
	if err != nil {
		return orderItem{}, err
	}
	return orderItem{
		ID:             o.ID,
		Number:         o.Number,
		Status:         string(o.Status),
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		DeviceBrand:    o.DeviceBrand,
		DeviceModel:    o.DeviceModel,
		DeviceSerial:   o.DeviceSerial,
		Problem:        o.Problem,
		Total:          o.Total,
		PaidTotal:      o.PaidTotal,
		BudgetAmount:   o.BudgetAmount,
		BudgetApproved: o.BudgetApproved,
		EntryChecklist: entry,
		ExitChecklist:  exit,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromOrderItem(it orderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceOrder{
		ID:             it.ID,
		Number:         it.Number,
		Status:         entities.OrderStatus(it.Status),
		CustomerID:     it.CustomerID,
		CustomerName:   it.CustomerName,
		CustomerPhone:  it.CustomerPhone,
		DeviceBrand:    it.DeviceBrand,
		DeviceModel:    it.DeviceModel,
		DeviceSerial:   it.DeviceSerial,
		Problem:        it.Problem,
		Total:          it.Total,
		PaidTotal:      it.PaidTotal,
		BudgetAmount:   it.BudgetAmount,
		BudgetApproved: it.BudgetApproved,
		EntryChecklist: unmarshalChecklist(it.EntryChecklist),
		ExitChecklist:  unmarshalChecklist(it.ExitChecklist),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func marshalChecklist(r *entities.ChecklistResult) (string, error) {
	if r == nil {
		return "", nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalChecklist(doc string) *entities.ChecklistResult {
	if doc == "" {
		return nil
	}
	var r entities.ChecklistResult
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return nil
	}
	return &r
}
