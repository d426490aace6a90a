package repository

import (
	"context"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrderPaymentsTableName = "order_payments"
	paymentsOrderIDIndex          = "order_id-index"
)

type paymentItem struct {
	ID          string  `dynamodbav:"id"`
	OrderID     string  `dynamodbav:"order_id"`
	Amount      float64 `dynamodbav:"amount"`
	Method      string  `dynamodbav:"method"`
	Kind        string  `dynamodbav:"kind"`
	Note        string  `dynamodbav:"note,omitempty"`
	SaleID      string  `dynamodbav:"sale_id"`
	CreatedBy   string  `dynamodbav:"created_by"`
	CreatedAt   string  `dynamodbav:"created_at"`
	CancelledAt string  `dynamodbav:"cancelled_at,omitempty"`
	CancelledBy string  `dynamodbav:"cancelled_by,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - order_payments: PK id (string), GSI order_id-index (PK: order_id)
//
// Insert and MarkCancelled each run as one TransactWriteItems call so the
// payment row and the order's paid_total counter move together. The cancel
// write is conditional on cancelled_at being absent: of two concurrent
// cancels exactly one wins and the loser gets ErrConditionFailed.

type PaymentDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	ordersTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("ORDER_PAYMENTS_TABLE", defaultOrderPaymentsTableName),
		ordersTable: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *PaymentDynamoRepository) Insert(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	tx := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		orderAddTransact(r.ordersTable, p.OrderID, "paid_total", p.Amount, time.Now().UTC()),
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		return entities.Payment{}, mapConditionErr(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) MarkCancelled(ctx context.Context, paymentID, orderID string, amount float64, actor string, at time.Time) (entities.Payment, error) {
	tx := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: paymentID},
				},
				UpdateExpression:    aws.String("SET #cancelled_at = :at, #cancelled_by = :by"),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#cancelled_at)"),
				ExpressionAttributeNames: map[string]string{
					"#id":           "id",
					"#cancelled_at": "cancelled_at",
					"#cancelled_by": "cancelled_by",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
					":by": &types.AttributeValueMemberS{Value: actor},
				},
			},
		},
		orderAddTransact(r.ordersTable, orderID, "paid_total", -amount, at.UTC()),
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		return entities.Payment{}, mapConditionErr(err)
	}
	return r.GetByID(ctx, paymentID)
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount,
		Method:      p.Method,
		Kind:        string(p.Kind),
		Note:        p.Note,
		SaleID:      p.SaleID,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		CancelledBy: p.CancelledBy,
	}
	if p.CancelledAt != nil {
		it.CancelledAt = p.CancelledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Payment{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Amount:      it.Amount,
		Method:      it.Method,
		Kind:        entities.PaymentKind(it.Kind),
		Note:        it.Note,
		SaleID:      it.SaleID,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   createdAt,
		CancelledBy: it.CancelledBy,
	}
	if it.CancelledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CancelledAt); err == nil {
			p.CancelledAt = &t
		}
	}
	return p
}
