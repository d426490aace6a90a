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

	"github.com/google/uuid"
)

type stockItem struct {
	ProductID string `dynamodbav:"product_id"`
	Quantity  int    `dynamodbav:"quantity"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// StockDynamoRepository persists product stock counters and their movement
// log in DynamoDB.
//
// Table requirements:
//   - product_stock: PK product_id (string), quantity stored as a number so
//     the compare-and-swap condition can target it
//   - stock_movements: PK product_id (string), SK id (string)

type StockDynamoRepository struct {
	ddb            *dynamodb.Client
	stockTable     string
	movementsTable string
}

var _ interfaces.IStockRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client) *StockDynamoRepository {
	return &StockDynamoRepository{
		ddb:            ddb,
		stockTable:     getenvDefault("STOCK_TABLE", defaultStockTableName),
		movementsTable: getenvDefault("STOCK_MOVEMENTS_TABLE", defaultMovementsTableName),
	}
}

func (r *StockDynamoRepository) Get(ctx context.Context, productID string) (entities.ProductStock, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.stockTable),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProductStock{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProductStock{}, nil
	}

	var it stockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProductStock{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProductStock{ProductID: it.ProductID, Quantity: it.Quantity, UpdatedAt: updatedAt}, nil
}

func (r *StockDynamoRepository) Apply(ctx context.Context, adj entities.StockAdjustment) (entities.StockMovement, error) {
	movementID := uuid.NewString()
	now := time.Now().UTC()

	tx, err := stockTransactItems(r.stockTable, r.movementsTable, adj, movementID, now)
	if err != nil {
		return entities.StockMovement{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		return entities.StockMovement{}, mapConditionErr(err)
	}

	return entities.StockMovement{
		ID:        movementID,
		ProductID: adj.ProductID,
		Reason:    adj.Reason,
		QtyBefore: adj.QtyBefore,
		QtyAfter:  adj.QtyAfter(),
		Delta:     adj.Delta,
		Actor:     adj.Actor,
		OrderID:   adj.OrderID,
		CreatedAt: now,
	}, nil
}

func (r *StockDynamoRepository) ListMovements(ctx context.Context, productID string) ([]entities.StockMovement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.movementsTable),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}

	movements := make([]entities.StockMovement, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stockMovementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		movements = append(movements, fromStockMovementItem(it))
	}
	return movements, nil
}
