package repository

import (
	"time"

	"oficina_os/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStockTableName     = "product_stock"
	defaultMovementsTableName = "stock_movements"
)

type stockMovementItem struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	Reason    string `dynamodbav:"reason"`
	QtyBefore int    `dynamodbav:"qty_before"`
	QtyAfter  int    `dynamodbav:"qty_after"`
	Delta     int    `dynamodbav:"delta"`
	Actor     string `dynamodbav:"actor"`
	OrderID   string `dynamodbav:"order_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

func fromStockMovementItem(it stockMovementItem) entities.StockMovement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.StockMovement{
		ID:        it.ID,
		ProductID: it.ProductID,
		Reason:    entities.StockReason(it.Reason),
		QtyBefore: it.QtyBefore,
		QtyAfter:  it.QtyAfter,
		Delta:     it.Delta,
		Actor:     it.Actor,
		OrderID:   it.OrderID,
		CreatedAt: createdAt,
	}
}

// stockTransactItems builds the two transaction elements behind every stock
// change: the compare-and-swap on the product counter (conditional on the
// quantity still being adj.QtyBefore) and the movement-log append. Callers
// compose them with their own writes so everything commits atomically.
func stockTransactItems(stockTable, movementsTable string, adj entities.StockAdjustment, movementID string, now time.Time) ([]types.TransactWriteItem, error) {
	mv := stockMovementItem{
		ID:        movementID,
		ProductID: adj.ProductID,
		Reason:    string(adj.Reason),
		QtyBefore: adj.QtyBefore,
		QtyAfter:  adj.QtyAfter(),
		Delta:     adj.Delta,
		Actor:     adj.Actor,
		OrderID:   adj.OrderID,
		CreatedAt: now.Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(mv)
	if err != nil {
		return nil, err
	}

	casUpdate := types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(stockTable),
			Key: map[string]types.AttributeValue{
				"product_id": &types.AttributeValueMemberS{Value: adj.ProductID},
			},
			UpdateExpression:    aws.String("SET #qty = :after, #updated_at = :updated_at"),
			ConditionExpression: aws.String("#qty = :before"),
			ExpressionAttributeNames: map[string]string{
				"#qty":        "quantity",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":after":      &types.AttributeValueMemberN{Value: intToString(adj.QtyAfter())},
				":before":     &types.AttributeValueMemberN{Value: intToString(adj.QtyBefore)},
				":updated_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
			},
		},
	}
	movementPut := types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(movementsTable),
			Item:      av,
		},
	}
	return []types.TransactWriteItem{casUpdate, movementPut}, nil
}
