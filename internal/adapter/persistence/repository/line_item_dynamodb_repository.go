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

const defaultItemsTableName = "order_items"

type lineItemItem struct {
	ID           string  `dynamodbav:"id"`
	OrderID      string  `dynamodbav:"order_id"`
	Kind         string  `dynamodbav:"kind"`
	ProductID    string  `dynamodbav:"product_id,omitempty"`
	Description  string  `dynamodbav:"description"`
	Quantity     int     `dynamodbav:"quantity"`
	UnitPrice    float64 `dynamodbav:"unit_price"`
	MinPrice     float64 `dynamodbav:"min_price"`
	Discount     float64 `dynamodbav:"discount"`
	WarrantyDays int     `dynamodbav:"warranty_days"`
	SupplierID   string  `dynamodbav:"supplier_id,omitempty"`
	Total        float64 `dynamodbav:"total"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// LineItemDynamoRepository persists LineItem entities in DynamoDB.
//
// Table requirements:
//   - order_items: PK order_id (string), SK id (string)
//
// Every mutation runs as one TransactWriteItems call: the item write, the
// ADD on the order total and, for stock-linked parts, the counter
// compare-and-swap plus the movement-log append.

type LineItemDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	ordersTable    string
	stockTable     string
	movementsTable string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDER_ITEMS_TABLE", defaultItemsTableName),
		ordersTable:    getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		stockTable:     getenvDefault("STOCK_TABLE", defaultStockTableName),
		movementsTable: getenvDefault("STOCK_MOVEMENTS_TABLE", defaultMovementsTableName),
	}
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, orderID, itemID string) (entities.LineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
			"id":       &types.AttributeValueMemberS{Value: itemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.LineItem{}, nil
	}

	var it lineItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it lineItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLineItemItem(it))
	}
	return items, nil
}

func (r *LineItemDynamoRepository) Insert(ctx context.Context, item entities.LineItem, totalDelta float64, adj *entities.StockAdjustment) (entities.LineItem, error) {
	put, err := r.itemPut(item, "attribute_not_exists(#id)")
	if err != nil {
		return entities.LineItem{}, err
	}
	if err := r.commit(ctx, put, item.OrderID, totalDelta, adj); err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

// Update conditions the write on the updated_at value the caller read, so
// an edit that raced another edit of the same item fails the transaction
// and the caller recomputes its deltas from fresh state.
func (r *LineItemDynamoRepository) Update(ctx context.Context, item entities.LineItem, totalDelta float64, adj *entities.StockAdjustment, prevUpdatedAt time.Time) (entities.LineItem, error) {
	put, err := r.itemPut(item, "attribute_exists(#id) AND #updated_at = :prev_updated_at")
	if err != nil {
		return entities.LineItem{}, err
	}
	put.Put.ExpressionAttributeNames["#updated_at"] = "updated_at"
	put.Put.ExpressionAttributeValues = map[string]types.AttributeValue{
		":prev_updated_at": &types.AttributeValueMemberS{Value: prevUpdatedAt.UTC().Format(time.RFC3339Nano)},
	}
	if err := r.commit(ctx, put, item.OrderID, totalDelta, adj); err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, orderID, itemID string, totalDelta float64, adj *entities.StockAdjustment, prevUpdatedAt time.Time) error {
	del := types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"order_id": &types.AttributeValueMemberS{Value: orderID},
				"id":       &types.AttributeValueMemberS{Value: itemID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #updated_at = :prev_updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prev_updated_at": &types.AttributeValueMemberS{Value: prevUpdatedAt.UTC().Format(time.RFC3339Nano)},
			},
		},
	}
	return r.commit(ctx, del, orderID, totalDelta, adj)
}

func (r *LineItemDynamoRepository) itemPut(item entities.LineItem, condition string) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String(condition),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}

func (r *LineItemDynamoRepository) commit(ctx context.Context, itemWrite types.TransactWriteItem, orderID string, totalDelta float64, adj *entities.StockAdjustment) error {
	now := time.Now().UTC()
	tx := []types.TransactWriteItem{
		itemWrite,
		orderAddTransact(r.ordersTable, orderID, "total", totalDelta, now),
	}
	if adj != nil {
		stockTx, err := stockTransactItems(r.stockTable, r.movementsTable, *adj, uuid.NewString(), now)
		if err != nil {
			return err
		}
		tx = append(tx, stockTx...)
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	return mapConditionErr(err)
}

func toLineItemItem(i entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:           i.ID,
		OrderID:      i.OrderID,
		Kind:         string(i.Kind),
		ProductID:    i.ProductID,
		Description:  i.Description,
		Quantity:     i.Quantity,
		UnitPrice:    i.UnitPrice,
		MinPrice:     i.MinPrice,
		Discount:     i.Discount,
		WarrantyDays: i.WarrantyDays,
		SupplierID:   i.SupplierID,
		Total:        i.Total,
		CreatedAt:    i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.LineItem{
		ID:           it.ID,
		OrderID:      it.OrderID,
		Kind:         entities.ItemKind(it.Kind),
		ProductID:    it.ProductID,
		Description:  it.Description,
		Quantity:     it.Quantity,
		UnitPrice:    it.UnitPrice,
		MinPrice:     it.MinPrice,
		Discount:     it.Discount,
		WarrantyDays: it.WarrantyDays,
		SupplierID:   it.SupplierID,
		Total:        it.Total,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
