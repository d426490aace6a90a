package sales

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/google/uuid"
)

const (
	defaultSalesTableName    = "sales"
	defaultRegisterTableName = "cash_register"

	methodCash = "dinheiro"
)

type saleItem struct {
	ID                string  `dynamodbav:"id"`
	OrderID           string  `dynamodbav:"order_id"`
	OrderNumber       int64   `dynamodbav:"order_number"`
	Description       string  `dynamodbav:"description"`
	Amount            float64 `dynamodbav:"amount"`
	Method            string  `dynamodbav:"method"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	Status            string  `dynamodbav:"status"`
	CreatedAt         string  `dynamodbav:"created_at"`
	VoidedAt          string  `dynamodbav:"voided_at,omitempty"`
}

// RegisterService issues and voids sale documents.
//
// Table requirements:
//   - sales: PK id (string)
//   - cash_register: PK day (string, YYYY-MM-DD); total maintained with ADD
//     expressions so concurrent sales accumulate correctly
//
// Non-cash sales are charged through the payment gateway before the sale
// row is written. Voiding is conditional on the sale not being voided yet,
// so a repeated void is a no-op: the register total is reversed exactly
// once.

type RegisterService struct {
	ddb           *dynamodb.Client
	gateway       interfaces.IPaymentGateway
	salesTable    string
	registerTable string
}

var _ interfaces.ISalesService = (*RegisterService)(nil)

func NewRegisterService(ddb *dynamodb.Client, gateway interfaces.IPaymentGateway) *RegisterService {
	return &RegisterService{
		ddb:           ddb,
		gateway:       gateway,
		salesTable:    getenvDefault("SALES_TABLE", defaultSalesTableName),
		registerTable: getenvDefault("CASH_REGISTER_TABLE", defaultRegisterTableName),
	}
}

func (s *RegisterService) CreateSale(ctx context.Context, orderID string, orderNumber int64, description string, amount float64, method string) (entities.Sale, error) {
	now := time.Now().UTC()
	sale := entities.Sale{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Description: description,
		Amount:      amount,
		Method:      method,
		Status:      entities.SaleStatusEmitida,
		CreatedAt:   now,
	}

	if method != methodCash {
		providerPaymentID, err := s.charge(ctx, sale)
		if err != nil {
			return entities.Sale{}, err
		}
		sale.ProviderPaymentID = providerPaymentID
	}

	av, err := attributevalue.MarshalMap(toSaleItem(sale))
	if err != nil {
		return entities.Sale{}, err
	}

	tx := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(s.salesTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
		s.registerAdd(registerDay(now), amount),
	}
	if _, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx}); err != nil {
		log.Printf("[sales][register] persist failed sale_id=%s err=%v", sale.ID, err)
		if sale.ProviderPaymentID != "" {
			if cErr := s.gateway.CancelPayment(ctx, sale.ProviderPaymentID); cErr != nil {
				log.Printf("[sales][register] compensating provider cancel failed provider_payment_id=%s err=%v", sale.ProviderPaymentID, cErr)
			}
		}
		return entities.Sale{}, err
	}

	log.Printf("[sales][register] sale issued sale_id=%s order_id=%s amount=%.2f method=%s", sale.ID, orderID, amount, method)
	return sale, nil
}

// VoidSale reverses a sale's effect on the register. Voiding a sale that is
// already voided returns nil without touching the total.
func (s *RegisterService) VoidSale(ctx context.Context, saleID string) error {
	sale, err := s.getSale(ctx, saleID)
	if err != nil {
		return err
	}
	if sale.ID == "" {
		return errSaleNotFound
	}
	if sale.Voided() {
		log.Printf("[sales][register] void skipped, already voided sale_id=%s", saleID)
		return nil
	}

	if sale.ProviderPaymentID != "" && s.gateway != nil {
		if err := s.gateway.CancelPayment(ctx, sale.ProviderPaymentID); err != nil {
			log.Printf("[sales][register] provider cancel failed sale_id=%s provider_payment_id=%s err=%v", saleID, sale.ProviderPaymentID, err)
			return err
		}
	}

	now := time.Now().UTC()
	tx := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(s.salesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: saleID},
				},
				UpdateExpression:    aws.String("SET #status = :status, #voided_at = :voided_at"),
				ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#voided_at)"),
				ExpressionAttributeNames: map[string]string{
					"#id":        "id",
					"#status":    "status",
					"#voided_at": "voided_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status":    &types.AttributeValueMemberS{Value: string(entities.SaleStatusAnulada)},
					":voided_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
				},
			},
		},
		s.registerAdd(registerDay(sale.CreatedAt), -sale.Amount),
	}
	_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		if isConditionFailure(err) {
			// Lost the race to another void; the total was reversed by the winner.
			log.Printf("[sales][register] void race lost sale_id=%s", saleID)
			return nil
		}
		return err
	}

	log.Printf("[sales][register] sale voided sale_id=%s amount=%.2f", saleID, sale.Amount)
	return nil
}

// DayTotal reads the register running total for one day (YYYY-MM-DD).
func (s *RegisterService) DayTotal(ctx context.Context, day string) (float64, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.registerTable),
		Key: map[string]types.AttributeValue{
			"day": &types.AttributeValueMemberS{Value: day},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	raw, ok := out.Item["total"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.ParseFloat(raw.Value, 64)
}

func (s *RegisterService) charge(ctx context.Context, sale entities.Sale) (string, error) {
	if s.gateway == nil {
		return "", errGatewayNotConfigured
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": sale.Amount,
		"description":        sale.Description,
		"payment_method_id":  sale.Method,
		"external_reference": sale.OrderID,
	})
	if err != nil {
		return "", err
	}

	providerPaymentID, providerStatus, _, err := s.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", err
	}
	if providerStatus != "approved" {
		log.Printf("[sales][register] provider declined sale order_id=%s status=%s", sale.OrderID, providerStatus)
		return "", errChargeNotApproved
	}
	return providerPaymentID, nil
}

func (s *RegisterService) getSale(ctx context.Context, saleID string) (entities.Sale, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.salesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: saleID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}
	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (s *RegisterService) registerAdd(day string, delta float64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(s.registerTable),
			Key: map[string]types.AttributeValue{
				"day": &types.AttributeValueMemberS{Value: day},
			},
			UpdateExpression: aws.String("ADD #total :delta"),
			ExpressionAttributeNames: map[string]string{
				"#total": "total",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":delta": &types.AttributeValueMemberN{Value: strconv.FormatFloat(delta, 'f', -1, 64)},
			},
		},
	}
}

var (
	errSaleNotFound         = errors.New("sale not found")
	errGatewayNotConfigured = errors.New("payment gateway not configured for non-cash sale")
	errChargeNotApproved    = errors.New("provider charge not approved")
)

func registerDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func isConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toSaleItem(s entities.Sale) saleItem {
	it := saleItem{
		ID:                s.ID,
		OrderID:           s.OrderID,
		OrderNumber:       s.OrderNumber,
		Description:       s.Description,
		Amount:            s.Amount,
		Method:            s.Method,
		ProviderPaymentID: s.ProviderPaymentID,
		Status:            string(s.Status),
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.VoidedAt != nil {
		it.VoidedAt = s.VoidedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromSaleItem(it saleItem) entities.Sale {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.Sale{
		ID:                it.ID,
		OrderID:           it.OrderID,
		OrderNumber:       it.OrderNumber,
		Description:       it.Description,
		Amount:            it.Amount,
		Method:            it.Method,
		ProviderPaymentID: it.ProviderPaymentID,
		Status:            entities.SaleStatus(it.Status),
		CreatedAt:         createdAt,
	}
	if it.VoidedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.VoidedAt); err == nil {
			s.VoidedAt = &t
		}
	}
	return s
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
