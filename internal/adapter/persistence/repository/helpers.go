package repository

import (
	"errors"
	"os"
	"strconv"
	"time"

	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errMissingCounterValue = errors.New("counter update returned no numeric value")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// mapConditionErr translates DynamoDB conditional failures, including ones
// buried inside a cancelled transaction, into interfaces.ErrConditionFailed.
// Any other error passes through unchanged.
func mapConditionErr(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionFailed
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return interfaces.ErrConditionFailed
			}
		}
	}
	return err
}

// orderAddTransact builds the transaction element that adjusts a numeric
// counter on the order row (total or paid_total) with an ADD expression, so
// concurrent writers accumulate instead of overwriting each other.
func orderAddTransact(ordersTable, orderID, attr string, delta float64, now time.Time) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(ordersTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: orderID},
			},
			UpdateExpression:    aws.String("SET #updated_at = :updated_at ADD #attr :delta"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#attr":       attr,
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":delta":      &types.AttributeValueMemberN{Value: floatToString(delta)},
				":updated_at": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
			},
		},
	}
}
