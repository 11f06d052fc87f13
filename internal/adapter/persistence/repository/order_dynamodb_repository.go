package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                string               `dynamodbav:"id"`
	Customer          entities.Customer    `dynamodbav:"customer"`
	Items             []entities.OrderItem `dynamodbav:"items"`
	Amount            string               `dynamodbav:"amount"`
	Status            string               `dynamodbav:"status"`
	PaymentStatus     string               `dynamodbav:"payment_status"`
	PaymentRef        string               `dynamodbav:"payment_ref,omitempty"`
	GatewayPayloadRaw string               `dynamodbav:"gateway_payload_raw,omitempty"`
	CreatedAt         string               `dynamodbav:"created_at"`
	UpdatedAt         string               `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status and payment changes are partial update expressions so concurrent
// field updates never clobber the rest of the row.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var out []entities.Order

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromOrderItem(it))
		}
	}

	sortByCreatedAtDesc(out, func(o entities.Order) time.Time { return o.CreatedAt })
	return out, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePayment(ctx context.Context, id string, status entities.PaymentStatus, ref string, payloadRaw json.RawMessage) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :payment_status, #payment_ref = :payment_ref, #gateway_payload_raw = :gateway_payload_raw, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_status":      &types.AttributeValueMemberS{Value: string(status)},
			":payment_ref":         &types.AttributeValueMemberS{Value: ref},
			":gateway_payload_raw": &types.AttributeValueMemberS{Value: string(payloadRaw)},
			":updated_at":          &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status":      "payment_status",
			"#payment_ref":         "payment_ref",
			"#gateway_payload_raw": "gateway_payload_raw",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                o.ID,
		Customer:          o.Customer,
		Items:             o.Items,
		Amount:            floatToString(o.Amount),
		Status:            string(o.Status),
		PaymentStatus:     string(o.PaymentStatus),
		PaymentRef:        o.PaymentRef,
		GatewayPayloadRaw: string(o.GatewayPayloadRaw),
		CreatedAt:         timeToString(o.CreatedAt),
		UpdatedAt:         timeToString(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	var raw json.RawMessage
	if it.GatewayPayloadRaw != "" {
		raw = json.RawMessage(it.GatewayPayloadRaw)
	}
	return entities.Order{
		ID:                it.ID,
		Customer:          it.Customer,
		Items:             it.Items,
		Amount:            parseFloat(it.Amount),
		Status:            entities.OrderStatus(it.Status),
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		PaymentRef:        it.PaymentRef,
		GatewayPayloadRaw: raw,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
