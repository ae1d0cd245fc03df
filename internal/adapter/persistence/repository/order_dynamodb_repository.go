package repository

import (
	"context"
	"errors"
	"time"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersExternalRefIndex = "external_reference-index"
)

type orderItemRecord struct {
	ProductID string  `dynamodbav:"product_id"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

type orderRecord struct {
	ID                string            `dynamodbav:"id"`
	Status            string            `dynamodbav:"status"`
	TotalAmount       string            `dynamodbav:"total_amount"`
	Items             []orderItemRecord `dynamodbav:"items"`
	ExternalReference string            `dynamodbav:"external_reference"`
	PaymentMethod     string            `dynamodbav:"payment_method"`
	GatewayOrderID    string            `dynamodbav:"gateway_order_id,omitempty"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_reference-index (PK: external_reference)
//
// TransitionStatus relies on a ConditionExpression so the status write is an
// atomic compare-and-set at the storage layer; concurrent duplicate deliveries
// never read-then-write.

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

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderRecord(o)
	av, err := attributevalue.MarshalMap(it)
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

	var it orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(it), nil
}

func (r *OrderDynamoRepository) GetByExternalReference(ctx context.Context, externalReference string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersExternalRefIndex),
		KeyConditionExpression: aws.String("external_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalReference},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(it), nil
}

func (r *OrderDynamoRepository) SetGatewayOrderID(ctx context.Context, id, gatewayOrderID string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #gateway_order_id = :gid, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid":        &types.AttributeValueMemberS{Value: gatewayOrderID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#gateway_order_id": "gateway_order_id",
			"#updated_at":       "updated_at",
		},
	})
	return err
}

// TransitionStatus writes to only succeed while the stored status still equals
// from. A failed condition is not an error: it reports applied == false so the
// caller can treat the duplicate delivery as a no-op.
func (r *OrderDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, false, nil
		}
		return entities.Order{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, false, nil
	}

	var it orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, false, err
	}
	return fromOrderRecord(it), true, nil
}

func (r *OrderDynamoRepository) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :pending AND #created_at < :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":cutoff":  &types.AttributeValueMemberS{Value: olderThan.UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#created_at": "created_at",
		},
		Limit: aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderRecord(it))
	}
	return orders, nil
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemRecord{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return orderRecord{
		ID:                o.ID,
		Status:            string(o.Status),
		TotalAmount:       floatToString(o.TotalAmount),
		Items:             items,
		ExternalReference: o.ExternalReference,
		PaymentMethod:     string(o.PaymentMethod),
		GatewayOrderID:    o.GatewayOrderID,
		CreatedAt:         o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderRecord(it orderRecord) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, rec := range it.Items {
		items = append(items, entities.OrderItem{ProductID: rec.ProductID, Quantity: rec.Quantity, UnitPrice: rec.UnitPrice})
	}
	return entities.Order{
		ID:                it.ID,
		Status:            entities.OrderStatus(it.Status),
		TotalAmount:       stringToFloat(it.TotalAmount),
		Items:             items,
		ExternalReference: it.ExternalReference,
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		GatewayOrderID:    it.GatewayOrderID,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
