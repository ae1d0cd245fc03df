package repository

import (
	"context"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Available bool   `dynamodbav:"available"`
}

// ProductDynamoRepository reads the product catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is owned elsewhere; this service never writes it.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return entities.Product{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: stringToFloat(it.UnitPrice),
		Available: it.Available,
	}, nil
}
