package repository

import (
	"context"
	"errors"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID               string            `dynamodbav:"id"`
	ProductName      string            `dynamodbav:"product_name"`
	Category         string            `dynamodbav:"category"`
	Subcategory      string            `dynamodbav:"subcategory"`
	ShortDescription string            `dynamodbav:"short_description"`
	Description      string            `dynamodbav:"description"`
	Price            string            `dynamodbav:"price"`
	OriginalPrice    string            `dynamodbav:"original_price"`
	StockQuantity    int               `dynamodbav:"stock_quantity"`
	Brand            string            `dynamodbav:"brand"`
	Features         []string          `dynamodbav:"features"`
	Specifications   map[string]string `dynamodbav:"specifications"`
	Image            string            `dynamodbav:"image"`
	ImagePublicID    string            `dynamodbav:"image_public_id,omitempty"`
	InStock          bool              `dynamodbav:"in_stock"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	var out []entities.Product

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromProductItem(it))
		}
	}

	sortByCreatedAtDesc(out, func(p entities.Product) time.Time { return p.CreatedAt })
	return out, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:               p.ID,
		ProductName:      p.ProductName,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Price:            floatToString(p.Price),
		OriginalPrice:    floatToString(p.OriginalPrice),
		StockQuantity:    p.StockQuantity,
		Brand:            p.Brand,
		Features:         p.Features,
		Specifications:   p.Specifications,
		Image:            p.Image,
		ImagePublicID:    p.ImagePublicID,
		InStock:          p.InStock,
		CreatedAt:        timeToString(p.CreatedAt),
		UpdatedAt:        timeToString(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:               it.ID,
		ProductName:      it.ProductName,
		Category:         it.Category,
		Subcategory:      it.Subcategory,
		ShortDescription: it.ShortDescription,
		Description:      it.Description,
		Price:            parseFloat(it.Price),
		OriginalPrice:    parseFloat(it.OriginalPrice),
		StockQuantity:    it.StockQuantity,
		Brand:            it.Brand,
		Features:         it.Features,
		Specifications:   it.Specifications,
		Image:            it.Image,
		ImagePublicID:    it.ImagePublicID,
		InStock:          it.InStock,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
