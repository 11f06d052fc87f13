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

const defaultBlogsTableName = "blogs"

type blogItem struct {
	ID              string          `dynamodbav:"id"`
	Title           string          `dynamodbav:"title"`
	Content         string          `dynamodbav:"content"`
	MetaDescription string          `dynamodbav:"meta_description"`
	Author          entities.Author `dynamodbav:"author"`
	Image           string          `dynamodbav:"image"`
	ImagePublicID   string          `dynamodbav:"image_public_id,omitempty"`
	Tags            []string        `dynamodbav:"tags,omitempty"`
	Published       bool            `dynamodbav:"published"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// BlogDynamoRepository persists Blog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BlogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBlogRepository = (*BlogDynamoRepository)(nil)

func NewBlogDynamoRepository(ddb *dynamodb.Client) *BlogDynamoRepository {
	return &BlogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BLOGS_TABLE", defaultBlogsTableName),
	}
}

func (r *BlogDynamoRepository) List(ctx context.Context) ([]entities.Blog, error) {
	var out []entities.Blog

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []blogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromBlogItem(it))
		}
	}

	sortByCreatedAtDesc(out, func(b entities.Blog) time.Time { return b.CreatedAt })
	return out, nil
}

func (r *BlogDynamoRepository) GetByID(ctx context.Context, id string) (entities.Blog, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Blog{}, err
	}
	if len(out.Item) == 0 {
		return entities.Blog{}, nil
	}

	var it blogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Blog{}, err
	}
	return fromBlogItem(it), nil
}

func (r *BlogDynamoRepository) Create(ctx context.Context, b entities.Blog) (entities.Blog, error) {
	av, err := attributevalue.MarshalMap(toBlogItem(b))
	if err != nil {
		return entities.Blog{}, err
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
		return entities.Blog{}, err
	}
	return b, nil
}

func (r *BlogDynamoRepository) Update(ctx context.Context, b entities.Blog) (entities.Blog, error) {
	av, err := attributevalue.MarshalMap(toBlogItem(b))
	if err != nil {
		return entities.Blog{}, err
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
			return entities.Blog{}, nil
		}
		return entities.Blog{}, err
	}
	return b, nil
}

func (r *BlogDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toBlogItem(b entities.Blog) blogItem {
	return blogItem{
		ID:              b.ID,
		Title:           b.Title,
		Content:         b.Content,
		MetaDescription: b.MetaDescription,
		Author:          b.Author,
		Image:           b.Image,
		ImagePublicID:   b.ImagePublicID,
		Tags:            b.Tags,
		Published:       b.Published,
		CreatedAt:       timeToString(b.CreatedAt),
		UpdatedAt:       timeToString(b.UpdatedAt),
	}
}

func fromBlogItem(it blogItem) entities.Blog {
	return entities.Blog{
		ID:              it.ID,
		Title:           it.Title,
		Content:         it.Content,
		MetaDescription: it.MetaDescription,
		Author:          it.Author,
		Image:           it.Image,
		ImagePublicID:   it.ImagePublicID,
		Tags:            it.Tags,
		Published:       it.Published,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
