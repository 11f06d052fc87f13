package repository

import (
	"context"
	"strings"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultQuotesTableName = "quote_requests"

type quoteItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	Email         string   `dynamodbav:"email"`
	Phone         string   `dynamodbav:"phone,omitempty"`
	Company       string   `dynamodbav:"company,omitempty"`
	TrackingType  string   `dynamodbav:"tracking_type"`
	DeviceCount   string   `dynamodbav:"device_count"`
	Services      []string `dynamodbav:"services,omitempty"`
	EstimatedCost int      `dynamodbav:"estimated_cost"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists submitted quote requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	var out []entities.QuoteRequest

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromQuoteItem(it))
		}
	}

	sortByCreatedAtDesc(out, func(q entities.QuoteRequest) time.Time { return q.CreatedAt })
	return out, nil
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	services := make([]string, 0, len(q.Selection.Services))
	for _, s := range q.Selection.Services {
		services = append(services, string(s))
	}
	return quoteItem{
		ID:            q.ID,
		Name:          q.Name,
		Email:         strings.ToLower(q.Email),
		Phone:         q.Phone,
		Company:       q.Company,
		TrackingType:  string(q.Selection.TrackingType),
		DeviceCount:   q.Selection.DeviceCount,
		Services:      services,
		EstimatedCost: q.EstimatedCost,
		CreatedAt:     timeToString(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	services := make([]entities.AddOnService, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.AddOnService(s))
	}
	return entities.QuoteRequest{
		ID:      it.ID,
		Name:    it.Name,
		Email:   it.Email,
		Phone:   it.Phone,
		Company: it.Company,
		Selection: entities.QuoteSelection{
			TrackingType: entities.TrackingType(it.TrackingType),
			DeviceCount:  it.DeviceCount,
			Services:     services,
		},
		EstimatedCost: it.EstimatedCost,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
