package repository

import (
	"context"
	"encoding/json"
	"time"

	"poolworks/internal/domain/entities"
	"poolworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName = "deposits"
	depositsByEstimateIndex  = "estimate_id-index"
)

type depositItem struct {
	ID                 string  `dynamodbav:"id"`
	EstimateID         string  `dynamodbav:"estimate_id"`
	Amount             float64 `dynamodbav:"amount"`
	Date               string  `dynamodbav:"date"`
	Status             string  `dynamodbav:"status"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty"`
}

// DepositDynamoRepository persists Deposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI estimate_id-index with PK estimate_id (string)
type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(d))
	if err != nil {
		return entities.Deposit{}, err
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
		return entities.Deposit{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Deposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsByEstimateIndex),
		KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	deposits := make([]entities.Deposit, 0, len(out.Items))
	for _, item := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		deposits = append(deposits, fromDepositItem(it))
	}
	return deposits, nil
}

func toDepositItem(d entities.Deposit) depositItem {
	return depositItem{
		ID:                 d.ID,
		EstimateID:         d.EstimateID,
		Amount:             d.Amount,
		Date:               d.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(d.Status),
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
	}
}

func fromDepositItem(it depositItem) entities.Deposit {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)

	d := entities.Deposit{
		ID:         it.ID,
		EstimateID: it.EstimateID,
		Amount:     it.Amount,
		Date:       date,
		Status:     entities.DepositStatus(it.Status),
	}
	if it.ProviderPayloadRaw != "" {
		d.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
		_ = json.Unmarshal(d.ProviderPayloadRaw, &d.ProviderPayload)
	}
	return d
}
