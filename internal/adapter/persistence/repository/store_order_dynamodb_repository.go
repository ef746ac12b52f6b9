package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStoreOrdersTableName = "store_orders"

type storeOrderItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Status    string `dynamodbav:"status"`
	Total     string `dynamodbav:"total"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// StoreOrderDynamoRepository persists StoreOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type StoreOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStoreOrderRepository = (*StoreOrderDynamoRepository)(nil)

func NewStoreOrderDynamoRepository(ddb *dynamodb.Client) *StoreOrderDynamoRepository {
	return &StoreOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORE_ORDERS_TABLE", defaultStoreOrdersTableName),
	}
}

func (r *StoreOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.StoreOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoreOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoreOrder{}, nil
	}

	var it storeOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoreOrder{}, err
	}
	return fromStoreOrderItem(it), nil
}

func (r *StoreOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.StoreOrderStatus) (entities.StoreOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
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
			return entities.StoreOrder{}, nil
		}
		return entities.StoreOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.StoreOrder{}, nil
	}

	var it storeOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StoreOrder{}, err
	}
	return fromStoreOrderItem(it), nil
}

func fromStoreOrderItem(it storeOrderItem) entities.StoreOrder {
	total, _ := strconv.ParseFloat(it.Total, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.StoreOrder{
		ID:        it.ID,
		UserID:    it.UserID,
		Status:    entities.StoreOrderStatus(it.Status),
		Total:     total,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
