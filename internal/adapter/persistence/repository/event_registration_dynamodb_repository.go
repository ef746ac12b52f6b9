package repository

import (
	"context"
	"errors"
	"time"

	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEventRegistrationsTableName = "event_registrations"

type eventRegistrationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	EventID   string `dynamodbav:"event_id"`
	EventDate string `dynamodbav:"event_date"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EventRegistrationDynamoRepository persists EventRegistration entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EventRegistrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventRegistrationRepository = (*EventRegistrationDynamoRepository)(nil)

func NewEventRegistrationDynamoRepository(ddb *dynamodb.Client) *EventRegistrationDynamoRepository {
	return &EventRegistrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENT_REGISTRATIONS_TABLE", defaultEventRegistrationsTableName),
	}
}

func (r *EventRegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.EventRegistration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EventRegistration{}, err
	}
	if len(out.Item) == 0 {
		return entities.EventRegistration{}, nil
	}

	var it eventRegistrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EventRegistration{}, err
	}
	return fromEventRegistrationItem(it), nil
}

func (r *EventRegistrationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EventRegistrationStatus) (entities.EventRegistration, error) {
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
			return entities.EventRegistration{}, nil
		}
		return entities.EventRegistration{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EventRegistration{}, nil
	}

	var it eventRegistrationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EventRegistration{}, err
	}
	return fromEventRegistrationItem(it), nil
}

func fromEventRegistrationItem(it eventRegistrationItem) entities.EventRegistration {
	eventDate, _ := time.Parse(time.RFC3339Nano, it.EventDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.EventRegistration{
		ID:        it.ID,
		UserID:    it.UserID,
		EventID:   it.EventID,
		EventDate: eventDate,
		Status:    entities.EventRegistrationStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
