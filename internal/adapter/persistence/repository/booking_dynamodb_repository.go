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

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	TempleID      string `dynamodbav:"temple_id"`
	Status        string `dynamodbav:"status"`
	ScheduledDate string `dynamodbav:"scheduled_date"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
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
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func fromBookingItem(it bookingItem) entities.Booking {
	scheduled, _ := time.Parse(time.RFC3339Nano, it.ScheduledDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Booking{
		ID:            it.ID,
		UserID:        it.UserID,
		TempleID:      it.TempleID,
		Status:        entities.BookingStatus(it.Status),
		ScheduledDate: scheduled,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
