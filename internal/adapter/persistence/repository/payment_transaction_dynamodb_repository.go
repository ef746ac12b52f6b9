package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentTransactionsTableName = "payment_transactions"
	paymentTransactionsUserIDIndex      = "user_id-index"
)

type paymentTransactionItem struct {
	OrderID            string                 `dynamodbav:"order_id"`
	UserID             string                 `dynamodbav:"user_id"`
	Amount             float64                `dynamodbav:"amount"`
	Currency           string                 `dynamodbav:"currency"`
	PaymentType        string                 `dynamodbav:"payment_type"`
	ReferenceID        string                 `dynamodbav:"reference_id"`
	ReferenceType      string                 `dynamodbav:"reference_type"`
	Description        string                 `dynamodbav:"description,omitempty"`
	Status             string                 `dynamodbav:"status"`
	TransactionID      string                 `dynamodbav:"transaction_id,omitempty"`
	GatewayResponse    map[string]interface{} `dynamodbav:"gateway_response,omitempty"`
	GatewayResponseRaw string                 `dynamodbav:"gateway_response_raw,omitempty"`
	CreatedAt          string                 `dynamodbav:"created_at"`
	UpdatedAt          string                 `dynamodbav:"updated_at"`
}

// PaymentTransactionDynamoRepository persists PaymentTransaction entities in
// DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: user_id-index (PK: user_id)

type PaymentTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb *dynamodb.Client) *PaymentTransactionDynamoRepository {
	return &PaymentTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_TRANSACTIONS_TABLE", defaultPaymentTransactionsTableName),
	}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	it := toPaymentTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	// order_id is immutable and unique for the lifetime of the record.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return tx, nil
}

func (r *PaymentTransactionDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentTransactionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentTransactionItem(it))
	}
	return items, nil
}

func (r *PaymentTransactionDynamoRepository) UpdateStatus(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID string, gatewayResponse json.RawMessage) (entities.PaymentTransaction, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	if transactionID != "" {
		expr += ", #transaction_id = :transaction_id"
		values[":transaction_id"] = &types.AttributeValueMemberS{Value: transactionID}
		names["#transaction_id"] = "transaction_id"
	}
	if len(gatewayResponse) > 0 {
		expr += ", #gateway_response_raw = :gateway_response_raw"
		values[":gateway_response_raw"] = &types.AttributeValueMemberS{Value: string(gatewayResponse)}
		names["#gateway_response_raw"] = "gateway_response_raw"

		var parsed map[string]interface{}
		if err := json.Unmarshal(gatewayResponse, &parsed); err == nil && len(parsed) > 0 {
			av, err := attributevalue.Marshal(parsed)
			if err == nil {
				expr += ", #gateway_response = :gateway_response"
				values[":gateway_response"] = av
				names["#gateway_response"] = "gateway_response"
			}
		}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression:       aws.String("attribute_exists(#order_id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#order_id": "order_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentTransaction{}, nil
		}
		return entities.PaymentTransaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func toPaymentTransactionItem(tx entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		OrderID:            tx.OrderID,
		UserID:             tx.UserID,
		Amount:             tx.Amount,
		Currency:           tx.Currency,
		PaymentType:        string(tx.PaymentType),
		ReferenceID:        tx.ReferenceID,
		ReferenceType:      string(tx.ReferenceType),
		Description:        tx.Description,
		Status:             string(tx.Status),
		TransactionID:      tx.TransactionID,
		GatewayResponse:    tx.GatewayResponse,
		GatewayResponseRaw: string(tx.GatewayResponseRaw),
		CreatedAt:          tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentTransaction{
		OrderID:            it.OrderID,
		UserID:             it.UserID,
		Amount:             it.Amount,
		Currency:           it.Currency,
		PaymentType:        entities.PaymentType(it.PaymentType),
		ReferenceID:        it.ReferenceID,
		ReferenceType:      entities.ReferenceType(it.ReferenceType),
		Description:        it.Description,
		Status:             entities.PaymentStatus(it.Status),
		TransactionID:      it.TransactionID,
		GatewayResponse:    it.GatewayResponse,
		GatewayResponseRaw: []byte(it.GatewayResponseRaw),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
