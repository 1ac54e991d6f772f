package repository

import (
	"context"
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "payments"
	paymentsOrderIDIndex       = "gateway_order_id-index"
	paymentsAppointmentIDIndex = "appointment_id-index"
	paymentsStatusCreatedIndex = "status-created_at-index"
)

type paymentItem struct {
	ID                   string `dynamodbav:"id"`
	AppointmentID        string `dynamodbav:"appointment_id"`
	Kind                 string `dynamodbav:"kind"`
	Currency             string `dynamodbav:"currency"`
	GatewayOrderID       string `dynamodbav:"gateway_order_id"`
	GatewayPaymentID     string `dynamodbav:"gateway_payment_id,omitempty"`
	GatewaySignature     string `dynamodbav:"gateway_signature,omitempty"`
	TotalAmount          string `dynamodbav:"total_amount"`
	AdminCommission      string `dynamodbav:"admin_commission"`
	HospitalPayout       string `dynamodbav:"hospital_payout"`
	CommissionPercentage string `dynamodbav:"commission_percentage"`
	Status               string `dynamodbav:"status"`
	FailureReason        string `dynamodbav:"failure_reason,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
	GatewayOrderPayload  string `dynamodbav:"gateway_order_payload,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: gateway_order_id-index (PK: gateway_order_id)
//   - GSI: appointment_id-index (PK: appointment_id), projection ALL
//   - GSI: status-created_at-index (PK: status, SK: created_at), projection ALL
//
// Settlement writes the payment and its appointment with TransactWriteItems,
// so the appointment table must live in the same region and account.

type PaymentDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	appointments *AppointmentDynamoRepository
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string, appointments *AppointmentDynamoRepository) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:          ddb,
		tableName:    tableOrDefault(tableName, defaultPaymentsTableName),
		appointments: appointments,
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, conditionFailed(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// GetByOrderID resolves the order through its GSI and then re-reads the item
// by key, since index reads are only eventually consistent.
func (r *PaymentDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("gateway_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *PaymentDynamoRepository) ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsAppointmentIDIndex),
		KeyConditionExpression: aws.String("appointment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: appointmentID},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromPaymentItems(raw)
}

func (r *PaymentDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus, from, to time.Time) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName: aws.String(r.tableName),
		IndexName: aws.String(paymentsStatusCreatedIndex),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}
	in.KeyConditionExpression = aws.String(statusRangeCondition(in, from, to))

	raw, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return fromPaymentItems(raw)
}

func statusRangeCondition(in *dynamodb.QueryInput, from, to time.Time) string {
	cond := "#status = :status"
	if from.IsZero() && to.IsZero() {
		return cond
	}
	in.ExpressionAttributeNames["#created_at"] = "created_at"
	switch {
	case !from.IsZero() && !to.IsZero():
		in.ExpressionAttributeValues[":from"] = &types.AttributeValueMemberS{Value: formatTime(from)}
		in.ExpressionAttributeValues[":to"] = &types.AttributeValueMemberS{Value: formatTime(to)}
		return cond + " AND #created_at BETWEEN :from AND :to"
	case !from.IsZero():
		in.ExpressionAttributeValues[":from"] = &types.AttributeValueMemberS{Value: formatTime(from)}
		return cond + " AND #created_at >= :from"
	default:
		in.ExpressionAttributeValues[":to"] = &types.AttributeValueMemberS{Value: formatTime(to)}
		return cond + " AND #created_at <= :to"
	}
}

// Settle writes the verified payment and the confirmed appointment in one
// transaction. Either condition failing cancels both writes.
func (r *PaymentDynamoRepository) Settle(ctx context.Context, s interfaces.Settlement) error {
	payment, err := attributevalue.MarshalMap(toPaymentItem(s.Payment))
	if err != nil {
		return err
	}
	appt := s.Appointment
	appt.Version = s.ExpectedAppointmentVersion + 1
	apptPut, err := r.appointments.versionedPut(appt, s.ExpectedAppointmentVersion)
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                payment,
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
					},
				},
			},
			{Put: apptPut},
		},
	})
	return conditionFailed(err)
}

func (r *PaymentDynamoRepository) MarkFailed(ctx context.Context, id, reason string, at time.Time) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :failed, #failure_reason = :reason, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#failure_reason": "failure_reason",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":failed":     &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, conditionFailed(err)
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func fromPaymentItems(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                   p.ID,
		AppointmentID:        p.AppointmentID,
		Kind:                 string(p.Kind),
		Currency:             p.Currency,
		GatewayOrderID:       p.GatewayOrderID,
		GatewayPaymentID:     p.GatewayPaymentID,
		GatewaySignature:     p.GatewaySignature,
		TotalAmount:          formatDecimal(p.TotalAmount),
		AdminCommission:      formatDecimal(p.AdminCommission),
		HospitalPayout:       formatDecimal(p.HospitalPayout),
		CommissionPercentage: formatDecimal(p.CommissionPercentage),
		Status:               string(p.Status),
		FailureReason:        p.FailureReason,
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
		GatewayOrderPayload:  string(p.GatewayOrderPayload),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                   it.ID,
		AppointmentID:        it.AppointmentID,
		Kind:                 entities.PaymentKind(it.Kind),
		Currency:             it.Currency,
		GatewayOrderID:       it.GatewayOrderID,
		GatewayPaymentID:     it.GatewayPaymentID,
		GatewaySignature:     it.GatewaySignature,
		TotalAmount:          parseDecimal(it.TotalAmount),
		AdminCommission:      parseDecimal(it.AdminCommission),
		HospitalPayout:       parseDecimal(it.HospitalPayout),
		CommissionPercentage: parseDecimal(it.CommissionPercentage),
		Status:               entities.PaymentStatus(it.Status),
		FailureReason:        it.FailureReason,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.GatewayOrderPayload != "" {
		p.GatewayOrderPayload = []byte(it.GatewayOrderPayload)
	}
	return p
}
