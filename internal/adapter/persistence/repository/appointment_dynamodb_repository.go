package repository

import (
	"context"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID          string `dynamodbav:"id"`
	PatientID   string `dynamodbav:"patient_id"`
	HospitalID  string `dynamodbav:"hospital_id"`
	Service     string `dynamodbav:"service"`
	ScheduledAt string `dynamodbav:"scheduled_at"`
	Status      string `dynamodbav:"status"`
	TotalAmount string `dynamodbav:"total_amount"`
	PaidAmount  string `dynamodbav:"paid_amount"`
	Version     int64  `dynamodbav:"version"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write after the first is conditioned on the version that was read.

type AppointmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI, tableName string) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, conditionFailed(err)
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment, expectedVersion int64) (entities.Appointment, error) {
	a.Version = expectedVersion + 1
	put, err := r.versionedPut(a, expectedVersion)
	if err != nil {
		return entities.Appointment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		return entities.Appointment{}, conditionFailed(err)
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Appointment, 0, len(raw))
	for _, av := range raw {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAppointmentItem(it))
	}
	return items, nil
}

// versionedPut builds the conditional put shared by Update and payment
// settlement transactions.
func (r *AppointmentDynamoRepository) versionedPut(a entities.Appointment, expectedVersion int64) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return nil, err
	}
	expected, err := attributevalue.Marshal(expectedVersion)
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected_version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected_version": expected,
		},
	}, nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:          a.ID,
		PatientID:   a.PatientID,
		HospitalID:  a.HospitalID,
		Service:     a.Service,
		ScheduledAt: formatTime(a.ScheduledAt),
		Status:      string(a.Status),
		TotalAmount: formatDecimal(a.TotalAmount),
		PaidAmount:  formatDecimal(a.PaidAmount),
		Version:     a.Version,
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:          it.ID,
		PatientID:   it.PatientID,
		HospitalID:  it.HospitalID,
		Service:     it.Service,
		ScheduledAt: parseTime(it.ScheduledAt),
		Status:      entities.AppointmentStatus(it.Status),
		TotalAmount: parseDecimal(it.TotalAmount),
		PaidAmount:  parseDecimal(it.PaidAmount),
		Version:     it.Version,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
