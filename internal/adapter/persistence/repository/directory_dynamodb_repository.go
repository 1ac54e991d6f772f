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

// DirectoryTables names the tables owned by the registration and hospital
// directory services.
type DirectoryTables struct {
	Hospitals string
	Users     string
	Contacts  string
}

type hospitalItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	City      string `dynamodbav:"city"`
	Approved  bool   `dynamodbav:"is_approved"`
	OwnerID   string `dynamodbav:"owner_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

type userItem struct {
	ID     string `dynamodbav:"id"`
	Name   string `dynamodbav:"name"`
	Email  string `dynamodbav:"email"`
	Role   string `dynamodbav:"role"`
	Active bool   `dynamodbav:"is_active"`
}

// DirectoryDynamoRepository reads hospitals, users and contact enquiries. It
// never writes to these tables.
type DirectoryDynamoRepository struct {
	ddb    DynamoAPI
	tables DirectoryTables
}

var _ interfaces.IDirectory = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb DynamoAPI, tables DirectoryTables) *DirectoryDynamoRepository {
	tables.Hospitals = tableOrDefault(tables.Hospitals, "hospitals")
	tables.Users = tableOrDefault(tables.Users, "users")
	tables.Contacts = tableOrDefault(tables.Contacts, "contacts")
	return &DirectoryDynamoRepository{ddb: ddb, tables: tables}
}

func (r *DirectoryDynamoRepository) GetHospital(ctx context.Context, id string) (entities.Hospital, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Hospitals),
		Key:       stringKey(id),
	})
	if err != nil {
		return entities.Hospital{}, err
	}
	if len(out.Item) == 0 {
		return entities.Hospital{}, nil
	}
	var it hospitalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Hospital{}, err
	}
	return fromHospitalItem(it), nil
}

func (r *DirectoryDynamoRepository) GetUser(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Users),
		Key:       stringKey(id),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:     it.ID,
		Name:   it.Name,
		Email:  it.Email,
		Role:   entities.UserRole(it.Role),
		Active: it.Active,
	}, nil
}

func (r *DirectoryDynamoRepository) ListHospitals(ctx context.Context) ([]entities.Hospital, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tables.Hospitals)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Hospital, 0, len(raw))
	for _, av := range raw {
		var it hospitalItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromHospitalItem(it))
	}
	return items, nil
}

func (r *DirectoryDynamoRepository) CountPendingEnquiries(ctx context.Context) (int, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tables.Contacts),
		Select:           types.SelectCount,
		FilterExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ContactStatusPending)},
		},
	}

	total := 0
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func fromHospitalItem(it hospitalItem) entities.Hospital {
	return entities.Hospital{
		ID:        it.ID,
		Name:      it.Name,
		City:      it.City,
		Approved:  it.Approved,
		OwnerID:   it.OwnerID,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
