package repository

import (
	"context"
	"errors"
	"time"

	"medipay/internal/domain/entities"
	"medipay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultCommissionTableName   = "commission_settings"
	defaultCommissionDescription = "Platform commission"
)

type commissionSettingItem struct {
	ID          string `dynamodbav:"id"`
	Percentage  string `dynamodbav:"commission_percentage"`
	Active      bool   `dynamodbav:"is_active"`
	Description string `dynamodbav:"description"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CommissionSettingDynamoRepository keeps the single active commission row.
//
// Table requirements:
//   - PK: id (string); the only row is entities.ActiveCommissionSettingID

type CommissionSettingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICommissionSettingRepository = (*CommissionSettingDynamoRepository)(nil)

func NewCommissionSettingDynamoRepository(ddb DynamoAPI, tableName string) *CommissionSettingDynamoRepository {
	return &CommissionSettingDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCommissionTableName),
	}
}

func (r *CommissionSettingDynamoRepository) GetActive(ctx context.Context) (entities.CommissionSetting, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(entities.ActiveCommissionSettingID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CommissionSetting{}, err
	}
	if len(out.Item) == 0 {
		return entities.CommissionSetting{}, nil
	}

	var it commissionSettingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommissionSetting{}, err
	}
	return fromCommissionSettingItem(it), nil
}

func (r *CommissionSettingDynamoRepository) CreateIfAbsent(ctx context.Context, s entities.CommissionSetting) (entities.CommissionSetting, error) {
	s.ID = entities.ActiveCommissionSettingID
	av, err := attributevalue.MarshalMap(toCommissionSettingItem(s))
	if err != nil {
		return entities.CommissionSetting{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err == nil {
		return s, nil
	}
	if errors.Is(conditionFailed(err), interfaces.ErrConditionFailed) {
		// Another request created the row first.
		return r.GetActive(ctx)
	}
	return entities.CommissionSetting{}, err
}

func (r *CommissionSettingDynamoRepository) Upsert(ctx context.Context, percentage decimal.Decimal, at time.Time) (entities.CommissionSetting, error) {
	now := formatTime(at)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(entities.ActiveCommissionSettingID),
		UpdateExpression: aws.String("SET #percentage = :percentage, #is_active = :active, #updated_at = :now, " +
			"#created_at = if_not_exists(#created_at, :now), #description = if_not_exists(#description, :description)"),
		ExpressionAttributeNames: map[string]string{
			"#percentage":  "commission_percentage",
			"#is_active":   "is_active",
			"#updated_at":  "updated_at",
			"#created_at":  "created_at",
			"#description": "description",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":percentage":  &types.AttributeValueMemberS{Value: formatDecimal(percentage)},
			":active":      &types.AttributeValueMemberBOOL{Value: true},
			":now":         &types.AttributeValueMemberS{Value: now},
			":description": &types.AttributeValueMemberS{Value: defaultCommissionDescription},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.CommissionSetting{}, err
	}

	var it commissionSettingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CommissionSetting{}, err
	}
	return fromCommissionSettingItem(it), nil
}

func toCommissionSettingItem(s entities.CommissionSetting) commissionSettingItem {
	return commissionSettingItem{
		ID:          s.ID,
		Percentage:  formatDecimal(s.Percentage),
		Active:      s.Active,
		Description: s.Description,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromCommissionSettingItem(it commissionSettingItem) entities.CommissionSetting {
	return entities.CommissionSetting{
		ID:          it.ID,
		Percentage:  parseDecimal(it.Percentage),
		Active:      it.Active,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
