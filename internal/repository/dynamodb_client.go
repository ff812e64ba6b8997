package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"ippt-coach/internal/domain"
)

const (
	skState = "STATE"

	DefaultSessionTTL = 30 * time.Minute
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Client stores one session document per item in a DynamoDB table.
// Items carry a ttl attribute so the table's TTL setting reaps idle sessions.
type Client struct {
	api       dynamodbAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

// New creates a new repository Client. A non-positive ttl uses DefaultSessionTTL.
func New(api dynamodbAPI, tableName string, ttl time.Duration) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Client{api: api, tableName: tableName, ttl: ttl, now: time.Now}, nil
}

// sessionPK returns the DynamoDB partition key for a session.
func sessionPK(sessionID string) string {
	return "SESSION#" + sessionID
}

func (c *Client) key(sessionID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: sessionPK(sessionID)},
		"SK": &types.AttributeValueMemberS{Value: skState},
	}
}

// Load returns the stored session, or a zero session when none exists.
// DynamoDB deletes expired items lazily, so an item past its ttl is treated as missing.
func (c *Client) Load(ctx context.Context, sessionID string) (domain.Session, error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.tableName),
		Key:            c.key(sessionID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("repository: Load get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.Session{}, nil
	}

	if expires, err := intAttr(out.Item, "ttl"); err == nil && int64(expires) <= c.now().Unix() {
		return domain.Session{}, nil
	}

	raw, err := strAttr(out.Item, "state")
	if err != nil {
		return domain.Session{}, fmt.Errorf("repository: Load: %w", err)
	}
	var s domain.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return domain.Session{}, fmt.Errorf("repository: Load decode state: %w", err)
	}
	return s, nil
}

// Save replaces the stored session and pushes its expiry forward.
func (c *Client) Save(ctx context.Context, sessionID string, s domain.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("repository: Save encode state: %w", err)
	}
	now := c.now().UTC()
	item := c.key(sessionID)
	item["state"] = &types.AttributeValueMemberS{Value: string(raw)}
	item["updatedAt"] = &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)}
	item["ttl"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Add(c.ttl).Unix(), 10)}

	_, err = c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("repository: Save: %w", err)
	}
	return nil
}

// Delete removes the stored session. Deleting a missing session is not an error.
func (c *Client) Delete(ctx context.Context, sessionID string) error {
	_, err := c.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.tableName),
		Key:       c.key(sessionID),
	})
	if err != nil {
		return fmt.Errorf("repository: Delete: %w", err)
	}
	return nil
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

func intAttr(item map[string]types.AttributeValue, key string) (int, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
