package broker

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jasonwu001t/taicfg/internal/creds"
)

// DynamoDBClient wraps the AWS SDK v2 DynamoDB client.
type DynamoDBClient struct {
	api *dynamodb.Client
}

// NewDynamoDB builds a DynamoDB client with a static credentials provider.
// The settings-sourced key pair takes the place of the default chain so
// the check exercises exactly the credentials being verified.
func NewDynamoDB(ctx context.Context, cfg creds.AWS) (*DynamoDBClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return &DynamoDBClient{api: dynamodb.NewFromConfig(awsCfg)}, nil
}

// API exposes the SDK client for table operations.
func (c *DynamoDBClient) API() *dynamodb.Client {
	return c.api
}

// Ping issues the cheapest authenticated call available.
func (c *DynamoDBClient) Ping(ctx context.Context) error {
	_, err := c.api.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)})
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	return nil
}
