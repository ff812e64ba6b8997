// Package app wires configuration into a ready chat service for the binaries.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"ippt-coach/internal/answers"
	"ippt-coach/internal/config"
	"ippt-coach/internal/dialog"
	"ippt-coach/internal/integrations/paramstore"
	"ippt-coach/internal/repository"
	"ippt-coach/internal/scoring"
	"ippt-coach/internal/usecase"
)

// answersParam is the parameter, relative to the prefix, holding the answers YAML.
const answersParam = "answers"

// AWSConfigLoader loads AWS SDK configuration. It is only called when the
// DynamoDB backend or the parameter store is in use.
type AWSConfigLoader func(ctx context.Context) (aws.Config, error)

// DefaultAWSConfig loads the SDK's default credential chain.
func DefaultAWSConfig(ctx context.Context) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx)
}

// Service is a wired chat service plus the resources it holds.
type Service struct {
	Chat   *usecase.ChatService
	closer io.Closer
}

// Close releases the session store connection, if any.
func (s *Service) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Build creates the session store, answer catalog and chat service from cfg.
func Build(ctx context.Context, cfg *config.Config, loadAWS AWSConfigLoader, rec usecase.Recorder) (*Service, error) {
	if loadAWS == nil {
		loadAWS = DefaultAWSConfig
	}
	var awsCfg *aws.Config
	awsConfig := func() (aws.Config, error) {
		if awsCfg != nil {
			return *awsCfg, nil
		}
		c, err := loadAWS(ctx)
		if err != nil {
			return aws.Config{}, fmt.Errorf("app: load AWS config: %w", err)
		}
		awsCfg = &c
		return c, nil
	}

	catalog := answers.Default()
	if cfg.UsesParamStore() {
		c, err := awsConfig()
		if err != nil {
			return nil, err
		}
		params, err := paramstore.New(awsssm.NewFromConfig(c), cfg.ParamPrefix)
		if err != nil {
			return nil, fmt.Errorf("app: create SSM client: %w", err)
		}
		catalog, err = answers.LoadFromParams(ctx, params, answersParam)
		if err != nil {
			return nil, fmt.Errorf("app: load answers: %w", err)
		}
		slog.Info("answer catalog loaded", "param", params.Name(answersParam))
	}

	var (
		store  usecase.SessionStore
		closer io.Closer
	)
	switch cfg.SessionBackend {
	case config.BackendDynamoDB:
		c, err := awsConfig()
		if err != nil {
			return nil, err
		}
		s, err := repository.New(awsdynamodb.NewFromConfig(c), cfg.StateTable, cfg.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("app: create session store: %w", err)
		}
		store = s
	case config.BackendRedis:
		s, err := repository.NewRedisStore(ctx, repository.RedisConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			SessionTTL: cfg.SessionTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("app: create session store: %w", err)
		}
		store, closer = s, s
	default:
		store = repository.NewMemoryStore(cfg.SessionTTL)
	}

	machine, err := dialog.New(catalog, scoring.NewEngine(nil))
	if err != nil {
		return nil, err
	}
	chat, err := usecase.NewChatService(store, machine, rec, cfg.MaxMessageLength)
	if err != nil {
		return nil, err
	}
	slog.Info("chat service ready", "session_backend", cfg.SessionBackend, "session_ttl", cfg.SessionTTL)
	return &Service{Chat: chat, closer: closer}, nil
}
