package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Dynamo      DynamoConfig
	MercadoPago MercadoPagoConfig
	OpenAI      OpenAIConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"dev"`
	Port     string `envconfig:"APP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// DynamoConfig carries the document store connection settings.
//
// Local-friendly defaults: a local DynamoDB does not validate credentials,
// but the AWS SDK requires them to be present.
type DynamoConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	TablePrefix     string `envconfig:"DYNAMODB_TABLE_PREFIX"`
}

// MercadoPagoConfig configures the payment collaborator. With Mock enabled
// the gateway approves everything locally without calling the provider.
type MercadoPagoConfig struct {
	AccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock        bool   `envconfig:"MERCADOPAGO_MOCK" default:"false"`
}

type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	BaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}
