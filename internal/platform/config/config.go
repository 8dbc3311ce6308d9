package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string

	// AI gateway (OpenAI-compatible chat completions endpoint).
	GatewayBaseURL string
	GatewayAPIKey  string
	GatewayTimeout time.Duration

	// Model routing per pipeline stage.
	IntentModel    string
	StrategyModel  string
	PlannerModel   string
	SynthesisModel string
	ImageModel     string

	// Object storage for inspiration images, templates and generated assets.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioRegion    string
	BucketUploads  string
	BucketAssets   string

	CampaignCreditCost    int
	TemplateRewardCredits int
	RefundOnFailure       bool

	EnableOutboxRelay bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "agencyx"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	gatewayURL := os.Getenv("AI_GATEWAY_BASE_URL")
	if gatewayURL == "" {
		gatewayURL = "https://ai.gateway.lovable.dev/v1"
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,

		GatewayBaseURL: gatewayURL,
		GatewayAPIKey:  os.Getenv("AI_GATEWAY_API_KEY"),
		GatewayTimeout: envDuration("AI_GATEWAY_TIMEOUT", 90*time.Second),

		IntentModel:    envString("MODEL_INTENT", "google/gemini-2.5-flash-lite"),
		StrategyModel:  envString("MODEL_STRATEGY", "google/gemini-2.5-pro"),
		PlannerModel:   envString("MODEL_PLANNERS", "google/gemini-2.5-flash"),
		SynthesisModel: envString("MODEL_SYNTHESIS", "google/gemini-2.5-pro"),
		ImageModel:     envString("MODEL_IMAGE", "google/gemini-2.5-flash-image-preview"),

		MinioEndpoint:  envString("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioUseSSL:    envBool("MINIO_USE_SSL", false),
		MinioRegion:    envString("MINIO_REGION", "us-east-1"),
		BucketUploads:  envString("MINIO_BUCKET_UPLOADS", "agencyx-uploads"),
		BucketAssets:   envString("MINIO_BUCKET_ASSETS", "agencyx-assets"),

		CampaignCreditCost:    envInt("CAMPAIGN_CREDIT_COST", 1),
		TemplateRewardCredits: envInt("TEMPLATE_REWARD_CREDITS", 2),
		RefundOnFailure:       envBool("REFUND_ON_FAILURE", true),

		EnableOutboxRelay: envBool("ENABLE_OUTBOX_RELAY", true),
	}, nil
}

func envString(name string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
