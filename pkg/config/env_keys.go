package config

// EnvPrefix is passed to envconfig.Process; individual fields carry the full
// variable name in their tags so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Canonical environment variable names, used by tests and deploy tooling.
const (
	EnvAppEnv         = "GREENLYFE_APP_ENV"
	EnvPort           = "GREENLYFE_APP_PORT"
	EnvLogLevel       = "GREENLYFE_LOG_LEVEL"
	EnvStoreName      = "GREENLYFE_STORE_NAME"
	EnvStoreLocale    = "GREENLYFE_STORE_LOCALE"
	EnvWhatsAppNumber = "GREENLYFE_STORE_WHATSAPP_NUMBER"
	EnvCatalogSeed    = "GREENLYFE_CATALOG_SEED_PATH"
	EnvRedisURL       = "GREENLYFE_REDIS_URL"
	EnvOpenAIAPIKey   = "GREENLYFE_OPENAI_API_KEY"
	EnvOpenAIModel    = "GREENLYFE_OPENAI_MODEL"
)
