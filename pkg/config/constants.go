package config

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv         = "DOLA_APP_ENV"
	EnvLogLevel       = "DOLA_LOG_LEVEL"
	EnvMerchantID     = "DOLA_MERCHANT_ID"
	EnvCheckoutOrigin = "DOLA_CHECKOUT_ORIGIN"
	EnvPostDelay      = "DOLA_POST_DELAY"
	EnvInstanceClass  = "DOLA_INSTANCE_CLASS"
	EnvLoadingClass   = "DOLA_LOADING_CLASS"
)
