package models

type Configuration struct {
	App      AppConfiguration      `mapstructure:"app"      validate:"required"`
	Upstream UpstreamConfiguration `mapstructure:"upstream" validate:"required"`
	Database DatabaseConfiguration `mapstructure:"database" validate:"required"`
	Cache    CacheConfiguration    `mapstructure:"cache"    validate:"required"`
	Storage  StorageConfiguration  `mapstructure:"storage"  validate:"required"`
	Notifier NotifierConfiguration `mapstructure:"notifier" validate:"required"`
	Alerts   AlertsConfiguration   `mapstructure:"alerts"`
	Tracing  TracingConfiguration  `mapstructure:"tracing"`
}

type AppConfiguration struct {
	Profile           string   `mapstructure:"profile"             validate:"oneof=default api worker"`
	JWTSecret         string   `mapstructure:"jwt_secret"          validate:"required"`
	AccessTokenExpiry int      `mapstructure:"access_token_expiry" validate:"gte=1,lte=1440"`
	LogLevel          string   `mapstructure:"log_level"           validate:"oneof=debug info warn error fatal panic"`
	Port              int      `mapstructure:"port"                validate:"gte=80,lte=65535"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"     validate:"required"`
	TrustedProxies    []string `mapstructure:"trusted_proxies"`
	RequestsPerMinute int      `mapstructure:"requests_per_minute" validate:"gte=1"`
}

// UpstreamConfiguration describes the marketplace backend this dashboard
// aggregates. The service account is used to obtain the bearer token attached
// to every outgoing call.
type UpstreamConfiguration struct {
	BaseURL         string `mapstructure:"base_url"         validate:"required,http_url"`
	Email           string `mapstructure:"email"            validate:"required,email"`
	Password        string `mapstructure:"password"         validate:"required"`
	PageLimit       int    `mapstructure:"page_limit"       validate:"gte=1,lte=1000"`
	ReportLimit     int    `mapstructure:"report_limit"     validate:"gte=1,lte=10000"`
	RefreshInterval int    `mapstructure:"refresh_interval" validate:"gte=5,lte=3600"`
}

type DatabaseConfiguration struct {
	Host     string `mapstructure:"host"     validate:"required"`
	Port     int32  `mapstructure:"port"     validate:"gte=80,lte=65535"`
	User     string `mapstructure:"user"     validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name"     validate:"required"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CacheConfiguration struct {
	Type  string                   `mapstructure:"type"  validate:"required,oneof=redis none"`
	Redis *RedisCacheConfiguration `mapstructure:"redis" validate:"required_if=Type redis"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

// StorageConfiguration selects the archive target for exported reports.
type StorageConfiguration struct {
	Type       string                          `mapstructure:"type"       validate:"required,oneof=s3 filesystem"`
	S3         *S3StorageConfiguration         `mapstructure:"s3"         validate:"required_if=Type s3"`
	Filesystem *FilesystemStorageConfiguration `mapstructure:"filesystem" validate:"required_if=Type filesystem"`
}

type S3StorageConfiguration struct {
	BucketName string `mapstructure:"bucket_name" validate:"required"`
	Endpoint   string `mapstructure:"endpoint"    validate:"required"`
	AccessKey  string `mapstructure:"access_key"  validate:"required"`
	SecretKey  string `mapstructure:"secret_key"  validate:"required"`
	Region     string `mapstructure:"region"`
	UseTLS     bool   `mapstructure:"use_tls"`
}

type FilesystemStorageConfiguration struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type NotifierConfiguration struct {
	Type       string                           `mapstructure:"type"       validate:"required,oneof=smtp filesystem"`
	SMTP       *MailerConfiguration             `mapstructure:"smtp"       validate:"required_if=Type smtp"`
	Filesystem *FilesystemNotifierConfiguration `mapstructure:"filesystem" validate:"required_if=Type filesystem"`
}

type MailerConfiguration struct {
	Host          string `mapstructure:"host"            validate:"required"`
	Port          int    `mapstructure:"port"            validate:"required"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	Sender        string `mapstructure:"sender"          validate:"required"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
	SkipVerifyTLS bool   `mapstructure:"skip_verify_tls"`
}

type FilesystemNotifierConfiguration struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

// AlertsConfiguration controls operational alerting raised by the poll workers.
type AlertsConfiguration struct {
	FlaggedAdsThreshold int    `mapstructure:"flagged_ads_threshold"`
	Recipient           string `mapstructure:"recipient" validate:"omitempty,email"`
}

type TracingConfiguration struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
}

// AuthConfig groups session-related configuration for services.
type AuthConfig struct {
	JWTSecret         string
	AccessTokenExpiry int
}

// GetAuthConfig extracts session configuration from AppConfiguration.
func (c *AppConfiguration) GetAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:         c.JWTSecret,
		AccessTokenExpiry: c.AccessTokenExpiry,
	}
}
