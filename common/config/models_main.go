package config

type GeneralConfig struct {
	BindAddress      string `yaml:"bindAddress"`
	Port             int    `yaml:"port"`
	PublicBaseUrl    string `yaml:"publicBaseUrl"`
	LogDirectory     string `yaml:"logDirectory"`
	LogColors        bool   `yaml:"logColors"`
	JsonLogs         bool   `yaml:"jsonLogs"`
	LogLevel         string `yaml:"logLevel"`
	TrustAnyForward  bool   `yaml:"trustAnyForwardedAddress"`
	UseForwardedHost bool   `yaml:"useForwardedHost"`
	CorsOrigin       string `yaml:"corsOrigin"`
}

type DatabaseConfig struct {
	Type     string        `yaml:"type"`
	Postgres string        `yaml:"postgres"`
	Pool     *DbPoolConfig `yaml:"pool"`
}

type DbPoolConfig struct {
	MaxConnections int `yaml:"maxConnections"`
	MaxIdle        int `yaml:"maxIdleConnections"`
}

type RedisConfig struct {
	Enabled           bool               `yaml:"enabled"`
	Shards            []RedisShardConfig `yaml:"shards,flow"`
	DbNum             int                `yaml:"databaseNumber"`
	ListingTtlSeconds int                `yaml:"listingTtlSeconds"`
}

type RedisShardConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"addr"`
}

type AuthConfig struct {
	JwtSecret         string            `yaml:"jwtSecret"`
	TokenLifetime     string            `yaml:"tokenLifetime"`
	AllowRegistration bool              `yaml:"allowRegistration"`
	BcryptCost        int               `yaml:"bcryptCost"`
	RateLimit         WindowLimitConfig `yaml:"rateLimit"`
}

type WindowLimitConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxRequests   int  `yaml:"maxRequests"`
	WindowSeconds int  `yaml:"windowSeconds"`
}

type UploadsConfig struct {
	MaxImageBytes    int64           `yaml:"maxImageBytes"`
	MaxDocumentBytes int64           `yaml:"maxDocumentBytes"`
	ImageTypes       []string        `yaml:"imageTypes,flow"`
	DocumentTypes    []string        `yaml:"documentTypes,flow"`
	ImageWidth       int             `yaml:"imageWidth"`
	ImageHeight      int             `yaml:"imageHeight"`
	NumWorkers       int             `yaml:"numWorkers"`
	Datastore        DatastoreConfig `yaml:"datastore"`
}

type DatastoreConfig struct {
	Type    string            `yaml:"type"`
	Options map[string]string `yaml:"opts,flow"`
}

type ContentConfig struct {
	DefaultAboutText  string `yaml:"defaultAboutText"`
	DefaultAboutTitle string `yaml:"defaultAboutTitle"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Enabled           bool    `yaml:"enabled"`
	BurstCount        int     `yaml:"burst"`
}

type MetricsConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BindAddress string `yaml:"bindAddress"`
	Port        int    `yaml:"port"`
}

type SentryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dsn         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}
