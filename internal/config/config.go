package config

type Config struct {
	Global     GlobalConfig     `toml:"global"`
	Log        LogConfig        `toml:"log"`
	Sentry     SentryConfig     `toml:"sentry"`
	Servers    ServersConfig    `toml:"servers"`
	Clients    ClientsConfig    `toml:"clients"`
	Seed       SeedConfig       `toml:"seed"`
	Stores     StoresConfig     `toml:"stores"`
	Services   ServicesConfig   `toml:"services"`
	Connection ConnectionConfig `toml:"connection"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Composer ComposerServerConfig `toml:"composer"`
	Debug    DebugServerConfig    `toml:"debug"`
}

type ComposerServerConfig struct {
	Addr         string   `toml:"addr" validate:"required,hostname_port"`
	AllowOrigins []string `toml:"allow_origins" validate:"min=1"`
}

type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}

type ClientsConfig struct {
	SQS SQSClientConfig `toml:"sqs"`
}

type SQSClientConfig struct {
	// Endpoint overrides the AWS endpoint, e.g. for LocalStack.
	Endpoint  string `toml:"endpoint" validate:"omitempty,url"`
	DebugMode bool   `toml:"debug_mode"`
}

type SeedConfig struct {
	// Source is a file path or an http(s) URL. Empty means no seed data.
	Source    string `toml:"source"`
	DebugMode bool   `toml:"debug_mode"`
}

type StoresConfig struct {
	SQLite SQLiteConfig `toml:"sqlite"`
}

type SQLiteConfig struct {
	// Path to the database file. Empty keeps the settings in memory.
	Path  string `toml:"path"`
	Debug bool   `toml:"debug"`
}

type ServicesConfig struct {
	MsgProducer MsgProducerConfig `toml:"msg_producer"`
}

type MsgProducerConfig struct {
	Brokers    []string `toml:"brokers" validate:"dive,hostname_port"`
	Topic      string   `toml:"topic" validate:"required_with=Brokers"`
	BatchSize  int      `toml:"batch_size" validate:"gte=0"`
	EncryptKey string   `toml:"encrypt_key" validate:"omitempty,hexadecimal"`
}

func (c MsgProducerConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// ConnectionConfig holds the initial queue connection. The values are stored
// into the settings store on the first start only.
type ConnectionConfig struct {
	Region          string `toml:"region" envconfig:"AWS_REGION"`
	AccessKeyID     string `toml:"access_key_id" envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `toml:"secret_access_key" envconfig:"AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `toml:"session_token" envconfig:"AWS_SESSION_TOKEN"`
	QueueURL        string `toml:"queue_url" envconfig:"SQS_QUEUE_URL"`
}
