package config

// Config is the top-level configuration document.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	DB            DBConfig            `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Mongo         MongoConfig         `mapstructure:"mongo"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Elastic       ElasticConfig       `mapstructure:"elastic"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	KafkaTopics   KafkaTopicsConfig   `mapstructure:"kafka_topics"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Logstash      LogstashConfig      `mapstructure:"logstash"`
	HealthChecker HealthCheckerConfig `mapstructure:"health_checker"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig holds MySQL connection pool settings.
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig holds object storage settings for model images.
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	MainBucket string `mapstructure:"main_bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

// ElasticConfig holds search cluster settings.
type ElasticConfig struct {
	Address    string `mapstructure:"address"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	ModelIndex string `mapstructure:"model_index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaTopicsConfig names the topics and consumer groups of the engagement pipeline.
type KafkaTopicsConfig struct {
	EngagementTopic   string `mapstructure:"engagement_topic"`
	EngagementGroupID string `mapstructure:"engagement_group_id"`
	ModelTopic        string `mapstructure:"model_topic"`
	ModelGroupID      string `mapstructure:"model_group_id"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// LLMConfig configures the optional tag-suggestion model.
type LLMConfig struct {
	Enable bool   `mapstructure:"enable"`
	URL    string `mapstructure:"url"`
	Model  string `mapstructure:"model"`
	ApiKey string `mapstructure:"api_key"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// HealthCheckerConfig configures the model endpoint probe job.
type HealthCheckerConfig struct {
	Enable    bool `mapstructure:"enable"`
	TimeoutMS int  `mapstructure:"timeout_ms"`
}
