package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// ReassignPolicy controls what happens when an order that already has a
// courier is assigned again
type ReassignPolicy string

const (
	// ReassignLastWriterWins silently reassigns the order to the new courier
	ReassignLastWriterWins ReassignPolicy = "last_writer_wins"
	// ReassignReject fails the assignment when the order already has a
	// different courier
	ReassignReject ReassignPolicy = "reject"
)

// DispatchConfig contains dispatch service specific configuration
type DispatchConfig struct {
	SearchRadiusKm   float64        `json:"search_radius_km"`
	SweepInterval    int            `json:"sweep_interval_seconds"`
	SendTimeoutMs    int            `json:"send_timeout_ms"`
	ReassignPolicy   ReassignPolicy `json:"reassign_policy"`
	LocationCacheTTL int            `json:"location_cache_ttl_minutes"`
	RateLimit        int            `json:"rate_limit_per_minute"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Format   string
}
