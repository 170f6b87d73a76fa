package config

// RedisConfig controls the optional redis box-score mirror. An empty Addr
// disables it.
type RedisConfig struct {
	Addr string
	DB   int
}

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	BalancePath string   // empty means built-in balance tables
	SimSeed     int      // 0 means seed from entropy
	SimInterval Duration // cadence of the background scheduler
	Scheduler   bool     // run scheduled games in the background
	LogFormat   string
	LogLevel    string
	League      LeagueConfig
	Metrics     MetricsConfig
	Redis       RedisConfig
	Snapshots   SnapshotConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		BalancePath: envOrDefault(envBalancePath, ""),
		SimSeed:     intEnvOrDefault(envSimSeed, 0),
		SimInterval: durationEnvOrDefault(envSimInterval, defaultSimInterval),
		Scheduler:   boolEnvOrDefault(envScheduler, false),
		LogFormat:   envOrDefault(envLogFormat, "text"),
		LogLevel:    envOrDefault(envLogLevel, "info"),
		League:      loadLeague(),
		Metrics:     loadMetrics(),
		Redis: RedisConfig{
			Addr: envOrDefault(envRedisAddr, ""),
			DB:   intEnvOrDefault(envRedisDB, 0),
		},
		Snapshots: loadSnapshots(),
	}
}
