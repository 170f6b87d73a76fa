package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envBalancePath  = "BALANCE_PATH"
	envSimSeed      = "SIM_SEED"
	envSimInterval  = "SIM_INTERVAL"
	envScheduler    = "SCHEDULER_ENABLED"
	envLogFormat    = "LOG_FORMAT"
	envLogLevel     = "LOG_LEVEL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"
	envRedisAddr    = "REDIS_ADDR"
	envRedisDB      = "REDIS_DB"
	envSnapshotOn   = "SNAPSHOT_ENABLED"
	envSnapshotDays = "SNAPSHOT_RETENTION_DAYS"

	defaultPort = "4000"
	// Scheduler cadence; one tick simulates at most one pending game.
	defaultSimInterval  = 30 * Duration(time.Second)
	defaultProvider     = "fixture"
	defaultMetricsPort  = "9090"
	defaultSnapshotOn   = true
	defaultSnapshotDays = 30
)
