package config

// SnapshotConfig controls persisting finished box scores to disk.
type SnapshotConfig struct {
	Enabled       bool
	RetentionDays int    // finished-game snapshots older than this are pruned
	AdminToken    string // auth for the prune endpoint
	Folder        string // base path for snapshots
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:       boolEnvOrDefault(envSnapshotOn, defaultSnapshotOn),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
		AdminToken:    envOrDefault(envAdminToken, ""),
		Folder:        "data/snapshots",
	}
}
