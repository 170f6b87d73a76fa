package config

const (
	envLeagueBaseURL = "LEAGUE_API_BASE_URL"
	envLeagueAPIKey  = "LEAGUE_API_KEY"

	defaultLeagueBaseURL = "https://api.gridirondata.io/v1"
)

// LeagueConfig controls how we talk to the league roster API.
type LeagueConfig struct {
	BaseURL string
	APIKey  string
}

func loadLeague() LeagueConfig {
	return LeagueConfig{
		BaseURL: envOrDefault(envLeagueBaseURL, defaultLeagueBaseURL),
		APIKey:  envOrDefault(envLeagueAPIKey, ""),
	}
}
