package league

import "time"

const (
	defaultBaseURL     = "https://api.gridirondata.io/v1"
	defaultPerPage     = 100
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 5
)
