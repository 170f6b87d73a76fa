package league

const providerName = "league"

type teamsResponse struct {
	Data []teamResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
	Venue        string `json:"venue"`
	Dome         bool   `json:"dome"`
}

type rosterResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type playerResponse struct {
	ID        int            `json:"id"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Jersey    int            `json:"jersey_number"`
	Position  string         `json:"position"`
	Depth     int            `json:"depth"`
	Ratings   map[string]int `json:"ratings"`
}

type metaResponse struct {
	TotalPages int `json:"total_pages"`
}
