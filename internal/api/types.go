package api

type Pagination struct {
	Page          int  `json:"page"`
	Limit         int  `json:"limit"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	HasNextPage   bool `json:"hasNextPage"`
}

type PlayerListResponse struct {
	Status     string           `json:"status"`
	Size       int              `json:"size"`
	Pagination Pagination       `json:"pagination"`
	Data       []PlayerListItem `json:"data"`
}

type PlayerListItem struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Name    string `json:"name"`
	TeamTag string `json:"teamTag"`
	Country string `json:"country"`
}

type PlayerDetailResponse struct {
	Status string        `json:"status"`
	Data   *PlayerDetail `json:"data"`
}

type PlayerDetail struct {
	Info      PlayerInfo  `json:"info"`
	Team      *TeamStint  `json:"team"`
	Results   []RawMatch  `json:"results"`
	PastTeams []TeamStint `json:"pastTeams"`
	Socials   Socials     `json:"socials"`
}

type PlayerInfo struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Img     string `json:"img"`
	User    string `json:"user"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// TeamStint is a player's affiliation with a team. Joined/Left are calendar
// dates as strings; Left is empty or "present" for the current team.
type TeamStint struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Name   string `json:"name"`
	Tag    string `json:"tag"`
	Logo   string `json:"logo"`
	Joined string `json:"joined"`
	Left   string `json:"left"`
}

type Socials struct {
	Twitter    string `json:"twitter"`
	TwitterURL string `json:"twitter_url"`
	Twitch     string `json:"twitch"`
	TwitchURL  string `json:"twitch_url"`
}

// RawMatch is one entry of a player detail's results list. Date and Stats
// are optional upstream; records missing either are unusable downstream.
type RawMatch struct {
	ID    string          `json:"id"`
	URL   string          `json:"url"`
	Date  string          `json:"date"`
	Event RawEvent        `json:"event"`
	Team1 RawMatchTeam    `json:"team1"`
	Team2 RawMatchTeam    `json:"team2"`
	Stats *RawPlayerStats `json:"stats"`
	Maps  []RawMatchMap   `json:"maps"`
}

type RawEvent struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type RawMatchTeam struct {
	Name   string `json:"name"`
	Tag    string `json:"tag"`
	Logo   string `json:"logo"`
	Points string `json:"points"`
}

type RawPlayerStats struct {
	ACS         float64 `json:"acs"`
	KD          float64 `json:"kd"`
	ADR         float64 `json:"adr"`
	HSPercent   float64 `json:"hs"`
	Kills       int     `json:"kills"`
	Deaths      int     `json:"deaths"`
	Assists     int     `json:"assists"`
	FirstKills  int     `json:"firstKills"`
	FirstDeaths int     `json:"firstDeaths"`
}

type RawMatchMap struct {
	Name       string `json:"map"`
	Agent      string `json:"agent"`
	Team1Score string `json:"team1Score"`
	Team2Score string `json:"team2Score"`
}

type TeamListResponse struct {
	Status     string         `json:"status"`
	Size       int            `json:"size"`
	Pagination Pagination     `json:"pagination"`
	Data       []TeamListItem `json:"data"`
}

type TeamListItem struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Tag    string `json:"tag"`
	Region string `json:"region"`
}

type TeamDetailResponse struct {
	Status string      `json:"status"`
	Data   *TeamDetail `json:"data"`
}

type TeamDetail struct {
	Info    TeamInfo     `json:"info"`
	Roster  []TeamPlayer `json:"roster"`
	Results []RawMatch   `json:"results"`
}

type TeamInfo struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
	Logo string `json:"logo"`
}

type TeamPlayer struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	User    string `json:"user"`
	Name    string `json:"name"`
	Img     string `json:"img"`
	Country string `json:"country"`
}
