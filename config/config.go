package config

type Config struct {
	Mcsr Mcsr `yaml:"mcsr" validate:"required"`
	Meta Meta `yaml:"meta" validate:"required"`
}

// Mcsr holds the credentials and endpoint for the remote leaderboard service.
type Mcsr struct {
	BaseURL        string `yaml:"base_url" default:"https://mcsr.totorewa.dev" comment:"Leaderboard service base URL" validate:"required"`
	ClientID       string `yaml:"client_id" comment:"Leaderboard service client ID" validate:"required"`
	ClientSecret   string `yaml:"client_secret" comment:"Leaderboard service client secret" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" default:"10" comment:"Outbound request timeout in seconds" validate:"required"`
}

type Meta struct {
	Port                string   `yaml:"port" default:":8081" comment:"Port to run the server on" validate:"required"`
	RealIPHeader        string   `yaml:"real_ip_header" comment:"Header carrying the client IP when behind a reverse proxy (e.g. X-Real-Ip). Leave empty to use the socket address"`
	DisableChannelCheck bool     `yaml:"disable_channel_check" default:"false" comment:"Skip webhook origin and channel validation. Only for local testing"`
	DataDir             string   `yaml:"data_dir" default:"data" comment:"Directory for flat-file player state" validate:"required"`
	UsersFile           string   `yaml:"users_file" default:"config/users.json" comment:"Per-user settings file (response suffixes)"`
	ChannelsFile        string   `yaml:"channels_file" default:"config/channels.json" comment:"Channel whitelist file"`
	Categories          []string `yaml:"categories" default:"any,aa" comment:"Leaderboard categories to cache boards for" validate:"required"`
	DefaultBoard        string   `yaml:"default_board" default:"rsg" comment:"Board to fall back to when the service reports none" validate:"required"`
}
