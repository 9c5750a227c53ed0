package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// CityConfig maps a recognised city name to its trip file
type CityConfig struct {
	Name string `yaml:"name" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// DataConfig describes where trip files live and how they are parsed
type DataConfig struct {
	Dir              string       `yaml:"dir" validate:"required"`
	Cities           []CityConfig `yaml:"cities" validate:"required,min=1,dive"`
	TimestampLayouts []string     `yaml:"timestampLayouts" validate:"required,min=1,dive,required"`
	RowPolicy        string       `yaml:"rowPolicy" validate:"omitempty,oneof=abort skip"`
}

// SessionConfig contains the interactive vocabulary and raw paging size
type SessionConfig struct {
	PageSize int      `yaml:"pageSize" validate:"gt=0"`
	Months   []string `yaml:"months" validate:"required,min=1,dive,month"`
	Days     []string `yaml:"days" validate:"required,min=1,dive,weekday"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Session SessionConfig `yaml:"session"`
}

// Row policies applied when a start timestamp cannot be parsed.
const (
	RowPolicyAbort = "abort"
	RowPolicySkip  = "skip"
)

// CityFile returns the configured file name for a city (case-insensitive).
func (c DataConfig) CityFile(name string) (string, bool) {
	for _, city := range c.Cities {
		if equalFold(city.Name, name) {
			return city.File, true
		}
	}
	return "", false
}

// CityNames lists the catalog in configuration order.
func (c DataConfig) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		names = append(names, city.Name)
	}
	return names
}
