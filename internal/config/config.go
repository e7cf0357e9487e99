package config

type Config interface {
	LogLevel() string
	LogFile() string
	LogMaxSize() int

	UserAgent() string

	RequestIDHeader() string
	RequestIDEnabled() bool

	NoColor() bool
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) LogLevel() string        { return c.logLevel }
func (c *config) LogFile() string         { return c.logFile }
func (c *config) LogMaxSize() int         { return c.logMaxSize }
func (c *config) UserAgent() string       { return c.userAgent }
func (c *config) RequestIDHeader() string { return c.requestIDHeader }
func (c *config) RequestIDEnabled() bool  { return c.requestIDEnabled }
func (c *config) NoColor() bool           { return c.noColor }
