package config

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is not
// set. Fine for local development, unsafe anywhere else.
const DefaultJWTSecret = "your-default-secret-key"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	// DatabasePath can be pointed at /tmp for serverless deployments.
	DatabasePath string `env:"DATABASE_PATH" envDefault:"catering.db"`

	// ClientURL is the only origin allowed by CORS.
	ClientURL string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"your-default-secret-key"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"3001"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment.Name == "development"
}

func (c *Config) UsingDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}
