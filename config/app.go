package config

type App struct {
	Port        string `env:"PORT" default:"5000"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"ACCESS_TOKEN_SECRET,required"`
	AMQPURL     string `env:"AMQP_URL"`
	Env         string `env:"APP_ENV" default:"dev"`
}
