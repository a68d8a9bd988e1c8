package config

type HTTP struct {
	// Port defaults to 3000, the port the original mock service
	// listened on.
	Port    uint32 `env:"HTTP_PORT" envDefault:"3000"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`
}
