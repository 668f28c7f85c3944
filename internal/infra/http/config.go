package server

type Config struct {
	Port              string
	AllowOrigins      []string
	disableMiddleware bool
}

func NewConfig(
	port string,
	allowOrigins []string,
	disableMiddleware bool,
) Config {
	return Config{
		Port:              port,
		AllowOrigins:      allowOrigins,
		disableMiddleware: disableMiddleware,
	}
}
