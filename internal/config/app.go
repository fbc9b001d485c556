package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

// Development switches the server to human-readable log output.
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "0"
}
