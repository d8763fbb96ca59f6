package env

import (
	"os"
)

// PodName example: marketd-7c9b8f6d5-x2kqz
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: testnet
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: marketd
func AppName() string {
	return os.Getenv("APP_NAME")
}

// ConfigFile overrides the default yaml path, example: /etc/marketd/config.yaml
func ConfigFile() string {
	return os.Getenv("CONFIG_FILE")
}
