package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// ListeningPortKey is the port where the HTTP API will listen on
	ListeningPortKey = "LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of
	// the daemon
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the
	// values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DbTypeKey is the storage backend, either "badger" or "inmemory"
	DbTypeKey = "DB_TYPE"
	// RequestRateKey is the number of HTTP requests per second accepted
	// before throttling kicks in
	RequestRateKey = "REQUEST_RATE"

	DbLocation = "db"

	DbTypeBadger   = "badger"
	DbTypeInMemory = "inmemory"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("GAMESWAP")
	vip.AutomaticEnv()

	vip.SetDefault(ListeningPortKey, 9420)
	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DbTypeKey, DbTypeBadger)
	vip.SetDefault(RequestRateKey, 50)
}

// Validate checks the daemon configuration and panics on a config the
// daemon cannot start with.
func Validate() {
	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// GetDatadir returns the data directory of the daemon
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the directory holding the badger store
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}

	port := GetInt(ListeningPortKey)
	if port < 1 || port > 65535 {
		return fmt.Errorf("listening port must be in range [1, 65535]")
	}

	switch dbType := GetString(DbTypeKey); dbType {
	case DbTypeBadger, DbTypeInMemory:
	default:
		return fmt.Errorf("unknown database type %s", dbType)
	}

	if rate := GetInt(RequestRateKey); rate <= 0 {
		return fmt.Errorf("request rate must be a positive number")
	}

	return nil
}

func initDatadir() error {
	return os.MkdirAll(GetDbDir(), os.ModeDir|0755)
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gameswap-daemon"
	}
	return filepath.Join(home, ".gameswap-daemon")
}
