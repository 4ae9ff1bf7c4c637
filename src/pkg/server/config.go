package server

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"stat-scanner/src/pkg/config"
)

type Config struct {
	Address string `json:"address,omitempty"`
	Port    int    `json:"port,omitempty"`
	// limit on the decoded screenshot size
	MaxBodyBytes int64 `json:"max_body_bytes,omitempty"`
	// screenshots processed at the same time, the rest wait
	MaxConcurrent   int `json:"max_concurrent,omitempty"`
	ShutdownSeconds int `json:"shutdown_seconds,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		Address:         "127.0.0.1",
		Port:            8401,
		MaxBodyBytes:    16 << 20,
		MaxConcurrent:   2,
		ShutdownSeconds: 10,
	}
}

var Cfg Config = DefaultValueConfig()

func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "server", "not provided", "default server config")
		return
	}

	defaultConfig := DefaultValueConfig()
	Cfg = *localConfig

	tl.ApplyDefaults(&Cfg, defaultConfig, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in %s configuration. Using default value: %v",
			field, "missing", config.GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "server", "provided", "local server config")
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s configuration", config.GetPackageName()), Cfg)
}
