package scanner

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"stat-scanner/src/pkg/config"
)

type Config struct {
	// number of screenshots processed at once, 1 keeps it sequential
	Workers int `json:"workers,omitempty"`
	// lower-case extensions picked up by ListImages
	Extensions []string `json:"extensions,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		Workers:    1,
		Extensions: []string{".png", ".jpg", ".jpeg"},
	}
}

var Cfg Config = DefaultValueConfig()

func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "scanner", "not provided", "default scanner config")
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

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "scanner", "provided", "local scanner config")
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s configuration", config.GetPackageName()), Cfg)
}
