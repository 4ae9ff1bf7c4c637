package ocr

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"stat-scanner/src/pkg/config"
)

type Config struct {
	Language string `json:"language,omitempty"`
	// share of the width kept for OCR, the right side holds decorations
	CropWidthRatio float64 `json:"crop_width_ratio,omitempty"`
	// badge pre-processing: upscale factor and contrast boost in percent
	ResizeFactor    float64 `json:"resize_factor,omitempty"`
	ContrastPercent float64 `json:"contrast_percent,omitempty"`
	// empty disables debug artifacts
	DebugDir string `json:"debug_dir,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		Language:        "eng",
		CropWidthRatio:  0.8,
		ResizeFactor:    1.2,
		ContrastPercent: 50,
	}
}

var Cfg Config = DefaultValueConfig()

/*
If local Config is provided - use it. Replace all missing values with default ones.

If not provided - just use defaultConfig.
*/
func InitializeConfig(localConfig *Config) {
	if localConfig == nil {
		tl.Log(tl.Info, palette.Purple, "%s config is %s, keeping %s", "ocr", "not provided", "default ocr config")
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

	tl.Log(tl.Info, palette.Green, "%s config was %s, using %s", "ocr", "provided", "local ocr config")
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("%s configuration", config.GetPackageName()), Cfg)
}
