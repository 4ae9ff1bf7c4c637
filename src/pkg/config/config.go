/*
Package config loads the shared JSON configuration file and the optional .env
file. Every other package owns its own Config struct and pulls its section
out of the loaded file with Section, then fills the gaps with its defaults.
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

var (
	dotEnvOnce sync.Once

	sectionsMu sync.RWMutex
	sections   = map[string]json.RawMessage{}
	loadedPath string
)

// loadDotEnv reads ./.env once. A missing file is not an error.
func loadDotEnv() {
	dotEnvOnce.Do(func() {
		err := godotenv.Load()
		if err != nil {
			tl.Log(tl.Verbose, palette.CyanDim, "No %s file loaded: %s", ".env", err)
			return
		}
		tl.Log(tl.Info1, palette.Blue, "Loaded environment from '%s'", ".env")
	})
}

/*
CheckIfEnvVarsPresent makes sure every named environment variable is set
(either in the process environment or in ./.env). Missing ones are logged and
the program exits with status 1.
*/
func CheckIfEnvVarsPresent(names ...string) {
	loadDotEnv()

	missing := false
	for _, name := range names {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			tl.Log(tl.Warning, palette.YellowBold, "%s environment variable is %s", name, "required")
			missing = true
		}
	}
	if missing {
		os.Exit(1)
	}
}

/*
InitializeConfig reads the JSON configuration file at configPath and keeps its
top-level sections in memory for Section.

A missing file is not fatal: every package then runs on its defaults.
A file that exists but does not parse stops the program.
*/
func InitializeConfig(configPath string) {
	loadDotEnv()

	e := loadSections(configPath)
	if e != nil {
		e.QuitIf(xerr.ErrorTypeError)
	}
}

func loadSections(configPath string) (e *xerr.Error) {
	fileBytes, readErr := os.ReadFile(configPath)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			tl.Log(tl.Info, palette.Purple, "Config file '%s' is %s, keeping %s", configPath, "not present", "default configuration")
			resetSections(configPath, map[string]json.RawMessage{})
			return nil
		}
		e = xerr.NewError(readErr, "read config file", configPath)
		return e
	}

	parsed := map[string]json.RawMessage{}
	unmarshalErr := json.Unmarshal(fileBytes, &parsed)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, "parse config file", configPath)
		return e
	}

	resetSections(configPath, parsed)
	tl.Log(tl.Info1, palette.Green, "Loaded config '%s' with %d sections", configPath, len(parsed))
	return nil
}

func resetSections(configPath string, parsed map[string]json.RawMessage) {
	sectionsMu.Lock()
	defer sectionsMu.Unlock()
	sections = parsed
	loadedPath = configPath
}

/*
Section decodes one top-level section of the loaded configuration file into a
new T. It returns nil when the section is absent, which the package-level
InitializeConfig functions treat as "use defaults".
*/
func Section[T any](name string) (local *T, e *xerr.Error) {
	sectionsMu.RLock()
	raw, exists := sections[name]
	path := loadedPath
	sectionsMu.RUnlock()

	if !exists || len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	local = new(T)
	unmarshalErr := json.Unmarshal(raw, local)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, fmt.Sprintf("parse '%s' config section", name), path)
		return nil, e
	}
	return local, nil
}

/*
GetPackageName returns the name of the package that called it, e.g. "vocab"
for a call made from stat-scanner/src/pkg/vocab. Used in config log lines.
*/
func GetPackageName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return packageFromFuncName(fn.Name())
}

// packageFromFuncName turns "stat-scanner/src/pkg/vocab.InitializeConfig" into "vocab".
func packageFromFuncName(funcName string) string {
	lastSlash := strings.LastIndex(funcName, "/")
	rest := funcName[lastSlash+1:]
	dot := strings.Index(rest, ".")
	if dot < 0 {
		return rest
	}
	return rest[:dot]
}
