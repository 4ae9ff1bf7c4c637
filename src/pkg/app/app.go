// Package app loads the configuration file and hands each package its section.
package app

import (
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/config"
	echomw "stat-scanner/src/pkg/echo-middleware"
	"stat-scanner/src/pkg/extract"
	"stat-scanner/src/pkg/ocr"
	"stat-scanner/src/pkg/scanner"
	"stat-scanner/src/pkg/server"
	"stat-scanner/src/pkg/vocab"
)

/*
Initialize reads configPath and initializes every package config from its
section. Absent sections keep package defaults; a malformed one stops the
program.
*/
func Initialize(configPath string) {
	config.InitializeConfig(configPath)

	vocabCfg, e := config.Section[vocab.Config]("vocab")
	e.QuitIf(xerr.ErrorTypeError)
	vocab.InitializeConfig(vocabCfg)

	ocrCfg, e := config.Section[ocr.Config]("ocr")
	e.QuitIf(xerr.ErrorTypeError)
	ocr.InitializeConfig(ocrCfg)

	extractCfg, e := config.Section[extract.Config]("extract")
	e.QuitIf(xerr.ErrorTypeError)
	extract.InitializeConfig(extractCfg)

	scannerCfg, e := config.Section[scanner.Config]("scanner")
	e.QuitIf(xerr.ErrorTypeError)
	scanner.InitializeConfig(scannerCfg)

	mwCfg, e := config.Section[echomw.Config]("echo_middleware")
	e.QuitIf(xerr.ErrorTypeError)
	echomw.InitializeConfig(mwCfg)

	serverCfg, e := config.Section[server.Config]("server")
	e.QuitIf(xerr.ErrorTypeError)
	server.InitializeConfig(serverCfg)
}

// NewScanner loads the vocabularies and builds the default scanner from the initialized configs.
func NewScanner() *scanner.Scanner {
	vocabulary := vocab.Load(vocab.Cfg)
	extractor := extract.New(vocabulary, extract.Cfg)
	return scanner.New(extractor, ocr.Cfg)
}
