package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"stat-scanner/src/pkg/app"
	"stat-scanner/src/pkg/config"
	echomw "stat-scanner/src/pkg/echo-middleware"
	"stat-scanner/src/pkg/server"
	"stat-scanner/src/pkg/store"
)

/*
main serves the intake API. Clients POST a screenshot to /api/v1/records
with "Authorization: Bearer $STAT_SCANNER_INTAKE_BEARER_TOKEN" and receive
the record as JSON. With -db records are stored as they come in.
*/
func main() {
	config.CheckIfEnvVarsPresent(echomw.EnvIntakeBearerToken)

	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	dbPath := flag.String("db", "", "SQLite file to store received records in.")

	flag.Parse()
	app.Initialize(*configPath)

	var recordStore server.RecordStore
	if *dbPath != "" {
		db, e := store.Open(*dbPath)
		e.QuitIf(xerr.ErrorTypeError)
		defer db.Close()
		recordStore = db
	}

	srv := server.New(server.Cfg, app.NewScanner(), recordStore)
	router := srv.Echo(echomw.Cfg, echomw.TokenFromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := server.Run(ctx, router, server.Cfg)
	e.QuitIf(xerr.ErrorTypeError)

	tl.Log(tl.Notice1, palette.GreenBold, "%s", "Intake server exited")
}
