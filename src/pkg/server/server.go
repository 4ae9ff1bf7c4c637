/*
Package server exposes the scanner over HTTP: a client posts a screenshot
and gets the extracted record back as JSON.
*/
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
	"golang.org/x/sync/semaphore"

	echomw "stat-scanner/src/pkg/echo-middleware"
	"stat-scanner/src/pkg/record"
)

// Processor is satisfied by *scanner.Scanner.
type Processor interface {
	ProcessBytes(sourcePath string, data []byte) (record.Record, *xerr.Error)
}

// RecordStore is satisfied by *store.DB.
type RecordStore interface {
	Upsert(r record.Record) *xerr.Error
}

type Server struct {
	cfg       Config
	processor Processor
	store     RecordStore // nil keeps records in memory only
	slots     *semaphore.Weighted
}

func New(cfg Config, processor Processor, store RecordStore) *Server {
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	return &Server{
		cfg:       cfg,
		processor: processor,
		store:     store,
		slots:     semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
	}
}

// Echo builds the router. The intake route needs token; /healthz is open.
func (s *Server) Echo(mwCfg echomw.Config, token string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RouteAccessLoggerMiddleware)
	e.Use(echomw.NewRateLimiter(mwCfg).Middleware)

	e.GET("/healthz", s.handleHealth)

	api := e.Group("/api/v1", echomw.RequireBearerToken(token))
	api.POST("/records", s.handleRecord)
	return e
}

/*
Run serves e on cfg.Address:cfg.Port until ctx is done, then shuts down
gracefully within cfg.ShutdownSeconds.
*/
func Run(ctx context.Context, e *echo.Echo, cfg Config) (xe *xerr.Error) {
	address := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	tl.Log(tl.Notice, palette.BlueBold, "%s intake server on '%s'", "Starting", address)

	startErr := make(chan error, 1)
	go func() {
		startErr <- e.Start(address)
	}()

	select {
	case err := <-startErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			xe = xerr.NewError(err, "start intake server", address)
		}
		return xe
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSeconds)*time.Second)
	defer cancel()
	err := e.Shutdown(shutdownCtx)
	if err != nil {
		xe = xerr.NewError(err, "shut down intake server", address)
		return xe
	}
	tl.Log(tl.Notice1, palette.GreenBold, "Intake server on '%s' stopped", address)
	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecord(c echo.Context) error {
	name, data, status, e := s.readUpload(c)
	if e != nil {
		tl.Log(tl.Warning, palette.Yellow, "Rejected upload from '%s': %v", c.RealIP(), e)
		return c.JSON(status, map[string]string{"error": http.StatusText(status)})
	}
	if len(data) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "empty screenshot"})
	}

	ctx := c.Request().Context()
	if err := s.slots.Acquire(ctx, 1); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "request cancelled"})
	}
	rec, e := s.processor.ProcessBytes(name, data)
	s.slots.Release(1)
	if e != nil {
		tl.Log(tl.Error, palette.Red, "Could not process '%s': %v", name, e)
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "screenshot could not be processed"})
	}

	if s.store != nil {
		e = s.store.Upsert(rec)
		if e != nil {
			tl.Log(tl.Error, palette.Red, "Could not store record for '%s': %v", name, e)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "record could not be stored"})
		}
	}

	return c.JSON(http.StatusOK, rec)
}

/*
readUpload accepts either a multipart form with an "image" file or the raw
screenshot as the request body. The name is only used for logs and the
record's source path.
*/
func (s *Server) readUpload(c echo.Context) (name string, data []byte, status int, e *xerr.Error) {
	req := c.Request()

	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			e = xerr.NewError(err, "read multipart field 'image'", c.RealIP())
			return "", nil, http.StatusBadRequest, e
		}
		if fileHeader.Size > s.cfg.MaxBodyBytes {
			e = xerr.NewError(errBodyTooLarge, "read multipart field 'image'", fileHeader.Size)
			return "", nil, http.StatusRequestEntityTooLarge, e
		}
		file, err := fileHeader.Open()
		if err != nil {
			e = xerr.NewError(err, "open multipart file", fileHeader.Filename)
			return "", nil, http.StatusBadRequest, e
		}
		defer file.Close()

		data, status, e = readBody(file, "", s.cfg.MaxBodyBytes)
		return "upload:" + fileHeader.Filename, data, status, e
	}

	name = req.Header.Get("X-Filename")
	if name == "" {
		name = "body"
	}
	data, status, e = readBody(req.Body, req.Header.Get(echo.HeaderContentEncoding), s.cfg.MaxBodyBytes)
	return "upload:" + name, data, status, e
}
