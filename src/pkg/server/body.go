package server

import (
	"compress/flate"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

var (
	errBodyTooLarge        = errors.New("body too large")
	errUnsupportedEncoding = errors.New("unsupported content encoding")
)

/*
readBody reads body, undoing contentEncoding (gzip, deflate, br or none).
At most limit decoded bytes are accepted; more than that is
errBodyTooLarge so a small compressed upload cannot expand without bound.
status is the HTTP status to answer with when e is set.
*/
func readBody(body io.Reader, contentEncoding string, limit int64) (data []byte, status int, e *xerr.Error) {
	contentEncoding = strings.ToLower(strings.TrimSpace(contentEncoding))
	tl.Log(tl.Verbose5, palette.BlueDim, "Read body (content encoding is '%s')", contentEncoding)

	var reader io.Reader
	switch contentEncoding {
	case "gzip", "x-gzip":
		gz, err := gzip.NewReader(body)
		if err != nil {
			e = xerr.NewError(err, "unable to get gzip reader", contentEncoding)
			return nil, http.StatusBadRequest, e
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fl := flate.NewReader(body)
		defer fl.Close()
		reader = fl
	case "br":
		reader = brotli.NewReader(body)
	case "", "identity", "none":
		reader = body
	default:
		e = xerr.NewError(errUnsupportedEncoding, "read request body", contentEncoding)
		return nil, http.StatusUnsupportedMediaType, e
	}

	data, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		e = xerr.NewError(err, "failed to read request body", contentEncoding)
		return nil, http.StatusBadRequest, e
	}
	if int64(len(data)) > limit {
		e = xerr.NewError(errBodyTooLarge, "read request body", fmt.Sprintf("limit %d bytes", limit))
		return nil, http.StatusRequestEntityTooLarge, e
	}

	tl.Log(tl.Verbose6, palette.GreenDim, "Got body length %d (content encoding is '%s')", len(data), contentEncoding)
	return data, http.StatusOK, nil
}
