package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/usestring/fluidinfo-go/pkg/fluidinfo"
)

var errManyBodies = errors.New("use only one of --data, --raw and --file")

// buildBody fills in the request body and mime type from the body flags.
func (a *app) buildBody(req *fluidinfo.Request) error {
	set := 0
	for _, v := range []string{a.call.data, a.call.raw, a.call.file} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return errManyBodies
	}
	req.Mime = a.call.mime

	switch {
	case a.call.data != "":
		value, err := fluidinfo.DecodeJSON([]byte(a.call.data))
		if err != nil {
			return fmt.Errorf("parsing --data as JSON: %w", err)
		}
		req.Body = value
	case a.call.raw != "":
		req.Body = a.call.raw
	case a.call.file != "":
		data, err := a.readFile(a.call.file)
		if err != nil {
			return err
		}
		req.Body = data
		if req.Mime == "" {
			req.Mime = detectMime(data)
			slog.Debug("detected body mime type",
				slog.String("file", a.call.file),
				slog.String("mime", req.Mime),
			)
		}
	}
	return nil
}

func (a *app) readFile(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading body file: %w", err)
	}
	return data, nil
}

// detectMime sniffs the media type of an opaque payload. Text types carry a
// charset parameter, e.g. "text/html; charset=utf-8".
func detectMime(data []byte) string {
	return mimetype.Detect(data).String()
}
