// Package render formats Fluidinfo responses for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/usestring/fluidinfo-go/pkg/contenttype"
	"github.com/usestring/fluidinfo-go/pkg/fluidinfo"
)

// Printer writes a response summary and its body to Out.
type Printer struct {
	Out io.Writer
	// ShowHeaders prints the response headers after the status line.
	ShowHeaders bool
	// Quiet suppresses the status line.
	Quiet bool
	// JQ filters decoded JSON bodies; each result is printed on its own.
	JQ string
	// Compact trims decoded bodies before printing; nil prints them whole.
	Compact *CompactOptions
}

// Print renders resp.
func (p *Printer) Print(resp *fluidinfo.Response) error {
	if !p.Quiet {
		if _, err := fmt.Fprintf(p.Out, "%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode)); err != nil {
			return err
		}
	}
	if p.ShowHeaders {
		if err := p.printHeaders(resp.Header); err != nil {
			return err
		}
	}

	raw, isRaw := resp.Body.([]byte)
	if isRaw {
		return p.printRaw(resp.Header.Get("Content-Type"), raw)
	}

	values := []any{resp.Body}
	if p.JQ != "" {
		filtered, err := Filter(resp.Body, p.JQ)
		if err != nil {
			return err
		}
		values = filtered
	}
	for _, v := range values {
		if p.Compact != nil {
			v = Compact(v, p.Compact)
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("formatting body: %w", err)
		}
		if _, err := fmt.Fprintf(p.Out, "%s\n", out); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printHeaders(h http.Header) error {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range h[k] {
			if _, err := fmt.Fprintf(p.Out, "%s: %s\n", k, v); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(p.Out)
	return err
}

func (p *Printer) printRaw(contentType string, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	if p.JQ != "" {
		return fmt.Errorf("cannot apply jq to a %q body", contenttype.MediaType(contentType))
	}
	if contenttype.IsBinary(contentType, raw) {
		mediaType := contenttype.MediaType(contentType)
		if mediaType == "" {
			mediaType = "unknown type"
		}
		_, err := fmt.Fprintf(p.Out, "<%d bytes of %s>\n", len(raw), mediaType)
		return err
	}
	if _, err := p.Out.Write(raw); err != nil {
		return err
	}
	if raw[len(raw)-1] != '\n' {
		_, err := fmt.Fprintln(p.Out)
		return err
	}
	return nil
}
