package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/usestring/fluidinfo-go/internal/config"
	"github.com/usestring/fluidinfo-go/internal/logging"
	"github.com/usestring/fluidinfo-go/internal/render"
	"github.com/usestring/fluidinfo-go/pkg/fluidinfo"
)

// app carries the configuration and flag values shared by every command.
type app struct {
	cfg     *config.Config
	in      io.Reader
	out     io.Writer
	cleanup func() error

	// global flags
	instance string
	sandbox  bool
	user     string
	password string
	logLevel string
	timeout  time.Duration

	// per-call flags
	call callFlags
}

type callFlags struct {
	data     string
	raw      string
	file     string
	mime     string
	query    []string
	tags     []string
	headers  []string
	segments bool
	include  bool
	quiet    bool
	jq       string
	compact  bool
}

func newApp(cfg *config.Config, in io.Reader, out io.Writer) *app {
	return &app{cfg: cfg, in: in, out: out}
}

func (a *app) close() {
	if a.cleanup != nil {
		if err := a.cleanup(); err != nil {
			slog.Warn("closing log file", slog.String("error", err.Error()))
		}
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fluidinfo",
		Short:         "Call the Fluidinfo RESTful API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.instance, "instance", a.cfg.Instance, `instance URL, or "main" / "sandbox"`)
	flags.BoolVar(&a.sandbox, "sandbox", false, "use the sandbox instance")
	flags.StringVarP(&a.user, "user", "u", a.cfg.Username, "username to log in with")
	flags.StringVarP(&a.password, "password", "p", a.cfg.Password, "password to log in with")
	flags.StringVar(&a.logLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.DurationVar(&a.timeout, "timeout", a.cfg.HTTPClientTimeout, "HTTP client timeout (0 for none)")

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead} {
		root.AddCommand(a.verbCommand(method))
	}
	root.AddCommand(a.callCommand())
	return root
}

func (a *app) setupLogging() error {
	cleanup, err := logging.Setup(logging.Config{
		Level:      a.logLevel,
		FilePath:   a.cfg.LogFile,
		MaxSizeMB:  a.cfg.LogMaxSizeMB,
		MaxBackups: a.cfg.LogMaxBackups,
		MaxAgeDays: a.cfg.LogMaxAgeDays,
		Compress:   a.cfg.LogCompress,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.cleanup = cleanup
	return nil
}

func (a *app) verbCommand(method string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   strings.ToLower(method) + " PATH",
		Short: fmt.Sprintf("Send a %s request", method),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, method, args)
		},
	}
	a.addCallFlags(cmd)
	return cmd
}

func (a *app) callCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call METHOD PATH",
		Short: "Send a request with any supported method",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], args[1:])
		},
	}
	a.addCallFlags(cmd)
	return cmd
}

func (a *app) addCallFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&a.call.data, "data", "d", "", "JSON body; objects are sent as JSON, scalars and string lists as primitive tag-values")
	flags.StringVar(&a.call.raw, "raw", "", "body sent as a plain string")
	flags.StringVarP(&a.call.file, "file", "f", "", `file whose bytes form the body ("-" for stdin)`)
	flags.StringVarP(&a.call.mime, "mime", "m", "", "mime type of the body; detected from --file contents when omitted")
	flags.StringArrayVarP(&a.call.query, "query", "q", nil, "query parameter as key=value (repeatable)")
	flags.StringArrayVarP(&a.call.tags, "tag", "t", nil, "tag to return from /values (repeatable)")
	flags.StringArrayVarP(&a.call.headers, "header", "H", nil, `extra header as "Name: value" (repeatable)`)
	flags.BoolVar(&a.call.segments, "segments", false, "treat each argument as one path segment")
	flags.BoolVarP(&a.call.include, "include", "i", false, "print response headers")
	flags.BoolVarP(&a.call.quiet, "quiet", "s", false, "do not print the status line")
	flags.StringVar(&a.call.jq, "jq", "", "jq expression applied to JSON bodies")
	flags.BoolVar(&a.call.compact, "compact", false, "trim long arrays and strings in JSON bodies")
}

func (a *app) client() *fluidinfo.Client {
	instance := config.ResolveInstance(a.instance)
	if a.sandbox {
		instance = fluidinfo.SandboxInstance
	}
	c := fluidinfo.New(
		fluidinfo.WithInstance(instance),
		fluidinfo.WithHTTPClient(&http.Client{Timeout: a.timeout}),
		fluidinfo.WithUserAgent(a.cfg.UserAgent),
	)
	if a.user != "" {
		c.Login(a.user, a.password)
	}
	return c
}

func (a *app) run(cmd *cobra.Command, method string, args []string) error {
	path, err := a.path(args)
	if err != nil {
		return err
	}

	req := &fluidinfo.Request{Method: method, Path: path, Tags: a.call.tags}
	if err := a.buildBody(req); err != nil {
		return err
	}
	if req.Query, err = parseQuery(a.call.query); err != nil {
		return err
	}
	if req.Header, err = parseHeaders(a.call.headers); err != nil {
		return err
	}

	resp, err := a.client().Call(cmd.Context(), req)
	if err != nil {
		return err
	}

	printer := &render.Printer{
		Out:         a.out,
		ShowHeaders: a.call.include,
		Quiet:       a.call.quiet,
		JQ:          a.call.jq,
	}
	if a.call.compact {
		printer.Compact = &render.CompactOptions{
			MaxArrayItems: a.cfg.CompactMaxArrayItems,
			MaxStringLen:  a.cfg.CompactMaxStringLen,
		}
	}
	if err := printer.Print(resp); err != nil {
		return err
	}
	if !resp.OK() {
		return &exitError{code: 2}
	}
	return nil
}

func (a *app) path(args []string) (fluidinfo.Path, error) {
	if a.call.segments {
		return fluidinfo.Segments(args...), nil
	}
	if len(args) != 1 {
		return fluidinfo.Path{}, fmt.Errorf("expected one path, got %d arguments (use --segments for a segment list)", len(args))
	}
	return fluidinfo.StringPath(args[0]), nil
}

func parseQuery(pairs []string) (url.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	query := make(url.Values, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid query parameter %q, want key=value", pair)
		}
		query.Add(k, v)
	}
	return query, nil
}

func parseHeaders(lines []string) (http.Header, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	header := make(http.Header, len(lines))
	for _, line := range lines {
		k, v, ok := strings.Cut(line, ":")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid header %q, want \"Name: value\"", line)
		}
		header.Add(k, strings.TrimSpace(v))
	}
	return header, nil
}
