package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/atomicstack/imdialog/internal/app"
	"github.com/atomicstack/imdialog/internal/dialog"
	"github.com/atomicstack/imdialog/internal/format/table"
	"github.com/atomicstack/imdialog/internal/input"
)

// ErrUsage marks command lines that should be answered with the usage text.
var ErrUsage = errors.New("usage")

// UsageError carries the reason a command line was rejected.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string { return e.Reason }

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

func usageErr(format string, args ...interface{}) error {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTrace       = "IMDIALOG_TRACE"
	envLogFile     = "IMDIALOG_LOG_FILE"
	envDataDir     = "IMDIALOG_DATA_DIR"
	envFrontend    = "IMDIALOG_FRONTEND"
	envFramebuffer = "IMDIALOG_FRAMEBUFFER"
)

// modes lists the dialog flags in precedence order.
var modes = []struct {
	name string
	mode app.Mode
}{
	{"fselect", app.ModeFile},
	{"inputbox", app.ModeInput},
	{"menu", app.ModeMenu},
}

var optionNames = map[string]bool{
	"trace":       true,
	"log-file":    true,
	"data-dir":    true,
	"frontend":    true,
	"framebuffer": true,
	"h":           true,
	"help":        true,
}

// DefaultFramebuffer is the drawing surface size used when none is configured.
func DefaultFramebuffer() (int, int) {
	if runtime.GOARCH == "arm" {
		return 1920, 1080
	}
	return 800, 600
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

type options struct {
	trace       *bool
	logFile     *string
	dataDir     *string
	frontend    *string
	framebuffer *string
}

func newFlagSet(env map[string]string) (*flag.FlagSet, options) {
	fbW, fbH := DefaultFramebuffer()
	fs := flag.NewFlagSet("imdialog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := options{
		trace:       fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:     fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		dataDir:     fs.String("data-dir", envOrDefault(env, envDataDir, ""), "directory searched first for Muli.ttf and the shaders"),
		frontend:    fs.String("frontend", envOrDefault(env, envFrontend, app.FrontendGL), "presentation: gl or tui"),
		framebuffer: fs.String("framebuffer", envOrDefault(env, envFramebuffer, fmt.Sprintf("%dx%d", fbW, fbH)), "framebuffer size as WIDTHxHEIGHT"),
	}
	return fs, opts
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	groups, rest, err := splitModes(args)
	if err != nil {
		return Config{}, err
	}

	fs, opts := newFlagSet(env)
	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, usageErr("help requested")
		}
		return Config{}, usageErr("%v", err)
	}
	if fs.NArg() > 0 {
		return Config{}, usageErr("unexpected argument %q", fs.Arg(0))
	}

	var appCfg app.Config
	found := false
	for _, m := range modes {
		values, ok := groups[m.name]
		if !ok {
			continue
		}
		appCfg, err = parseMode(m.mode, values)
		if err != nil {
			return Config{}, err
		}
		found = true
		break
	}
	if !found {
		return Config{}, usageErr("no dialog requested")
	}

	fbW, fbH, err := parseSize(*opts.framebuffer)
	if err != nil {
		return Config{}, err
	}
	appCfg.Frontend = strings.ToLower(strings.TrimSpace(*opts.frontend))
	appCfg.DataDir = *opts.dataDir
	appCfg.FramebufferWidth = fbW
	appCfg.FramebufferHeight = fbH

	cfg := Config{
		App: appCfg,
		Logging: Logging{
			FilePath: *opts.logFile,
			Trace:    *opts.trace,
		},
		Flags: map[string]string{
			"mode":        appCfg.Mode.String(),
			"width":       strconv.Itoa(appCfg.Width),
			"height":      strconv.Itoa(appCfg.Height),
			"trace":       strconv.FormatBool(*opts.trace),
			"logFile":     *opts.logFile,
			"dataDir":     *opts.dataDir,
			"frontend":    appCfg.Frontend,
			"framebuffer": fmt.Sprintf("%dx%d", fbW, fbH),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// splitModes pulls each dialog flag and the values following it out of
// args. Values run until the next recognised flag; everything else is left
// for the flag set.
func splitModes(args []string) (map[string][]string, []string, error) {
	groups := make(map[string][]string)
	var rest []string
	for i := 0; i < len(args); i++ {
		name, ok := modeName(args[i])
		if !ok {
			rest = append(rest, args[i])
			continue
		}
		if _, dup := groups[name]; dup {
			return nil, nil, usageErr("--%s given more than once", name)
		}
		values := []string{}
		for i+1 < len(args) && !isFlag(args[i+1]) {
			i++
			values = append(values, args[i])
		}
		groups[name] = values
	}
	return groups, rest, nil
}

func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name, name != ""
}

func modeName(arg string) (string, bool) {
	name, ok := flagName(arg)
	if !ok {
		return "", false
	}
	for _, m := range modes {
		if m.name == name && !strings.Contains(arg, "=") {
			return name, true
		}
	}
	return "", false
}

func isFlag(arg string) bool {
	if _, ok := modeName(arg); ok {
		return true
	}
	name, ok := flagName(arg)
	return ok && optionNames[name]
}

func parseMode(mode app.Mode, values []string) (app.Config, error) {
	cfg := app.Config{Mode: mode}
	switch mode {
	case app.ModeFile:
		if len(values) != 3 {
			return app.Config{}, usageErr("--fselect takes PATH WIDTH HEIGHT")
		}
		cfg.Path = values[0]
	case app.ModeInput:
		if len(values) < 3 || len(values) > 4 {
			return app.Config{}, usageErr("--inputbox takes PROMPT WIDTH HEIGHT [INIT]")
		}
		cfg.Prompt = values[0]
		if len(values) == 4 {
			cfg.Initial = values[3]
		}
	case app.ModeMenu:
		if len(values) < 4 {
			return app.Config{}, usageErr("--menu takes PROMPT WIDTH HEIGHT ROWHEIGHT [TAG LABEL]...")
		}
		if (len(values)-4)%2 != 0 {
			return app.Config{}, usageErr("--menu tag %q has no label", values[len(values)-1])
		}
		cfg.Prompt = values[0]
		rowHeight, err := parseDimension("row height", values[3])
		if err != nil {
			return app.Config{}, err
		}
		cfg.RowHeight = rowHeight
		cfg.Items = make([]dialog.MenuItem, 0, (len(values)-4)/2)
		for i := 4; i+1 < len(values); i += 2 {
			cfg.Items = append(cfg.Items, dialog.MenuItem{Tag: values[i], Label: values[i+1]})
		}
	}

	width, err := parseDimension("width", values[1])
	if err != nil {
		return app.Config{}, err
	}
	height, err := parseDimension("height", values[2])
	if err != nil {
		return app.Config{}, err
	}
	cfg.Width = width
	cfg.Height = height
	return cfg, nil
}

func parseDimension(what, v string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 31)
	if err != nil {
		return 0, usageErr("%s must be a non-negative integer (got %q)", what, v)
	}
	return int(n), nil
}

func parseSize(v string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "x")
	if !ok {
		return 0, 0, usageErr("framebuffer must be WIDTHxHEIGHT (got %q)", v)
	}
	width, err := parseDimension("framebuffer width", w)
	if err != nil {
		return 0, 0, err
	}
	height, err := parseDimension("framebuffer height", h)
	if err != nil {
		return 0, 0, err
	}
	if width == 0 || height == 0 {
		return 0, 0, usageErr("framebuffer must be non-empty (got %q)", v)
	}
	return width, height, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

var usageModes = [][]string{
	{"--fselect <PATH> <WIDTH> <HEIGHT>", "choose a file, starting in PATH"},
	{"--inputbox <PROMPT> <WIDTH> <HEIGHT> [INIT]", "edit one line of text"},
	{"--menu <PROMPT> <WIDTH> <HEIGHT> <ROWHEIGHT> [<TAG> <LABEL>]...", "pick a row; prints its tag"},
}

// Usage writes the help text: dialog modes, options and key bindings.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "imdialog 0.1")
	fmt.Fprintln(w, "Display dialogs using IMGUI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    imdialog [OPTIONS] <MODE>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "MODES:")
	for _, line := range table.Format(usageModes, nil) {
		fmt.Fprintln(w, "    "+line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	fs, _ := newFlagSet(nil)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "KEYS:")
	h := help.New()
	h.ShowAll = true
	fmt.Fprintln(w, h.View(input.DefaultKeyMap()))
}

// Validate rejects configurations that parsed but cannot run.
func Validate(cfg Config) error {
	switch cfg.App.Frontend {
	case app.FrontendGL, app.FrontendTUI:
	default:
		return usageErr("unknown frontend %q", cfg.App.Frontend)
	}
	if cfg.App.Mode == app.ModeFile && strings.TrimSpace(cfg.App.Path) == "" {
		return usageErr("--fselect path is empty")
	}
	return nil
}
