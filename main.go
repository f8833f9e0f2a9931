package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/term"

	"github.com/atomicstack/imdialog/internal/app"
	"github.com/atomicstack/imdialog/internal/config"
	"github.com/atomicstack/imdialog/internal/logging"
	"github.com/atomicstack/imdialog/internal/logging/events"
	"github.com/atomicstack/imdialog/internal/resources"
)

// SDL and GL calls must stay on the thread that created the window.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes one dialog and returns the process exit code. The result line
// is the only thing ever written to stdout besides the usage text.
func run(args, environ []string, stdout, stderr io.Writer) int {
	runtimeCfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(runtimeCfg)
	}
	if errors.Is(err, config.ErrUsage) {
		config.Usage(stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	outcome, err := app.Run(runtimeCfg.App)
	var missing *resources.MissingError
	if errors.As(err, &missing) {
		fmt.Fprintln(stderr, missing.Error())
		return 0
	}
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if outcome.Resolution.Accepted() {
		fmt.Fprintln(stdout, outcome.Resolution.Output)
	}
	return outcome.Code()
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"log":    logging.Path(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["terminal"] = probeTerminals()
	return payload
}

// terminalStream is one standard descriptor as seen at startup.
type terminalStream struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Size     string `json:"size,omitempty"`
	Error    string `json:"error,omitempty"`
}

type terminalReport struct {
	Streams []terminalStream `json:"streams"`
	// UIStream is the descriptor the terminal front end draws on.
	UIStream string `json:"ui_stream"`
	UIReady  bool   `json:"ui_ready"`
}

func probeTerminals() terminalReport {
	report := terminalReport{UIStream: "stderr"}
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		stream := probeStream(strings.TrimPrefix(f.Name(), "/dev/"), f.Fd())
		if stream.Name == report.UIStream {
			report.UIReady = stream.Terminal
		}
		report.Streams = append(report.Streams, stream)
	}
	return report
}

func probeStream(name string, fd uintptr) terminalStream {
	stream := terminalStream{Name: name}
	if !term.IsTerminal(int(fd)) {
		return stream
	}
	stream.Terminal = true
	width, height, err := term.GetSize(int(fd))
	if err != nil {
		stream.Error = err.Error()
		return stream
	}
	stream.Size = fmt.Sprintf("%dx%d", width, height)
	return stream
}
