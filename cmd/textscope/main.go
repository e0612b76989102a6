// Package main is the entry point for the textscope inspector.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/gjson"

	"github.com/dshills/utf16text"
	"github.com/dshills/utf16text/internal/config"
	"github.com/dshills/utf16text/internal/inspect"
	"github.com/dshills/utf16text/internal/viewer"
	"github.com/dshills/utf16text/internal/watch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		if opts.set["config"] || opts.set["c"] {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		// A broken default-path config should not brick the tool.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	opts.merge(cfg)

	switch opts.encoding {
	case "", "utf8", "utf16be", "utf16le":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid encoding %q (must be utf8, utf16be, or utf16le)\n", opts.encoding)
		return 1
	}

	if opts.watch && opts.interactive {
		fmt.Fprintln(os.Stderr, "Error: -watch and -interactive are mutually exclusive")
		return 1
	}

	if opts.watch {
		if opts.textSet() || opts.path == "" || opts.path == "-" {
			fmt.Fprintln(os.Stderr, "Error: -watch requires a file argument")
			return 1
		}
		return runWatch(opts)
	}

	rep, err := buildReport(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.interactive {
		return runInteractive(rep, opts.theme)
	}

	if err := render(rep, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// options holds the effective command-line settings. set records which
// flags were given explicitly, so config values only fill the gaps.
type options struct {
	text        string
	encoding    string
	nfc         bool
	jsonOut     bool
	pretty      bool
	get         string
	interactive bool
	watch       bool
	configPath  string
	theme       string
	path        string

	set map[string]bool
}

// textSet reports whether literal text was passed on the command line.
func (o *options) textSet() bool {
	return o.set["text"] || o.set["t"]
}

// merge fills settings the flags left untouched from the config file.
func (o *options) merge(cfg config.Config) {
	if !o.set["encoding"] && !o.set["e"] {
		o.encoding = cfg.Encoding
	}
	if !o.set["json"] {
		o.jsonOut = cfg.JSON
	}
	if !o.set["pretty"] {
		o.pretty = cfg.Pretty
	}
	if !o.set["nfc"] {
		o.nfc = cfg.NFC
	}
	if !o.set["theme"] {
		o.theme = cfg.Theme
	}
	if o.pretty {
		o.jsonOut = true
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.text, "text", "", "Inspect literal text instead of a file")
	flag.StringVar(&opts.text, "t", "", "Inspect literal text (shorthand)")
	flag.StringVar(&opts.encoding, "encoding", "", "Input encoding: utf8, utf16be, utf16le")
	flag.StringVar(&opts.encoding, "e", "", "Input encoding (shorthand)")
	flag.BoolVar(&opts.nfc, "nfc", false, "Normalize input to NFC before inspecting")
	flag.BoolVar(&opts.jsonOut, "json", false, "Emit the report as JSON")
	flag.BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output (implies -json)")
	flag.StringVar(&opts.get, "get", "", "Print one value from the JSON report by path")
	flag.StringVar(&opts.get, "g", "", "Print one value by path (shorthand)")
	flag.BoolVar(&opts.interactive, "interactive", false, "Browse the report in a terminal UI")
	flag.BoolVar(&opts.interactive, "i", false, "Browse the report (shorthand)")
	flag.BoolVar(&opts.watch, "watch", false, "Re-render when the file changes")
	flag.BoolVar(&opts.watch, "w", false, "Re-render on change (shorthand)")
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.theme, "theme", "", "Seed color for the interactive viewer, like #268bd2")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textscope - logical character inspector for UTF-16 text\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textscope [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Reads the file (\"-\" or no file means stdin), decodes it and reports\n")
		fmt.Fprintf(os.Stderr, "every logical character: offset, code units, code points and shape.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textscope file.txt                 Table report for a file\n")
		fmt.Fprintf(os.Stderr, "  textscope -json -pretty file.txt   Pretty JSON report\n")
		fmt.Fprintf(os.Stderr, "  textscope -get chars.1.kind file.txt\n")
		fmt.Fprintf(os.Stderr, "  textscope -text héllo -nfc         Inspect literal text\n")
		fmt.Fprintf(os.Stderr, "  textscope -e utf16be dump.bin      Decode UTF-16BE input\n")
		fmt.Fprintf(os.Stderr, "  textscope -i file.txt              Interactive browser\n")
		fmt.Fprintf(os.Stderr, "  textscope -w file.txt              Re-render on change\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("textscope %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one file argument")
		os.Exit(1)
	}
	if len(args) == 1 {
		opts.path = args[0]
	}

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts
}

// buildReport resolves the input source and inspects it.
func buildReport(opts options) (inspect.Report, error) {
	if opts.textSet() {
		content, err := inspect.Decode(strings.NewReader(opts.text), "utf8", opts.nfc)
		if err != nil {
			return inspect.Report{}, err
		}
		return inspect.Inspect("flag", utf16text.FromString(content)), nil
	}

	if opts.path == "" || opts.path == "-" {
		content, err := inspect.Decode(os.Stdin, opts.encoding, opts.nfc)
		if err != nil {
			return inspect.Report{}, err
		}
		return inspect.Inspect("-", utf16text.FromString(content)), nil
	}

	return inspectFile(opts.path, opts.encoding, opts.nfc)
}

// inspectFile opens, decodes and inspects one file.
func inspectFile(path, encoding string, nfc bool) (inspect.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return inspect.Report{}, err
	}
	defer f.Close()

	content, err := inspect.Decode(f, encoding, nfc)
	if err != nil {
		return inspect.Report{}, err
	}
	return inspect.Inspect(path, utf16text.FromString(content)), nil
}

// render writes the report in the selected output mode.
func render(rep inspect.Report, opts options) error {
	if opts.get != "" {
		res := gjson.GetBytes(inspect.JSON(rep, false), opts.get)
		if !res.Exists() {
			return fmt.Errorf("path %q not found in report", opts.get)
		}
		fmt.Println(res.Raw)
		return nil
	}

	if opts.jsonOut {
		out := inspect.JSON(rep, opts.pretty)
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
		if len(out) == 0 || out[len(out)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}

	return inspect.WriteTable(os.Stdout, rep)
}

// runInteractive opens the terminal viewer.
func runInteractive(rep inspect.Report, theme string) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}

	if err := viewer.New(screen, rep, viewer.NewTheme(theme)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runWatch renders the file, then re-renders on every change until
// interrupted.
func runWatch(opts options) int {
	rep, err := inspectFile(opts.path, opts.encoding, opts.nfc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := render(rep, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	w, err := watch.NewFileWatcher(opts.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-signals:
			return 0

		case event, ok := <-w.Events():
			if !ok {
				return 0
			}
			rep, err := inspectFile(opts.path, opts.encoding, opts.nfc)
			if err != nil {
				// The file may be mid-replace; keep watching.
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}
			if !opts.jsonOut && opts.get == "" {
				fmt.Printf("\n-- %s %s\n\n", event.Op, event.Timestamp.Format("15:04:05"))
			}
			if err := render(rep, opts); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}

		case err, ok := <-w.Errors():
			if !ok {
				return 0
			}
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}
