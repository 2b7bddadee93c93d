package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/badele/ircstyle/internal/config"
	"github.com/badele/ircstyle/internal/exporter"
	"github.com/badele/ircstyle/internal/importer/mirc"
	"github.com/badele/ircstyle/internal/logging"
	"github.com/badele/ircstyle/pkg/ircstyle"
)

type CLI struct {
	File        string `arg:"" optional:"" type:"existingfile" help:"Input file. Reads stdin (pipe) when omitted."`
	Format      string `short:"f" help:"Output format: html, text, json, yaml, table, stats, ansi."`
	Encoding    string `short:"e" help:"Input encoding: utf8, cp437, cp850, iso-8859-1, windows-1252."`
	Escaped     bool   `short:"E" help:"Input uses the $b, $i, $c[red] escape notation."`
	Config      string `short:"c" type:"path" help:"YAML configuration file."`
	Width       int    `short:"w" help:"Terminal width used by the ansi format."`
	ClassPrefix string `help:"Prefix of the CSS classes produced by the html format."`
	Debug       bool   `short:"d" help:"Log every interpreted control code on stderr."`
}

// apply overrides configuration values with the flags that were set
func (c *CLI) apply(cfg *config.Config) {
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.Encoding != "" {
		cfg.Input.Encoding = c.Encoding
	}
	if c.Escaped {
		cfg.Input.Escaped = true
	}
	if c.Width > 0 {
		cfg.Preview.Width = c.Width
	}
	if c.ClassPrefix != "" {
		cfg.Render.ClassPrefix = c.ClassPrefix
	}
	if c.Debug {
		cfg.Logging.Level = "debug"
	}
}

func (c *CLI) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	c.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, source, err := readInput(c.File)
	if err != nil {
		return err
	}

	data, err = ircstyle.ConvertToUTF8(data, cfg.Input.Encoding)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", source, err)
	}

	text := string(ircstyle.NormalizeLineEndings(data))
	if cfg.Input.Escaped {
		text = ircstyle.Unescape(text)
	}

	traceInput(logger, source, text)

	tok := mirc.NewMIRCTokenizer(text, mirc.WithLogger(logger))

	return render(os.Stdout, tok, cfg)
}

// traceInput logs the input in escaped notation when debug is enabled
func traceInput(logger *zap.Logger, source, text string) {
	if ce := logger.Check(zap.DebugLevel, "parsing input"); ce != nil {
		ce.Write(
			zap.String("source", source),
			zap.Int("bytes", len(text)),
			zap.String("escaped", ircstyle.Escape(text)),
		)
	}
}

func readInput(file string) ([]byte, string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("error reading file: %w", err)
		}
		return data, file, nil
	}

	// Check if stdin is a pipe or has data
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("error checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, "", errors.New("no input: pass a file or pipe data on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("error reading from stdin: %w", err)
	}
	return data, "stdin", nil
}

func render(w io.Writer, tok *mirc.Tokenizer, cfg config.Config) error {
	switch cfg.Output.Format {
	case "json":
		out, err := exporter.ExportJSON(tok)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)

	case "yaml":
		out, err := exporter.ExportYAML(tok)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)

	case "table":
		return exporter.ExportFragmentsToTable(tok.Tokenize(), w)

	case "stats":
		fragments := tok.Tokenize()
		exporter.ExportStats(fragments, tok.GetStats(), w)

	case "text":
		fmt.Fprintln(w, exporter.ExportText(tok.Tokenize()))

	case "ansi":
		out, err := exporter.ExportANSI(cfg.Preview.Width, cfg.Preview.Height, tok.Tokenize())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)

	default:
		opts := exporter.HTMLOptions{
			ClassPrefix: cfg.Render.ClassPrefix,
			Tag:         cfg.Render.Tag,
		}
		fmt.Fprintln(w, exporter.RenderHTML(tok.Tokenize(), opts))
	}

	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ircstyle"),
		kong.Description("Convert mIRC formatted chat text into styled fragments (HTML, text, JSON, YAML, ANSI)."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(cli.Run())
}
