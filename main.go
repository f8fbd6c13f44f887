package main

import (
	"bytes"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/insomnimus/mdtree/config"
	"github.com/insomnimus/mdtree/logging"
	"github.com/insomnimus/mdtree/transpiler"
)

type cli struct {
	Input  string `arg:"" optional:"" type:"existingfile" help:"Markdown file to read. Reads stdin when omitted."`
	Output string `arg:"" optional:"" type:"path" help:"HTML file to write. Writes stdout when omitted."`

	Fragment      bool   `help:"Write only the rendered body, without the surrounding html page." env:"MDTREE_FRAGMENT"`
	NoFrontMatter bool   `help:"Do not strip a leading front matter block." env:"MDTREE_NO_FRONT_MATTER"`
	Sanitize      bool   `help:"Sanitize the rendered body with a user content policy." env:"MDTREE_SANITIZE"`
	Minify        bool   `help:"Minify the rendered body." env:"MDTREE_MINIFY"`
	LogLevel      string `help:"Log level (trace, debug, info, warn, error, fatal)." default:"error" env:"MDTREE_LOG_LEVEL"`
	LogFormat     string `help:"Log format (console, json, pretty)." default:"console" env:"MDTREE_LOG_FORMAT"`
}

func (c *cli) config() config.Config {
	cfg := config.DefaultConfig()
	cfg.Standalone = !c.Fragment
	cfg.FrontMatter = !c.NoFrontMatter
	cfg.Sanitize = c.Sanitize
	cfg.Minify = c.Minify
	cfg.Logging.Level = c.LogLevel
	cfg.Logging.Format = c.LogFormat
	return cfg
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("mdtree"),
		kong.Description("Convert Markdown to HTML."),
		kong.UsageOnError(),
	)

	cfg := args.config()
	ctx.FatalIfErrorf(cfg.Validate())

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}, "mdtree.cli")
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(args.run(cfg, logger, os.Stdin, os.Stdout, os.Stderr))
}

// run transpiles the input and writes the result. The output file is only
// created once the whole document converted.
func (c *cli) run(cfg config.Config, logger logging.Logger, stdin io.Reader, stdout, stderr io.Writer) error {
	in := stdin
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var buf bytes.Buffer
	if err := transpiler.New(cfg, logger).ToHTML(in, &buf, stderr); err != nil {
		return err
	}
	if c.Output == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	return writeFile(c.Output, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
