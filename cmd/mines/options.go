package main

import (
	"flag"
	"io"
	"strconv"

	"github.com/vancomm/termsweeper/internal/config"
	"github.com/vancomm/termsweeper/internal/mines"
)

// numberValue is an int flag that never fails to parse: junk reads as the
// number it starts with, or 0, and is caught by range validation instead.
type numberValue int

func (n *numberValue) Set(s string) error {
	*n = numberValue(mines.Atoi(s))
	return nil
}

func (n *numberValue) String() string {
	if n == nil {
		return "0"
	}
	return strconv.Itoa(int(*n))
}

// cli holds the parsed command line. Option flags are written to flags and
// only the ones actually given override the config file and environment.
type cli struct {
	fs         *flag.FlagSet
	flags      config.Options
	configPath string
	help       bool
	version    bool
}

func newCLI(progname string) *cli {
	c := &cli{fs: flag.NewFlagSet(progname, flag.ContinueOnError)}
	fs := c.fs
	fs.SetOutput(io.Discard)

	const configUsage = "config file path"
	fs.StringVar(&c.configPath, "config", "", configUsage)
	fs.StringVar(&c.configPath, "c", "", configUsage+" (shorthand)")

	fs.Var((*numberValue)(&c.flags.Width), "width", "board width")
	fs.Var((*numberValue)(&c.flags.Height), "height", "board height")
	fs.Var((*numberValue)(&c.flags.Mines), "mines", "mine count")
	fs.StringVar(&c.flags.Separator, "separator", "", "text printed between frames")
	fs.Uint64Var(&c.flags.Seed, "seed", 0, "mine layout seed")
	fs.StringVar(&c.flags.LogFile, "log-file", "", "rotating log file")
	fs.BoolVar(&c.flags.Verbose, "verbose", false, "debug logging")

	for _, name := range []string{"help", "h", "?"} {
		fs.BoolVar(&c.help, name, false, "print help and exit")
	}
	for _, name := range []string{"version", "v"} {
		fs.BoolVar(&c.version, name, false, "print version and exit")
	}
	return c
}

func (c *cli) Parse(args []string) error {
	return c.fs.Parse(args)
}

// Args returns the arguments left after the flags.
func (c *cli) Args() []string {
	return c.fs.Args()
}

// Options layers the defaults, the config file, environ and the given flags,
// then validates the result.
func (c *cli) Options(environ []string) (config.Options, error) {
	opts := config.Default()
	if c.configPath != "" {
		if err := opts.LoadFile(c.configPath); err != nil {
			return opts, err
		}
	}
	if err := opts.LoadEnv(environ); err != nil {
		return opts, err
	}
	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.Width = c.flags.Width
		case "height":
			opts.Height = c.flags.Height
		case "mines":
			opts.Mines = c.flags.Mines
		case "separator":
			opts.Separator = c.flags.Separator
		case "seed":
			opts.Seed = c.flags.Seed
		case "log-file":
			opts.LogFile = c.flags.LogFile
		case "verbose":
			opts.Verbose = c.flags.Verbose
		}
	})
	return opts, opts.Validate()
}
