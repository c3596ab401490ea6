package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/termsweeper/internal/console"
	"github.com/vancomm/termsweeper/internal/mines"
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, os.Environ()))
}

// run plays one game and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, environ []string) int {
	progname := args[0]

	c := newCLI(progname)
	if err := c.Parse(args[1:]); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", progname, err)
		console.PrintHelpHint(stderr, progname)
		return 1
	}
	rest := c.Args()
	switch {
	case c.help || len(rest) > 0 && rest[0] == "help":
		console.PrintShellHelp(stdout, progname)
		return 0
	case c.version:
		console.PrintVersion(stdout, progname)
		return 0
	case len(rest) > 0:
		fmt.Fprintf(stderr, "%s: Unexpected argument: %s\n", progname, rest[0])
		console.PrintUsage(stderr, progname)
		console.PrintHelpHint(stderr, progname)
		return 1
	}

	opts, err := c.Options(environ)
	if err != nil {
		var ce *mines.ConfigError
		if errors.As(err, &ce) {
			fmt.Fprintf(stderr, "%s: %s\n", progname, ce)
		} else {
			fmt.Fprintf(stderr, "%s: %s\n", progname, err)
			console.PrintHelpHint(stderr, progname)
		}
		return 1
	}

	if err := setupLogging(opts, stderr); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", progname, err)
		return 1
	}
	log.WithFields(opts.Fields()).Debug("config")

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	game, err := mines.NewGame(opts.GameParams(), rand.New(rand.NewPCG(seed, 2)))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", progname, err)
		return 1
	}

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	session := console.NewSession(game, stdin, stdout, opts.Separator, log)
	log.WithFields(logrus.Fields{
		"session": session.ID,
		"params":  opts.GameParams().String(),
		"seed":    seed,
	}).Info("new game")

	done := make(chan struct{})
	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer close(done)
		status, err := session.Run(gCtx)
		log.WithField("status", status).Debug("game ended")
		return err
	})
	g.Go(func() error {
		select {
		case <-done:
		case <-gCtx.Done():
			log.Info("interrupted, ending game")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorf("exit reason: %s", err)
		return 1
	}
	return 0
}
