// Command wayfarer runs the travel-assistant agent loop against a
// configured OpenAI-compatible completion service.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/wayfarer/agent"
	"github.com/effective-security/wayfarer/config"
	"github.com/effective-security/wayfarer/llmclient"
	"github.com/effective-security/wayfarer/llmfactory"
	"github.com/effective-security/wayfarer/tools"
	"github.com/effective-security/wayfarer/tools/attraction"
	"github.com/effective-security/wayfarer/tools/weather"
	"github.com/effective-security/xlog"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorDim   = "\033[2m"
)

func main() {
	cfgFile := flag.String("cfg", "wayfarer.yaml", "configuration file")
	request := flag.String("request", "", "run a single request and exit")
	interactive := flag.Bool("interactive", false, "read requests interactively")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
		xlog.SetGlobalLogLevel(xlog.DEBUG)
	} else {
		xlog.SetGlobalLogLevel(xlog.WARNING)
	}

	if err := run(*cfgFile, *request, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run(cfgFile, request string, interactive bool) error {
	if request == "" && !interactive {
		return errors.New("either --request or --interactive is required")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	f := llmfactory.New(&cfg.LLM)
	prov, err := f.DefaultProvider()
	if err != nil {
		return err
	}
	model, err := f.DefaultModel()
	if err != nil {
		return err
	}

	client := llmclient.New(model, prov.DefaultModel)
	registry := tools.NewRegistry(
		weather.New(),
		attraction.New(cfg.Tavily.APIKey),
	)
	loop := agent.New(client, registry,
		agent.WithMaxTurns(cfg.Agent.MaxTurns),
	)

	ctx := context.Background()

	if request != "" {
		return runOnce(ctx, loop, os.Stdout, request)
	}
	return runInteractive(ctx, loop)
}

func runOnce(ctx context.Context, loop *agent.Loop, w io.Writer, request string) error {
	res := loop.Run(ctx, request)

	for _, entry := range res.Transcript[1:] {
		fmt.Fprintf(w, "%s%s%s\n", colorDim, entry, colorReset)
	}

	switch res.Status {
	case agent.StatusFinished:
		fmt.Fprintf(w, "%sAnswer: %s%s\n", colorGreen, res.Answer, colorReset)
		return nil
	case agent.StatusAborted:
		return errors.Newf("run aborted after %d turn(s): %s", res.Turns, res.Reason)
	default:
		return errors.Newf("no answer after %d turn(s)", res.Turns)
	}
}

func runInteractive(ctx context.Context, loop *agent.Loop) error {
	rl, err := readline.New(colorCyan + ">>> " + colorReset)
	if err != nil {
		return errors.WithMessage(err, "failed to initialize readline")
	}
	defer rl.Close()

	fmt.Println("Enter a travel request, or 'exit' to quit.")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := runOnce(ctx, loop, os.Stdout, line); err != nil {
			fmt.Fprintf(os.Stderr, "%s%v%s\n", colorRed, err, colorReset)
		}
	}
}
