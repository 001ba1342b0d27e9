// ABOUTME: CLI entry point: turns a plain-language request into an editable shell command
// ABOUTME: Loads config, registers providers, runs the edit/execute workflow

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/mauromedda/cmdline-ai-helper/internal/assist"
	"github.com/mauromedda/cmdline-ai-helper/internal/config"
	"github.com/mauromedda/cmdline-ai-helper/internal/executor"
	ailog "github.com/mauromedda/cmdline-ai-helper/internal/log"
	"github.com/mauromedda/cmdline-ai-helper/internal/prompt"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/provider/anthropic"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/provider/google"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/provider/ollama"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/provider/openai"
	"github.com/mauromedda/cmdline-ai-helper/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	fs := flag.NewFlagSet("ai", flag.ExitOnError)
	args, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("ai %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	code, err := run(context.Background(), args)
	if errors.Is(err, assist.ErrUsage) {
		fmt.Println(assist.Usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run loads configuration and drives one request through the workflow.
func run(ctx context.Context, args cliArgs) (int, error) {
	if args.verbose {
		ailog.SetLevel(ailog.LevelDebug)
	}

	// Usage errors come before config so a bare `ai` works without one.
	if len(args.request) == 0 {
		return 1, assist.ErrUsage
	}

	registerProviders()

	path := config.ResolvePath(args.config)
	ailog.Debug("config: %s", path)
	cfg, err := config.Load(path)
	if err != nil {
		return 1, fmt.Errorf("loading config: %w", err)
	}
	cfg.Override(args.provider, args.model)
	if err := cfg.Validate(ai.Names()); err != nil {
		return 1, err
	}

	ps := cfg.ProviderSettings(cfg.Provider)
	provider, err := ai.GetProvider(ai.Api(cfg.Provider), ai.ProviderConfig{
		Endpoint: ps.Endpoint,
		APIKey:   ps.APIKey,
	})
	if err != nil {
		return 1, err
	}

	templates, err := prompt.Load(cfg.PromptsFile)
	if err != nil {
		return 1, fmt.Errorf("loading prompts: %w", err)
	}

	w := &assist.Workflow{
		Provider:  provider,
		Request:   requestFor(cfg),
		Templates: templates,
		OS:        prompt.CurrentOS(),
		Terminal:  terminal.NewProcessTerminal(os.Stdin, os.Stdout),
		Runner:    executor.New(),
		Out:       os.Stdout,
		DryRun:    args.dryRun,
		OnSignal:  exitOnSignal,
	}
	return w.Run(ctx, args.request)
}

// requestFor carries the model and tuning keys into the per-run request.
// An explicit TEMPERATURE=0 stays 0.
func requestFor(cfg *config.Settings) ai.Request {
	return ai.Request{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
}

// registerProviders wires every built-in provider into the registry.
func registerProviders() {
	ai.RegisterProvider(ai.ApiOpenAI, func(cfg ai.ProviderConfig) ai.Provider {
		return openai.New(cfg.APIKey, cfg.Endpoint)
	})
	ai.RegisterProvider(ai.ApiAnthropic, func(cfg ai.ProviderConfig) ai.Provider {
		return anthropic.New(cfg.APIKey, cfg.Endpoint)
	})
	ai.RegisterProvider(ai.ApiGoogle, func(cfg ai.ProviderConfig) ai.Provider {
		return google.New(cfg.APIKey, cfg.Endpoint)
	})
	ai.RegisterProvider(ai.ApiOllama, func(cfg ai.ProviderConfig) ai.Provider {
		return ollama.New(cfg.APIKey, cfg.Endpoint)
	})
}

// exitOnSignal runs after the terminal has been restored.
func exitOnSignal(sig os.Signal) {
	fmt.Fprintln(os.Stderr)
	code := 1
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	os.Exit(code)
}
