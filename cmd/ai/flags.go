// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -verbose, -config, -provider, -model, -dry-run, -version

package main

import "flag"

type cliArgs struct {
	verbose  bool
	config   string
	provider string
	model    string
	dryRun   bool
	version  bool
	request  []string
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs

	fs.BoolVar(&args.verbose, "verbose", false, "Log diagnostics to stderr")
	fs.StringVar(&args.config, "config", "", "Config file (default ~/.cmdline-ai-helper)")
	fs.StringVar(&args.provider, "provider", "", "Provider to use (openai, anthropic, google, ollama)")
	fs.StringVar(&args.model, "model", "", "Model to use (overrides DEFAULT_MODEL)")
	fs.BoolVar(&args.dryRun, "dry-run", false, "Print the confirmed command instead of running it")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.request = fs.Args()
	return args, nil
}
