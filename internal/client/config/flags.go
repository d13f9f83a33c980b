package config

import (
	"flag"
	"os"

	"github.com/Tharun-raj-u/speakout/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the suggestion service API (default from Config)
//	-d string   path of the local metadata database (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the suggestion service API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local metadata database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
