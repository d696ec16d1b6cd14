package main

import (
	"flag"
	"fmt"
	"os"
	"streakd/internal/di"
	"streakd/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config/config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "mirror logs to the console")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "streakd: %s\n", err)
		os.Exit(1)
	}
}
