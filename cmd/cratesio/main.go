package main

import (
	"flag"

	log "github.com/golang/glog"

	"github.com/ittokunvim/cratesio/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cli.BindGoFlags(cmd, flag.CommandLine); err != nil {
		log.Exitf("Failed to bind flags: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Exitf("%v", err)
	}
	log.Flush()
}
