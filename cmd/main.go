package main

import (
	"os"

	"github.com/jortega-dev/tienda-admin/internal/config"
	"github.com/jortega-dev/tienda-admin/internal/transport/cli"
)

func main() {
	config.MustInit()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
