package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/vickyqiu/riak-pb/logger"
)

func main() {
	conf := loadConfig()

	app := &cli.App{
		Name:  "pbgen",
		Usage: "pbgen generates the Riak protocol message code mappings",
		Commands: []*cli.Command{
			generateCmd(conf),
			cleanCmd(conf),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Cli.Error("run command failed", zap.Error(err))
		os.Exit(1)
	}
}
