package cmd

import (
	"github.com/boundlab/boundlab/log"
	"github.com/urfave/cli"
)

var logger = log.New("boundlab")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
