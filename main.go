package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

const version = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fincalc"
	app.Usage = "simple interest, compound interest, GST and EMI calculators"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "path to YAML config file", EnvVar: "FINCALC_CONFIG"},
		cli.StringFlag{Name: "log-level", Usage: "override log.level (debug, info, warn, error)"},
	}
	app.Commands = []cli.Command{
		serveCommand(),
		simpleInterestCommand(),
		compoundInterestCommand(),
		gstCommand(),
		emiCommand(),
		modesCommand(),
	}
	return app
}
