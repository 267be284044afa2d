package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/rehabtrack/rehab/app"
	"github.com/rehabtrack/rehab/internal/osutil"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(int(osutil.ExitError))
	}
}
