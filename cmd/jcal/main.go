package main

import (
	"os"

	"metargb/datepicker-service/cmd/jcal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
