package main

import (
	"log"
	"os"

	"github.com/idilsaglam/checklist/internal/cli"
)

// version is set during build with -ldflags.
var version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetPrefix("checklist: ")

	os.Exit(cli.Run(os.Args[1:], version))
}
