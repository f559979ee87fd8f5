package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/suparena/fieldstore"
	"github.com/suparena/fieldstore/processor"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	manifestFlag = flag.String("manifest", "", "Path to the YAML model manifest")
	outFlag      = flag.String("out", "", "Path of the generated Go file")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := fieldstore.GetVersionInfo()
		fmt.Printf("FieldStore fieldgen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// Optional .env for default paths, mirroring the datastore tooling
	_ = godotenv.Load()

	manifest := *manifestFlag
	if manifest == "" {
		manifest = os.Getenv("FIELDGEN_MANIFEST")
	}
	out := *outFlag
	if out == "" {
		out = os.Getenv("FIELDGEN_OUT")
	}
	if manifest == "" || out == "" {
		fmt.Fprintln(os.Stderr, "usage: fieldgen -manifest models.yaml -out registrations.gen.go")
		os.Exit(2)
	}

	if err := processor.Run(manifest, out); err != nil {
		fmt.Fprintf(os.Stderr, "fieldgen: %v\n", err)
		os.Exit(1)
	}
}
