// Command ximgen renders schema.yaml into xim_gen.go. It is invoked
// through go:generate (doc.go) rather than run by hand in the common
// case.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/netrack/xim/gen"
)

func main() {
	var (
		schemaPath = flag.String("schema", "schema.yaml", "path to the schema document")
		outPath    = flag.String("out", "xim_gen.go", "path to write the generated source to")
		pkg        = flag.String("package", "xim", "package name for the generated file")
	)
	flag.Parse()

	f, err := os.Open(*schemaPath)
	if err != nil {
		log.Fatalf("ximgen: %v", err)
	}
	defer f.Close()

	schema, err := gen.Decode(f)
	if err != nil {
		log.Fatalf("ximgen: %v", err)
	}

	src, err := gen.Generate(schema, *pkg)
	if err != nil {
		log.Fatalf("ximgen: %v", err)
	}

	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatalf("ximgen: %v", err)
	}
}
