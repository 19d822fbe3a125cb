// gen-types renders the token identifier types of the composer.
//
//	go run ./cmd/gen-types -pkg types -types MessageID,AttributeID -out types.gen.go
package main

import (
	"bytes"
	"embed"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"log"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/types.go.tpl
var templates embed.FS

var tpl = template.Must(template.ParseFS(templates, "templates/types.go.tpl"))

var (
	pkgName  = flag.String("pkg", "", "package of the generated file")
	typeList = flag.String("types", "", "comma-separated type names")
	outFile  = flag.String("out", "", "output file")
)

func main() {
	flag.Parse()

	src, err := render(*pkgName, strings.Split(*typeList, ","))
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*outFile, src, 0o600); err != nil {
		log.Fatalf("write %s: %v", *outFile, err)
	}
	log.Printf("%s generated", *outFile)
}

func render(pkg string, types []string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	for _, t := range types {
		if !token.IsExported(t) || !token.IsIdentifier(t) {
			return nil, fmt.Errorf("invalid type name %q", t)
		}
	}
	if len(types) == 0 {
		return nil, errors.New("no types")
	}

	buf := new(bytes.Buffer)
	if err := tpl.Execute(buf, map[string]any{
		"pkg":     pkg,
		"types":   types,
		"argType": strings.Join(types, " | "),
	}); err != nil {
		return nil, fmt.Errorf("render template: %v", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %v", err)
	}
	return src, nil
}
