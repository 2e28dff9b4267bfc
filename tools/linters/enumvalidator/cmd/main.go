package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"planline.app/api-server/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
