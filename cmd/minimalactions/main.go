// Command minimalactions is a linter that checks minimal route handlers for MVC constructs.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/minimalactions"
)

func main() {
	singlechecker.Main(minimalactions.Analyzer)
}
