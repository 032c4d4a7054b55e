package main

import (
	"flag"

	"github.com/a-is-4-adam/Shapes/internal/ui"
)

func main() {
	exportPath := flag.String("export", "shapes.pdf", "path for PDF snapshots")
	flag.Parse()

	ui.RunApp(*exportPath)
}
