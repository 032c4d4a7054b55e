package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/a-is-4-adam/Shapes/internal/app"
)

var cfg = app.Config{}

var rootCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Interactive polygon editor",
	Long: `Shapes is an interactive polygon editor. Draw closed shapes point by
point with the pencil tool, then switch to the select tool to move
shapes, drag vertices, or click near an edge to insert a new vertex.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cfg)
	},
}

func init() {
	rootCmd.Flags().IntVar(&cfg.Width, "width", 1024, "canvas width in pixels")
	rootCmd.Flags().IntVar(&cfg.Height, "height", 768, "canvas height in pixels")
	rootCmd.Flags().StringVar(&cfg.ExportPath, "export", "shapes.pdf", "path for the PDF snapshot written with the E key")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
