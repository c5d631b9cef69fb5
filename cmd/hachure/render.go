package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/hachure/pkg/diag"
	"github.com/chazu/hachure/pkg/entity"
	"github.com/chazu/hachure/pkg/kernel/libtess"
	"github.com/chazu/hachure/pkg/material"
	"github.com/chazu/hachure/pkg/preview"
	"github.com/chazu/hachure/pkg/render"
)

var (
	outPath   string
	pngPath   string
	pngWidth  int
	pngHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render <document.json>",
	Short: "Convert an entity document into render geometry",
	Long: `render loads a JSON entity document, validates it, and converts
every hatch into a render object. Geometry JSON goes to stdout or the
--out file; --png additionally writes a rasterized preview. When --png
is the only output requested, the JSON dump is skipped.

Validation findings print to stderr. Warnings do not stop conversion;
errors do.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "write geometry JSON to this file instead of stdout")
	renderCmd.Flags().StringVar(&pngPath, "png", "", "write a PNG preview to this file")
	renderCmd.Flags().IntVar(&pngWidth, "width", 1024, "preview width in pixels")
	renderCmd.Flags().IntVar(&pngHeight, "height", 768, "preview height in pixels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	doc, err := entity.LoadDocument(args[0])
	if err != nil {
		return err
	}

	blocked := false
	for _, f := range entity.Validate(doc) {
		fmt.Fprintln(cmd.ErrOrStderr(), f.Error())
		if f.Severity == entity.SeverityError {
			blocked = true
		}
	}
	if blocked {
		return fmt.Errorf("document failed validation")
	}

	conv := render.NewConverter(
		libtess.New(),
		material.NewPalette(doc.Layers),
		render.WithCache(render.NewCache()),
		render.WithSink(diag.Logger(slog.Default())),
	)
	objs := conv.ConvertAll(doc)
	slog.Info("converted document",
		slog.Int("entities", len(doc.Hatches)),
		slog.Int("objects", len(objs)))

	if pngPath != "" {
		if err := writePNG(objs, pngPath); err != nil {
			return err
		}
		if outPath == "" {
			return nil
		}
	}
	return writeJSON(cmd, objs, outPath)
}

func writeJSON(cmd *cobra.Command, objs []*render.Object, path string) error {
	if objs == nil {
		objs = []*render.Object{}
	}
	data, err := json.MarshalIndent(objs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode geometry: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write geometry: %w", err)
	}
	slog.Info("wrote geometry", slog.String("path", path), slog.Int("objects", len(objs)))
	return nil
}

func writePNG(objs []*render.Object, path string) error {
	img := preview.Render(objs, pngWidth, pngHeight)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	slog.Info("wrote preview", slog.String("path", path),
		slog.Int("width", pngWidth), slog.Int("height", pngHeight))
	return nil
}
