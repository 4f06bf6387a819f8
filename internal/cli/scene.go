package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/clay/backend/raster"
	"github.com/go-theft-auto/clay/internal/scene"
)

func newSceneCmd() *cobra.Command {
	var pngPath string

	cmd := &cobra.Command{
		Use:   "scene <file.toml|file.yaml>",
		Short: "Replay a scene and report hover lookahead per element",
		Long: `Replay a scene file: declare it once, apply its pointer, declare it again.

For every element the table shows the id it received, whether NextHovered
predicted a hover just before it was declared, and whether it was really
hovered. Elements with explicit ids are expected to mismatch when hovered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			ctx := newLayoutContext(cmd.Context(), s.Dimensions())
			visits := s.Replay(ctx)
			logger.Debug("replayed scene", "elements", len(visits), "pointer_over", len(ctx.PointerOverIDs()))

			fmt.Fprintln(cmd.OutOrStdout(), visitTable(visits))

			mismatches := 0
			for _, v := range visits {
				if v.Mismatch() {
					mismatches++
				}
			}
			if mismatches > 0 {
				logger.Warn("lookahead disagreed with hover state", "elements", mismatches)
			}

			if pngPath == "" {
				return nil
			}
			f, err := os.Create(pngPath)
			if err != nil {
				return fmt.Errorf("create snapshot: %w", err)
			}
			if err := raster.WritePNG(f, ctx, raster.DefaultOptions()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close snapshot: %w", err)
			}
			logger.Info("wrote snapshot", "path", pngPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&pngPath, "png", "", "also write a PNG snapshot of the scene")
	return cmd
}
