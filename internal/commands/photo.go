package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/inspiration/internal/pipeline"
	"github.com/ytget/inspiration/internal/platform"
	"github.com/ytget/inspiration/internal/state"
)

var errNoImage = errors.New("no image available")

func photoCmd(rt *session) *cobra.Command {
	var (
		out   string
		local bool
		open  bool
	)

	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Download a background photo, falling back to a bundled one",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(rt.cfg, rt.cfg.Keys, state.New(), nil, rt.client, rt.log)
			defer svc.Close()

			src := pipeline.SourceRemote
			if local {
				src = pipeline.SourceLocal
			}

			photo, err := svc.Photo(cmd.Context(), src)
			if err != nil {
				return err
			}
			if photo == nil {
				return errNoImage
			}

			path := platform.ResolvePhotoPath(out, photo.Source, photo.Image)
			if err := platform.WritePhoto(path, photo.Image); err != nil {
				return fmt.Errorf("write photo: %w", err)
			}
			if open {
				if err := platform.OpenFileWithDefaultApp(path); err != nil {
					rt.log.Warn("open photo failed", "path", path, "error", err)
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", labelStyle().Render("saved:"), path)
			if !photo.IsRemote {
				fmt.Fprintf(w, "%s bundled background %s\n", labelStyle().Render("source:"), photo.Source)
				return nil
			}
			fmt.Fprintf(w, "%s %s\n", labelStyle().Render("source:"), photo.Source)
			if photo.Title != "" {
				fmt.Fprintln(w, attributionStyle().Render(photo.Title))
			}
			fmt.Fprintln(w, attributionStyle().Render(photo.Attribution()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "file or directory to write the image to")
	cmd.Flags().BoolVar(&open, "open", false, "open the saved photo with the system viewer")
	cmd.Flags().BoolVar(&local, "local", false, "skip the photo service")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
