package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/inspiration/internal/model"
	"github.com/ytget/inspiration/internal/state"
	"github.com/ytget/inspiration/internal/typewriter"
)

func quoteCmd(rt *session) *cobra.Command {
	var noTyping bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a random quote and its translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(rt.cfg, rt.cfg.Keys, state.New(), nil, rt.client, rt.log)
			defer svc.Close()

			q, translated, err := svc.Quote(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch quote: %w", err)
			}

			out := cmd.OutOrStdout()
			if noTyping {
				fmt.Fprintln(out, quoteStyle().Render(q.Display()))
			} else {
				typeOut(out, typewriter.New(rt.cfg.Display.TypingInterval), q)
			}

			if translated != "" {
				fmt.Fprintln(out, translationStyle().Render("Translation: "+translated))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTyping, "no-typing", false, "print the quote at once")
	return cmd
}

// typeOut reveals the quote on out and returns when it is fully shown
func typeOut(out io.Writer, tw *typewriter.Typewriter, q model.Quote) {
	done := make(chan struct{})
	printed := 0
	style := quoteStyle()

	tw.Start(q.Display(), func(shown string) {
		fmt.Fprint(out, style.Render(shown[printed:]))
		printed = len(shown)
	}, func() {
		fmt.Fprintln(out)
		close(done)
	})
	<-done
}
