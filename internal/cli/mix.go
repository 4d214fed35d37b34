package cli

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ittokunvim/cratesio/art"
)

// NewMixCommand creates the mix command.
func NewMixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mix PRIMARY PRIMARY",
		Short: "Mix two primary colors into a secondary color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := art.ParsePrimaryColor(args[0])
			if err != nil {
				return err
			}
			b, err := art.ParsePrimaryColor(args[1])
			if err != nil {
				return err
			}

			mixed, err := art.Mix(a, b)
			if err != nil {
				return err
			}
			if log.V(1) {
				log.Infof("%s + %s = %s", a, b, mixed)
			}

			out := cmd.OutOrStdout()
			if err = art.Render(out, mixed); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
}
