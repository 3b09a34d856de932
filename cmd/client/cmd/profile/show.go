package profile

import (
	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Показать профиль",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res := s.Profile.Get(cmd.Context())
		return emit(s, res, func() {
			printProfile(s, res.Value)
		})
	},
}
