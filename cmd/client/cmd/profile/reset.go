package profile

import (
	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var ResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Сбросить профиль к значениям по умолчанию",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.Profile.Reset(cmd.Context()); err != nil {
			return err
		}

		res := s.Profile.Get(cmd.Context())
		return emit(s, res, func() {
			s.Out.Success("Профиль сброшен")
		})
	},
}
