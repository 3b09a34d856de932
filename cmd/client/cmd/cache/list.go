package cache

import (
	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список кешей",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		infos := s.Inspector.List(cmd.Context())
		return s.Out.Emit(infos, func() {
			if len(infos) == 0 {
				s.Out.Line("Кеши пусты")
				return
			}
			for _, info := range infos {
				s.Out.Line("%-22s %4d записей  %s", info.Name, info.Entries, info.SizeFormatted)
			}
		})
	},
}
