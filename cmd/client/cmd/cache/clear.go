package cache

import (
	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var ClearCmd = &cobra.Command{
	Use:   "clear [name]",
	Short: "Очистить кеш или все кеши",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		var cleared bool
		if len(args) == 1 {
			cleared = s.Inspector.Clear(cmd.Context(), args[0])
		} else {
			cleared = s.Inspector.ClearAll(cmd.Context())
		}

		return s.Out.Emit(map[string]bool{"cleared": cleared}, func() {
			switch {
			case cleared:
				s.Out.Success("Кеш очищен")
			case len(args) == 1:
				s.Out.Warn("кеш %s не найден или не очищен", args[0])
			default:
				s.Out.Warn("не удалось очистить кеши")
			}
		})
	},
}
