package cache

import (
	"errors"

	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Записи кеша",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		d := s.Inspector.Inspect(cmd.Context(), args[0])
		if d == nil {
			return errors.New("не удалось прочитать кеш, подробности в логе (--debug)")
		}

		return s.Out.Emit(d, func() {
			s.Out.Title("%s: %d записей, %s", d.Name, d.TotalEntries, d.TotalSizeFormatted)
			for _, e := range d.Entries {
				s.Out.Line("  %10s  %s", e.SizeFormatted, e.URL)
			}
		})
	},
}
