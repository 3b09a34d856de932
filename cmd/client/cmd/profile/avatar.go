package profile

import (
	"fmt"
	"os"
	"strings"

	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/profile"

	"github.com/spf13/cobra"
)

var AvatarCmd = &cobra.Command{
	Use:   "avatar <file|url>",
	Short: "Сменить аватар",
	Long: `Принимает путь к изображению (до 2 МиБ) или URL.
Файл сохраняется в профиле как data URL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		src := args[0]
		var res keyed.Result[profile.Profile]
		if isURL(src) {
			res, err = s.Profile.UpdateAvatar(cmd.Context(), src)
		} else {
			var f *os.File
			f, err = os.Open(src)
			if err != nil {
				return fmt.Errorf("ошибка открытия файла: %w", err)
			}
			defer f.Close()
			res, err = s.Profile.UpdateAvatarImage(cmd.Context(), f)
		}
		if err != nil {
			return err
		}

		return emit(s, res, func() {
			if !res.Failed() {
				s.Out.Success("Аватар обновлен")
			}
		})
	},
}

func isURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
