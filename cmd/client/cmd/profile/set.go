package profile

import (
	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/profile"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	setFields = map[string]*string{}
	setSocial profile.Social
)

var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Изменить поля профиля",
	Long: `Меняет только переданные поля. Флаги --instagram, --github и --linkedin
задают соцсети целиком: не переданные соцсети очищаются.`,
	Example: `  resep profile set --username "Siti Rahma" --location Bandung`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res, err := s.Profile.Update(cmd.Context(), patchFromFlags(cmd.Flags()))
		if err != nil {
			return err
		}

		return emit(s, res, func() {
			if !res.Failed() {
				s.Out.Success("Профиль обновлен")
			}
			printProfile(s, res.Value)
		})
	},
}

func patchFromFlags(flags *pflag.FlagSet) profile.Patch {
	var patch profile.Patch
	targets := map[string]**string{
		"username":  &patch.Username,
		"avatar":    &patch.Avatar,
		"email":     &patch.Email,
		"phone":     &patch.Phone,
		"location":  &patch.Location,
		"join-date": &patch.JoinDate,
		"bio":       &patch.Bio,
	}
	for name, dst := range targets {
		if flags.Changed(name) {
			v := *setFields[name]
			*dst = &v
		}
	}

	if flags.Changed("instagram") || flags.Changed("github") || flags.Changed("linkedin") {
		social := setSocial
		patch.Social = &social
	}
	return patch
}

func init() {
	for _, f := range []struct{ name, usage string }{
		{"username", "имя пользователя"},
		{"avatar", "URL аватара"},
		{"email", "email"},
		{"phone", "телефон"},
		{"location", "город"},
		{"join-date", "дата регистрации"},
		{"bio", "о себе"},
	} {
		setFields[f.name] = SetCmd.Flags().String(f.name, "", f.usage)
	}
	SetCmd.Flags().StringVar(&setSocial.Instagram, "instagram", "", "Instagram")
	SetCmd.Flags().StringVar(&setSocial.Github, "github", "", "GitHub")
	SetCmd.Flags().StringVar(&setSocial.Linkedin, "linkedin", "", "LinkedIn")
}
