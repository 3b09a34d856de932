package profile

import (
	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/profile"

	"github.com/spf13/cobra"
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Профиль пользователя",
}

type profileResult struct {
	Status  string          `json:"status"`
	Profile profile.Profile `json:"profile"`
}

func emit(s *client.Session, res keyed.Result[profile.Profile], text func()) error {
	return s.Out.Emit(profileResult{Status: res.Status.String(), Profile: res.Value}, func() {
		s.Out.Status(res.Status)
		text()
	})
}

func printProfile(s *client.Session, p profile.Profile) {
	s.Out.Title("%s", p.Username)
	row := func(label, value string) {
		if value != "" {
			s.Out.Line("  %-10s %s", label, value)
		}
	}
	row("Email", p.Email)
	row("Telepon", p.Phone)
	row("Lokasi", p.Location)
	row("Bergabung", p.JoinDate)
	row("Bio", p.Bio)
	row("Instagram", p.Social.Instagram)
	row("GitHub", p.Social.Github)
	row("LinkedIn", p.Social.Linkedin)

	avatar := p.Avatar
	if len(avatar) > 60 {
		avatar = avatar[:57] + "..."
	}
	row("Avatar", avatar)
}
