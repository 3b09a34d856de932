package profile

type Social struct {
	Instagram string `json:"instagram" validate:"max=64"`
	Github    string `json:"github" validate:"max=64"`
	Linkedin  string `json:"linkedin" validate:"max=64"`
}

type Profile struct {
	Username string `json:"username" validate:"required,max=64"`
	Avatar   string `json:"avatar" validate:"omitempty,avatar"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"max=32"`
	Location string `json:"location" validate:"max=128"`
	JoinDate string `json:"joinDate" validate:"max=64"`
	Bio      string `json:"bio" validate:"max=280"`
	Social   Social `json:"social"`
}

// Default возвращается, пока профиль не сохранен или не читается
func Default() Profile {
	return Profile{
		Username: "Budi Santoso",
		Avatar:   "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=400&h=400&fit=crop&crop=faces",
		Email:    "budi.santoso@email.com",
		Phone:    "+62 812-3456-7890",
		Location: "Jakarta, Indonesia",
		JoinDate: "Januari 2024",
		Bio:      "Pecinta kuliner Nusantara dan penggemar masakan tradisional. Senang berbagi resep dan tips memasak dengan komunitas.",
		Social: Social{
			Instagram: "@budisantoso",
			Github:    "budisantoso",
			Linkedin:  "budi-santoso",
		},
	}
}

// Patch - частичное обновление. Заданные поля заменяют текущие значения,
// Social заменяется целиком.
type Patch struct {
	Username *string `json:"username,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	JoinDate *string `json:"joinDate,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Social   *Social `json:"social,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply накладывает заполненные поля на base
func (p Patch) Apply(base Profile) Profile {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}

	set(&base.Username, p.Username)
	set(&base.Avatar, p.Avatar)
	set(&base.Email, p.Email)
	set(&base.Phone, p.Phone)
	set(&base.Location, p.Location)
	set(&base.JoinDate, p.JoinDate)
	set(&base.Bio, p.Bio)
	if p.Social != nil {
		base.Social = *p.Social
	}
	return base
}
