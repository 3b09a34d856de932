package profile

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Ошибка регистрации возможна только при пустом теге
	_ = v.RegisterValidation("avatar", func(fl validator.FieldLevel) bool {
		return isAvatar(fl.Field().String())
	})
	return v
}

// isAvatar принимает http(s) URL или data URL с изображением в base64
func isAvatar(s string) bool {
	if strings.HasPrefix(s, "data:") {
		header, _, ok := strings.Cut(s, ",")
		return ok && strings.HasPrefix(header, "data:image/") && strings.HasSuffix(header, ";base64")
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// normalize обрезает пробелы по краям заданных полей
func (p Patch) normalize() Patch {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		s := strings.TrimSpace(*v)
		return &s
	}

	p.Username = trim(p.Username)
	p.Avatar = trim(p.Avatar)
	p.Email = trim(p.Email)
	p.Phone = trim(p.Phone)
	p.Location = trim(p.Location)
	p.JoinDate = trim(p.JoinDate)
	p.Bio = trim(p.Bio)
	if p.Social != nil {
		p.Social = &Social{
			Instagram: strings.TrimSpace(p.Social.Instagram),
			Github:    strings.TrimSpace(p.Social.Github),
			Linkedin:  strings.TrimSpace(p.Social.Linkedin),
		}
	}
	return p
}

// fields возвращает пути полей Profile, которые задает patch, в формате StructPartial
func (p Patch) fields() []string {
	var out []string
	add := func(v *string, name string) {
		if v != nil {
			out = append(out, name)
		}
	}

	add(p.Username, "Username")
	add(p.Avatar, "Avatar")
	add(p.Email, "Email")
	add(p.Phone, "Phone")
	add(p.Location, "Location")
	add(p.JoinDate, "JoinDate")
	add(p.Bio, "Bio")
	if p.Social != nil {
		out = append(out, "Social.Instagram", "Social.Github", "Social.Linkedin")
	}
	return out
}

// Validate накладывает patch на base и проверяет только поля, заданные в patch.
// Сохраненные ранее значения остальных полей не проверяются.
func Validate(v *validator.Validate, base Profile, patch Patch) (Profile, error) {
	patch = patch.normalize()
	next := patch.Apply(base)
	if err := v.StructPartial(next, patch.fields()...); err != nil {
		return base, newValidationError(err)
	}
	return next, nil
}

// ValidationError перечисляет поля профиля, не прошедшие проверку
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidProfile, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProfile
}

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// social.instagram вместо Profile.social.instagram
		name := fe.Namespace()
		if i := strings.Index(name, "."); i >= 0 {
			name = name[i+1:]
		}

		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "max":
			fields[name] = "must be at most " + fe.Param() + " characters"
		case "email":
			fields[name] = "must be a valid email"
		case "avatar":
			fields[name] = "must be an http(s) URL or an image data URL"
		default:
			fields[name] = "failed " + fe.Tag()
		}
	}
	return &ValidationError{Fields: fields}
}
