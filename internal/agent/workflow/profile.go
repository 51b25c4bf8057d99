package workflow

import (
	"fmt"
	"strings"

	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// Profile описывает один вариант процесса подтверждения.
//
// Варианты (смена пароля, смена имени и т.п.) отличаются только подписями
// полей, путями эндпоинтов и именами полей JSON, поэтому вместо отдельной
// реализации на каждый экран используется один контроллер и разные профили.
type Profile struct {
	Name           string `yaml:"name"`
	Title          string `yaml:"title"`
	CurrentLabel   string `yaml:"current_label"`
	NewLabel       string `yaml:"new_label"`
	ConfirmLabel   string `yaml:"confirm_label"`
	VerifyPath     string `yaml:"verify_path"`
	SubmitPath     string `yaml:"submit_path"`
	IdentityField  string `yaml:"identity_field"`
	SecretField    string `yaml:"secret_field"`
	NewValueField  string `yaml:"new_value_field"`
	MinLength      int    `yaml:"min_length"`
	ReturnTo       string `yaml:"return_to"` // экран, куда уходит флаг перехода
	SuccessMessage string `yaml:"success_message"`
}

// имена встроенных профилей
const (
	ProfilePassword = "password"
	ProfileUsername = "username"
)

// PasswordProfile — смена пароля: /verify-password, затем /update-password.
func PasswordProfile() Profile {
	return Profile{
		Name:           ProfilePassword,
		Title:          "Change password",
		CurrentLabel:   "Current password",
		NewLabel:       "New password",
		ConfirmLabel:   "Repeat new password",
		VerifyPath:     "/verify-password",
		SubmitPath:     "/update-password",
		IdentityField:  "user_id",
		SecretField:    "password",
		NewValueField:  "new_password",
		MinLength:      DefaultMinLength,
		ReturnTo:       "settings",
		SuccessMessage: "password changed",
	}
}

// UsernameProfile — смена имени: пароль подтверждается так же, новое имя
// уходит в /update-username.
func UsernameProfile() Profile {
	return Profile{
		Name:           ProfileUsername,
		Title:          "Change username",
		CurrentLabel:   "Current password",
		NewLabel:       "New username",
		ConfirmLabel:   "Repeat new username",
		VerifyPath:     "/verify-password",
		SubmitPath:     "/update-username",
		IdentityField:  "user_id",
		SecretField:    "password",
		NewValueField:  "username",
		MinLength:      2,
		ReturnTo:       "settings",
		SuccessMessage: "username changed",
	}
}

// BuiltinProfiles возвращает встроенные профили по имени.
func BuiltinProfiles() map[string]Profile {
	return map[string]Profile{
		ProfilePassword: PasswordProfile(),
		ProfileUsername: UsernameProfile(),
	}
}

// Rules возвращает правила валидации профиля.
func (p Profile) Rules() Rules {
	return Rules{MinLength: p.MinLength}
}

// Merge дополняет пустые поля p значениями base.
//
// Используется, когда в конфиге переопределена только часть встроенного профиля.
func (p Profile) Merge(base Profile) Profile {
	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}
	fill(&p.Name, base.Name)
	fill(&p.Title, base.Title)
	fill(&p.CurrentLabel, base.CurrentLabel)
	fill(&p.NewLabel, base.NewLabel)
	fill(&p.ConfirmLabel, base.ConfirmLabel)
	fill(&p.VerifyPath, base.VerifyPath)
	fill(&p.SubmitPath, base.SubmitPath)
	fill(&p.IdentityField, base.IdentityField)
	fill(&p.SecretField, base.SecretField)
	fill(&p.NewValueField, base.NewValueField)
	fill(&p.ReturnTo, base.ReturnTo)
	fill(&p.SuccessMessage, base.SuccessMessage)
	if p.MinLength == 0 {
		p.MinLength = base.MinLength
	}
	return p
}

// Validate проверяет, что профилем можно пользоваться.
func (p Profile) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("profile name is empty: %w", serr.ErrInvalidInput)
	case !strings.HasPrefix(p.VerifyPath, "/"):
		return fmt.Errorf("profile %q: verify_path must start with '/': %w", p.Name, serr.ErrInvalidInput)
	case !strings.HasPrefix(p.SubmitPath, "/"):
		return fmt.Errorf("profile %q: submit_path must start with '/': %w", p.Name, serr.ErrInvalidInput)
	case p.IdentityField == "" || p.SecretField == "" || p.NewValueField == "":
		return fmt.Errorf("profile %q: identity_field, secret_field and new_value_field are required: %w", p.Name, serr.ErrInvalidInput)
	case p.MinLength < 1:
		return fmt.Errorf("profile %q: min_length must be >= 1: %w", p.Name, serr.ErrInvalidInput)
	}
	return nil
}
