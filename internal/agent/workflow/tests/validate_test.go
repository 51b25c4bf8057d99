package tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/workflow"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name      string
		newSecret string
		confirm   string
		current   string
		want      workflow.Report
	}{
		{"empty confirm is neutral", "newpass1", "", "abc123", workflow.Report{}},
		{"everything empty is neutral", "", "", "", workflow.Report{}},
		{"mismatch", "newpass1", "newpass2", "abc123", workflow.Report{Message: workflow.MsgMismatch}},
		{"mismatch wins over too short", "a", "b", "abc123", workflow.Report{Message: workflow.MsgMismatch}},
		{"too short", "short", "short", "abc123", workflow.Report{Message: workflow.MsgTooShort}},
		{"too short wins over same as current", "abc", "abc", "abc", workflow.Report{Message: workflow.MsgTooShort}},
		{"same as current", "abc123", "abc123", "abc123", workflow.Report{Message: workflow.MsgSameAsCurrent}},
		{"valid", "newpass1", "newpass1", "abc123", workflow.Report{Valid: true, Message: workflow.MsgConfirmed}},
		{"exactly min length", "123456", "123456", "abc123", workflow.Report{Valid: true, Message: workflow.MsgConfirmed}},
		{"length counts runes", "пароль", "пароль", "abc123", workflow.Report{Valid: true, Message: workflow.MsgConfirmed}},
		{"five runes in ten bytes", "пароь", "пароь", "abc123", workflow.Report{Message: workflow.MsgTooShort}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workflow.Validate(tt.newSecret, tt.confirm, tt.current)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_ValidIffAllRulesHold(t *testing.T) {
	values := []string{"", "a", "short", "abc123", "newpass1", "newpass2", "пароль"}

	for _, n := range values {
		for _, c := range values {
			for _, cur := range values {
				r := workflow.Validate(n, c, cur)
				want := c != "" && n == c && len([]rune(n)) >= workflow.DefaultMinLength && n != cur
				if r.Valid != want {
					t.Fatalf("Validate(%q, %q, %q).Valid = %v, want %v", n, c, cur, r.Valid, want)
				}
			}
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	first := workflow.Validate("newpass1", "newpass1", "abc123")
	for i := 0; i < 5; i++ {
		require.Equal(t, first, workflow.Validate("newpass1", "newpass1", "abc123"))
	}
	require.True(t, first.Valid)
}

func TestValidate_NeutralReport(t *testing.T) {
	require.True(t, workflow.Validate("x", "", "").Neutral())
	require.False(t, workflow.Validate("x", "y", "").Neutral())
}

func TestRules_CustomMinLength(t *testing.T) {
	r := workflow.Rules{MinLength: 2}

	require.Equal(t, workflow.MsgTooShort, r.Validate("a", "a", "old").Message)
	require.True(t, r.Validate("ab", "ab", "old").Valid)

	// нулевой минимум берёт значение по умолчанию
	require.Equal(t, workflow.MsgTooShort, workflow.Rules{}.Validate("short", "short", "").Message)
}

func TestProfile_BuiltinsAreValid(t *testing.T) {
	for name, p := range workflow.BuiltinProfiles() {
		require.NoError(t, p.Validate(), name)
		require.Equal(t, name, p.Name)
	}
}

func TestProfile_Merge(t *testing.T) {
	custom := workflow.Profile{SubmitPath: "/v2/update-password", MinLength: 8}
	merged := custom.Merge(workflow.PasswordProfile())

	require.Equal(t, "/v2/update-password", merged.SubmitPath)
	require.Equal(t, 8, merged.MinLength)
	require.Equal(t, "/verify-password", merged.VerifyPath)
	require.Equal(t, workflow.ProfilePassword, merged.Name)
	require.NoError(t, merged.Validate())
}

func TestProfile_ValidateErrors(t *testing.T) {
	base := workflow.PasswordProfile()

	tests := []struct {
		name   string
		mutate func(p *workflow.Profile)
	}{
		{"no name", func(p *workflow.Profile) { p.Name = " " }},
		{"relative verify path", func(p *workflow.Profile) { p.VerifyPath = "verify" }},
		{"relative submit path", func(p *workflow.Profile) { p.SubmitPath = "" }},
		{"no identity field", func(p *workflow.Profile) { p.IdentityField = "" }},
		{"zero min length", func(p *workflow.Profile) { p.MinLength = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, serr.ErrInvalidInput)
		})
	}
}
