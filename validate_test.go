package solace_test

import (
	"testing"
	"time"

	"github.com/solace-dev/solace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMoodScore(t *testing.T) {
	t.Parallel()

	for _, score := range []int{1, 5, 10} {
		assert.NoError(t, solace.ValidateMoodScore(score))
	}
	for _, score := range []int{0, -1, 11} {
		err := solace.ValidateMoodScore(score)
		require.ErrorIs(t, err, solace.ErrValidation)
	}
}

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		consent bool
		wantErr bool
	}{
		{name: "valid", email: "a@example.com", consent: true},
		{name: "empty email", email: "", consent: true, wantErr: true},
		{name: "whitespace email", email: "   ", consent: true, wantErr: true},
		{name: "malformed email", email: "not-an-email", consent: true, wantErr: true},
		{name: "missing consent", email: "a@example.com", consent: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := solace.ValidateRegistration(tt.email, tt.consent)
			if tt.wantErr {
				require.ErrorIs(t, err, solace.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateCopingTool(t *testing.T) {
	t.Parallel()

	valid := solace.CopingTool{Title: "Box breathing", Category: "breathing", Duration: 5 * time.Minute}
	assert.NoError(t, solace.ValidateCopingTool(valid))

	require.ErrorIs(t, solace.ValidateCopingTool(solace.CopingTool{Title: "  "}), solace.ErrValidation)
	require.ErrorIs(t, solace.ValidateCopingTool(solace.CopingTool{Title: "x", Duration: -time.Second}), solace.ErrValidation)
}
