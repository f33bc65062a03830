package accordion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "single", want: ModeSingle},
		{input: "multiple", want: ModeMultiple},
		{input: " Multiple ", want: ModeMultiple},
		{input: "", want: ModeSingle},
		{input: "many", wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMode(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "single", ModeSingle.String())
	assert.Equal(t, "multiple", ModeMultiple.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
	assert.True(t, ModeMultiple.Valid())
	assert.False(t, Mode(-1).Valid())
}
