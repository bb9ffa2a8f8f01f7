package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildit/internal/core/domain"
)

func TestParseModeTag(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Mode
		wantErr bool
	}{
		{in: "0", want: domain.ModeUnset},
		{in: "1", want: domain.ModeConfigure},
		{in: "2", want: domain.ModeBuild},
		{in: "3", want: domain.ModeClean},
		{in: "4", want: domain.ModeHelp},
		{in: "5", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "configure", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseModeTag(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrMalformedRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "configure", domain.ModeConfigure.String())
	assert.Equal(t, "help", domain.ModeHelp.String())
	assert.Equal(t, "mode(9)", domain.Mode(9).String())
}
