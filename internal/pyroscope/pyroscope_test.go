package pyroscope

import (
	"testing"

	"github.com/flexprice/rates/internal/config"
	"github.com/flexprice/rates/internal/logger"
	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileTypes(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []pyroscope.ProfileType
	}{
		{
			name: "defaults",
			want: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseSpace,
				pyroscope.ProfileGoroutines,
			},
		},
		{
			name:  "case insensitive, unknown skipped",
			names: []string{"CPU", "heap", "mutex_count"},
			want:  []pyroscope.ProfileType{pyroscope.ProfileCPU, pyroscope.ProfileMutexCount},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.GetDefaultConfig()
			cfg.Pyroscope.ProfileTypes = tt.names
			svc := NewPyroscopeService(cfg, logger.NewNopLogger())
			assert.Equal(t, tt.want, svc.profileTypes())
		})
	}
}

func TestDisabledServiceIsNoop(t *testing.T) {
	svc := NewPyroscopeService(config.GetDefaultConfig(), logger.NewNopLogger())
	require.NoError(t, svc.Start())
	require.NoError(t, svc.Stop())
}
