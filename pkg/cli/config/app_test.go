package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/cli/config"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

func TestAppConfigDefaults(t *testing.T) {
	cfg := config.NewAppConfigForTest("")

	settings, err := cfg.Configure()
	gt.NoError(t, err).Required()
	gt.Value(t, settings.DeletePolicy).Equal(types.DeletePolicyOrphan)
}

func TestAppConfigDeletePolicy(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    types.DeletePolicy
		wantErr error
	}{
		{
			name:    "cascade policy",
			content: `delete_policy = "cascade"`,
			want:    types.DeletePolicyCascade,
		},
		{
			name:    "reject policy",
			content: `delete_policy = "reject"`,
			want:    types.DeletePolicyReject,
		},
		{
			name:    "empty file falls back to default",
			content: "",
			want:    types.DeletePolicyOrphan,
		},
		{
			name:    "unknown policy",
			content: `delete_policy = "recursive"`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "malformed TOML",
			content: `delete_policy = `,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			err := os.WriteFile(configPath, []byte(tt.content), 0644)
			gt.NoError(t, err).Required()

			settings, err := config.NewAppConfigForTest(configPath).Configure()

			if tt.wantErr != nil {
				gt.Value(t, err).NotNil()
				if err != nil {
					gt.Error(t, err).Is(tt.wantErr)
				}
				return
			}

			gt.NoError(t, err).Required()
			gt.Value(t, settings.DeletePolicy).Equal(tt.want)
		})
	}
}

func TestAppConfigFileNotFound(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "missing.toml")

	_, err := config.NewAppConfigForTest(configPath).Configure()
	gt.Value(t, err).NotNil().Required()
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}
