package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "empty config is valid",
			config:  Config{},
			wantErr: nil,
		},
		{
			name:    "unknown level returns ErrLogLevelUnknown",
			config:  Config{LogLevel: "trace"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "unknown format returns ErrLogFormatUnknown",
			config:  Config{LogLevel: "debug", LogFormat: "xml"},
			wantErr: ErrLogFormatUnknown,
		},
		{
			name:    "json format accepted",
			config:  Config{LogLevel: "error", LogFormat: "json"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
