package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"

	"github.com/Scharxi/mini-shell/core/history"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()

	assert.Equal(t, "shell> ", cfg.Prompt)
	assert.Equal(t, "stream", cfg.PipelineMode)
	assert.Nil(t, cfg.Validate())
}

func TestConfiguration_Validate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr string
	}{
		"defaults": {
			mutate: func(*Configuration) {},
		},
		"negative limit": {
			mutate:  func(c *Configuration) { c.HistoryLimit = -1 },
			wantErr: "history_limit",
		},
		"unknown color": {
			mutate:  func(c *Configuration) { c.Color = "sometimes" },
			wantErr: "color",
		},
		"unknown pipeline mode": {
			mutate:  func(c *Configuration) { c.PipelineMode = "parallel" },
			wantErr: "pipeline_mode",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfiguration_HistoryPath(t *testing.T) {
	home := filepath.Dir(history.DefaultPath())

	cases := map[string]struct {
		historyFile string
		want        string
	}{
		"default":  {historyFile: "", want: history.DefaultPath()},
		"absolute": {historyFile: "/tmp/hist", want: "/tmp/hist"},
		"relative": {historyFile: "hist", want: filepath.Join(home, "hist")},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := &Configuration{HistoryFile: tc.historyFile}
			assert.Equal(t, tc.want, cfg.HistoryPath())
		})
	}
}
