package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"Staticcheck":["SA1"],"Simple":["S1000"],"Stylecheck":[]}`), 0o600))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))

	tests := []struct {
		name    string
		path    string
		want    ConfigData
		wantErr bool
	}{
		{name: "default config", path: "", want: defaultConfig},
		{name: "config file", path: good, want: ConfigData{Staticcheck: []string{"SA1"}, Simple: []string{"S1000"}, Stylecheck: []string{}}},
		{name: "missing file", path: filepath.Join(dir, "missing.json"), wantErr: true},
		{name: "broken file", path: broken, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readConfig(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectAnalyzers(t *testing.T) {
	all := map[string]*analysis.Analyzer{
		"SA1000": {Name: "SA1000"},
		"SA2000": {Name: "SA2000"},
		"S1000":  {Name: "S1000"},
	}
	got := selectAnalyzers(all, []string{"SA"})
	require.Len(t, got, 2)
	assert.Equal(t, "SA1000", got[0].Name)
	assert.Equal(t, "SA2000", got[1].Name)

	assert.Empty(t, selectAnalyzers(all, nil))
}

func TestBuildChecks(t *testing.T) {
	checks := buildChecks(ConfigData{})
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "exitcheck")
	assert.Contains(t, names, "printf")
	assert.Len(t, checks, 6)
}
