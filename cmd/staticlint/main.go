/* Package staticlint defines a multi-checker for static analysis.
   It implements tools/go/analysis/multichecker interface.

   The multichecker contains:
	1) standard static analyzers from the golang.org/x/tools/go/analysis/passes package.
	2) analyzers of the SA class of the staticcheck package.
	3) analyzers of the S class of the simple package.
	4) analyzers of the ST class of the stylecheck package.
	5) custom analyzer exitcheckanalyzer to check call of os.Exit in main package.
	6) open source go-critic analyzer.
	7) open source asciicheck analyzer.

   Which staticcheck, simple and stylecheck analyzers are enabled is read from the
   JSON file named by STATICLINT_CONFIG, e.g.

	{"Staticcheck": ["SA"], "Simple": ["S1"], "Stylecheck": ["ST1003"]}

   Without the file every SA analyzer and no S/ST analyzer is enabled.

   How to use:
	go run ./cmd/staticlint ./...
*/
package main

import (
	"encoding/json"
	"fmt"
	gocritic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/pkg/errors"
	"github.com/tdakkota/asciicheck"
	"go-link-shortener/cmd/staticlint/exitcheckanalyzer"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
	"os"
	"sort"
	"strings"
)

// ConfigEnv names the environment variable with the configuration file path.
const ConfigEnv = "STATICLINT_CONFIG"

// ConfigData structure for configuration
type ConfigData struct {
	Staticcheck []string
	Simple      []string
	Stylecheck  []string
}

var defaultConfig = ConfigData{Staticcheck: []string{"SA"}}

func readConfig(path string) (ConfigData, error) {
	if path == "" {
		return defaultConfig, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ConfigData{}, errors.Wrap(err, "read staticlint config")
	}
	var cfg ConfigData
	if err = json.Unmarshal(data, &cfg); err != nil {
		return ConfigData{}, errors.Wrapf(err, "decode staticlint config %s", path)
	}
	return cfg, nil
}

// selectAnalyzers returns analyzers whose names start with one of prefixes, sorted by name.
func selectAnalyzers(all map[string]*analysis.Analyzer, prefixes []string) []*analysis.Analyzer {
	var res []*analysis.Analyzer
	for name, v := range all {
		for _, c := range prefixes {
			if strings.HasPrefix(name, c) {
				res = append(res, v)
				break
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func buildChecks(cfg ConfigData) []*analysis.Analyzer {
	mychecks := []*analysis.Analyzer{
		exitcheckanalyzer.ExitCheckAnalyzer, // custom analyzer to check os.Exit in main package
		gocritic.Analyzer,                   // go-critic analyzer
		asciicheck.NewAnalyzer(),            // ascii check analyzer
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
	}
	mychecks = append(mychecks, selectAnalyzers(staticcheck.Analyzers, cfg.Staticcheck)...)
	mychecks = append(mychecks, selectAnalyzers(simple.Analyzers, cfg.Simple)...)
	mychecks = append(mychecks, selectAnalyzers(stylecheck.Analyzers, cfg.Stylecheck)...)
	return mychecks
}

func main() {
	cfg, err := readConfig(os.Getenv(ConfigEnv))
	if err != nil {
		panic(err)
	}

	// print current configuration
	fmt.Fprintf(os.Stderr, "%+v\n", cfg)

	multichecker.Main(buildChecks(cfg)...)
}
