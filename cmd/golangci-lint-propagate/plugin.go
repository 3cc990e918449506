// golangcilintpropagate package provides a plugin for golangci-lint to
// integrate the Propagate analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Run the binary with "--build-tags=propagate" so that enum declarations are
// linted.
package golangcilintpropagate

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/propagate/pkg/propagateanalysis"
)

func init() {
	register.Plugin("propagate", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return PropagateLinter{}, nil
}

type PropagateLinter struct{}

func (PropagateLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{propagateanalysis.Analyzer}, nil
}

func (PropagateLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
