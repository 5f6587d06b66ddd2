// Package exitcheckanalyzer is an analyzer prohibiting the use of a direct call
// to os.Exit in the main function of the main package.
package exitcheckanalyzer

import (
	"go/ast"
	"go/types"
	"golang.org/x/tools/go/analysis"
)

var ExitCheckAnalyzer = &analysis.Analyzer{
	Name: "exitcheck",
	Doc:  "check for os.Exit direct call in main",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}
			ast.Inspect(fn.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok || sel.Sel.Name != "Exit" {
					return true
				}
				// check the selector refers to the os package
				if pkg, ok := sel.X.(*ast.Ident); ok && isOsPackage(pass, pkg) {
					pass.Reportf(sel.Pos(), "os.Exit is not allowed in main package")
				}
				return true
			})
		}
	}
	return nil, nil
}

func isOsPackage(pass *analysis.Pass, id *ast.Ident) bool {
	pkgName, ok := pass.TypesInfo.Uses[id].(*types.PkgName)
	return ok && pkgName.Imported().Path() == "os"
}
