// ==============================================================================================
// FILE: evaluator/loader.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Component H, the `grab` module loader. Every grabbed file is parsed and evaluated
//          against the SAME Environment as the entry file (one shared top-level scope, one set
//          of global tables), with CurrentFile swapped to the grabbed file for the duration so
//          diagnostics cite the file a token actually came from (§4.H, §9).
// ==============================================================================================

package evaluator

import (
	"os"
	"path/filepath"

	"foolang/diag"
	"foolang/lexer"
	"foolang/parser"
	"foolang/token"
)

func canonicalPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return filepath.Clean(abs)
}

// grab resolves path relative to the directory of the file doing the
// grabbing, then loads it exactly once: a second grab of an already-loaded
// file is a silent no-op, and a grab reached while that same file is still
// loading is a circular import (§4.H state machine: notLoaded/loading/loaded).
func (ev *Evaluator) grab(loc token.SourceLoc, path string) *diag.Error {
	dir := filepath.Dir(ev.CurrentFile)
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, path)
	}
	abs := canonicalPath(target)

	switch ev.moduleStates[abs] {
	case "loaded":
		return nil
	case "loading":
		return diag.ImportErr(loc, "circular import detected for '%s'", path)
	}

	data, readErr := os.ReadFile(abs)
	if readErr != nil {
		return diag.ImportErrWrap(loc, readErr, "cannot read module '%s'", path)
	}

	ev.moduleStates[abs] = "loading"

	l := lexer.New(abs, string(data))
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return errs[0]
	}

	savedFile := ev.CurrentFile
	ev.CurrentFile = abs
	sig, err := ev.evalStatements(prog.Statements)
	ev.CurrentFile = savedFile
	if err != nil {
		return err
	}
	if sig.Kind == SigBreak || sig.Kind == SigContinue {
		return diag.DomainErr(sig.Loc, "'%s' used with no enclosing loop", signalWord(sig.Kind))
	}

	ev.moduleStates[abs] = "loaded"
	return nil
}
