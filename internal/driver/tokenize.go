package driver

import (
	"unforce/internal/diag"
	"unforce/internal/lexer"
	"unforce/internal/source"
	"unforce/internal/token"
)

// TokenizeResult is the output of tokenizing a single file.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// TokenizeFile loads one file and runs only the lexer over it.
func TokenizeFile(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(fileSet.Get(fileID), lexer.Options{
		Reporter: lexer.DiagReporter{R: diag.BagReporter{Bag: bag}},
	})

	return &TokenizeResult{
		FileSet: fileSet,
		FileID:  fileID,
		Tokens:  toks,
		Bag:     bag,
	}, nil
}
