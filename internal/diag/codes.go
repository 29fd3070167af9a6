package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	// UnknownCode is the zero value.
	UnknownCode Code = 0

	// Lexical findings.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedPlaceholder  Code = 1004

	// Parser findings.
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnclosedBrace   Code = 2002
	SynUnclosedParen   Code = 2003

	// Refactoring scan findings.
	RefactorInfo     Code = 4000
	RefactorForceTry Code = 4001

	// IO findings.
	IOLoadFileError Code = 5000
)

var codeIDs = map[Code]string{
	UnknownCode:                 "UNKNOWN",
	LexInfo:                     "LEX0000",
	LexUnknownChar:              "LEX0001",
	LexUnterminatedString:       "LEX0002",
	LexUnterminatedBlockComment: "LEX0003",
	LexUnterminatedPlaceholder:  "LEX0004",
	SynInfo:                     "SYN0000",
	SynUnexpectedToken:          "SYN0001",
	SynUnclosedBrace:            "SYN0002",
	SynUnclosedParen:            "SYN0003",
	RefactorInfo:                "RFX0000",
	RefactorForceTry:            "RFX0001",
	IOLoadFileError:             "IO0001",
}

// ID returns the stable string identifier of the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("CODE%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
