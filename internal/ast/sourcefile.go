package ast

// ScriptContext is the ambient capability set of a compilation unit, as
// reported by the external environment-query collaborator.
type ScriptContext int

const (
	ScriptContextNone ScriptContext = iota
	ScriptContextServer
	ScriptContextClient
)

func (s ScriptContext) String() string {
	switch s {
	case ScriptContextServer:
		return "Server"
	case ScriptContextClient:
		return "Client"
	default:
		return "None"
	}
}

// ScriptType distinguishes a file that is a module (has imports/exports
// and is required by other files) from a script (a standalone entry
// point), mirroring the external environment collaborator's
// `getScriptType`.
type ScriptType int

const (
	ScriptTypeModule ScriptType = iota
	ScriptTypeScript
)

// SourceFile is the root node of one compilation unit.
type SourceFile struct {
	base
	FileName      string
	Statements    []Statement
	ScriptContext ScriptContext
	ScriptType    ScriptType
}

func NewSourceFile(fileName string, statements []Statement, scriptContext ScriptContext, scriptType ScriptType) *SourceFile {
	return &SourceFile{
		base:          newBase(KindSourceFile, Position{Line: 1, Column: 1}),
		FileName:      fileName,
		Statements:    statements,
		ScriptContext: scriptContext,
		ScriptType:    scriptType,
	}
}
