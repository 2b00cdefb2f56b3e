// Package emit projects the classified chunk stream into identifier
// occurrence rows for the index.
package emit

import (
	"github.com/ctoks/ctoks/internal/chunk"
)

// Entity is the indexed entity kind.
type Entity string

const (
	Identifier    Entity = "IDENTIFIER"
	Macro         Entity = "MACRO"
	MacroFunction Entity = "MACRO_FUNCTION"
	Function      Entity = "FUNCTION"
	Struct        Entity = "STRUCT"
	Union         Entity = "UNION"
	Enum          Entity = "ENUM"
	EnumVal       Entity = "ENUM_VAL"
	Class         Entity = "CLASS"
	StructType    Entity = "STRUCT_TYPE"
	UnionType     Entity = "UNION_TYPE"
	EnumType      Entity = "ENUM_TYPE"
	FunctionType  Entity = "FUNCTION_TYPE"
	Type          Entity = "TYPE"
	Var           Entity = "VAR"
	Namespace     Entity = "NAMESPACE"
)

// Role is the occurrence role.
type Role string

const (
	Ref  Role = "REF"
	Def  Role = "DEF"
	Decl Role = "DECL"
)

// Entry is one identifier occurrence.
type Entry struct {
	Line       int
	ColStart   int
	ColEnd     int
	Scope      string
	Entity     Entity
	Role       Role
	Identifier string
}

// roleFromFlags picks the role a DEF/PROTO/REF-flagged chunk carries.
func roleFromFlags(pc *chunk.Chunk) (Role, bool) {
	switch {
	case pc.Flags&chunk.Def != 0:
		return Def, true
	case pc.Flags&chunk.Proto != 0:
		return Decl, true
	case pc.Flags&chunk.Ref != 0:
		return Ref, true
	}
	return Ref, false
}

// classify maps one chunk to its (entity, role) tuple. The mapping is
// total on the kinds below; everything else is skipped.
func classify(pc *chunk.Chunk) (Entity, Role, bool) {
	switch pc.Kind {
	case chunk.FuncDef:
		return Function, Def, true
	case chunk.FuncProto:
		return Function, Decl, true
	case chunk.FuncCall, chunk.FuncCallUser:
		return Function, Ref, true
	case chunk.FuncClass:
		role, ok := roleFromFlags(pc)
		return Function, role, ok
	case chunk.MacroFunc:
		return MacroFunction, Def, true
	case chunk.Macro:
		return Macro, Def, true
	case chunk.FuncType:
		return FunctionType, Def, true
	case chunk.OCMsgSpec, chunk.OCMsgDecl:
		// Only the method name carries a role; selector labels don't.
		role, ok := roleFromFlags(pc)
		if !ok {
			return "", "", false
		}
		return Function, role, true
	case chunk.FuncCtorVar:
		return Var, Ref, true

	case chunk.Type:
		if pc.Flags&chunk.Keyword != 0 {
			return "", "", false
		}
		switch pc.ParentKind {
		case chunk.Typedef:
			switch {
			case pc.Flags&chunk.TypedefStruct != 0:
				return StructType, Def, true
			case pc.Flags&chunk.TypedefUnion != 0:
				return UnionType, Def, true
			case pc.Flags&chunk.TypedefEnum != 0:
				return EnumType, Def, true
			}
			return Type, Def, true
		case chunk.Struct:
			role, ok := roleFromFlags(pc)
			return Struct, role, ok
		case chunk.Union:
			role, ok := roleFromFlags(pc)
			return Union, role, ok
		case chunk.Enum:
			role, ok := roleFromFlags(pc)
			return Enum, role, ok
		case chunk.Class, chunk.OCClass:
			role, ok := roleFromFlags(pc)
			return Class, role, ok
		}
		return Type, Ref, true

	case chunk.FuncVar, chunk.Word:
		if pc.ParentKind == chunk.Namespace {
			role, ok := roleFromFlags(pc)
			return Namespace, role, ok
		}
		if pc.ParentKind == chunk.None {
			return wordEntity(pc)
		}
	}
	return "", "", false
}

// wordEntity resolves a bare word by its variable flags.
func wordEntity(pc *chunk.Chunk) (Entity, Role, bool) {
	switch {
	case pc.Flags&chunk.InEnum != 0:
		return EnumVal, Def, true
	case pc.Flags&chunk.VarDef != 0:
		return Var, Def, true
	case pc.Flags&chunk.VarDecl != 0:
		return Var, Decl, true
	}
	return Identifier, Ref, true
}

// Entries projects the workspace chunk list into occurrence rows.
func Entries(ws *chunk.Workspace) []Entry {
	var out []Entry
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		if pc.Flags&chunk.Punctuator != 0 {
			continue
		}
		entity, role, ok := classify(pc)
		if !ok {
			continue
		}
		out = append(out, Entry{
			Line:       pc.OrigLine,
			ColStart:   pc.OrigCol,
			ColEnd:     pc.OrigColEnd,
			Scope:      pc.Scope,
			Entity:     entity,
			Role:       role,
			Identifier: pc.Text,
		})
	}
	return out
}
