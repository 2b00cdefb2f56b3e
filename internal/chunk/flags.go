package chunk

import "strings"

// Flags is the per-chunk flag bitset. The low 16 bits are copy flags:
// a newly tokenized chunk inherits them from its predecessor, which is
// how "inside preproc", "inside class base", etc. propagate.
type Flags uint64

const (
	InPreproc Flags = 1 << iota
	InStruct
	InEnum
	InFcnDef
	InFcnCall
	InSParen
	InTemplate
	InTypedef
	InConstArgs
	InArrayAssign
	InClass
	InClassBase
	InNamespace
	InFor
	InOCMsg
	flagUnused15

	ForceSpace
	StmtStart
	ExprStart
	DontIndent
	AlignStart
	WasAligned
	VarType
	VarDef
	VarDecl
	VarInline
	RightComment
	OldFcnParams
	LValue
	OneLiner
	EmptyBody
	Anchor
	Punctuator
	Keyword
	LongBlock
	OCBoxed
	Static
	OCRType
	OCAType
	Def
	Proto
	Ref
	TypedefStruct
	TypedefUnion
	TypedefEnum
)

// CopyFlags is the mask of flags inherited by later chunks.
const CopyFlags Flags = 0x0000ffff

var flagNames = []struct {
	bit  Flags
	name string
}{
	{InPreproc, "IN_PREPROC"},
	{InStruct, "IN_STRUCT"},
	{InEnum, "IN_ENUM"},
	{InFcnDef, "IN_FCN_DEF"},
	{InFcnCall, "IN_FCN_CALL"},
	{InSParen, "IN_SPAREN"},
	{InTemplate, "IN_TEMPLATE"},
	{InTypedef, "IN_TYPEDEF"},
	{InConstArgs, "IN_CONST_ARGS"},
	{InArrayAssign, "IN_ARRAY_ASSIGN"},
	{InClass, "IN_CLASS"},
	{InClassBase, "IN_CLASS_BASE"},
	{InNamespace, "IN_NAMESPACE"},
	{InFor, "IN_FOR"},
	{InOCMsg, "IN_OC_MSG"},
	{ForceSpace, "FORCE_SPACE"},
	{StmtStart, "STMT_START"},
	{ExprStart, "EXPR_START"},
	{DontIndent, "DONT_INDENT"},
	{AlignStart, "ALIGN_START"},
	{WasAligned, "WAS_ALIGNED"},
	{VarType, "VAR_TYPE"},
	{VarDef, "VAR_DEF"},
	{VarDecl, "VAR_DECL"},
	{VarInline, "VAR_INLINE"},
	{RightComment, "RIGHT_COMMENT"},
	{OldFcnParams, "OLD_FCN_PARAMS"},
	{LValue, "LVALUE"},
	{OneLiner, "ONE_LINER"},
	{EmptyBody, "EMPTY_BODY"},
	{Anchor, "ANCHOR"},
	{Punctuator, "PUNCTUATOR"},
	{Keyword, "KEYWORD"},
	{LongBlock, "LONG_BLOCK"},
	{OCBoxed, "OC_BOXED"},
	{Static, "STATIC"},
	{OCRType, "OC_RTYPE"},
	{OCAType, "OC_ATYPE"},
	{Def, "DEF"},
	{Proto, "PROTO"},
	{Ref, "REF"},
	{TypedefStruct, "TYPEDEF_STRUCT"},
	{TypedefUnion, "TYPEDEF_UNION"},
	{TypedefEnum, "TYPEDEF_ENUM"},
}

// String lists the set flag names, comma separated, in bit order.
func (f Flags) String() string {
	if f == 0 {
		return ""
	}
	var sb strings.Builder
	for _, fn := range flagNames {
		if f&fn.bit != 0 {
			if sb.Len() > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(fn.name)
		}
	}
	return sb.String()
}
