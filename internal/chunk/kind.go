package chunk

// Kind is the token taxonomy. It is a closed enumeration; classifier
// sweeps rewrite kinds in place as context accumulates.
//
// Delimiter pairs are laid out open-then-close so SkipToMatch can derive
// the closing kind as Kind+1.
type Kind uint16

const (
	None Kind = iota
	Unknown
	Whitespace
	Newline
	NlCont

	Word
	Type
	Number
	NumberFP
	String
	StringMulti
	Label
	Tag

	// Preprocessor. The sub-kinds between PPDefine and PPOther are set on
	// the first identifier after a '#'; the ones after PPBodyChunk are the
	// "unhandled" set whose bodies tokenize as PreprocBody blobs.
	Pound
	Preproc
	PreprocBody
	PPDefine
	PPDefined
	PPInclude
	PPIf
	PPElse
	PPEndif
	PPAssert
	PPBodyChunk
	PPEmit
	PPEndinput
	PPError
	PPFile
	PPLine
	PPSection
	PPUndef
	PPPragma
	PPOther

	Macro
	MacroFunc
	MacroOpen
	MacroElse
	MacroClose

	// Delimiters. Close kinds must stay at open+1.
	ParenOpen
	ParenClose
	SParenOpen
	SParenClose
	FParenOpen
	FParenClose
	TParenOpen
	TParenClose
	AngleOpen
	AngleClose
	SquareOpen
	SquareClose
	BraceOpen
	BraceClose
	VBraceOpen
	VBraceClose
	TSquare

	Semicolon
	VSemicolon
	Comma
	Colon
	CaseColon
	ClassColon
	ConstrColon
	LabelColon
	TagColon
	BitColon
	CondColon
	DArrayColon
	ForColon
	CSSqColon
	OCColon
	OCDictColon
	Question
	Ellipsis

	Assign
	Arith
	Bool
	Compare
	Caret
	Star
	Amp
	Plus
	Minus
	Not
	Inv
	Deref
	Addr
	Neg
	Pos
	IncDecAfter
	IncDecBefore
	Member
	DCMember
	C99Member

	PtrType
	ByRef

	Qualifier
	Typename
	Struct
	Union
	Enum
	EnumClass
	Class
	Namespace
	Typedef
	Template
	DTemplate
	Operator
	OperatorVal
	Attribute
	Extern
	Using
	Friend
	This
	Base
	Private

	Function
	FuncDef
	FuncProto
	FuncCall
	FuncCallUser
	FuncClass
	FuncCtorVar
	FuncVar
	FuncType
	FuncWrap
	TypeWrap
	ProtoWrap
	Destructor

	If
	Else
	ElseIf
	For
	While
	WhileOfDo
	Do
	Switch
	Case
	Default
	Break
	Continue
	Goto
	Return
	Throw
	Try
	Catch
	Finally
	New
	Delete
	Sizeof

	CCast
	CppCast
	DCast
	TypeCast

	Delegate
	Align
	Invariant
	GetSet
	GetSetEmpty
	Lambda
	LambdaRet
	Assert
	Annotation
	State

	OCAt
	OCEnd
	OCScope
	OCClass
	OCProtocol
	OCProperty
	OCMsg
	OCMsgClass
	OCMsgFunc
	OCMsgName
	OCMsgSpec
	OCMsgDecl
	OCBlockCaret
	OCBlockExpr
	OCBlockType
	OCBlockArg
	OCBlock
	OCProtoList
	OCSel

	CSProperty
	CSSqStmt

	SQLExec
	SQLBegin
	SQLEnd
	SQLWord

	kindCount
)

var kindNames = [kindCount]string{
	None:         "NONE",
	Unknown:      "UNKNOWN",
	Whitespace:   "WHITESPACE",
	Newline:      "NEWLINE",
	NlCont:       "NL_CONT",
	Word:         "WORD",
	Type:         "TYPE",
	Number:       "NUMBER",
	NumberFP:     "NUMBER_FP",
	String:       "STRING",
	StringMulti:  "STRING_MULTI",
	Label:        "LABEL",
	Tag:          "TAG",
	Pound:        "POUND",
	Preproc:      "PREPROC",
	PreprocBody:  "PREPROC_BODY",
	PPDefine:     "PP_DEFINE",
	PPDefined:    "PP_DEFINED",
	PPInclude:    "PP_INCLUDE",
	PPIf:         "PP_IF",
	PPElse:       "PP_ELSE",
	PPEndif:      "PP_ENDIF",
	PPAssert:     "PP_ASSERT",
	PPBodyChunk:  "PP_BODYCHUNK",
	PPEmit:       "PP_EMIT",
	PPEndinput:   "PP_ENDINPUT",
	PPError:      "PP_ERROR",
	PPFile:       "PP_FILE",
	PPLine:       "PP_LINE",
	PPSection:    "PP_SECTION",
	PPUndef:      "PP_UNDEF",
	PPPragma:     "PP_PRAGMA",
	PPOther:      "PP_OTHER",
	Macro:        "MACRO",
	MacroFunc:    "MACRO_FUNC",
	MacroOpen:    "MACRO_OPEN",
	MacroElse:    "MACRO_ELSE",
	MacroClose:   "MACRO_CLOSE",
	ParenOpen:    "PAREN_OPEN",
	ParenClose:   "PAREN_CLOSE",
	SParenOpen:   "SPAREN_OPEN",
	SParenClose:  "SPAREN_CLOSE",
	FParenOpen:   "FPAREN_OPEN",
	FParenClose:  "FPAREN_CLOSE",
	TParenOpen:   "TPAREN_OPEN",
	TParenClose:  "TPAREN_CLOSE",
	AngleOpen:    "ANGLE_OPEN",
	AngleClose:   "ANGLE_CLOSE",
	SquareOpen:   "SQUARE_OPEN",
	SquareClose:  "SQUARE_CLOSE",
	BraceOpen:    "BRACE_OPEN",
	BraceClose:   "BRACE_CLOSE",
	VBraceOpen:   "VBRACE_OPEN",
	VBraceClose:  "VBRACE_CLOSE",
	TSquare:      "TSQUARE",
	Semicolon:    "SEMICOLON",
	VSemicolon:   "VSEMICOLON",
	Comma:        "COMMA",
	Colon:        "COLON",
	CaseColon:    "CASE_COLON",
	ClassColon:   "CLASS_COLON",
	ConstrColon:  "CONSTR_COLON",
	LabelColon:   "LABEL_COLON",
	TagColon:     "TAG_COLON",
	BitColon:     "BIT_COLON",
	CondColon:    "COND_COLON",
	DArrayColon:  "D_ARRAY_COLON",
	ForColon:     "FOR_COLON",
	CSSqColon:    "CS_SQ_COLON",
	OCColon:      "OC_COLON",
	OCDictColon:  "OC_DICT_COLON",
	Question:     "QUESTION",
	Ellipsis:     "ELLIPSIS",
	Assign:       "ASSIGN",
	Arith:        "ARITH",
	Bool:         "BOOL",
	Compare:      "COMPARE",
	Caret:        "CARET",
	Star:         "STAR",
	Amp:          "AMP",
	Plus:         "PLUS",
	Minus:        "MINUS",
	Not:          "NOT",
	Inv:          "INV",
	Deref:        "DEREF",
	Addr:         "ADDR",
	Neg:          "NEG",
	Pos:          "POS",
	IncDecAfter:  "INCDEC_AFTER",
	IncDecBefore: "INCDEC_BEFORE",
	Member:       "MEMBER",
	DCMember:     "DC_MEMBER",
	C99Member:    "C99_MEMBER",
	PtrType:      "PTR_TYPE",
	ByRef:        "BYREF",
	Qualifier:    "QUALIFIER",
	Typename:     "TYPENAME",
	Struct:       "STRUCT",
	Union:        "UNION",
	Enum:         "ENUM",
	EnumClass:    "ENUM_CLASS",
	Class:        "CLASS",
	Namespace:    "NAMESPACE",
	Typedef:      "TYPEDEF",
	Template:     "TEMPLATE",
	DTemplate:    "D_TEMPLATE",
	Operator:     "OPERATOR",
	OperatorVal:  "OPERATOR_VAL",
	Attribute:    "ATTRIBUTE",
	Extern:       "EXTERN",
	Using:        "USING",
	Friend:       "FRIEND",
	This:         "THIS",
	Base:         "BASE",
	Private:      "PRIVATE",
	Function:     "FUNCTION",
	FuncDef:      "FUNC_DEF",
	FuncProto:    "FUNC_PROTO",
	FuncCall:     "FUNC_CALL",
	FuncCallUser: "FUNC_CALL_USER",
	FuncClass:    "FUNC_CLASS",
	FuncCtorVar:  "FUNC_CTOR_VAR",
	FuncVar:      "FUNC_VAR",
	FuncType:     "FUNC_TYPE",
	FuncWrap:     "FUNC_WRAP",
	TypeWrap:     "TYPE_WRAP",
	ProtoWrap:    "PROTO_WRAP",
	Destructor:   "DESTRUCTOR",
	If:           "IF",
	Else:         "ELSE",
	ElseIf:       "ELSEIF",
	For:          "FOR",
	While:        "WHILE",
	WhileOfDo:    "WHILE_OF_DO",
	Do:           "DO",
	Switch:       "SWITCH",
	Case:         "CASE",
	Default:      "DEFAULT",
	Break:        "BREAK",
	Continue:     "CONTINUE",
	Goto:         "GOTO",
	Return:       "RETURN",
	Throw:        "THROW",
	Try:          "TRY",
	Catch:        "CATCH",
	Finally:      "FINALLY",
	New:          "NEW",
	Delete:       "DELETE",
	Sizeof:       "SIZEOF",
	CCast:        "C_CAST",
	CppCast:      "CPP_CAST",
	DCast:        "D_CAST",
	TypeCast:     "TYPE_CAST",
	Delegate:     "DELEGATE",
	Align:        "ALIGN",
	Invariant:    "INVARIANT",
	GetSet:       "GETSET",
	GetSetEmpty:  "GETSET_EMPTY",
	Lambda:       "LAMBDA",
	LambdaRet:    "LAMBDA_RET",
	Assert:       "ASSERT",
	Annotation:   "ANNOTATION",
	State:        "STATE",
	OCAt:         "OC_AT",
	OCEnd:        "OC_END",
	OCScope:      "OC_SCOPE",
	OCClass:      "OC_CLASS",
	OCProtocol:   "OC_PROTOCOL",
	OCProperty:   "OC_PROPERTY",
	OCMsg:        "OC_MSG",
	OCMsgClass:   "OC_MSG_CLASS",
	OCMsgFunc:    "OC_MSG_FUNC",
	OCMsgName:    "OC_MSG_NAME",
	OCMsgSpec:    "OC_MSG_SPEC",
	OCMsgDecl:    "OC_MSG_DECL",
	OCBlockCaret: "OC_BLOCK_CARET",
	OCBlockExpr:  "OC_BLOCK_EXPR",
	OCBlockType:  "OC_BLOCK_TYPE",
	OCBlockArg:   "OC_BLOCK_ARG",
	OCBlock:      "OC_BLOCK",
	OCProtoList:  "OC_PROTO_LIST",
	OCSel:        "OC_SEL",
	CSProperty:   "CS_PROPERTY",
	CSSqStmt:     "CS_SQ_STMT",
	SQLExec:      "SQL_EXEC",
	SQLBegin:     "SQL_BEGIN",
	SQLEnd:       "SQL_END",
	SQLWord:      "SQL_WORD",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "???"
}

// IsOpen reports whether k is one of the eight open delimiter kinds.
func (k Kind) IsOpen() bool {
	switch k {
	case ParenOpen, SParenOpen, FParenOpen, TParenOpen,
		AngleOpen, SquareOpen, BraceOpen, VBraceOpen:
		return true
	}
	return false
}

// IsClose reports whether k is one of the eight close delimiter kinds.
func (k Kind) IsClose() bool {
	switch k {
	case ParenClose, SParenClose, FParenClose, TParenClose,
		AngleClose, SquareClose, BraceClose, VBraceClose:
		return true
	}
	return false
}
