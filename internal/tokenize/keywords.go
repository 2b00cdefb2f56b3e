package tokenize

import (
	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

// keywordEntry ties one spelling to a token kind for a set of languages.
// Entries flagged lang.PP match only while inside a preprocessor.
type keywordEntry struct {
	kind  chunk.Kind
	flags lang.Flags
}

// keywords maps spellings to candidate entries. A spelling can map to
// different kinds per language (e.g. "new" declares variables in Pawn).
var keywords = map[string][]keywordEntry{
	// Preprocessor directives (matched right after '#').
	"define":   {{chunk.PPDefine, lang.All | lang.PP}},
	"include":  {{chunk.PPInclude, lang.All | lang.PP}},
	"import":   {{chunk.PPInclude, lang.All | lang.PP}},
	"if":       {{chunk.PPIf, lang.All | lang.PP}, {chunk.If, lang.All}},
	"ifdef":    {{chunk.PPIf, lang.All | lang.PP}},
	"ifndef":   {{chunk.PPIf, lang.All | lang.PP}},
	"elif":     {{chunk.PPElse, lang.All | lang.PP}},
	"else":     {{chunk.PPElse, lang.All | lang.PP}, {chunk.Else, lang.All}},
	"endif":    {{chunk.PPEndif, lang.All | lang.PP}},
	"undef":    {{chunk.PPUndef, lang.All | lang.PP}},
	"pragma":   {{chunk.PPPragma, lang.All | lang.PP}},
	"error":    {{chunk.PPError, lang.All | lang.PP}},
	"warning":  {{chunk.PPOther, lang.All | lang.PP}},
	"line":     {{chunk.PPLine, lang.All | lang.PP}},
	"file":     {{chunk.PPFile, lang.Pawn | lang.PP}},
	"assert":   {{chunk.PPAssert, lang.Pawn | lang.PP}, {chunk.Assert, lang.Java}},
	"emit":     {{chunk.PPEmit, lang.Pawn | lang.PP}},
	"endinput": {{chunk.PPEndinput, lang.Pawn | lang.PP}},
	"section":  {{chunk.PPSection, lang.Pawn | lang.PP}},
	"region":   {{chunk.PPOther, lang.CS | lang.PP}},
	"endregion": {
		{chunk.PPOther, lang.CS | lang.PP},
	},
	"defined": {{chunk.PPDefined, lang.AllC | lang.PP}},

	// Base types.
	"auto":     {{chunk.Type, lang.AllC}},
	"bool":     {{chunk.Type, lang.AllC}},
	"_Bool":    {{chunk.Type, lang.C | lang.CPP}},
	"char":     {{chunk.Type, lang.AllC}},
	"wchar_t":  {{chunk.Type, lang.C | lang.CPP}},
	"int":      {{chunk.Type, lang.AllC}},
	"short":    {{chunk.Type, lang.AllC}},
	"long":     {{chunk.Type, lang.AllC}},
	"float":    {{chunk.Type, lang.AllC}},
	"double":   {{chunk.Type, lang.AllC}},
	"void":     {{chunk.Type, lang.AllC}},
	"signed":   {{chunk.Type, lang.C | lang.CPP}},
	"unsigned": {{chunk.Type, lang.C | lang.CPP}},
	"byte":     {{chunk.Type, lang.CS | lang.D | lang.Java}},
	"sbyte":    {{chunk.Type, lang.CS}},
	"uint":     {{chunk.Type, lang.CS | lang.D | lang.Vala}},
	"ulong":    {{chunk.Type, lang.CS | lang.D | lang.Vala}},
	"ushort":   {{chunk.Type, lang.CS | lang.D | lang.Vala}},
	"string":   {{chunk.Type, lang.CS | lang.D | lang.Vala}},
	"object":   {{chunk.Type, lang.CS}},
	"decimal":  {{chunk.Type, lang.CS}},
	"boolean":  {{chunk.Type, lang.Java | lang.ECMA}},
	"id":       {{chunk.Type, lang.OC}},
	"SEL":      {{chunk.Type, lang.OC}},
	"BOOL":     {{chunk.Type, lang.OC}},
	"size_t":   {{chunk.Type, lang.C | lang.CPP}},
	"ssize_t":  {{chunk.Type, lang.C | lang.CPP}},
	"cent":     {{chunk.Type, lang.D}},
	"ucent":    {{chunk.Type, lang.D}},
	"real":     {{chunk.Type, lang.D}},
	"ireal":    {{chunk.Type, lang.D}},
	"creal":    {{chunk.Type, lang.D}},
	"ifloat":   {{chunk.Type, lang.D}},
	"cfloat":   {{chunk.Type, lang.D}},
	"idouble":  {{chunk.Type, lang.D}},
	"cdouble":  {{chunk.Type, lang.D}},
	"dchar":    {{chunk.Type, lang.D}},
	"wchar":    {{chunk.Type, lang.D}},

	// Qualifiers and storage classes.
	"const":      {{chunk.Qualifier, lang.AllC | lang.ECMA}},
	"constexpr":  {{chunk.Qualifier, lang.CPP}},
	"volatile":   {{chunk.Qualifier, lang.AllC}},
	"register":   {{chunk.Qualifier, lang.C | lang.CPP}},
	"restrict":   {{chunk.Qualifier, lang.C}},
	"__restrict": {{chunk.Qualifier, lang.C | lang.CPP}},
	"inline":     {{chunk.Qualifier, lang.C | lang.CPP | lang.OC}},
	"__inline":   {{chunk.Qualifier, lang.C | lang.CPP}},
	"__forceinline": {
		{chunk.Qualifier, lang.C | lang.CPP},
	},
	"static":       {{chunk.Qualifier, lang.All}},
	"mutable":      {{chunk.Qualifier, lang.CPP}},
	"virtual":      {{chunk.Qualifier, lang.CPP | lang.CS | lang.Vala | lang.D}},
	"override":     {{chunk.Qualifier, lang.CS | lang.D | lang.Vala}},
	"sealed":       {{chunk.Qualifier, lang.CS}},
	"abstract":     {{chunk.Qualifier, lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA}},
	"final":        {{chunk.Qualifier, lang.CPP | lang.D | lang.Java | lang.ECMA}},
	"readonly":     {{chunk.Qualifier, lang.CS}},
	"explicit":     {{chunk.Qualifier, lang.CPP | lang.CS}},
	"implicit":     {{chunk.Qualifier, lang.CS}},
	"extern":       {{chunk.Extern, lang.AllC}},
	"typename":     {{chunk.Typename, lang.CPP}},
	"unsafe":       {{chunk.Qualifier, lang.CS}},
	"synchronized": {{chunk.Qualifier, lang.D | lang.Java | lang.ECMA}},
	"transient":    {{chunk.Qualifier, lang.Java | lang.ECMA}},
	"native":       {{chunk.Qualifier, lang.Java | lang.Pawn}},
	"strictfp":     {{chunk.Qualifier, lang.Java}},
	"forward":      {{chunk.Qualifier, lang.Pawn}},
	"stock":        {{chunk.Qualifier, lang.Pawn}},
	"public":       {{chunk.Private, lang.AllC | lang.ECMA}, {chunk.Qualifier, lang.Pawn}},
	"private":      {{chunk.Private, lang.AllC | lang.ECMA}},
	"protected":    {{chunk.Private, lang.AllC | lang.ECMA}},
	"internal":     {{chunk.Private, lang.CS}},
	"deprecated":   {{chunk.Qualifier, lang.D}},
	"in":           {{chunk.Qualifier, lang.D | lang.CS | lang.ECMA | lang.OC}},
	"out":          {{chunk.Qualifier, lang.D | lang.CS | lang.Vala}},
	"ref":          {{chunk.Qualifier, lang.CS | lang.Vala}},
	"scope":        {{chunk.Qualifier, lang.D}},
	"lazy":         {{chunk.Qualifier, lang.D}},
	"immutable":    {{chunk.Qualifier, lang.D}},
	"shared":       {{chunk.Qualifier, lang.D}},
	"__gshared":    {{chunk.Qualifier, lang.D}},
	"pure":         {{chunk.Qualifier, lang.D}},
	"nothrow":      {{chunk.Qualifier, lang.D}},
	"noexcept":     {{chunk.Qualifier, lang.CPP}},

	// Aggregates and namespaces.
	"struct":    {{chunk.Struct, lang.C | lang.CPP | lang.CS | lang.D | lang.Vala | lang.OC}},
	"union":     {{chunk.Union, lang.C | lang.CPP | lang.D}},
	"enum":      {{chunk.Enum, lang.AllC | lang.Pawn}},
	"class":     {{chunk.Class, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.OC | lang.ECMA}},
	"interface": {{chunk.Class, lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA}},
	"namespace": {{chunk.Namespace, lang.CPP | lang.CS | lang.Vala}},
	"package":   {{chunk.Namespace, lang.D | lang.Java | lang.ECMA}},
	"module":    {{chunk.Namespace, lang.D}},
	"typedef":   {{chunk.Typedef, lang.AllC}},
	"alias":     {{chunk.Typedef, lang.D}},
	"template":  {{chunk.Template, lang.CPP | lang.D}},
	"operator":  {{chunk.Operator, lang.CPP | lang.CS}},
	"using":     {{chunk.Using, lang.CPP | lang.CS | lang.Vala}},
	"friend":    {{chunk.Friend, lang.CPP}},
	"this":      {{chunk.This, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA}},
	"base":      {{chunk.Base, lang.CS | lang.Vala}},
	"super":     {{chunk.Base, lang.D | lang.Java | lang.ECMA}},
	"__attribute__": {
		{chunk.Attribute, lang.C | lang.CPP | lang.OC},
	},

	// Control flow.
	"for":     {{chunk.For, lang.All}},
	"foreach": {{chunk.For, lang.CS | lang.D | lang.Vala}},
	"foreach_reverse": {
		{chunk.For, lang.D},
	},
	"while":    {{chunk.While, lang.All}},
	"do":       {{chunk.Do, lang.All}},
	"switch":   {{chunk.Switch, lang.All}},
	"case":     {{chunk.Case, lang.All}},
	"default":  {{chunk.Default, lang.All}},
	"break":    {{chunk.Break, lang.All}},
	"continue": {{chunk.Continue, lang.All}},
	"goto":     {{chunk.Goto, lang.AllC}},
	"return":   {{chunk.Return, lang.All}},
	"throw":    {{chunk.Throw, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA}},
	"throws":   {{chunk.Qualifier, lang.Java | lang.ECMA}},
	"try":      {{chunk.Try, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA}},
	"catch":    {{chunk.Catch, lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA}},
	"finally":  {{chunk.Finally, lang.CS | lang.D | lang.Java | lang.Vala | lang.ECMA}},
	"new":      {{chunk.New, lang.AllC | lang.ECMA}, {chunk.Type, lang.Pawn}},
	"delete":   {{chunk.Delete, lang.CPP | lang.D | lang.Vala | lang.ECMA}},
	"sizeof":   {{chunk.Sizeof, lang.AllC | lang.Pawn}},
	"typeof":   {{chunk.Sizeof, lang.C | lang.CS | lang.D | lang.Vala | lang.ECMA}},
	"typeid":   {{chunk.Sizeof, lang.CPP | lang.D}},
	"state":    {{chunk.State, lang.Pawn}},

	// Casts.
	"dynamic_cast":     {{chunk.TypeCast, lang.CPP}},
	"static_cast":      {{chunk.TypeCast, lang.CPP}},
	"const_cast":       {{chunk.TypeCast, lang.CPP}},
	"reinterpret_cast": {{chunk.TypeCast, lang.CPP}},
	"cast":             {{chunk.DCast, lang.D}},

	// D specials.
	"delegate":  {{chunk.Delegate, lang.CS | lang.D | lang.Vala}},
	"align":     {{chunk.Align, lang.D}},
	"invariant": {{chunk.Invariant, lang.D}},
	"unittest":  {{chunk.Invariant, lang.D}},
	"version":   {{chunk.If, lang.D}},
	"debug":     {{chunk.If, lang.D}},
	"with":      {{chunk.If, lang.D | lang.ECMA}},
	"asm":       {{chunk.Qualifier, lang.AllC}},
	"is":        {{chunk.Compare, lang.CS | lang.D | lang.Vala}},
	"as":        {{chunk.Compare, lang.CS | lang.Vala}},

	// Objective-C.
	"@interface":      {{chunk.OCClass, lang.OC}, {chunk.Class, lang.Java}},
	"@implementation": {{chunk.OCClass, lang.OC}},
	"@protocol":       {{chunk.OCClass, lang.OC}},
	"@end":            {{chunk.OCEnd, lang.OC}},
	"@property":       {{chunk.OCProperty, lang.OC}},
	"@selector":       {{chunk.OCSel, lang.OC}},
	"@dynamic":        {{chunk.Qualifier, lang.OC}},
	"@synthesize":     {{chunk.Qualifier, lang.OC}},
	"@private":        {{chunk.Private, lang.OC}},
	"@public":         {{chunk.Private, lang.OC}},
	"@protected":      {{chunk.Private, lang.OC}},
	"@package":        {{chunk.Private, lang.OC}},
	"@class":          {{chunk.Class, lang.OC}},
	"@synchronized":   {{chunk.Qualifier, lang.OC}},
	"@try":            {{chunk.Try, lang.OC}},
	"@catch":          {{chunk.Catch, lang.OC}},
	"@finally":        {{chunk.Finally, lang.OC}},
	"@throw":          {{chunk.Throw, lang.OC}},
	"self":            {{chunk.This, lang.OC}},
	"instancetype":    {{chunk.Type, lang.OC}},

	// ECMA / misc.
	"function":  {{chunk.Qualifier, lang.ECMA}},
	"var":       {{chunk.Type, lang.CS | lang.ECMA}},
	"let":       {{chunk.Type, lang.ECMA}},
	"get":       {{chunk.GetSet, lang.CS | lang.Vala}},
	"set":       {{chunk.GetSet, lang.CS | lang.Vala}},
	"where":     {{chunk.Qualifier, lang.CS}},
	"partial":   {{chunk.Qualifier, lang.CS}},
	"checked":   {{chunk.Qualifier, lang.CS}},
	"unchecked": {{chunk.Qualifier, lang.CS}},
	"fixed":     {{chunk.Qualifier, lang.CS}},
	"lock":      {{chunk.If, lang.CS | lang.Vala}},
	"signals":   {{chunk.Private, lang.Vala}},
	"instanceof": {
		{chunk.Compare, lang.Java | lang.ECMA},
	},
}

// FindKeywordType resolves an identifier spelling to its token kind.
// inPreproc is the preprocessor context kind (chunk.None outside one);
// the directive names right after '#' resolve through the PP entries.
// Unknown spellings stay chunk.Word.
func FindKeywordType(text string, inPreproc chunk.Kind, flags lang.Flags) chunk.Kind {
	entries, ok := keywords[text]
	if !ok {
		return chunk.Word
	}
	if inPreproc == chunk.Preproc {
		for _, e := range entries {
			if e.flags&lang.PP != 0 && e.flags&flags != 0 {
				return e.kind
			}
		}
	}
	for _, e := range entries {
		if e.flags&lang.PP != 0 {
			continue
		}
		if e.flags&flags != 0 {
			return e.kind
		}
	}
	return chunk.Word
}
