package lang

import "strings"

// Flags is a bitmask of the languages a token table entry applies to.
// A source file carries the union of its dialects (e.g. ".mm" is OC|CPP).
type Flags uint16

const (
	None Flags = 0
	C    Flags = 1 << iota
	CPP
	D
	CS
	Java
	OC
	Vala
	Pawn
	ECMA

	// AllC covers the C-like dialects (everything except Pawn/ECMA extras).
	AllC = C | CPP | D | CS | Java | OC | Vala
	All  = C | CPP | D | CS | Java | OC | Vala | Pawn | ECMA

	// PP marks keyword-table entries that only match inside a preprocessor.
	PP Flags = 0x8000
)

// Has reports whether any of the given bits are set.
func (f Flags) Has(bits Flags) bool { return f&bits != 0 }

type fileLang struct {
	ext   string
	tag   string
	flags Flags
}

var languages = []fileLang{
	{".c", "C", C},
	{".cpp", "CPP", CPP},
	{".d", "D", D},
	{".cs", "CS", CS},
	{".vala", "VALA", Vala},
	{".java", "JAVA", Java},
	{".pawn", "PAWN", Pawn},
	{".p", "", Pawn},
	{".sma", "", Pawn},
	{".inl", "", Pawn},
	{".h", "", C},
	{".cxx", "", CPP},
	{".hpp", "", CPP},
	{".hxx", "", CPP},
	{".cc", "", CPP},
	{".cp", "", CPP},
	{".c++", "", CPP},
	{".di", "", D},
	{".m", "OC", OC},
	{".mm", "OC+", OC | CPP},
	{".sqc", "", C}, // embedded SQL
	{".es", "ECMA", ECMA},
}

// FromFilename infers the language flags from the file extension.
// Unknown extensions default to C.
func FromFilename(filename string) Flags {
	for _, fl := range languages {
		if strings.HasSuffix(filename, fl.ext) {
			return fl.flags
		}
	}
	return C
}

// FromTag parses a language override tag (C, CPP, D, CS, JAVA, VALA,
// PAWN, OC, OC+, ECMA). Returns None when the tag is unknown.
func FromTag(tag string) Flags {
	for _, fl := range languages {
		if fl.tag != "" && strings.EqualFold(tag, fl.tag) {
			return fl.flags
		}
	}
	return None
}

// String returns the tag for the flag set, preferring an exact match.
func (f Flags) String() string {
	for _, fl := range languages {
		if fl.flags == f && fl.tag != "" {
			return fl.tag
		}
	}
	for _, fl := range languages {
		if fl.flags&f != 0 && fl.tag != "" {
			return fl.tag
		}
	}
	return "???"
}

// Extensions returns every file extension the indexer recognizes.
func Extensions() []string {
	exts := make([]string, 0, len(languages))
	for _, fl := range languages {
		exts = append(exts, fl.ext)
	}
	return exts
}
