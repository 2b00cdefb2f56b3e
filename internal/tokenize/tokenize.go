// Package tokenize breaks a source byte stream into the chunk list.
// Each parser consumes bytes and sets the chunk kind and text; the
// dispatcher tries them in a fixed order at every position.
package tokenize

import (
	"log/slog"
	"strings"

	"github.com/ctoks/ctoks/internal/chunk"
	"github.com/ctoks/ctoks/internal/lang"
)

type tokInfo struct {
	lastCh int
	idx    int
	row    int
	col    int
}

// tokCtx is the scanner cursor. save/restore snapshots allow speculative
// parses that back out cleanly on failure.
type tokCtx struct {
	data    []byte
	tabSize int
	c       tokInfo // current
	s       tokInfo // saved
}

func newCtx(data []byte, tabSize int) *tokCtx {
	return &tokCtx{data: data, tabSize: tabSize, c: tokInfo{row: 1, col: 1}}
}

func (t *tokCtx) save() tokInfo            { t.s = t.c; return t.c }
func (t *tokCtx) restore()                 { t.c = t.s }
func (t *tokCtx) saveTo(info *tokInfo)     { *info = t.c }
func (t *tokCtx) restoreFrom(info tokInfo) { t.c = info }

func (t *tokCtx) more() bool { return t.c.idx < len(t.data) }

func (t *tokCtx) peek() int {
	if t.more() {
		return int(t.data[t.c.idx])
	}
	return -1
}

func (t *tokCtx) peekAt(n int) int {
	idx := t.c.idx + n
	if idx < len(t.data) {
		return int(t.data[idx])
	}
	return -1
}

func nextTabColumn(col, tabSize int) int {
	if tabSize <= 0 {
		tabSize = 8
	}
	return ((col-1)/tabSize+1)*tabSize + 1
}

// get advances one byte, maintaining row and column. UTF-8 continuation
// bytes do not advance the column.
func (t *tokCtx) get() int {
	if !t.more() {
		return -1
	}
	ch := int(t.data[t.c.idx])
	t.c.idx++
	switch ch {
	case '\t':
		t.c.col = nextTabColumn(t.c.col, t.tabSize)
	case '\n':
		if t.lastCh() != '\r' {
			t.c.row++
			t.c.col = 1
		}
	case '\r':
		t.c.row++
		t.c.col = 1
	default:
		if ch&0xC0 != 0x80 {
			t.c.col++
		}
	}
	t.c.lastCh = ch
	return ch
}

func (t *tokCtx) lastCh() int { return t.c.lastCh }

func (t *tokCtx) expect(ch int) bool {
	if t.peek() == ch {
		t.get()
		return true
	}
	return false
}

func isSpaceByte(ch int) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isAlpha(ch int) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func toUpper(ch int) int {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

func isDec(ch int) bool  { return ch >= '0' && ch <= '9' }
func isDecU(ch int) bool { return isDec(ch) || ch == '_' }
func isBinU(ch int) bool { return ch == '0' || ch == '1' || ch == '_' }
func isOctU(ch int) bool { return (ch >= '0' && ch <= '7') || ch == '_' }
func isHex(ch int) bool {
	return isDec(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
func isHexU(ch int) bool { return isHex(ch) || ch == '_' }

func isKw1(ch int) bool { return ch >= 0 && ch <= 0xff && chunk.IsKw1(byte(ch)) }
func isKw2(ch int) bool { return ch >= 0 && ch <= 0xff && chunk.IsKw2(byte(ch)) }

// tokenizer bundles the cursor with the workspace being filled.
type tokenizer struct {
	ws  *chunk.Workspace
	ctx *tokCtx

	inPreproc        chunk.Kind // preprocessor sub-kind, chunk.None outside
	preprocNCNLCount int        // non-newline chunks since the '#'
}

// Run tokenizes the whole workspace buffer into its chunk list.
func Run(ws *chunk.Workspace) {
	tz := &tokenizer{ws: ws, ctx: newCtx(ws.Data, ws.Cfg.InputTabSize)}
	tz.run()
}

func (tz *tokenizer) run() {
	ctx := tz.ctx
	var prev *chunk.Chunk

	for ctx.more() {
		var pc chunk.Chunk
		if !tz.parseNext(&pc) {
			slog.Warn("tokenize.stalled", "file", tz.ws.Filename, "line", ctx.c.row)
			break
		}

		// Whitespace and comments never enter the list.
		if pc.Kind == chunk.Whitespace {
			continue
		}
		if pc.Kind == chunk.NlCont {
			pc.Text = "\\\n"
		}

		// Strip trailing whitespace (from C++ comments and PP blobs).
		pc.Text = strings.TrimRight(pc.Text, " \t")
		pc.OrigColEnd = ctx.c.col

		if prev != nil {
			pc.Flags |= prev.Flags & chunk.CopyFlags
		}
		// A newline can't be inside a preprocessor.
		if pc.Kind == chunk.Newline {
			pc.Flags &^= chunk.InPreproc
		}
		cur := tz.ws.Chunks.Append(&pc)

		if cur.Kind == chunk.Newline {
			tz.inPreproc = chunk.None
			tz.preprocNCNLCount = 0
		}

		if tz.inPreproc != chunk.None {
			cur.Flags |= chunk.InPreproc
			if !cur.IsNewline() {
				tz.preprocNCNLCount++
			}
			// The first chunk after '#' fixes the sub-kind.
			if tz.inPreproc == chunk.Preproc {
				if cur.Kind < chunk.PPDefine || cur.Kind > chunk.PPOther {
					cur.Kind = chunk.PPOther
				}
				tz.inPreproc = cur.Kind
			}
		} else if cur.Kind == chunk.Pound &&
			(prev == nil || prev.Kind == chunk.Newline) {
			cur.Kind = chunk.Preproc
			cur.Flags |= chunk.InPreproc
			tz.inPreproc = chunk.Preproc
		}
		prev = cur
	}
}

// parseNext consumes the next token. It always succeeds while bytes
// remain; unknown bytes become UNKNOWN chunks.
func (tz *tokenizer) parseNext(pc *chunk.Chunk) bool {
	ctx := tz.ctx
	if !ctx.more() {
		return false
	}
	pc.OrigLine = ctx.c.row
	pc.OrigCol = ctx.c.col
	pc.Kind = chunk.None

	if tz.parseWhitespace(pc) {
		return true
	}

	// Bodies of unhandled preprocessors become a single blob per line.
	if tz.inPreproc > chunk.PPBodyChunk && tz.inPreproc <= chunk.PPOther {
		if tz.parsePreprocBody(pc) {
			return true
		}
	}

	if ctx.peek() == '\\' && tz.parseBSNewline(pc) {
		return true
	}

	if tz.parseComment(pc) {
		return true
	}

	// C# verbatim strings and @-escaped identifiers.
	if tz.ws.Lang.Has(lang.CS) && ctx.peek() == '@' {
		if ctx.peekAt(1) == '"' {
			tz.parseCSString(pc)
			return true
		}
		if isKw1(ctx.peekAt(1)) {
			tz.parseWord(pc, true)
			return true
		}
	}

	// C++11 u8/u/U/R string prefixes.
	ch := ctx.peek()
	if tz.ws.Lang.Has(lang.CPP) && (ch == 'u' || ch == 'U' || ch == 'R') {
		idx := 0
		isRaw := false
		if ch == 'u' && ctx.peekAt(1) == '8' {
			idx = 2
		} else if ch == 'u' || ch == 'U' {
			idx++
		}
		if ctx.peekAt(idx) == 'R' {
			idx++
			isRaw = true
		}
		if ctx.peekAt(idx) == '"' {
			if isRaw {
				if tz.parseCRString(pc, idx) {
					return true
				}
			} else if tz.parseString(pc, idx, true) {
				tz.parseSuffix(pc, true)
				return true
			}
		}
	}

	// PAWN packed/unpacked strings: \"hi" !"hi" !\"hi" \!"hi".
	if tz.ws.Lang.Has(lang.Pawn) {
		if ctx.peek() == '\\' || ctx.peek() == '!' {
			if ctx.peekAt(1) == '"' {
				tz.parseString(pc, 1, ctx.peek() == '!')
				return true
			}
			if (ctx.peekAt(1) == '\\' || ctx.peekAt(1) == '!') && ctx.peekAt(2) == '"' {
				tz.parseString(pc, 2, false)
				return true
			}
		}
	}

	if tz.parseNumber(pc) {
		return true
	}

	if tz.ws.Lang.Has(lang.D) {
		if tz.parseDString(pc) {
			return true
		}
	} else {
		// L'a', L"abc", S"abc", 'a', "abc", and <file> in #include.
		ch = ctx.peek()
		ch1 := ctx.peekAt(1)
		if ((ch == 'L' || ch == 'S') && (ch1 == '"' || ch1 == '\'')) ||
			ch == '"' || ch == '\'' ||
			(ch == '<' && tz.inPreproc == chunk.PPInclude) {
			q := 0
			if isAlpha(ch) {
				q = 1
			}
			tz.parseString(pc, q, true)
			return true
		}
		if ch == '<' && tz.inPreproc == chunk.PPDefine {
			if tail := tz.ws.Chunks.Tail(); tail != nil && tail.Kind == chunk.Macro {
				// "#define XXX <" - '<' starts an include string.
				tz.parseString(pc, 0, false)
				return true
			}
		}
	}

	// Objective-C literals: @"str" @'c' @123.
	if tz.ws.Lang.Has(lang.OC) && ctx.peek() == '@' {
		nc := ctx.peekAt(1)
		if nc == '"' || nc == '\'' {
			tz.parseString(pc, 1, true)
			return true
		}
		if nc >= '0' && nc <= '9' {
			pc.Text += string(rune(ctx.get()))
			tz.parseNumber(pc)
			return true
		}
	}

	// Identifiers, including @-words for OC/Pawn/Java.
	if isKw1(ctx.peek()) ||
		(ctx.peek() == '@' && isKw1(ctx.peekAt(1)) &&
			tz.ws.Lang.Has(lang.OC|lang.Pawn|lang.Java)) {
		tz.parseWord(pc, false)
		return true
	}

	// Punctuators: longest match over the next 4 bytes.
	var wb [4]byte
	wlen := 0
	for i := 0; i < 4; i++ {
		b := ctx.peekAt(i)
		if b < 0 {
			break
		}
		wb[i] = byte(b)
		wlen++
	}
	if punc := FindPunctuator(string(wb[:wlen]), tz.ws.Lang); punc != nil {
		for range punc.Tag {
			pc.Text += string(rune(ctx.get()))
		}
		pc.Kind = punc.Kind
		pc.Flags |= chunk.Punctuator
		return true
	}

	// Garbage byte: emit UNKNOWN and continue.
	pc.Kind = chunk.Unknown
	pc.Text += string(rune(ctx.get()))
	slog.Warn("tokenize.garbage", "file", tz.ws.Filename,
		"line", pc.OrigLine, "col", pc.OrigCol, "byte", pc.Text)
	return true
}

func (tz *tokenizer) parseWhitespace(pc *chunk.Chunk) bool {
	ctx := tz.ctx
	nlFound := false
	found := false
	for isSpaceByte(ctx.peek()) {
		if ctx.get() == '\n' {
			nlFound = true
		}
		found = true
	}
	if found {
		if nlFound {
			pc.Kind = chunk.Newline
		} else {
			pc.Kind = chunk.Whitespace
		}
	}
	return found
}

// parsePreprocBody consumes to end-of-line (honoring escaped newlines
// and stopping at C++ comments) as one PREPROC_BODY chunk.
func (tz *tokenizer) parsePreprocBody(pc *chunk.Chunk) bool {
	ctx := tz.ctx
	var ss tokInfo
	ctx.saveTo(&ss)
	pc.Kind = chunk.PreprocBody
	last := 0
	for ctx.more() {
		ch := ctx.peek()
		if ch == '\n' || ch == '\r' {
			// Back off if this is an escaped newline.
			if last == '\\' {
				ctx.restoreFrom(ss)
				pc.Text = pc.Text[:len(pc.Text)-1]
			}
			break
		}
		if ch == '/' && ctx.peekAt(1) == '/' {
			break
		}
		last = ch
		ctx.saveTo(&ss)
		pc.Text += string(rune(ctx.get()))
	}
	return len(pc.Text) > 0
}

// parseBSNewline handles a '\' followed by only whitespace and a newline.
func (tz *tokenizer) parseBSNewline(pc *chunk.Chunk) bool {
	ctx := tz.ctx
	ctx.save()
	ctx.get() // the '\'
	for isSpaceByte(ctx.peek()) {
		ch := ctx.peek()
		ctx.get()
		if ch == '\r' || ch == '\n' {
			if ch == '\r' {
				ctx.expect('\n')
			}
			pc.Text = "\\"
			pc.Kind = chunk.NlCont
			return true
		}
	}
	ctx.restore()
	return false
}

// parseComment consumes '//', '/* */', and D-nestable '/+ +/' comments.
// Comments classify as whitespace and are discarded by the caller.
func (tz *tokenizer) parseComment(pc *chunk.Chunk) bool {
	ctx := tz.ctx
	isD := tz.ws.Lang.Has(lang.D)
	ch := ctx.peekAt(1)

	if ctx.peek() != '/' ||
		(ch != '*' && ch != '/' && (ch != '+' || !isD)) {
		return false
	}

	ctx.save()
	ctx.get()
	ctx.get()

	switch {
	case ch == '/':
		pc.Kind = chunk.Whitespace
		for {
			bsCnt := 0
			for {
				c := ctx.peek()
				if c < 0 || c == '\r' || c == '\n' {
					break
				}
				if c == '\\' {
					bsCnt++
				} else {
					bsCnt = 0
				}
				ctx.get()
			}
			// An odd backslash count right before the newline continues
			// the comment on the next line.
			if bsCnt&1 == 0 || !ctx.more() {
				break
			}
			if ctx.peek() == '\r' {
				ctx.get()
			}
			if ctx.peek() == '\n' {
				ctx.get()
			}
		}
	case !ctx.more():
		ctx.restore()
		return false
	case ch == '*':
		pc.Kind = chunk.Whitespace
		for {
			c := ctx.get()
			if c < 0 {
				break
			}
			if c == '*' && ctx.peek() == '/' {
				ctx.get()
				break
			}
		}
	default: // '/+'
		pc.Kind = chunk.Whitespace
		dLevel := 1
		for dLevel > 0 && ctx.more() {
			if ctx.peek() == '+' && ctx.peekAt(1) == '/' {
				ctx.get()
				ctx.get()
				dLevel--
				continue
			}
			if ctx.peek() == '/' && ctx.peekAt(1) == '+' {
				ctx.get()
				ctx.get()
				dLevel++
				continue
			}
			if ctx.get() == '\r' && ctx.peek() == '\n' {
				ctx.get()
			}
		}
	}
	return true
}

// parseSuffix consumes a trailing user-defined literal suffix. For
// strings, a PRI/SCN format-macro prefix is backed out and left as a
// separate identifier, and L"/L'/S" starts of adjacent literals are
// never swallowed.
func (tz *tokenizer) parseSuffix(pc *chunk.Chunk, forString bool) {
	ctx := tz.ctx
	if !isKw1(ctx.peek()) {
		return
	}
	p1 := ctx.peek()
	p2 := ctx.peekAt(1)
	if forString &&
		((p1 == 'L' && (p2 == '"' || p2 == '\'')) ||
			(p1 == 'S' && p2 == '"')) {
		return
	}
	var ss tokInfo
	ctx.saveTo(&ss)
	oldLen := len(pc.Text)
	slen := 0
	for ctx.more() && isKw2(ctx.peek()) {
		slen++
		pc.Text += string(rune(ctx.get()))
	}
	if forString && slen >= 4 {
		sfx := pc.Text[oldLen:]
		if strings.HasPrefix(sfx, "PRI") || strings.HasPrefix(sfx, "SCN") {
			ctx.restoreFrom(ss)
			pc.Text = pc.Text[:oldLen]
		}
	}
}

// parseNumber handles every numeric format of every dialect, loosely:
// underscores are accepted everywhere, as are all suffix letters.
func (tz *tokenizer) parseNumber(pc *chunk.Chunk) bool {
	ctx := tz.ctx

	if !isDec(ctx.peek()) && (ctx.peek() != '.' || !isDec(ctx.peekAt(1))) {
		return false
	}
	isFloat := ctx.peek() == '.'
	if isFloat && ctx.peekAt(1) == '.' {
		return false
	}
	didHex := false

	if ctx.peek() == '0' {
		pc.Text += string(rune(ctx.get()))
		switch toUpper(ctx.peek()) {
		case 'X':
			didHex = true
			for ok := true; ok; ok = isHexU(ctx.peek()) {
				pc.Text += string(rune(ctx.get()))
			}
		case 'B':
			for ok := true; ok; ok = isBinU(ctx.peek()) {
				pc.Text += string(rune(ctx.get()))
			}
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			for ok := true; ok; ok = isOctU(ctx.peek()) {
				pc.Text += string(rune(ctx.get()))
			}
		}
	} else {
		for isDecU(ctx.peek()) {
			pc.Text += string(rune(ctx.get()))
		}
	}

	// A decimal point, but not '..'.
	if ctx.peek() == '.' && ctx.peekAt(1) != '.' {
		pc.Text += string(rune(ctx.get()))
		isFloat = true
		if didHex {
			for isHexU(ctx.peek()) {
				pc.Text += string(rune(ctx.get()))
			}
		} else {
			for isDecU(ctx.peek()) {
				pc.Text += string(rune(ctx.get()))
			}
		}
	}

	// Exponents: eE (all), pP (hex floats).
	if t := toUpper(ctx.peek()); t == 'E' || t == 'P' {
		isFloat = true
		pc.Text += string(rune(ctx.get()))
		if ctx.peek() == '+' || ctx.peek() == '-' {
			pc.Text += string(rune(ctx.get()))
		}
		for isDecU(ctx.peek()) {
			pc.Text += string(rune(ctx.get()))
		}
	}

	// Suffix letters: uUlL plus the float-only iIfFdDmM.
	for {
		t := toUpper(ctx.peek())
		if t == 'I' || t == 'F' || t == 'D' || t == 'M' {
			isFloat = true
		} else if t != 'L' && t != 'U' {
			break
		}
		pc.Text += string(rune(ctx.get()))
	}

	// Microsoft i64.
	if ctx.peek() == '6' && ctx.peekAt(1) == '4' {
		pc.Text += string(rune(ctx.get()))
		pc.Text += string(rune(ctx.get()))
	}

	if isFloat {
		pc.Kind = chunk.NumberFP
	} else {
		pc.Kind = chunk.Number
	}
	tz.parseSuffix(pc, false)
	return true
}

// endFor maps the opening quote byte to the byte that ends the literal.
func endFor(ch int) int {
	if ch == '<' {
		return '>'
	}
	return ch
}

// parseString consumes a quoted literal. quoteIdx counts prefix bytes
// before the quote ('L', '@', PAWN '\'); allowEscape enables the
// secondary doubled-quote escape.
func (tz *tokenizer) parseString(pc *chunk.Chunk, quoteIdx int, allowEscape bool) bool {
	ctx := tz.ctx
	escapeChar := int(tz.ws.Cfg.StringEscapeChar)
	escapeChar2 := int(tz.ws.Cfg.StringEscapeChar2)

	pc.Text = ""
	for quoteIdx > 0 {
		pc.Text += string(rune(ctx.get()))
		quoteIdx--
	}

	pc.Kind = chunk.String
	endCh := endFor(ctx.peek())
	pc.Text += string(rune(ctx.get())) // the quote itself

	escaped := false
	for ctx.more() {
		ch := ctx.get()
		pc.Text += string(rune(ch))
		if ch == '\n' {
			pc.Kind = chunk.StringMulti
			escaped = false
			continue
		}
		if ch == '\r' && ctx.peek() != '\n' {
			pc.Text += string(rune(ctx.get()))
			pc.Kind = chunk.StringMulti
			escaped = false
			continue
		}
		if !escaped {
			if ch == escapeChar && escapeChar != 0 {
				escaped = true
			} else if ch == escapeChar2 && escapeChar2 != 0 && ctx.peek() == endCh {
				escaped = allowEscape
			} else if ch == endCh {
				break
			}
		} else {
			escaped = false
		}
	}

	tz.parseSuffix(pc, true)
	return true
}

// parseCSString consumes a C# verbatim @"..." literal where doubled
// quotes do not terminate.
func (tz *tokenizer) parseCSString(pc *chunk.Chunk) bool {
	ctx := tz.ctx
	pc.Text = string(rune(ctx.get())) // '@'
	pc.Text += string(rune(ctx.get()))

	for ctx.more() {
		ch := ctx.get()
		pc.Text += string(rune(ch))
		if ch == '"' {
			if ctx.peek() == '"' {
				pc.Text += string(rune(ctx.get()))
			} else {
				break
			}
		}
	}
	pc.Kind = chunk.String
	return true
}

// parseCRString consumes a C++11 raw string R"tag( ... )tag" with an
// optional u8/u/U prefix already counted in qIdx.
func (tz *tokenizer) parseCRString(pc *chunk.Chunk, qIdx int) bool {
	ctx := tz.ctx
	tagStart := ctx.c.idx + qIdx + 1
	tagLen := 0

	ctx.save()

	pc.Text = ""
	for cnt := qIdx + 1; cnt > 0; cnt-- {
		pc.Text += string(rune(ctx.get()))
	}
	for ctx.more() && ctx.peek() != '(' {
		tagLen++
		pc.Text += string(rune(ctx.get()))
	}
	if ctx.peek() != '(' {
		ctx.restore()
		return false
	}

	tag := string(ctx.data[tagStart : tagStart+tagLen])
	pc.Kind = chunk.String
	for ctx.more() {
		if ctx.peek() == ')' && ctx.peekAt(tagLen+1) == '"' &&
			ctx.c.idx+1+tagLen <= len(ctx.data) &&
			string(ctx.data[ctx.c.idx+1:ctx.c.idx+1+tagLen]) == tag {
			for cnt := tagLen + 2; cnt > 0; cnt-- { // the )tag"
				pc.Text += string(rune(ctx.get()))
			}
			tz.parseSuffix(pc, false)
			return true
		}
		if ctx.peek() == '\n' {
			pc.Kind = chunk.StringMulti
		}
		pc.Text += string(rune(ctx.get()))
	}
	ctx.restore()
	return false
}

// parseDString covers the D-only literal forms: r"..." x"..."
// backticked strings, and the bare escape-sequence strings (\n \x12
// ሴ \U12345678 \123 \&entity;).
func (tz *tokenizer) parseDString(pc *chunk.Chunk) bool {
	ctx := tz.ctx
	ch := ctx.peek()

	if ch == '"' || ch == '\'' || ch == '`' {
		return tz.parseString(pc, 0, true)
	}
	if ch == '\\' {
		ctx.save()
		pc.Text = ""
		for ctx.peek() == '\\' {
			pc.Text += string(rune(ctx.get()))
			switch ctx.peek() {
			case 'x':
				for cnt := 3; cnt > 0; cnt-- {
					pc.Text += string(rune(ctx.get()))
				}
			case 'u':
				for cnt := 5; cnt > 0; cnt-- {
					pc.Text += string(rune(ctx.get()))
				}
			case 'U':
				for cnt := 9; cnt > 0; cnt-- {
					pc.Text += string(rune(ctx.get()))
				}
			case '0', '1', '2', '3', '4', '5', '6', '7':
				pc.Text += string(rune(ctx.get()))
				for i := 0; i < 2; i++ {
					if c := ctx.peek(); c >= '0' && c <= '7' {
						pc.Text += string(rune(ctx.get()))
					} else {
						break
					}
				}
			case '&':
				pc.Text += string(rune(ctx.get()))
				for isAlpha(ctx.peek()) {
					pc.Text += string(rune(ctx.get()))
				}
				if ctx.peek() == ';' {
					pc.Text += string(rune(ctx.get()))
				}
			default:
				pc.Text += string(rune(ctx.get()))
			}
		}
		if len(pc.Text) > 1 {
			pc.Kind = chunk.String
			return true
		}
		ctx.restore()
		return false
	}
	if (ch == 'r' || ch == 'x') && ctx.peekAt(1) == '"' {
		return tz.parseString(pc, 1, false)
	}
	return false
}

// parseWord consumes an identifier and resolves keywords. skipCheck
// suppresses keyword lookup (C# @identifiers, non-ASCII words).
func (tz *tokenizer) parseWord(pc *chunk.Chunk, skipCheck bool) bool {
	ctx := tz.ctx
	pc.Text = ""
	pc.Text += string(rune(ctx.get()))

	for ctx.more() && isKw2(ctx.peek()) {
		ch := ctx.get()
		pc.Text += string(rune(ch))
		// Non-ASCII characters only ever appear in plain identifiers.
		if ch > 0x7f {
			skipCheck = true
		}
	}
	pc.Kind = chunk.Word

	if skipCheck {
		return true
	}

	if tz.inPreproc == chunk.PPDefine && tz.preprocNCNLCount == 1 {
		if ctx.peek() == '(' {
			pc.Kind = chunk.MacroFunc
		} else {
			pc.Kind = chunk.Macro
		}
		return true
	}

	// '@interface' is reserved in Java; other @words are annotations.
	if tz.ws.Lang.Has(lang.Java) && strings.HasPrefix(pc.Text, "@") &&
		pc.Text != "@interface" {
		pc.Kind = chunk.Annotation
		return true
	}

	pc.Kind = FindKeywordType(pc.Text, tz.inPreproc, tz.ws.Lang)
	if pc.Kind != chunk.Word {
		pc.Flags |= chunk.Keyword
	}
	return true
}
