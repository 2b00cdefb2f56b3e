package emit

import (
	"fmt"
	"io"

	"github.com/ctoks/ctoks/internal/chunk"
)

// Dump writes the diagnostic token listing, one line per chunk:
//
//	<line> <KIND> <PARENT> <SCOPE> [<col>-<col_end>][<brace>/<level>/<pp>] <text> <FLAG,FLAG,...>
func Dump(ws *chunk.Workspace, w io.Writer) error {
	for pc := ws.Chunks.Head(); pc != nil; pc = pc.Next(chunk.NavAll) {
		text := pc.Text
		if pc.Kind == chunk.Newline {
			text = ""
		} else if pc.Kind == chunk.NlCont {
			text = "\\"
		}
		_, err := fmt.Fprintf(w, "%d %s %s %s [%d-%d][%d/%d/%d] %s %s\n",
			pc.OrigLine, pc.Kind, pc.ParentKind, pc.Scope,
			pc.OrigCol, pc.OrigColEnd,
			pc.BraceLevel, pc.Level, pc.PPLevel,
			text, pc.Flags)
		if err != nil {
			return err
		}
	}
	return nil
}
