package sniff

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gabriel-vasile/mimetype"

	"github.com/fileglance/fileglance/pkg/fsutils"
)

// How much of a shebang file is worth reading for language analysis.
const sniffHead = 2048

// Label returns a short type label for the file at path, detected from its
// content: a language name like "Go" for recognized sources, "Text" for other
// text, the media type for known binary formats and plain "File" for
// everything unrecognized or unreadable.
func Label(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "File"
	}
	if isText(mtype) {
		return textLabel(path)
	}
	mime := mtype.String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if mime == "" || mime == "application/octet-stream" {
		return "File"
	}
	return mime
}

func textLabel(path string) string {
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return lexer.Config().Name
	}
	// Extension told us nothing; a shebang line may still name the language.
	if data, err := fsutils.ReadFileData(path, sniffHead); err == nil && bytes.HasPrefix(data, []byte("#!")) {
		if lexer := lexers.Analyse(string(data)); lexer != nil {
			return lexer.Config().Name
		}
	}
	return "Text"
}

// isText walks the detection hierarchy so subtypes like text/html count as
// text too.
func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
