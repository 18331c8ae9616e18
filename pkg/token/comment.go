package token

import "strings"

// CommentKind distinguishes line vs block comments.
type CommentKind int

// Comment kinds.
const (
	LineComment  CommentKind = iota // // comment
	BlockComment                    // /* comment */
)

// Comment represents a source comment with its offsets relative to the
// scanned text.
type Comment struct {
	Kind  CommentKind
	Text  string // includes delimiters (// or /* */)
	Start int
	End   int
}

// ScanComments returns the line and block comments in src, in order.
// Quoted strings and template literals are skipped so that comment markers
// inside them are not reported. An unterminated block comment runs to the
// end of src.
func ScanComments(src string) []Comment {
	var comments []Comment
	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == '\'' || c == '"' || c == '`':
			i = skipQuoted(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src)
			} else {
				end += i
			}
			comments = append(comments, Comment{Kind: LineComment, Text: src[i:end], Start: i, End: end})
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				end = len(src)
			} else {
				end += i + 4
			}
			comments = append(comments, Comment{Kind: BlockComment, Text: src[i:end], Start: i, End: end})
			i = end
		default:
			i++
		}
	}
	return comments
}

// StripComments returns src with every comment removed.
func StripComments(src string) string {
	comments := ScanComments(src)
	if len(comments) == 0 {
		return src
	}
	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, c := range comments {
		b.WriteString(src[last:c.Start])
		last = c.End
	}
	b.WriteString(src[last:])
	return b.String()
}

func skipQuoted(src string, i int) int {
	quote := src[i]
	for i++; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		case '\n':
			if quote != '`' {
				return i
			}
		}
	}
	return len(src)
}
