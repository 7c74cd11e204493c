package hdrscan

import "strings"

// parseEnumTypedef parses `typedef enum [class] [TAG] { ... } Alias,
// Alias2;`, already positioned just after the `enum` keyword (and, for
// a scoped enum, after confirming and consuming the `class` keyword —
// the class flag is handed in by the caller, which has to peek for it
// before the tag/brace lookahead this function performs). spec.md
// §4.2.2 is authoritative here; original_source's enum_.rs::add_from_cpp
// is a stub ("TODO: ...typedefs/instances...") that only scans for
// `};`, so the fuller initializer-reconstruction behavior below is a
// genuine supplement over the inspected original, built from spec.md's
// state table rather than ported from Rust.
func (p *Parser) parseEnumTypedef(loc Location, class bool) {
	tag, ok := p.consumeUntilBrace()
	if !ok {
		return
	}

	e := NewEnum(tag)
	e.Class = class
	e.DefinedAt = []Location{loc}
	p.parseEnumBody(e)

	aliases := p.parseTrailingAliasList()
	name, rest := tagRename(tag, aliases)
	if name.IsZero() {
		return
	}
	e.Name = name
	e.Aliases = rest
	p.catalog.addEnum(e)
}

// parseEnumBody consumes enumerands up to the matching closing brace.
// An initializer expression is reconstructed token-by-token, tracking
// paren depth so a comma inside a nested call (e.g.
// `FOO = MAKE_VALUE(1, 2)`) isn't mistaken for the next enumerand's
// separator. The reconstructed text has no space before `(`, `,`, `<`,
// `{` or `[`, and a single space before every other token, `)`
// included.
func (p *Parser) parseEnumBody(e *Enum) {
	var name string
	var initParts []string
	depth := 0

	flush := func() {
		if name == "" {
			return
		}
		var value strings.Builder
		for i, part := range initParts {
			switch part {
			case "(", ",", "<", "{", "[":
			default:
				if i > 0 {
					value.WriteByte(' ')
				}
			}
			value.WriteString(part)
		}
		e.Members.Insert(Ident(name), value.String())
		name = ""
		initParts = nil
	}

	for {
		tok, ok := p.reader.NextToken(p.discardIssue)
		if !ok {
			appendIssue(&e.Issues, NewIssue(e.DefinedAt[0], IssueStructural, "unexpected EOF inside enum body"))
			flush()
			return
		}
		if tok.Is("}") && depth == 0 {
			flush()
			return
		}
		if tok.Is("(") {
			depth++
			initParts = append(initParts, tok.Text)
			continue
		}
		if tok.Is(")") {
			depth--
			initParts = append(initParts, tok.Text)
			continue
		}
		if tok.Is(",") && depth == 0 {
			flush()
			continue
		}
		if tok.Is("=") && name != "" && len(initParts) == 0 {
			continue
		}
		if name == "" && tok.IsIdent() {
			name = tok.Text
			continue
		}
		initParts = append(initParts, tok.Text)
	}
}
