package hdrscan

import "strings"

// Parser drives the two-pass scan of one header's contents into a
// shared Root catalog. Grounded on
// original_source/src/types/_root.rs::impl_add_from_cpp_path for the
// line-dispatch shape, generalized to the two-pass design spec.md
// §4.2 requires (the original is single-pass and line-driven only).
type Parser struct {
	reader  *SourceReader
	catalog *Root
	file    *SourceFile
}

func NewParser(file *SourceFile, src string, catalog *Root) *Parser {
	return &Parser{
		reader:  NewSourceReader(file, src),
		catalog: catalog,
		file:    file,
	}
}

// Run performs pass 1 (token-driven, typedef-introduced declarations),
// resets the reader, then performs pass 2 (line-driven, macros,
// interface macros, WINAPI functions), matching spec.md §4.2.
func (p *Parser) Run() {
	p.parsePass1()
	p.reader.Reset()
	p.parsePass2()
}

// parsePass1 scans token-by-token for `typedef` and dispatches to the
// appropriate body parser based on what follows it.
func (p *Parser) parsePass1() {
	for {
		tok, ok := p.reader.NextToken(p.discardIssue)
		if !ok {
			return
		}
		if !tok.IsIdent() || tok.Text != "typedef" {
			continue
		}
		p.parseTypedef(tok.Offset)
	}
}

func (p *Parser) loc(offset int) Location { return p.reader.TokenLocation(offset) }

func (p *Parser) discardIssue(Issue) {}

// parseTypedef dispatches on the keyword immediately following
// `typedef`: struct/class/union/interface bodies (an interface body is
// parsed as an AggregateInterface aggregate, which Root drops) or enum
// bodies. Anything else is left for
// pass 2 or ignored (plain `typedef OldName NewName;` aliases carry no
// new symbol spec.md's data model tracks).
func (p *Parser) parseTypedef(startOffset int) {
	kw, ok := p.reader.NextToken(p.discardIssue)
	if !ok || !kw.IsIdent() {
		return
	}

	loc := p.loc(startOffset)

	switch kw.Text {
	case "struct", "class", "union", "interface":
		p.parseAggregateTypedef(categoryForTypedefKeyword(kw.Text), loc)
	case "enum":
		class := false
		pos := p.reader.Position()
		if next, ok := p.reader.NextToken(p.discardIssue); ok && next.IsIdent() && next.Text == "class" {
			class = true
		} else {
			p.reader.SetPosition(pos)
		}
		p.parseEnumTypedef(loc, class)
	}
}

func categoryForTypedefKeyword(kw string) AggregateCategory {
	switch kw {
	case "class":
		return AggregateClass
	case "union":
		return AggregateUnion
	case "interface":
		return AggregateInterface
	default:
		return AggregateStruct
	}
}

// consumeUntilBrace reads the optional tag identifier between a
// typedef's `struct`/`class`/`union`/`interface`/`enum` keyword and its
// opening brace (`typedef struct TAG {`), requiring the brace to
// immediately follow (spec.md §4.2: "read a name; require `{` (else
// skip)"). It returns the zero Ident when the body is anonymous
// (`typedef struct {`), and reports whether a brace was actually found.
func (p *Parser) consumeUntilBrace() (Ident, bool) {
	tok, ok := p.reader.NextToken(p.discardIssue)
	if !ok {
		return "", false
	}
	if tok.Is("{") {
		return "", true
	}
	if !tok.IsIdent() {
		return "", false
	}
	tag := Ident(tok.Text)
	next, ok := p.reader.NextToken(p.discardIssue)
	if !ok || !next.Is("{") {
		return "", false
	}
	return tag, true
}

// tagRename applies spec.md §4.2.1/§4.2.2's underscore-tag rename rule:
// an entity keeps its pre-brace tag as its catalog name unless that tag
// starts with "_" and some trailing alias equals the tag with the
// leading underscore stripped, in which case the entity is renamed to
// that alias. A body with no tag at all (a genuinely anonymous
// struct/class/union/enum) has nothing to key the catalog on, so the
// first alias is used as a fallback name.
func tagRename(tag Ident, aliases []Ident) (name Ident, rest []Ident) {
	if tag.IsZero() {
		if len(aliases) == 0 {
			return "", nil
		}
		return aliases[0], aliases[1:]
	}

	name, rest = tag, aliases
	if stripped, ok := strings.CutPrefix(string(tag), "_"); ok {
		for i, alias := range aliases {
			if string(alias) == stripped {
				name = alias
				rest = append(append([]Ident{}, aliases[:i]...), aliases[i+1:]...)
				break
			}
		}
	}
	return name, rest
}

// parsePass2 scans line-by-line for object-like `#define`, function-
// like macros, DECLARE_INTERFACE_-family interface macros, and
// `WINAPI`-decorated function declarations.
func (p *Parser) parsePass2() {
	for {
		line, ok := p.reader.NextLine()
		if !ok {
			return
		}
		trimmed := line.Trimmed

		switch {
		case strings.HasPrefix(trimmed, "#define "):
			p.parseDefine(line)
		case strings.HasPrefix(trimmed, "namespace "):
			p.parseNamespace(line)
		case strings.HasPrefix(trimmed, "DECLARE_INTERFACE_(") || strings.HasPrefix(trimmed, "DECLARE_INTERFACE("):
			p.parseInterfaceMacroForm(line)
		case strings.HasPrefix(trimmed, "MIDL_INTERFACE("):
			p.parseMIDLInterface(line)
		case strings.HasPrefix(trimmed, "DEFINE_ENUM_FLAG_OPERATORS("):
			p.parseFlags(line)
		case strings.Contains(trimmed, "WINAPI "):
			p.parseWinAPIFunction(line)
		}
	}
}

// parseDefine handles both `#define NAME value` (object-like: a
// Constant when a value follows the name, a Macro without Params when
// nothing does) and `#define NAME(params) body` (function-like, the
// paren directly after the name; always a Macro).
func (p *Parser) parseDefine(line Line) {
	rest := strings.TrimSpace(strings.TrimPrefix(line.Trimmed, "#define"))
	if rest == "" {
		return
	}

	name, tail, _ := strings.Cut(rest, " ")
	functionLike := false
	if openParen := strings.IndexByte(name, '('); openParen > 0 {
		// `#define NAME(params)body` with no space before the paren.
		tail = name[openParen:] + tail
		name = name[:openParen]
		functionLike = true
	}
	ident := Ident(name)
	if !IsValidIdent(string(ident)) {
		return
	}

	if functionLike {
		closeParen := strings.IndexByte(tail, ')')
		if closeParen < 0 {
			p.catalog.addMacro(&Macro{
				Name:      ident,
				DefinedAt: []Location{line.Location},
				Issues:    []Issue{NewIssue(line.Location, IssueStructural, "function-like macro %s missing closing paren", ident)},
			})
			return
		}
		paramStr := tail[1:closeParen]
		body := strings.TrimSpace(tail[closeParen+1:])
		var params []string
		if strings.TrimSpace(paramStr) != "" {
			for _, pname := range strings.Split(paramStr, ",") {
				params = append(params, strings.TrimSpace(pname))
			}
		}
		p.catalog.addMacro(&Macro{
			Name:      ident,
			Params:    params,
			Body:      body,
			DefinedAt: []Location{line.Location},
		})
		return
	}

	value := strings.TrimSpace(tail)
	if value == "" {
		p.catalog.addMacro(&Macro{Name: ident, DefinedAt: []Location{line.Location}})
		return
	}
	p.catalog.addConstant(&Constant{Name: ident, Value: value, DefinedAt: []Location{line.Location}})
}

func (p *Parser) parseNamespace(line Line) {
	rest := strings.TrimSpace(strings.TrimPrefix(line.Trimmed, "namespace"))
	name, _, _ := strings.Cut(rest, "{")
	name = strings.TrimSpace(name)
	if name == "" || !IsValidIdent(name) {
		return
	}
	p.catalog.addNamespace(&Namespace{Name: Ident(name), DefinedAt: []Location{line.Location}})
}

func (p *Parser) parseFlags(line Line) {
	rest := strings.TrimPrefix(line.Trimmed, "DEFINE_ENUM_FLAG_OPERATORS(")
	name, _, _ := strings.Cut(rest, ")")
	name = strings.TrimSpace(name)
	if name == "" || !IsValidIdent(name) {
		return
	}
	p.catalog.addFlags(&Flags{EnumName: Ident(name), DefinedAt: []Location{line.Location}})
}

// parseWinAPIFunction handles `RETTYPE WINAPI NAME(params);` style
// declarations, the dominant function shape in the Windows SDK
// headers.
func (p *Parser) parseWinAPIFunction(line Line) {
	before, after, ok := strings.Cut(line.Trimmed, "WINAPI ")
	if !ok {
		return
	}
	returnType := strings.TrimSpace(before)
	if returnType == "" {
		return
	}

	openParen := strings.IndexByte(after, '(')
	if openParen < 0 {
		return
	}
	name := strings.TrimSpace(after[:openParen])
	if !IsValidIdent(name) {
		return
	}

	closeParen := strings.LastIndexByte(after, ')')
	if closeParen < openParen {
		return
	}
	paramStr := after[openParen+1 : closeParen]
	var params []string
	if trimmed := strings.TrimSpace(paramStr); trimmed != "" && trimmed != "void" {
		for _, part := range strings.Split(paramStr, ",") {
			params = append(params, strings.TrimSpace(part))
		}
	}

	p.catalog.addFunction(&Function{
		Name:       Ident(name),
		ReturnType: returnType,
		Params:     params,
		ABI:        ABIWinAPI,
		DefinedAt:  []Location{line.Location},
	})
}
