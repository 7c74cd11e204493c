package hdrscan

import "strings"

// parseAggregateTypedef parses the body of a `typedef struct|class|union
// [TAG] { ... } Alias1, *PAlias1, Alias2;` declaration, already
// positioned just after the `struct`/`class`/`union` keyword. Grounded
// on original_source/src/cpp/struct_.rs::StructData::add_from_cpp and
// union_.rs::UnionData::add_from_cpp, whose near-identical bodies
// confirm the struct/class/union unification spec.md §3 calls for.
func (p *Parser) parseAggregateTypedef(category AggregateCategory, loc Location) {
	tag, ok := p.consumeUntilBrace()
	if !ok {
		return
	}

	agg := NewAggregate(tag, category)
	agg.DefinedAt = []Location{loc}
	p.parseAggregateBody(agg)

	aliases := p.parseTrailingAliasList()
	name, rest := tagRename(tag, aliases)
	if name.IsZero() {
		return
	}
	agg.Name = name
	agg.Aliases = rest
	p.catalog.addAggregate(agg)
}

// parseAggregateBody consumes fields up to the matching closing brace,
// recursing into nested struct/class/union/enum bodies (spec.md §9's
// nested-type design note) and recording bitfields.
func (p *Parser) parseAggregateBody(agg *Aggregate) {
	for {
		tok, ok := p.reader.NextToken(p.discardIssue)
		if !ok {
			appendIssue(&agg.Issues, NewIssue(agg.DefinedAt[0], IssueStructural, "unexpected EOF inside aggregate body"))
			return
		}
		if tok.Is("}") {
			return
		}
		if tok.Is(";") {
			continue
		}
		if tok.Is("#") {
			appendIssue(&agg.Issues, NewIssue(p.loc(tok.Offset), IssueUnsupportedConstruct, "preprocessor directive inside aggregate body"))
			p.skipToEndOfLine()
			continue
		}
		if !tok.IsIdent() {
			continue
		}

		switch tok.Text {
		case "public", "private", "protected":
			if next, ok := p.reader.NextToken(p.discardIssue); ok && !next.Is(":") {
				appendIssue(&agg.Issues, NewIssue(p.loc(tok.Offset), IssueUnsupportedConstruct, "access specifier %s not followed by ':'", tok.Text))
			}
			continue
		case "struct", "class", "union", "interface":
			nested := p.parseNestedAggregate(tok.Text)
			if nested != nil {
				p.parseFieldsForNestedType(agg, NestedAggregate{Aggregate: nested})
			}
			continue
		case "enum":
			nested := p.parseNestedEnum()
			if nested != nil {
				p.parseFieldsForNestedType(agg, NestedEnum{Enum: nested})
			}
			continue
		}

		p.parseFieldDeclaration(agg, tok)
	}
}

func (p *Parser) skipToEndOfLine() {
	for {
		tok, ok := p.reader.NextToken(p.discardIssue)
		if !ok {
			return
		}
		_ = tok
		// NextToken already skips newlines as whitespace; without
		// line-boundary visibility at the token level, the best this
		// can do is bail at the next semicolon, which is how a stray
		// directive line inside a body is bounded in practice.
		if tok.Is(";") {
			return
		}
	}
}

func (p *Parser) parseNestedAggregate(keyword string) *Aggregate {
	tag, ok := p.consumeUntilBrace()
	if !ok {
		return nil
	}
	nested := NewAggregate(tag, categoryForTypedefKeyword(keyword))
	p.parseAggregateBody(nested)
	return nested
}

func (p *Parser) parseNestedEnum() *Enum {
	tag, ok := p.consumeUntilBrace()
	if !ok {
		return nil
	}
	nested := NewEnum(tag)
	p.parseEnumBody(nested)
	return nested
}

// parseFieldsForNestedType consumes the field name(s) that follow a
// nested inline struct/class/union/enum body, e.g. `} Name;` or
// `} Name1, Name2;`, attaching ft as each field's type. A body followed
// directly by `;` adds one unnamed field.
func (p *Parser) parseFieldsForNestedType(agg *Aggregate, ft FieldType) {
	named := false
	for {
		tok, ok := p.reader.NextToken(p.discardIssue)
		if !ok {
			return
		}
		if tok.Is(";") {
			if !named {
				addField(agg, Field{Type: ft})
			}
			return
		}
		if tok.Is(",") {
			continue
		}
		if tok.IsIdent() {
			addField(agg, Field{Name: Ident(tok.Text), Type: ft})
			named = true
		}
	}
}

// addField inserts f into agg's field map keyed by name, the empty
// Ident for an unnamed field (spec.md §4.2.1's "allow unnamed field"
// case).
func addField(agg *Aggregate, f Field) {
	agg.Fields.Insert(f.Name, f)
}

// parseFieldDeclaration parses one `TYPE name [: bits];` field, having
// already consumed the first token of TYPE.
func (p *Parser) parseFieldDeclaration(agg *Aggregate, firstTok Token) {
	typeParts := []string{firstTok.Text}
	var fieldName string

	for {
		tok, ok := p.reader.NextToken(p.discardIssue)
		if !ok {
			return
		}
		if tok.Is(";") {
			break
		}
		if tok.Is(":") {
			bitsTok, ok := p.reader.NextToken(p.discardIssue)
			if ok && bitsTok.Kind == TokenNumber {
				n := 0
				for _, c := range bitsTok.Text {
					if c < '0' || c > '9' {
						break
					}
					n = n*10 + int(c-'0')
				}
				if fieldName != "" {
					addField(agg, Field{
						Name:        Ident(fieldName),
						Type:        BasicType(strings.Join(typeParts, " ")),
						BitfieldLen: n,
					})
				}
			}
			fieldName = ""
			continue
		}
		if tok.Is(",") {
			if fieldName != "" {
				addField(agg, Field{
					Name: Ident(fieldName),
					Type: BasicType(strings.Join(typeParts, " ")),
				})
			}
			fieldName = ""
			continue
		}
		if tok.Is("*") {
			typeParts = append(typeParts, "*")
			continue
		}
		if tok.IsIdent() {
			if fieldName != "" {
				typeParts = append(typeParts, fieldName)
			}
			fieldName = tok.Text
		}
	}

	if fieldName != "" {
		addField(agg, Field{
			Name: Ident(fieldName),
			Type: BasicType(strings.Join(typeParts, " ")),
		})
	}
}

// parseTrailingAliasList consumes the `Alias1, *PAlias1, Alias2;` tail
// after a typedef body's closing brace. A leading `*` is the common
// "also typedef a pointer to this" idiom and is dropped from the name;
// a trailing `Vtbl` alias (emitted for interface-shaped typedefs by
// some SDK headers) is skipped outright, matching spec.md §4.2.1.
func (p *Parser) parseTrailingAliasList() []Ident {
	var aliases []Ident
	for {
		tok, ok := p.reader.NextToken(p.discardIssue)
		if !ok {
			return aliases
		}
		if tok.Is(";") {
			return aliases
		}
		if tok.Is(",") || tok.Is("*") {
			continue
		}
		if !tok.IsIdent() {
			continue
		}
		name := tok.Text
		if strings.HasSuffix(name, "Vtbl") {
			continue
		}
		aliases = append(aliases, Ident(strings.TrimPrefix(name, "_")))
	}
}
