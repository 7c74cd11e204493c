package hdrscan

import "strings"

// parseInterfaceMacroForm handles the classic COM idiom:
//
//	DECLARE_INTERFACE_(IFoo, IBar)
//	{
//	    STDMETHOD(Method1)(THIS) PURE;
//	    STDMETHOD_(HRESULT, Method2)(THIS_ int a) PURE;
//	};
//
// and the baseless `DECLARE_INTERFACE(IFoo) { ... };` form. Grounded on
// original_source/src/cpp/interface.rs::Interface::add_from_cpp.
func (p *Parser) parseInterfaceMacroForm(line Line) {
	var name, base Ident

	switch {
	case strings.HasPrefix(line.Trimmed, "DECLARE_INTERFACE_("):
		inner := strings.TrimSuffix(strings.TrimPrefix(line.Trimmed, "DECLARE_INTERFACE_("), ")")
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return
		}
		name = Ident(strings.TrimSpace(parts[0]))
		base = Ident(strings.TrimSpace(parts[1]))
	case strings.HasPrefix(line.Trimmed, "DECLARE_INTERFACE("):
		inner := strings.TrimSuffix(strings.TrimPrefix(line.Trimmed, "DECLARE_INTERFACE("), ")")
		name = Ident(strings.TrimSpace(inner))
	default:
		return
	}
	if !IsValidIdent(string(name)) {
		return
	}

	if !p.expectOpenBraceOnOwnLine() {
		return
	}

	iface := NewInterface(name)
	iface.Base = base
	iface.DefinedAt = []Location{line.Location}
	p.parseInterfaceBody(iface)
	p.catalog.addInterface(iface)
}

// parseMIDLInterface handles:
//
//	MIDL_INTERFACE("00000000-0000-0000-C000-000000000046")
//	IUnknown : public IBase
//	{
//	public:
//	    virtual HRESULT STDMETHODCALLTYPE Method1(void) = 0;
//	};
func (p *Parser) parseMIDLInterface(line Line) {
	nameLine, ok := p.reader.NextLine()
	if !ok {
		return
	}
	decl := strings.TrimSpace(nameLine.Trimmed)
	name, rest, _ := strings.Cut(decl, ":")
	name = strings.TrimSpace(name)
	if !IsValidIdent(name) {
		return
	}

	var base Ident
	if rest != "" {
		rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), "public"))
		rest = strings.TrimSpace(rest)
		if IsValidIdent(rest) {
			base = Ident(rest)
		}
	}

	if !p.expectOpenBraceOnOwnLine() {
		return
	}

	iface := NewInterface(Ident(name))
	iface.Base = base
	iface.DefinedAt = []Location{line.Location}
	p.parseInterfaceBody(iface)
	p.catalog.addInterface(iface)
}

// expectOpenBraceOnOwnLine skips blank lines and finds the `{` that
// opens the interface body, matching the preamble spec.md §4.2.3
// describes (the brace may be on its own line, possibly preceded by
// blank lines, after the macro invocation or base-class line). It reads
// at most eight lines, so more than seven blank lines before the brace
// count as a missing brace.
func (p *Parser) expectOpenBraceOnOwnLine() bool {
	for i := 0; i < 8; i++ {
		line, ok := p.reader.NextLine()
		if !ok {
			return false
		}
		if line.Trimmed == "" {
			continue
		}
		return strings.HasPrefix(line.Trimmed, "{")
	}
	return false
}

// parseInterfaceBody scans lines up to the closing `};`, recognizing
// three STDMETHOD shapes plus the STDMETHODCALLTYPE virtual-function
// shape MIDL_INTERFACE bodies use. Duplicate method names replace the
// previous entry ("last wins"), as original_source/src/cpp/interface.rs's
// `self.all_methods.insert` does; addMethod also records each collision
// as an issue on the interface.
func (p *Parser) parseInterfaceBody(iface *Interface) {
	for {
		line, ok := p.reader.NextLine()
		if !ok {
			appendIssue(&iface.Issues, NewIssue(iface.DefinedAt[0], IssueStructural, "unexpected EOF inside interface body"))
			return
		}
		trimmed := line.Trimmed
		if trimmed == "" || trimmed == "public:" || trimmed == "private:" || trimmed == "protected:" {
			continue
		}
		if strings.HasPrefix(trimmed, "};") || trimmed == "}" {
			return
		}

		if m, ok := parseSTDMethodUnderscore(trimmed); ok {
			p.addMethod(iface, m)
			continue
		}
		if m, ok := parseSTDMethod(trimmed); ok {
			p.addMethod(iface, m)
			continue
		}
		if m, ok := parseSTDMethodCallType(trimmed); ok {
			p.addMethod(iface, m)
			continue
		}
	}
}

// addMethod inserts m, last-wins, into iface's method map. spec.md
// §4.2.3 requires a collision to be recorded as an issue, not just
// silently resolved — this checks VecMap.Insert's (prev, existed)
// return to tell a genuine redeclaration apart from a first sighting.
func (p *Parser) addMethod(iface *Interface, m *Method) {
	if _, existed := iface.Methods.Insert(m.Name, m); existed {
		appendIssue(&iface.Issues, NewIssue(iface.DefinedAt[0], IssueShapeDrift,
			"duplicate method %s on interface %s, last wins", m.Name, iface.Name))
	}
}

// parseSTDMethod handles `STDMETHOD(Name)(params) PURE;` — return type
// is implicitly HRESULT.
func parseSTDMethod(line string) (*Method, bool) {
	rest, ok := cutPrefixFunc(line, "STDMETHOD(")
	if !ok {
		return nil, false
	}
	name, after, found := strings.Cut(rest, ")")
	if !found {
		return nil, false
	}
	name = strings.TrimSpace(name)
	if !IsValidIdent(name) || !strings.HasPrefix(strings.TrimSpace(after), "(") {
		return nil, false
	}
	params := parseParenParams(strings.TrimSpace(after))
	return &Method{Name: Ident(name), ReturnType: "HRESULT", Params: params}, true
}

// parseSTDMethodUnderscore handles `STDMETHOD_(RetType, Name)(params) PURE;`.
func parseSTDMethodUnderscore(line string) (*Method, bool) {
	rest, ok := cutPrefixFunc(line, "STDMETHOD_(")
	if !ok {
		return nil, false
	}
	inner, after, found := strings.Cut(rest, ")")
	if !found {
		return nil, false
	}
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return nil, false
	}
	retType := strings.TrimSpace(parts[0])
	name := strings.TrimSpace(parts[1])
	if !IsValidIdent(name) || !strings.HasPrefix(strings.TrimSpace(after), "(") {
		return nil, false
	}
	params := parseParenParams(strings.TrimSpace(after))
	return &Method{Name: Ident(name), ReturnType: retType, Params: params}, true
}

// parseSTDMethodCallType handles the MIDL_INTERFACE virtual-function
// shape: `virtual RetType STDMETHODCALLTYPE Name(params) = 0;`,
// excluding continuation lines that begin with `*` (a pointer-typed
// parameter wrapped onto its own line), matching the original's
// `split_once_trim(" STDMETHODCALLTYPE ")` exclusion.
func parseSTDMethodCallType(line string) (*Method, bool) {
	if strings.HasPrefix(strings.TrimSpace(line), "*") {
		return nil, false
	}
	before, after, ok := strings.Cut(line, " STDMETHODCALLTYPE ")
	if !ok {
		return nil, false
	}
	retType := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(before), "virtual"))
	retType = strings.TrimSpace(retType)

	openParen := strings.IndexByte(after, '(')
	if openParen < 0 {
		return nil, false
	}
	name := strings.TrimSpace(after[:openParen])
	if !IsValidIdent(name) {
		return nil, false
	}
	params := parseParenParams(after[openParen:])
	return &Method{Name: Ident(name), ReturnType: retType, Params: params}, true
}

func cutPrefixFunc(s, prefix string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, prefix) {
		return "", false
	}
	return strings.TrimPrefix(trimmed, prefix), true
}

// parseParenParams extracts and splits the contents of the first
// balanced `(...)` group in s, dropping THIS/THIS_/void-only markers.
func parseParenParams(s string) []string {
	if !strings.HasPrefix(s, "(") {
		return nil
	}
	depth := 0
	end := -1
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil
	}
	inner := strings.TrimSpace(s[1:end])

	// THIS_ stands in for "pThis," when the macro expands: the comma is
	// implicit in the source text, so strip the marker itself rather
	// than letting it merge into the first real parameter.
	switch {
	case strings.HasPrefix(inner, "THIS_"):
		inner = strings.TrimSpace(strings.TrimPrefix(inner, "THIS_"))
	case inner == "THIS":
		inner = ""
	case strings.HasPrefix(inner, "THIS,"):
		inner = strings.TrimSpace(strings.TrimPrefix(inner, "THIS,"))
	}

	var params []string
	for _, part := range strings.Split(inner, ",") {
		p := strings.TrimSpace(part)
		switch p {
		case "", "void":
			continue
		}
		params = append(params, p)
	}
	return params
}
