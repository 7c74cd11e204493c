package hdrscan

import (
	"fmt"
	"strings"
)

// Root is the symbol catalog a Builder produces: one insertion/key
// ordered map per entity kind, keyed by Ident. Grounded on
// original_source/src/types/_root.rs.
type Root struct {
	constants   *VecMap[Ident, *Constant]
	macros      *VecMap[Ident, *Macro]
	functions   *VecMap[Ident, *Function]
	enums       *VecMap[Ident, *Enum]
	aggregates  *VecMap[Ident, *Aggregate]
	interfaces  *VecMap[Ident, *Interface]
	namespaces  *VecMap[Ident, *Namespace]
	flags       *VecMap[Ident, *Flags]
}

func NewRoot() *Root {
	return &Root{
		constants:  NewVecMap[Ident, *Constant](),
		macros:     NewVecMap[Ident, *Macro](),
		functions:  NewVecMap[Ident, *Function](),
		enums:      NewVecMap[Ident, *Enum](),
		aggregates: NewVecMap[Ident, *Aggregate](),
		interfaces: NewVecMap[Ident, *Interface](),
		namespaces: NewVecMap[Ident, *Namespace](),
		flags:      NewVecMap[Ident, *Flags](),
	}
}

func (r *Root) Constants() *VecMap[Ident, *Constant]   { return r.constants }
func (r *Root) Macros() *VecMap[Ident, *Macro]         { return r.macros }
func (r *Root) Functions() *VecMap[Ident, *Function]   { return r.functions }
func (r *Root) Enums() *VecMap[Ident, *Enum]           { return r.enums }
func (r *Root) Aggregates() *VecMap[Ident, *Aggregate] { return r.aggregates }
func (r *Root) Interfaces() *VecMap[Ident, *Interface] { return r.interfaces }
func (r *Root) Namespaces() *VecMap[Ident, *Namespace] { return r.namespaces }
func (r *Root) Flags() *VecMap[Ident, *Flags]          { return r.flags }

// addConstant merges a constant declaration: first sighting wins the
// value, later sightings at a different location just extend
// DefinedAt (spec.md §4.3's "first wins, locations accumulate" rule).
func (r *Root) addConstant(c *Constant) {
	existing := r.constants.GetPtr(c.Name)
	if existing == nil {
		r.constants.Insert(c.Name, c)
		return
	}
	(*existing).DefinedAt = append((*existing).DefinedAt, c.DefinedAt...)
	(*existing).Issues = append((*existing).Issues, c.Issues...)
}

func (r *Root) addMacro(m *Macro) {
	existing := r.macros.GetPtr(m.Name)
	if existing == nil {
		r.macros.Insert(m.Name, m)
		return
	}
	(*existing).DefinedAt = append((*existing).DefinedAt, m.DefinedAt...)
	(*existing).Issues = append((*existing).Issues, m.Issues...)
}

func (r *Root) addFunction(f *Function) {
	existing := r.functions.GetPtr(f.Name)
	if existing == nil {
		r.functions.Insert(f.Name, f)
		return
	}
	(*existing).DefinedAt = append((*existing).DefinedAt, f.DefinedAt...)
	(*existing).Issues = append((*existing).Issues, f.Issues...)
}

func (r *Root) addEnum(e *Enum) {
	existing := r.enums.GetPtr(e.Name)
	if existing == nil {
		r.enums.Insert(e.Name, e)
		return
	}
	(*existing).DefinedAt = append((*existing).DefinedAt, e.DefinedAt...)
	(*existing).Issues = append((*existing).Issues, e.Issues...)
	(*existing).Aliases = append((*existing).Aliases, e.Aliases...)
}

// addAggregate merges an aggregate declaration, except a category of
// AggregateInterface, which spec.md §4.3 ("Aggregate with
// category=Interface: drop silently") routes away from this catalog
// entirely — a `typedef interface IFoo {...} IFoo;` body is parsed like
// any other aggregate but never stored here; IFoo is only catalogued if
// it also appears as a real DECLARE_INTERFACE/MIDL_INTERFACE form.
func (r *Root) addAggregate(a *Aggregate) {
	if a.Category == AggregateInterface {
		return
	}
	existing := r.aggregates.GetPtr(a.Name)
	if existing == nil {
		r.aggregates.Insert(a.Name, a)
		return
	}
	(*existing).DefinedAt = append((*existing).DefinedAt, a.DefinedAt...)
	(*existing).Issues = append((*existing).Issues, a.Issues...)
	(*existing).Aliases = append((*existing).Aliases, a.Aliases...)
}

func (r *Root) addNamespace(n *Namespace) {
	existing := r.namespaces.GetPtr(n.Name)
	if existing == nil {
		r.namespaces.Insert(n.Name, n)
		return
	}
	(*existing).DefinedAt = append((*existing).DefinedAt, n.DefinedAt...)
}

func (r *Root) addFlags(fl *Flags) {
	existing := r.flags.GetPtr(fl.EnumName)
	if existing == nil {
		r.flags.Insert(fl.EnumName, fl)
		return
	}
	(*existing).DefinedAt = append((*existing).DefinedAt, fl.DefinedAt...)
}

// addInterface merges an interface declaration. Unlike the other add*
// methods, a re-sighting of the same interface name can carry a
// *different* method set (a header forward-declares an interface, a
// later header gives its real body) — spec.md §4.3 calls this "method
// drift" and asks for a pairwise walk of the sorted own-method-name
// lists of the old and new occurrence, flagging every name-set
// divergence rather than just signature mismatches on names both sides
// share. Grounded on original_source/src/types/_root.rs::add_interface.
func (r *Root) addInterface(iface *Interface) {
	existing := r.interfaces.GetPtr(iface.Name)
	if existing == nil {
		r.interfaces.Insert(iface.Name, iface)
		return
	}
	cur := *existing
	prevNames := cur.Methods.KeysByKey()
	newNames := iface.Methods.KeysByKey()

	cur.DefinedAt = append(cur.DefinedAt, iface.DefinedAt...)
	cur.Issues = append(cur.Issues, iface.Issues...)

	if cur.Base.IsZero() && !iface.Base.IsZero() {
		cur.Base = iface.Base
	}

	loc := iface.DefinedAt[len(iface.DefinedAt)-1]
	i, j := 0, 0
	for i < len(prevNames) || j < len(newNames) {
		switch {
		case i < len(prevNames) && j < len(newNames) && prevNames[i] < newNames[j]:
			appendIssue(&cur.Issues, NewIssue(loc, IssueShapeDrift,
				"duplicate interface %s missing previous method %s", iface.Name, prevNames[i]))
			i++
		case i < len(prevNames) && j < len(newNames) && prevNames[i] > newNames[j]:
			appendIssue(&cur.Issues, NewIssue(loc, IssueShapeDrift,
				"duplicate interface %s adds new method %s", iface.Name, newNames[j]))
			j++
		case i < len(prevNames) && j < len(newNames):
			i++
			j++
		case i < len(prevNames):
			appendIssue(&cur.Issues, NewIssue(loc, IssueShapeDrift,
				"duplicate interface %s missing previous method %s", iface.Name, prevNames[i]))
			i++
		default:
			appendIssue(&cur.Issues, NewIssue(loc, IssueShapeDrift,
				"duplicate interface %s adds new method %s", iface.Name, newNames[j]))
			j++
		}
	}
}

// DebugString renders the whole catalog deterministically, every kind
// in ascending key order, for snapshot-style tests and the CLI's
// --debug flag.
func (r *Root) DebugString() string {
	var b strings.Builder

	fmt.Fprintf(&b, "namespaces (%d):\n", r.namespaces.Len())
	for _, n := range r.namespaces.ByKey() {
		fmt.Fprintf(&b, "  %s\n", n.Name)
	}

	fmt.Fprintf(&b, "constants (%d):\n", r.constants.Len())
	for _, c := range r.constants.ByKey() {
		fmt.Fprintf(&b, "  %s = %s\n", c.Name, c.Value)
	}

	fmt.Fprintf(&b, "macros (%d):\n", r.macros.Len())
	for _, m := range r.macros.ByKey() {
		fmt.Fprintf(&b, "  %s\n", m.Name)
	}

	fmt.Fprintf(&b, "functions (%d):\n", r.functions.Len())
	for _, f := range r.functions.ByKey() {
		fmt.Fprintf(&b, "  %s %s(...)\n", f.ReturnType, f.Name)
	}

	fmt.Fprintf(&b, "enums (%d):\n", r.enums.Len())
	for _, e := range r.enums.ByKey() {
		class := ""
		if e.Class {
			class = " class"
		}
		fmt.Fprintf(&b, "  %s%s (%d members)\n", e.Name, class, e.Members.Len())
	}

	fmt.Fprintf(&b, "aggregates (%d):\n", r.aggregates.Len())
	for _, a := range r.aggregates.ByKey() {
		fmt.Fprintf(&b, "  %s %s (%d fields)\n", a.Category, a.Name, a.Fields.Len())
	}

	fmt.Fprintf(&b, "interfaces (%d):\n", r.interfaces.Len())
	for _, i := range r.interfaces.ByKey() {
		fmt.Fprintf(&b, "  %s : %s (%d methods)\n", i.Name, i.Base, i.Methods.Len())
	}

	fmt.Fprintf(&b, "flags (%d):\n", r.flags.Len())
	for _, fl := range r.flags.ByKey() {
		fmt.Fprintf(&b, "  %s\n", fl.EnumName)
	}

	return b.String()
}
