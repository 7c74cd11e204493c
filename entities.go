package hdrscan

import "sync/atomic"

// Constant is a `static const`/`#define NAME value`-shaped literal
// binding. Grounded on original_source/src/cpp/constant.rs.
type Constant struct {
	Name       Ident
	Value      string
	DefinedAt  []Location
	Issues     []Issue
}

// Macro is an object-like or function-like preprocessor macro. Params
// is nil for an object-like macro.
type Macro struct {
	Name      Ident
	Params    []string
	Body      string
	DefinedAt []Location
	Issues    []Issue
}

// FunctionABI records the calling-convention keyword a function
// declaration carried, if any.
type FunctionABI int

const (
	ABIDefault FunctionABI = iota
	ABIWinAPI
	ABICDecl
	ABIStdCall
)

func (a FunctionABI) String() string {
	switch a {
	case ABIWinAPI:
		return "WINAPI"
	case ABICDecl:
		return "__cdecl"
	case ABIStdCall:
		return "__stdcall"
	default:
		return "default"
	}
}

// Function is a free function declaration.
type Function struct {
	Name       Ident
	ReturnType string
	Params     []string
	ABI        FunctionABI
	DefinedAt  []Location
	Issues     []Issue
}

// Enum is a C/C++ enum declaration. Members maps each enumerand to its
// textual initializer (empty string when implicit), keyed and ordered
// the way spec.md §3 requires for every entity body: VecMap<Ident, _>.
type Enum struct {
	Name      Ident
	Class     bool // true iff declared as `enum class`
	Members   *VecMap[Ident, string]
	Aliases   []Ident // typedef-introduced alternate names
	DefinedAt []Location
	Issues    []Issue
}

func NewEnum(name Ident) *Enum {
	return &Enum{Name: name, Members: NewVecMap[Ident, string]()}
}

// AggregateCategory distinguishes struct/class/union/interface bodies,
// which spec.md §3 unifies into a single Aggregate type since their
// bodies parse identically apart from this tag. AggregateInterface only
// ever appears transiently during parsing — spec.md §3's "an aggregate
// with category=Interface is not stored in the aggregate catalog"
// invariant means Root.addAggregate drops it; no Interface entry is
// created from it.
type AggregateCategory int

const (
	AggregateStruct AggregateCategory = iota
	AggregateClass
	AggregateUnion
	AggregateInterface
)

func (c AggregateCategory) String() string {
	switch c {
	case AggregateClass:
		return "class"
	case AggregateUnion:
		return "union"
	case AggregateInterface:
		return "interface"
	default:
		return "struct"
	}
}

// FieldType is a sum type over what a Field's type resolves to: a
// plain textual type name, or a nested aggregate/enum defined inline
// in the body (spec.md §9's nested-type design note).
type FieldType interface {
	isFieldType()
}

// BasicType is a field type given only as source text (no nested body
// was parsed for it — the common case).
type BasicType string

func (BasicType) isFieldType() {}

// NestedAggregate is a field whose type is a struct/class/union body
// declared inline within the enclosing aggregate.
type NestedAggregate struct {
	Aggregate *Aggregate
}

func (NestedAggregate) isFieldType() {}

// NestedEnum is a field whose type is an enum body declared inline
// within the enclosing aggregate.
type NestedEnum struct {
	Enum *Enum
}

func (NestedEnum) isFieldType() {}

// Field is one member of an Aggregate.
type Field struct {
	Name        Ident
	Type        FieldType
	BitfieldLen int // 0 when the field is not a bitfield
}

// Aggregate is a struct/class/union/interface-shaped declaration.
// Fields is keyed by field name the way spec.md §3 requires
// (VecMap<Ident, Field>); an unnamed field (the "allow unnamed field"
// case for a nested anonymous enum/aggregate member) is keyed by the
// empty Ident, so a second unnamed field in the same body naturally
// last-wins rather than accumulating, same as any other VecMap key
// collision in this catalog.
type Aggregate struct {
	Name      Ident
	Category  AggregateCategory
	Base      Ident // zero Ident if none
	Fields    *VecMap[Ident, Field]
	Aliases   []Ident
	DefinedAt []Location
	Issues    []Issue
}

func NewAggregate(name Ident, category AggregateCategory) *Aggregate {
	return &Aggregate{Name: name, Category: category, Fields: NewVecMap[Ident, Field]()}
}

// Method is one member function of an Interface, declared via
// STDMETHOD/STDMETHOD_.
type Method struct {
	Name       Ident
	ReturnType string
	Params     []string

	// Inherited is set by the cleanup pass when this method was
	// copied down from a base interface rather than declared directly
	// on this one. atomic.Bool only because Method values are shared
	// through pointers during the cleanup walk (spec.md §5) — there is
	// no concurrent access, this is about aliasing safety, not races.
	Inherited atomic.Bool
}

// Interface is a COM-style interface declaration
// (DECLARE_INTERFACE/DECLARE_INTERFACE_/MIDL_INTERFACE).
type Interface struct {
	Name      Ident
	Base      Ident // zero Ident if none
	Methods   *VecMap[Ident, *Method]
	DefinedAt []Location
	Issues    []Issue
}

func NewInterface(name Ident) *Interface {
	return &Interface{Name: name, Methods: NewVecMap[Ident, *Method]()}
}

// Namespace groups declarations lexically nested inside a C++
// `namespace NAME { ... }` block. hdrscan does not track full
// qualified-name resolution (spec.md §1 non-goal of full type
// resolution); Namespace only records that the block was seen and
// where, for provenance.
type Namespace struct {
	Name      Ident
	DefinedAt []Location
}

// Flags is a `DEFINE_ENUM_FLAG_OPERATORS(Name)`-style marker recording
// that an enum has been declared as a bitmask type.
type Flags struct {
	EnumName  Ident
	DefinedAt []Location
}
