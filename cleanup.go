package hdrscan

import "strings"

// cleanupInheritedMethods marks every Method on every Interface that
// was not declared directly on that interface but is reachable by
// walking its Base chain, copying it down so Interface.Methods always
// reflects the full, flattened method set spec.md §4.4 requires.
//
// Grounded on original_source/src/types/_root.rs::cleanup_inherited_methods,
// generalized to the snapshot-then-apply shape spec.md §9 recommends: a
// plain read-only pass computes what each interface's flattened method
// list should be, then a second pass applies the result, so the walk
// never observes a partially-updated interface.
func (r *Root) cleanupInheritedMethods() {
	type flattened struct {
		name    Ident
		inherit map[Ident]*Method
	}

	snapshots := make([]flattened, 0, r.interfaces.Len())
	for _, iface := range r.interfaces.ByInsertion() {
		inherited := make(map[Ident]*Method)
		seen := map[Ident]bool{iface.Name: true}

		base := iface.Base
		for !base.IsZero() && !seen[base] {
			seen[base] = true
			baseIface, ok := r.interfaces.Get(base)
			if !ok {
				break
			}
			for _, name := range baseIface.Methods.Keys() {
				if iface.Methods.GetPtr(name) != nil {
					continue // declared directly, not inherited
				}
				if _, already := inherited[name]; already {
					continue // nearer base already supplied this method
				}
				m, _ := baseIface.Methods.Get(name)
				inherited[name] = m
			}
			base = baseIface.Base
		}

		snapshots = append(snapshots, flattened{name: iface.Name, inherit: inherited})
	}

	for _, snap := range snapshots {
		iface, ok := r.interfaces.Get(snap.name)
		if !ok {
			continue
		}
		for name, base := range snap.inherit {
			copied := &Method{
				Name:       base.Name,
				ReturnType: base.ReturnType,
				Params:     append([]string(nil), base.Params...),
			}
			copied.Inherited.Store(true)
			iface.Methods.Insert(name, copied)
		}
	}
}

// cleanupCancelInterfaceMethodMacros implements spec.md §4.4 point 2:
// for every interface R, for every method M in R's method set (by the
// time this runs, cleanupInheritedMethods has already flattened R's
// base chain into R.Methods, so this naturally covers "M at any level
// of its base chain"), and for every postfix p in {"", "A", "W"}, if
// R's name ends with p then strip_suffix(R.id, p) + "_" + M.name names
// a macro that is the classic C-style COM wrapper for that vtable call
// (e.g. interface IDirectInputDevice8 with method SetCooperativeLevel
// cancels macro IDirectInputDevice8_SetCooperativeLevel; interface
// IShellLinkA with method GetPath cancels IShellLink_GetPath). Every
// candidate name is removed from the catalog's macro set outright, per
// spec's "replace the catalog's macros with the surviving set" — this
// is a filter, not a flag, so a cancelled macro simply stops appearing.
func (r *Root) cleanupCancelInterfaceMethodMacros() {
	cancelled := make(map[Ident]bool)

	for _, iface := range r.interfaces.ByInsertion() {
		name := string(iface.Name)
		for _, p := range [...]string{"", "A", "W"} {
			base, ok := strings.CutSuffix(name, p)
			if !ok {
				continue
			}
			for _, methodName := range iface.Methods.Keys() {
				cancelled[Ident(base+"_"+string(methodName))] = true
			}
		}
	}

	survivors := NewVecMap[Ident, *Macro]()
	for _, m := range r.macros.ByInsertion() {
		if cancelled[m.Name] {
			continue
		}
		survivors.Insert(m.Name, m)
	}
	r.macros = survivors
}

// Cleanup runs both sub-passes in the order spec.md §4.4 specifies:
// method inheritance first, so the macro-cancellation pass below
// observes each interface's full flattened method set, then macro
// cancellation.
func (r *Root) Cleanup() {
	r.cleanupInheritedMethods()
	r.cleanupCancelInterfaceMethodMacros()
}
