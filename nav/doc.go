// Package nav models the site navigation and the transforms applied to it.
//
// An [Item] is a page, section, link or placeholder; the kind is explicit in
// [Item.Kind] and every recursive operation switches over it. A [Draft] may
// still contain placeholders; a [Navigation] never does, and the only ways
// to obtain one are [BuildDefault], [Finalize] and [InsertRest].
//
// # Rest Blocks
//
// A hand-written nav configuration ([ConfigNode]) may contain rest entries
// that were substituted by placeholder mappings. The pages of the default
// tree that the hand-written tree does not place are distributed with
// [GenerateRestBlocks] and spliced back with [InsertRest]:
//
//	draft, _, err := nav.FromConfig(cfg, fs)
//	consumed := map[string]bool{}
//	for _, p := range draft.Pages() {
//	    consumed[p.File.SrcPath] = true
//	}
//	blocks := nav.GenerateRestBlocks(nav.BuildDefault(fs).Items, consumed, registry)
//	navigation, err := nav.InsertRest(draft, blocks)
//
// # Arrangement
//
// [Arrange] applies directory metadata (titles, ordering, nav lists, hiding,
// collapsing) to the sections that were built from directories.
package nav
