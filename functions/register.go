package functions

import "github.com/riverside/logicengine/registry"

// RegisterCore adds the collection, arithmetic, peano, string,
// reflective, and meta groupings — the registry a host gets by default
// when it wants the full illustrative builtin set without the
// filesystem/YAML bridge (§4.4: that bridge stays out of anything the
// core itself constructs).
func RegisterCore(r *registry.Registry) {
	RegisterCollection(r)
	RegisterArithmetic(r)
	RegisterPeano(r)
	RegisterStrings(r)
	RegisterReflective(r)
	RegisterMeta(r)
}
