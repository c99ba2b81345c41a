package rust

// Runtime names the items of the target crate generated code builds on.
// Paths use the "crate" placeholder, which files replace with the package
// alias.
type Runtime struct {
	FinalNode          string
	DebugWrapper       string
	StrongValue        string
	UnwrapValue        string
	Archetype          string
	AttributeArchetype string
	ArchetypeTrait     string
	FormTrait          string
	AttributeTrait     string
	InitializeKB       string
}

// DefaultRuntime matches the layout of a yin-style knowledge-base crate.
var DefaultRuntime = Runtime{
	FinalNode:          "crate::node_wrappers::FinalNode",
	DebugWrapper:       "crate::node_wrappers::debug_wrapper",
	StrongValue:        "crate::tao::form::data::StrongValue",
	UnwrapValue:        "crate::tao::form::data::unwrap_value",
	Archetype:          "crate::tao::archetype::Archetype",
	AttributeArchetype: "crate::tao::archetype::AttributeArchetype",
	ArchetypeTrait:     "crate::tao::archetype::ArchetypeTrait",
	FormTrait:          "crate::tao::form::FormTrait",
	AttributeTrait:     "crate::tao::relation::attribute::AttributeTrait",
	InitializeKB:       "crate::tao::initialize_kb",
}

// Standard library items.
const (
	stdFmt       = "std::fmt"
	stdDebug     = "std::fmt::Debug"
	stdFormatter = "std::fmt::Formatter"
	stdRc        = "std::rc::Rc"
)
