package ast

// ValueRedirectEntry is one `(variable reference, optional sub-path,
// decoded? flag, optional string-encoding expression, optional decoded
// target type)` tuple from `... -> value (x, y.f := z)` syntax.
type ValueRedirectEntry struct {
	Variable Reference
	SubPath  string // e.g. "y.f"; empty means "whole received value"

	Decoded        bool
	StringEncoding Value      // optional; only meaningful when Decoded
	DecodedTarget  StaticType // optional; only meaningful when Decoded

	// MatchedTemplateTarget/MatchedTemplateEncoding describe the
	// decode_match sub-template, if any, that the checker resolved as
	// matching this entry's source position (§4.3 "Redirect decoding
	// optimisation", §8 property 8). They are nil/empty when no
	// decode_match template matched here, or when Decoded is false.
	// Codegen compares these against DecodedTarget/StringEncoding to
	// decide whether the already-decoded result can be copied directly
	// instead of being re-encoded and re-decoded through this entry's own
	// target codec.
	MatchedTemplateTarget   StaticType
	MatchedTemplateEncoding Value
}

// ValueRedirect is the `... -> value (...)` clause of a receiving
// statement: a set of redirect entries.
type ValueRedirect struct {
	Entries []ValueRedirectEntry
}

// ParamRedirectEntry mirrors ValueRedirectEntry but targets one formal
// parameter of a signature, by position.
type ParamRedirectEntry struct {
	// Index is the parameter's position in the signature's parameter
	// list. By-name redirects are normalised to positional form by the
	// checker before the generator sees them (§3 invariant); Present is
	// false for a padding slot introduced by that normalisation.
	Index   int
	Present bool

	Variable Reference

	Decoded        bool
	StringEncoding Value
	DecodedTarget  StaticType
}

// ParamRedirect is the parameter-redirect clause of a getcall/getreply/
// catch statement, already normalised to positional form.
type ParamRedirect struct {
	Entries []ParamRedirectEntry
}
