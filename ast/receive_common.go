package ast

// IndexRedirectShape is the three shapes the synthesised Index_Redirect
// subclass of §4.3 ("Index redirect") can take.
type IndexRedirectShape int

const (
	IndexSingle IndexRedirectShape = iota
	IndexOneDim
	IndexMultiDim
)

// IndexRedirect captures an `any from` index-redirect target.
type IndexRedirect struct {
	Shape    IndexRedirectShape
	Variable Reference
	Dims     int // only meaningful for IndexMultiDim
}

// PortOperand is shared by every receiving/send statement: the optional
// port reference (nil means the `any port.X` runtime helper), plus the
// optional `to`/`from` clause and its redirects.
type PortOperand struct {
	Port Reference // nil => "any port"
	To   Value     // send-side destination clause; nil if absent
}

// ReceiveCommon is embedded by every receive-side statement kind. Not every
// field is meaningful for every kind (e.g. ValueRedirect is meaningless on
// `check`). The checker forbids the meaningless combinations (§4.3); codegen
// does not check them again and renders whatever fields are set.
type ReceiveCommon struct {
	Port           Reference
	From           Template
	SenderRedirect *ValueRedirectEntry
	IndexRedirect  *IndexRedirect
	ValueRedirect  *ValueRedirect
}
