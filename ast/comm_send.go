package ast

// SendStatement is `port.send(msg) to dest`.
type SendStatement struct {
	Base
	Port    Reference
	Message Value
	To      Value // optional
}

// CallStatement is `port.call(sig:{...}, timer) { response/exception body }`.
// When Timer is non-nil it is started in a fresh inner scope before the
// call; when Body is non-nil its statements are generated after the call as
// an ordinary block, not as a mini-alt, and embedded getreply/catch
// operations are not retargeted to this Port/Signature (§4.3 "Sending
// operations").
type CallStatement struct {
	Base
	Port      Reference
	Signature Value
	To        Value
	Timer     Reference
	Body      *StatementBlock
}

// ReplyStatement is `port.reply(sig:{...} value ret) to sender`.
type ReplyStatement struct {
	Base
	Port      Reference
	Signature Value
	To        Value
}

// RaiseStatement is `port.raise(sig, exception) to dest`.
type RaiseStatement struct {
	Base
	Port      Reference
	Signature Value
	Exception Value
	To        Value
}
