package gostix

// HTTPRequestExt carries one HTTP request observed inside network traffic.
type HTTPRequestExt struct {
	RequestMethod      string
	RequestValue       string
	RequestVersion     string
	RequestHeader      map[string]string
	MessageBodyLength  *int64
	MessageBodyDataRef string
}

func (HTTPRequestExt) ExtensionType() string { return ExtHTTPRequest }

func (HTTPRequestExt) isExtension() {}

func decodeHTTPRequestExt(r *objReader) Extension {
	return HTTPRequestExt{
		RequestMethod:      r.reqStr("request_method"),
		RequestValue:       r.reqStr("request_value"),
		RequestVersion:     r.str("request_version"),
		RequestHeader:      r.strMap("request_header"),
		MessageBodyLength:  r.optInt("message_body_length"),
		MessageBodyDataRef: r.str("message_body_data_ref"),
	}
}

func (e HTTPRequestExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("request_method", e.RequestMethod)
	w.reqStr("request_value", e.RequestValue)
	w.str("request_version", e.RequestVersion)
	w.strMap("request_header", e.RequestHeader)
	w.intPtr("message_body_length", e.MessageBodyLength)
	w.str("message_body_data_ref", e.MessageBodyDataRef)
	return w.done()
}

// ICMPExt carries ICMP header fields of network traffic.
type ICMPExt struct {
	ICMPTypeHex string
	ICMPCodeHex string
}

func (ICMPExt) ExtensionType() string { return ExtICMP }

func (ICMPExt) isExtension() {}

func decodeICMPExt(r *objReader) Extension {
	return ICMPExt{
		ICMPTypeHex: r.reqStr("icmp_type_hex"),
		ICMPCodeHex: r.reqStr("icmp_code_hex"),
	}
}

func (e ICMPExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("icmp_type_hex", e.ICMPTypeHex)
	w.reqStr("icmp_code_hex", e.ICMPCodeHex)
	return w.done()
}

// SocketExt carries the network socket properties of network traffic.
type SocketExt struct {
	AddressFamily    string
	IsBlocking       *bool
	IsListening      *bool
	Options          map[string]int64
	SocketType       string
	SocketDescriptor *int64
	SocketHandle     *int64
}

func (SocketExt) ExtensionType() string { return ExtSocket }

func (SocketExt) isExtension() {}

func decodeSocketExt(r *objReader) Extension {
	return SocketExt{
		AddressFamily:    r.reqStr("address_family"),
		IsBlocking:       r.optBool("is_blocking"),
		IsListening:      r.optBool("is_listening"),
		Options:          r.intMap("options"),
		SocketType:       r.str("socket_type"),
		SocketDescriptor: r.optInt("socket_descriptor"),
		SocketHandle:     r.optInt("socket_handle"),
	}
}

func (e SocketExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("address_family", e.AddressFamily)
	w.boolPtr("is_blocking", e.IsBlocking)
	w.boolPtr("is_listening", e.IsListening)
	w.intMap("options", e.Options)
	w.str("socket_type", e.SocketType)
	w.intPtr("socket_descriptor", e.SocketDescriptor)
	w.intPtr("socket_handle", e.SocketHandle)
	return w.done()
}

// TCPExt carries TCP header flags of network traffic.
type TCPExt struct {
	SrcFlagsHex string
	DstFlagsHex string
}

func (TCPExt) ExtensionType() string { return ExtTCP }

func (TCPExt) isExtension() {}

func decodeTCPExt(r *objReader) Extension {
	return TCPExt{
		SrcFlagsHex: r.str("src_flags_hex"),
		DstFlagsHex: r.str("dst_flags_hex"),
	}
}

func (e TCPExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("src_flags_hex", e.SrcFlagsHex)
	w.str("dst_flags_hex", e.DstFlagsHex)
	return w.done()
}
