package gostix

// Discriminators of the network-side observables.
const (
	TypeAutonomousSystem = "autonomous-system"
	TypeDomainName       = "domain-name"
	TypeEmailAddress     = "email-addr"
	TypeEmailMessage     = "email-message"
	TypeIPv4Address      = "ipv4-addr"
	TypeIPv6Address      = "ipv6-addr"
	TypeMACAddress       = "mac-addr"
	TypeNetworkTraffic   = "network-traffic"
	TypeURL              = "url"
)

// AutonomousSystem is a BGP autonomous system.
type AutonomousSystem struct {
	ObservableBase
	Number int64
	Name   string
	RIR    string
}

func NewAutonomousSystem(number int64) AutonomousSystem {
	return AutonomousSystem{ObservableBase: newObservable(TypeAutonomousSystem), Number: number}
}

func decodeAutonomousSystem(reg *Registry, r *objReader) Observable {
	o := AutonomousSystem{
		ObservableBase: decodeObservableBase(reg, r),
		Number:         r.reqInt("number"),
		Name:           r.str("name"),
		RIR:            r.str("rir"),
	}
	o.Custom = r.rest()
	return o
}

func (o AutonomousSystem) EncodeValue() map[string]any {
	w := o.writer()
	w.int("number", o.Number)
	w.str("name", o.Name)
	w.str("rir", o.RIR)
	return o.finish(w)
}

// DomainName is a network domain name.
type DomainName struct {
	ObservableBase
	Value          string
	ResolvesToRefs []string
}

func NewDomainName(value string) DomainName {
	return DomainName{ObservableBase: newObservable(TypeDomainName), Value: value}
}

func decodeDomainName(reg *Registry, r *objReader) Observable {
	o := DomainName{
		ObservableBase: decodeObservableBase(reg, r),
		Value:          r.reqStr("value"),
		ResolvesToRefs: r.strList("resolves_to_refs"),
	}
	o.Custom = r.rest()
	return o
}

func (o DomainName) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("value", o.Value)
	w.strList("resolves_to_refs", o.ResolvesToRefs)
	return o.finish(w)
}

// EmailAddress is a single sender or recipient address.
type EmailAddress struct {
	ObservableBase
	Value        string
	DisplayName  string
	BelongsToRef string
}

func NewEmailAddress(value string) EmailAddress {
	return EmailAddress{ObservableBase: newObservable(TypeEmailAddress), Value: value}
}

func decodeEmailAddress(reg *Registry, r *objReader) Observable {
	o := EmailAddress{
		ObservableBase: decodeObservableBase(reg, r),
		Value:          r.reqStr("value"),
		DisplayName:    r.str("display_name"),
		BelongsToRef:   r.str("belongs_to_ref"),
	}
	o.Custom = r.rest()
	return o
}

func (o EmailAddress) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("value", o.Value)
	w.str("display_name", o.DisplayName)
	w.str("belongs_to_ref", o.BelongsToRef)
	return o.finish(w)
}

// EmailMIMEPart is one component of a multipart email body.
type EmailMIMEPart struct {
	Body               string
	BodyRawRef         string
	ContentType        string
	ContentDisposition string
}

func decodeEmailMIMEPart(r *objReader) EmailMIMEPart {
	return EmailMIMEPart{
		Body:               r.str("body"),
		BodyRawRef:         r.str("body_raw_ref"),
		ContentType:        r.str("content_type"),
		ContentDisposition: r.str("content_disposition"),
	}
}

func (p EmailMIMEPart) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("body", p.Body)
	w.str("body_raw_ref", p.BodyRawRef)
	w.str("content_type", p.ContentType)
	w.str("content_disposition", p.ContentDisposition)
	return w.done()
}

// EmailMessage is an email as seen on the wire. is_multipart is the one
// required field; references point at sibling observables by local handle.
type EmailMessage struct {
	ObservableBase
	IsMultipart            bool
	Date                   Timestamp
	ContentType            string
	FromRef                string
	SenderRef              string
	ToRefs                 []string
	CcRefs                 []string
	BccRefs                []string
	MessageID              string
	Subject                string
	ReceivedLines          []string
	AdditionalHeaderFields map[string]string
	Body                   string
	BodyMultipart          []EmailMIMEPart
	RawEmailRef            string
}

func NewEmailMessage(isMultipart bool) EmailMessage {
	return EmailMessage{ObservableBase: newObservable(TypeEmailMessage), IsMultipart: isMultipart}
}

func decodeEmailMessage(reg *Registry, r *objReader) Observable {
	o := EmailMessage{
		ObservableBase:         decodeObservableBase(reg, r),
		IsMultipart:            r.reqBool("is_multipart"),
		Date:                   r.ts("date"),
		ContentType:            r.str("content_type"),
		FromRef:                r.str("from_ref"),
		SenderRef:              r.str("sender_ref"),
		ToRefs:                 r.strList("to_refs"),
		CcRefs:                 r.strList("cc_refs"),
		BccRefs:                r.strList("bcc_refs"),
		MessageID:              r.str("message_id"),
		Subject:                r.str("subject"),
		ReceivedLines:          r.strList("received_lines"),
		AdditionalHeaderFields: r.strMap("additional_header_fields"),
		Body:                   r.str("body"),
		BodyMultipart:          decodeList(r, "body_multipart", decodeEmailMIMEPart),
		RawEmailRef:            r.str("raw_email_ref"),
	}
	o.Custom = r.rest()
	return o
}

func (o EmailMessage) EncodeValue() map[string]any {
	w := o.writer()
	w.set("is_multipart", o.IsMultipart)
	w.ts("date", o.Date)
	w.str("content_type", o.ContentType)
	w.str("from_ref", o.FromRef)
	w.str("sender_ref", o.SenderRef)
	w.strList("to_refs", o.ToRefs)
	w.strList("cc_refs", o.CcRefs)
	w.strList("bcc_refs", o.BccRefs)
	w.str("message_id", o.MessageID)
	w.str("subject", o.Subject)
	w.strList("received_lines", o.ReceivedLines)
	w.strMap("additional_header_fields", o.AdditionalHeaderFields)
	w.str("body", o.Body)
	encodeList(w, "body_multipart", o.BodyMultipart)
	w.str("raw_email_ref", o.RawEmailRef)
	return o.finish(w)
}

// IPv4Address is one address or a CIDR block.
type IPv4Address struct {
	ObservableBase
	Value          string
	ResolvesToRefs []string
	BelongsToRefs  []string
}

func NewIPv4Address(value string) IPv4Address {
	return IPv4Address{ObservableBase: newObservable(TypeIPv4Address), Value: value}
}

func decodeIPv4Address(reg *Registry, r *objReader) Observable {
	o := IPv4Address{
		ObservableBase: decodeObservableBase(reg, r),
		Value:          r.reqStr("value"),
		ResolvesToRefs: r.strList("resolves_to_refs"),
		BelongsToRefs:  r.strList("belongs_to_refs"),
	}
	o.Custom = r.rest()
	return o
}

func (o IPv4Address) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("value", o.Value)
	w.strList("resolves_to_refs", o.ResolvesToRefs)
	w.strList("belongs_to_refs", o.BelongsToRefs)
	return o.finish(w)
}

// IPv6Address is one address or a CIDR block.
type IPv6Address struct {
	ObservableBase
	Value          string
	ResolvesToRefs []string
	BelongsToRefs  []string
}

func NewIPv6Address(value string) IPv6Address {
	return IPv6Address{ObservableBase: newObservable(TypeIPv6Address), Value: value}
}

func decodeIPv6Address(reg *Registry, r *objReader) Observable {
	o := IPv6Address{
		ObservableBase: decodeObservableBase(reg, r),
		Value:          r.reqStr("value"),
		ResolvesToRefs: r.strList("resolves_to_refs"),
		BelongsToRefs:  r.strList("belongs_to_refs"),
	}
	o.Custom = r.rest()
	return o
}

func (o IPv6Address) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("value", o.Value)
	w.strList("resolves_to_refs", o.ResolvesToRefs)
	w.strList("belongs_to_refs", o.BelongsToRefs)
	return o.finish(w)
}

// MACAddress is a single media access control address.
type MACAddress struct {
	ObservableBase
	Value string
}

func NewMACAddress(value string) MACAddress {
	return MACAddress{ObservableBase: newObservable(TypeMACAddress), Value: value}
}

func decodeMACAddress(reg *Registry, r *objReader) Observable {
	o := MACAddress{
		ObservableBase: decodeObservableBase(reg, r),
		Value:          r.reqStr("value"),
	}
	o.Custom = r.rest()
	return o
}

func (o MACAddress) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("value", o.Value)
	return o.finish(w)
}

// NetworkTraffic is a network flow or connection. The ipfix map accepts
// integer or string metric values per entry and preserves each entry's
// shape.
type NetworkTraffic struct {
	ObservableBase
	Start             Timestamp
	End               Timestamp
	IsActive          *bool
	SrcRef            string
	DstRef            string
	SrcPort           *int64
	DstPort           *int64
	Protocols         []string
	SrcByteCount      *int64
	DstByteCount      *int64
	SrcPackets        *int64
	DstPackets        *int64
	IPFIX             map[string]IntOrString
	SrcPayloadRef     string
	DstPayloadRef     string
	EncapsulatesRefs  []string
	EncapsulatedByRef string
}

func NewNetworkTraffic(protocols ...string) NetworkTraffic {
	return NetworkTraffic{ObservableBase: newObservable(TypeNetworkTraffic), Protocols: protocols}
}

func decodeNetworkTraffic(reg *Registry, r *objReader) Observable {
	o := NetworkTraffic{
		ObservableBase:    decodeObservableBase(reg, r),
		Start:             r.ts("start"),
		End:               r.ts("end"),
		IsActive:          r.optBool("is_active"),
		SrcRef:            r.str("src_ref"),
		DstRef:            r.str("dst_ref"),
		SrcPort:           r.optInt("src_port"),
		DstPort:           r.optInt("dst_port"),
		Protocols:         r.reqStrList("protocols"),
		SrcByteCount:      r.optInt("src_byte_count"),
		DstByteCount:      r.optInt("dst_byte_count"),
		SrcPackets:        r.optInt("src_packets"),
		DstPackets:        r.optInt("dst_packets"),
		IPFIX:             r.flexMap("ipfix"),
		SrcPayloadRef:     r.str("src_payload_ref"),
		DstPayloadRef:     r.str("dst_payload_ref"),
		EncapsulatesRefs:  r.strList("encapsulates_refs"),
		EncapsulatedByRef: r.str("encapsulated_by_ref"),
	}
	o.Custom = r.rest()
	return o
}

func (o NetworkTraffic) EncodeValue() map[string]any {
	w := o.writer()
	w.ts("start", o.Start)
	w.ts("end", o.End)
	w.boolPtr("is_active", o.IsActive)
	w.str("src_ref", o.SrcRef)
	w.str("dst_ref", o.DstRef)
	w.intPtr("src_port", o.SrcPort)
	w.intPtr("dst_port", o.DstPort)
	w.strList("protocols", o.Protocols)
	w.intPtr("src_byte_count", o.SrcByteCount)
	w.intPtr("dst_byte_count", o.DstByteCount)
	w.intPtr("src_packets", o.SrcPackets)
	w.intPtr("dst_packets", o.DstPackets)
	w.flexMap("ipfix", o.IPFIX)
	w.str("src_payload_ref", o.SrcPayloadRef)
	w.str("dst_payload_ref", o.DstPayloadRef)
	w.strList("encapsulates_refs", o.EncapsulatesRefs)
	w.str("encapsulated_by_ref", o.EncapsulatedByRef)
	return o.finish(w)
}

// URL is a uniform resource locator.
type URL struct {
	ObservableBase
	Value string
}

func NewURL(value string) URL {
	return URL{ObservableBase: newObservable(TypeURL), Value: value}
}

func decodeURL(reg *Registry, r *objReader) Observable {
	o := URL{
		ObservableBase: decodeObservableBase(reg, r),
		Value:          r.reqStr("value"),
	}
	o.Custom = r.rest()
	return o
}

func (o URL) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("value", o.Value)
	return o.finish(w)
}
