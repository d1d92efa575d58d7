package gostix

// TypeBundle is the transport envelope discriminator.
const TypeBundle = "bundle"

// Bundle aggregates serialized objects for transport. Members stay opaque
// JSON values in their original order: the envelope never interprets them,
// which is what lets kinds unknown to this schema version pass through
// unchanged. Callers that need concrete kinds re-apply the Registry per
// element.
type Bundle struct {
	Type    string
	ID      Identifier
	Objects []any
	Custom  CustomProperties
}

// NewBundle builds a bundle with a fresh identifier holding the given
// members' serialized forms. An empty bundle encodes with "objects": [].
func NewBundle(objs ...Encodable) Bundle {
	b := Bundle{
		Type:    TypeBundle,
		ID:      NewIdentifier(TypeBundle),
		Objects: make([]any, 0, len(objs)),
	}
	for _, o := range objs {
		b.Objects = append(b.Objects, o.EncodeValue())
	}
	return b
}

// Add appends one object's serialized form and returns the new bundle; the
// receiver is unchanged.
func (b Bundle) Add(obj Encodable) Bundle {
	return b.AddRaw(obj.EncodeValue())
}

// AddRaw appends an already-serialized JSON value with the same value
// semantics as Add.
func (b Bundle) AddRaw(v any) Bundle {
	objs := make([]any, len(b.Objects), len(b.Objects)+1)
	copy(objs, b.Objects)
	b.Objects = append(objs, v)
	return b
}

// ObjectType returns the bundle discriminator.
func (b Bundle) ObjectType() string { return b.Type }

// ObjectID returns the envelope's identifier.
func (b Bundle) ObjectID() Identifier { return b.ID }

// decodeBundle reads the envelope only; elements of objects are kept raw.
func decodeBundle(r *objReader) Bundle {
	b := Bundle{
		Type:    r.reqStr("type"),
		ID:      r.reqID("id"),
		Objects: r.rawList("objects"),
	}
	b.Custom = r.rest()
	return b
}

func (b Bundle) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("type", b.Type)
	w.reqID("id", b.ID)
	w.rawList("objects", b.Objects)
	w.custom(b.Custom)
	return w.done()
}
