package gostix

// DomainObject is the closed family of STIX Domain Objects. Decoding
// dispatches on the type field; a discriminator without a table entry
// decodes as CustomObject, the family's forward-compatibility escape hatch.
type DomainObject interface {
	Object
	isDomainObject()
}

// CustomObject is the SDO catch-all. Only the envelope (type and id) is
// typed; every other property rides in the custom map, so a document with a
// forward-unknown kind round-trips losslessly.
type CustomObject struct {
	Type   string
	ID     Identifier
	Custom CustomProperties
}

// NewCustomObject mints a CustomObject of the given type with a fresh id.
func NewCustomObject(objType string, custom CustomProperties) CustomObject {
	return CustomObject{Type: objType, ID: NewIdentifier(objType), Custom: custom}
}

func (o CustomObject) ObjectType() string   { return o.Type }
func (o CustomObject) ObjectID() Identifier { return o.ID }

func (CustomObject) isDomainObject() {}

func decodeCustomObject(_ *Registry, r *objReader) DomainObject {
	o := CustomObject{
		Type: r.reqStr("type"),
		ID:   r.reqID("id"),
	}
	o.Custom = r.rest()
	return o
}

func (o CustomObject) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("type", o.Type)
	w.reqID("id", o.ID)
	w.custom(o.Custom)
	return w.done()
}
