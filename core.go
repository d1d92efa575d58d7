package gostix

// Core is the shape shared by every Domain Object and Relationship Object:
// identity, audit timestamps, markings, and the custom-property side
// channel. Any new variant added to either family must carry the full
// shape.
type Core struct {
	Type               string
	SpecVersion        string
	ID                 Identifier
	CreatedByRef       Identifier
	Created            Timestamp
	Modified           Timestamp
	Revoked            *bool
	Labels             []string
	Confidence         *int64
	Lang               string
	ExternalReferences []ExternalReference
	ObjectMarkingRefs  []Identifier
	GranularMarkings   []GranularMarking
	Custom             CustomProperties
}

// ObjectType returns the discriminator carried in the type field.
func (c Core) ObjectType() string { return c.Type }

// ObjectID returns the object's identifier.
func (c Core) ObjectID() Identifier { return c.ID }

// CustomProps returns the custom-property carrier.
func (c Core) CustomProps() CustomProperties { return c.Custom }

// decodeCore consumes the common fields off the cursor. The per-kind codec
// reads its own fields afterwards and takes r.rest() as the custom map, so
// Custom stays unset here.
func decodeCore(r *objReader) Core {
	return Core{
		Type:               r.reqStr("type"),
		SpecVersion:        r.str("spec_version"),
		ID:                 r.reqID("id"),
		CreatedByRef:       r.id("created_by_ref"),
		Created:            r.reqTS("created"),
		Modified:           r.reqTS("modified"),
		Revoked:            r.optBool("revoked"),
		Labels:             r.strList("labels"),
		Confidence:         r.optInt("confidence"),
		Lang:               r.str("lang"),
		ExternalReferences: decodeList(r, "external_references", decodeExternalReference),
		ObjectMarkingRefs:  r.idList("object_marking_refs"),
		GranularMarkings:   decodeList(r, "granular_markings", decodeGranularMarking),
	}
}

// writer seeds an objWriter with the common fields. The per-kind encoder
// adds its own fields on top and merges the custom map last.
func (c Core) writer() *objWriter {
	w := newObjWriter()
	w.reqStr("type", c.Type)
	w.str("spec_version", c.SpecVersion)
	w.reqID("id", c.ID)
	w.id("created_by_ref", c.CreatedByRef)
	w.reqTS("created", c.Created)
	w.reqTS("modified", c.Modified)
	w.boolPtr("revoked", c.Revoked)
	w.strList("labels", c.Labels)
	w.intPtr("confidence", c.Confidence)
	w.str("lang", c.Lang)
	encodeList(w, "external_references", c.ExternalReferences)
	w.idList("object_marking_refs", c.ObjectMarkingRefs)
	encodeList(w, "granular_markings", c.GranularMarkings)
	return w
}
