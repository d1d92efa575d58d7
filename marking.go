package gostix

// TypeMarkingDefinition is the discriminator of the marking envelope.
const TypeMarkingDefinition = "marking-definition"

// Definition-type discriminators of the marking payloads.
const (
	DefinitionTypeTLP       = "tlp"
	DefinitionTypeStatement = "statement"
)

// MarkingObject is the closed family of marking payloads, keyed by the
// envelope's definition_type field. No catch-all: an unknown
// definition_type fails with unknown_discriminator.
type MarkingObject interface {
	Encodable
	DefinitionType() string
	isMarkingObject()
}

// TLPMarking is a Traffic Light Protocol level.
type TLPMarking struct {
	TLP string
}

func (TLPMarking) DefinitionType() string { return DefinitionTypeTLP }

func (TLPMarking) isMarkingObject() {}

func decodeTLPMarking(r *objReader) MarkingObject {
	return TLPMarking{TLP: r.reqStr("tlp")}
}

func (m TLPMarking) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("tlp", m.TLP)
	return w.done()
}

// StatementMarking is a free-text statement such as a copyright notice or
// terms of use.
type StatementMarking struct {
	Statement string
}

func (StatementMarking) DefinitionType() string { return DefinitionTypeStatement }

func (StatementMarking) isMarkingObject() {}

func decodeStatementMarking(r *objReader) MarkingObject {
	return StatementMarking{Statement: r.reqStr("statement")}
}

func (m StatementMarking) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("statement", m.Statement)
	return w.done()
}

// MarkingDefinition is the reusable data-marking envelope. Unlike the
// SDO/SRO core it carries no modified timestamp.
type MarkingDefinition struct {
	Type               string
	SpecVersion        string
	ID                 Identifier
	CreatedByRef       Identifier
	Created            Timestamp
	Name               string
	DefinitionType     string
	Definition         MarkingObject
	ExternalReferences []ExternalReference
	ObjectMarkingRefs  []Identifier
	GranularMarkings   []GranularMarking
	Custom             CustomProperties
}

// NewMarkingDefinition wraps a marking payload in a fresh envelope; the
// definition_type comes from the payload itself.
func NewMarkingDefinition(definition MarkingObject) MarkingDefinition {
	return MarkingDefinition{
		Type:           TypeMarkingDefinition,
		SpecVersion:    DefaultSpecVersion,
		ID:             NewIdentifier(TypeMarkingDefinition),
		Created:        Now(),
		DefinitionType: definition.DefinitionType(),
		Definition:     definition,
	}
}

// ObjectType returns the discriminator carried in the type field.
func (md MarkingDefinition) ObjectType() string { return md.Type }

// ObjectID returns the envelope's identifier.
func (md MarkingDefinition) ObjectID() Identifier { return md.ID }

func decodeMarkingDefinition(reg *Registry, r *objReader) MarkingDefinition {
	md := MarkingDefinition{
		Type:               r.reqStr("type"),
		SpecVersion:        r.str("spec_version"),
		ID:                 r.reqID("id"),
		CreatedByRef:       r.id("created_by_ref"),
		Created:            r.reqTS("created"),
		Name:               r.str("name"),
		DefinitionType:     r.reqStr("definition_type"),
		ExternalReferences: decodeList(r, "external_references", decodeExternalReference),
		ObjectMarkingRefs:  r.idList("object_marking_refs"),
		GranularMarkings:   decodeList(r, "granular_markings", decodeGranularMarking),
	}
	if md.DefinitionType != "" {
		dec, ok := reg.markings[md.DefinitionType]
		if !ok {
			r.iss = AppendIssues(r.iss, unknownDiscriminator(r.joinPath("definition_type"), md.DefinitionType))
		} else if raw, present := r.raw("definition"); !present {
			r.missing("definition")
		} else {
			dr, iss := newObjReader(r.joinPath("definition"), raw)
			if iss != nil {
				r.iss = AppendIssues(r.iss, iss...)
			} else {
				md.Definition = dec(dr)
				r.iss = AppendIssues(r.iss, dr.iss...)
			}
		}
	}
	md.Custom = r.rest()
	return md
}

func (md MarkingDefinition) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("type", md.Type)
	w.str("spec_version", md.SpecVersion)
	w.reqID("id", md.ID)
	w.id("created_by_ref", md.CreatedByRef)
	w.reqTS("created", md.Created)
	w.str("name", md.Name)
	w.reqStr("definition_type", md.DefinitionType)
	if md.Definition != nil {
		w.set("definition", md.Definition.EncodeValue())
	}
	encodeList(w, "external_references", md.ExternalReferences)
	w.idList("object_marking_refs", md.ObjectMarkingRefs)
	encodeList(w, "granular_markings", md.GranularMarkings)
	w.custom(md.Custom)
	return w.done()
}

// Predefined TLP marking definitions with their spec-fixed identifiers.
// Treat as read-only values.
var (
	TLPWhite = predefinedTLP("white", "613f2e26-407d-48c7-9eca-b8e91df99dc9")
	TLPGreen = predefinedTLP("green", "34098fce-860f-48ae-8e50-ebd3cc5e41da")
	TLPAmber = predefinedTLP("amber", "f88d31f6-486f-44da-b317-01333bde0b82")
	TLPRed   = predefinedTLP("red", "5e57c739-391a-4eb3-b6be-7d15ca92d5ed")
)

func predefinedTLP(level, uuid string) MarkingDefinition {
	return MarkingDefinition{
		Type:           TypeMarkingDefinition,
		SpecVersion:    DefaultSpecVersion,
		ID:             Identifier{Type: TypeMarkingDefinition, UUID: uuid},
		Created:        Timestamp("2017-01-20T00:00:00.000Z"),
		DefinitionType: DefinitionTypeTLP,
		Definition:     TLPMarking{TLP: level},
	}
}
