package gostix

// Discriminators of the Relationship Objects.
const (
	TypeRelationship = "relationship"
	TypeSighting     = "sighting"
)

// RelationshipObject is the closed family of STIX Relationship Objects.
// Unlike the SDO family there is no catch-all: an unknown discriminator
// fails with unknown_discriminator.
type RelationshipObject interface {
	Object
	isRelationshipObject()
}

// Relationship is the edge linking two objects by a named verb.
type Relationship struct {
	Core
	RelationshipType string
	Description      string
	SourceRef        Identifier
	TargetRef        Identifier
	StartTime        Timestamp
	StopTime         Timestamp
}

func NewRelationship(relationshipType string, sourceRef, targetRef Identifier, opts ...ObjectOption) Relationship {
	return Relationship{
		Core:             newCore(TypeRelationship, opts...),
		RelationshipType: relationshipType,
		SourceRef:        sourceRef,
		TargetRef:        targetRef,
	}
}

func (Relationship) isRelationshipObject() {}

func decodeRelationship(_ *Registry, r *objReader) RelationshipObject {
	o := Relationship{
		Core:             decodeCore(r),
		RelationshipType: r.reqStr("relationship_type"),
		Description:      r.str("description"),
		SourceRef:        r.reqID("source_ref"),
		TargetRef:        r.reqID("target_ref"),
		StartTime:        r.ts("start_time"),
		StopTime:         r.ts("stop_time"),
	}
	o.Custom = r.rest()
	return o
}

func (o Relationship) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("relationship_type", o.RelationshipType)
	w.str("description", o.Description)
	w.reqID("source_ref", o.SourceRef)
	w.reqID("target_ref", o.TargetRef)
	w.ts("start_time", o.StartTime)
	w.ts("stop_time", o.StopTime)
	w.custom(o.Custom)
	return w.done()
}

// Sighting records that an object was believed seen, optionally pointing at
// the observed data backing the belief.
type Sighting struct {
	Core
	Description      string
	FirstSeen        Timestamp
	LastSeen         Timestamp
	Count            *int64
	SightingOfRef    Identifier
	ObservedDataRefs []Identifier
	WhereSightedRefs []Identifier
	Summary          *bool
}

func NewSighting(sightingOfRef Identifier, opts ...ObjectOption) Sighting {
	return Sighting{
		Core:          newCore(TypeSighting, opts...),
		SightingOfRef: sightingOfRef,
	}
}

func (Sighting) isRelationshipObject() {}

func decodeSighting(_ *Registry, r *objReader) RelationshipObject {
	o := Sighting{
		Core:             decodeCore(r),
		Description:      r.str("description"),
		FirstSeen:        r.ts("first_seen"),
		LastSeen:         r.ts("last_seen"),
		Count:            r.optInt("count"),
		SightingOfRef:    r.reqID("sighting_of_ref"),
		ObservedDataRefs: r.idList("observed_data_refs"),
		WhereSightedRefs: r.idList("where_sighted_refs"),
		Summary:          r.optBool("summary"),
	}
	o.Custom = r.rest()
	return o
}

func (o Sighting) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.str("description", o.Description)
	w.ts("first_seen", o.FirstSeen)
	w.ts("last_seen", o.LastSeen)
	w.intPtr("count", o.Count)
	w.reqID("sighting_of_ref", o.SightingOfRef)
	w.idList("observed_data_refs", o.ObservedDataRefs)
	w.idList("where_sighted_refs", o.WhereSightedRefs)
	w.boolPtr("summary", o.Summary)
	w.custom(o.Custom)
	return w.done()
}
