package gostix

// DefaultSpecVersion is the spec_version constructors stamp on new objects.
const DefaultSpecVersion = "2.1"

// Object is satisfied by every top-level STIX object the engine handles:
// Domain Objects, Relationship Objects, Marking Definitions, and Bundles.
type Object interface {
	Encodable
	ObjectType() string
	ObjectID() Identifier
}

// ObjectOption adjusts the common fields at construction time. Constructors
// default id, created, modified, and spec_version; options pin them to
// explicit values, which keeps decode pure while making construction-time
// generation explicit and overridable.
type ObjectOption func(*Core)

// WithID pins the identifier instead of generating a random one.
func WithID(id Identifier) ObjectOption {
	return func(c *Core) { c.ID = id }
}

// WithSpecVersion overrides the default "2.1" tag.
func WithSpecVersion(v string) ObjectOption {
	return func(c *Core) { c.SpecVersion = v }
}

// WithTimestamps pins created and modified instead of sampling the clock.
func WithTimestamps(created, modified Timestamp) ObjectOption {
	return func(c *Core) {
		c.Created = created
		c.Modified = modified
	}
}

// WithCreatedByRef records the creating identity.
func WithCreatedByRef(id Identifier) ObjectOption {
	return func(c *Core) { c.CreatedByRef = id }
}

// WithRevoked sets the revoked flag.
func WithRevoked(revoked bool) ObjectOption {
	return func(c *Core) { c.Revoked = &revoked }
}

// WithLabels sets the label list.
func WithLabels(labels ...string) ObjectOption {
	return func(c *Core) { c.Labels = labels }
}

// WithConfidence sets the confidence score.
func WithConfidence(n int64) ObjectOption {
	return func(c *Core) { c.Confidence = &n }
}

// WithLang sets the text-content language tag.
func WithLang(lang string) ObjectOption {
	return func(c *Core) { c.Lang = lang }
}

// WithExternalReferences sets the external reference list.
func WithExternalReferences(refs ...ExternalReference) ObjectOption {
	return func(c *Core) { c.ExternalReferences = refs }
}

// WithObjectMarkingRefs sets the coarse marking references.
func WithObjectMarkingRefs(ids ...Identifier) ObjectOption {
	return func(c *Core) { c.ObjectMarkingRefs = ids }
}

// WithGranularMarkings sets the granular marking list.
func WithGranularMarkings(gs ...GranularMarking) ObjectOption {
	return func(c *Core) { c.GranularMarkings = gs }
}

// WithCustomProperties attaches custom properties at construction time.
func WithCustomProperties(c CustomProperties) ObjectOption {
	return func(core *Core) { core.Custom = c }
}

// newCore builds the common shape for objType: fresh random id, current
// instant for both timestamps, default spec_version. Options applied in
// order.
func newCore(objType string, opts ...ObjectOption) Core {
	now := Now()
	c := Core{
		Type:        objType,
		SpecVersion: DefaultSpecVersion,
		ID:          NewIdentifier(objType),
		Created:     now,
		Modified:    now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
