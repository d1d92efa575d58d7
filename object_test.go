package gostix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gostix "github.com/Sqooba/gostix"
)

func TestConstructorDefaults(t *testing.T) {
	ind := gostix.NewIndicator("[ipv4-addr:value = '10.0.0.1']", gostix.Timestamp("2016-04-06T20:03:48.000Z"))

	assert.Equal(t, "indicator", ind.Type)
	assert.Equal(t, gostix.DefaultSpecVersion, ind.SpecVersion)
	assert.Equal(t, "indicator", ind.ID.Type)
	assert.NotEmpty(t, ind.ID.UUID)
	assert.False(t, ind.Created.IsZero())
	assert.Equal(t, ind.Created, ind.Modified)
	assert.Equal(t, "[ipv4-addr:value = '10.0.0.1']", ind.Pattern)
	assert.Equal(t, gostix.Timestamp("2016-04-06T20:03:48.000Z"), ind.ValidFrom)

	other := gostix.NewIndicator("[ipv4-addr:value = '10.0.0.2']", gostix.Now())
	assert.NotEqual(t, ind.ID, other.ID, "fresh objects must get fresh identifiers")
}

func TestObjectOptionsPinCoreFields(t *testing.T) {
	id := gostix.MustParseIdentifier("malware--31b940d4-6f7f-459a-80ea-9c1f17b5891b")
	created := gostix.Timestamp("2016-04-06T20:07:09.000Z")

	m := gostix.NewMalware("Poison Ivy",
		gostix.WithID(id),
		gostix.WithTimestamps(created, created),
		gostix.WithLabels("remote-access"),
		gostix.WithConfidence(85),
		gostix.WithLang("en"),
		gostix.WithRevoked(false),
	)

	out, err := gostix.Marshal(m)
	require.NoError(t, err)
	want := `{"confidence":85,"created":"2016-04-06T20:07:09.000Z","id":"malware--31b940d4-6f7f-459a-80ea-9c1f17b5891b","labels":["remote-access"],"lang":"en","modified":"2016-04-06T20:07:09.000Z","name":"Poison Ivy","revoked":false,"spec_version":"2.1","type":"malware"}`
	assert.Equal(t, want, string(out))
}

func TestWithCustomPropertiesSurviveEncode(t *testing.T) {
	id := gostix.MustParseIdentifier("tool--c9c86e0f-47e9-4c4e-9bd6-6f5d58fbe9c2")
	created := gostix.Timestamp("2016-04-06T20:03:48.000Z")

	tool := gostix.NewTool("VNC",
		gostix.WithID(id),
		gostix.WithTimestamps(created, created),
		gostix.WithCustomProperties(gostix.CustomProperties{"x_acme_rating": "low"}),
	)
	out, err := gostix.Marshal(tool)
	require.NoError(t, err)
	want := `{"created":"2016-04-06T20:03:48.000Z","id":"tool--c9c86e0f-47e9-4c4e-9bd6-6f5d58fbe9c2","modified":"2016-04-06T20:03:48.000Z","name":"VNC","spec_version":"2.1","type":"tool","x_acme_rating":"low"}`
	assert.Equal(t, want, string(out))
}

// A custom property whose key collides with a schema field never
// overwrites the typed value.
func TestCustomPropertiesNeverShadowSchemaFields(t *testing.T) {
	id := gostix.MustParseIdentifier("tool--c9c86e0f-47e9-4c4e-9bd6-6f5d58fbe9c2")
	created := gostix.Timestamp("2016-04-06T20:03:48.000Z")

	tool := gostix.NewTool("VNC",
		gostix.WithID(id),
		gostix.WithTimestamps(created, created),
		gostix.WithCustomProperties(gostix.CustomProperties{"name": "shadow"}),
	)
	out, err := gostix.Marshal(tool)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name":"VNC"`)
	assert.NotContains(t, string(out), "shadow")
}

func TestNewObservedDataEncodesNestedObservables(t *testing.T) {
	id := gostix.MustParseIdentifier("observed-data--b67d30ff-02ac-498a-92f9-32f845f448cf")
	at := gostix.Timestamp("2015-12-21T19:00:00.000Z")

	ip := gostix.NewIPv4Address("198.51.100.3")
	od := gostix.NewObservedData(at, at, 1, map[string]gostix.Observable{"0": ip},
		gostix.WithID(id),
		gostix.WithTimestamps(at, at),
	)

	out, err := gostix.Marshal(od)
	require.NoError(t, err)
	want := `{"created":"2015-12-21T19:00:00.000Z","first_observed":"2015-12-21T19:00:00.000Z","id":"observed-data--b67d30ff-02ac-498a-92f9-32f845f448cf","last_observed":"2015-12-21T19:00:00.000Z","modified":"2015-12-21T19:00:00.000Z","number_observed":1,"objects":{"0":{"type":"ipv4-addr","value":"198.51.100.3"}},"spec_version":"2.1","type":"observed-data"}`
	assert.Equal(t, want, string(out))
}

func TestNewRelationshipAndSighting(t *testing.T) {
	src := gostix.MustParseIdentifier("indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f")
	dst := gostix.MustParseIdentifier("malware--31b940d4-6f7f-459a-80ea-9c1f17b5891b")

	rel := gostix.NewRelationship("indicates", src, dst)
	assert.Equal(t, "relationship", rel.Type)
	assert.Equal(t, "indicates", rel.RelationshipType)
	assert.Equal(t, src, rel.SourceRef)
	assert.Equal(t, dst, rel.TargetRef)
	assert.True(t, strings.HasPrefix(rel.ID.String(), "relationship--"))

	s := gostix.NewSighting(src)
	assert.Equal(t, "sighting", s.Type)
	assert.Equal(t, src, s.SightingOfRef)
	assert.Nil(t, s.Count)
}

func TestNewMarkingDefinition(t *testing.T) {
	md := gostix.NewMarkingDefinition(gostix.StatementMarking{Statement: "internal use only"})

	assert.Equal(t, "marking-definition", md.Type)
	assert.Equal(t, "statement", md.DefinitionType)
	assert.True(t, strings.HasPrefix(md.ID.String(), "marking-definition--"))

	out, err := gostix.Marshal(md)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"definition":{"statement":"internal use only"}`)
	assert.Contains(t, string(out), `"definition_type":"statement"`)
}

func TestCustomObjectConstructor(t *testing.T) {
	co := gostix.NewCustomObject("x-widget", gostix.CustomProperties{"weight": "heavy"})

	assert.Equal(t, "x-widget", co.ObjectType())
	assert.Equal(t, "x-widget", co.ObjectID().Type)

	out, err := gostix.Marshal(co)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"weight":"heavy"`)
	assert.Contains(t, string(out), `"type":"x-widget"`)
}
