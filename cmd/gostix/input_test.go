package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sqooba/gostix"
	"github.com/Sqooba/gostix/internal/jsonval"
)

func TestDecodeDocumentJSONC(t *testing.T) {
	in := []byte("{\n  // kind under test\n  \"type\": \"mutex\", /* trailing */\n  \"name\": \"__lock__\",\n}\n")

	v, err := decodeDocument("doc.jsonc", in)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mutex", m["type"])
	assert.Equal(t, "__lock__", m["name"])
}

func TestDecodeDocumentYAML(t *testing.T) {
	in := []byte(`type: indicator
id: indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f
confidence: 85
valid_from: 2016-04-06T20:03:48.000Z
labels:
  - malicious-activity
revoked: false
x_acme_score: 7.5
`)

	v, err := decodeDocument("doc.yaml", in)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "indicator", m["type"])
	assert.Equal(t, jsonval.Number("85"), m["confidence"])
	assert.Equal(t, jsonval.Number("7.5"), m["x_acme_score"])
	assert.Equal(t, "2016-04-06T20:03:48.000Z", m["valid_from"])
	assert.Equal(t, []any{"malicious-activity"}, m["labels"])
	assert.Equal(t, false, m["revoked"])
}

func TestDecodeDocumentGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"name":"clean-room","type":"mutex"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	v, err := decodeDocument("doc.json.gz", buf.Bytes())
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mutex", m["type"])
	assert.Equal(t, "clean-room", m["name"])
}

func TestWriteDocumentGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json.gz")
	require.NoError(t, writeDocument(path, []byte(`{"type":"bundle"}`)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.NoError(t, zr.Close())
	assert.Equal(t, `{"type":"bundle"}`, string(got))
}

func TestWriteDocumentPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeDocument(path, []byte(`{"type":"bundle"}`)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"bundle"}`, string(raw))
}

func TestValidateValuePrefixesBundleMemberPaths(t *testing.T) {
	reg := gostix.NewRegistry()
	v, err := jsonval.Unmarshal([]byte(`{"id":"bundle--5d0092c5-5f74-4287-9642-33f4c354e56d","objects":[{"created":"2016-04-06T20:03:48.000Z","id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","modified":"2016-04-06T20:03:48.000Z","type":"indicator","valid_from":"2016-04-06T20:03:48.000Z"}],"type":"bundle"}`))
	require.NoError(t, err)

	iss := validateValue(reg, v)
	require.Len(t, iss, 1)
	assert.Equal(t, "/objects/0/pattern", iss[0].Path)
	assert.Equal(t, gostix.CodeMissingRequiredField, iss[0].Code)
}

func TestValidateValueAcceptsWellFormedDocuments(t *testing.T) {
	reg := gostix.NewRegistry()
	assert.Empty(t, validateValue(reg, gostix.TLPAmber.EncodeValue()))
	assert.Empty(t, validateValue(reg, map[string]any{
		"id":   "x-widget--f81d4fae-7dec-11d0-a765-00a0c91e6bf6",
		"type": "x-widget",
	}))
}

func TestMemberValuesFlattensBundles(t *testing.T) {
	reg := gostix.NewRegistry()
	v, err := jsonval.Unmarshal([]byte(`{"id":"bundle--5d0092c5-5f74-4287-9642-33f4c354e56d","objects":[{"id":"x-widget--f81d4fae-7dec-11d0-a765-00a0c91e6bf6","type":"x-widget"}],"type":"bundle"}`))
	require.NoError(t, err)

	members, err := memberValues(reg, v)
	require.NoError(t, err)
	require.Len(t, members, 1)
	m, ok := members[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x-widget", m["type"])

	single := map[string]any{
		"id":   "x-widget--f81d4fae-7dec-11d0-a765-00a0c91e6bf6",
		"type": "x-widget",
	}
	members, err = memberValues(reg, single)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, single, members[0])
}

func TestMemberValuesRejectsBrokenMembers(t *testing.T) {
	reg := gostix.NewRegistry()
	v, err := jsonval.Unmarshal([]byte(`{"id":"bundle--5d0092c5-5f74-4287-9642-33f4c354e56d","objects":[{"type":"x-widget"}],"type":"bundle"}`))
	require.NoError(t, err)

	_, err = memberValues(reg, v)
	require.Error(t, err)
	assert.True(t, gostix.HasCode(err, gostix.CodeMissingRequiredField))
}
