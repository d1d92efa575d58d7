package gostix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gostix "github.com/Sqooba/gostix"
)

// Inputs below are in canonical form (sorted keys, compact separators), so
// a faithful decode must re-encode to the identical bytes.
func TestObjectRoundTrips(t *testing.T) {
	reg := gostix.NewRegistry()
	cases := []struct {
		name string
		in   string
	}{
		{
			name: "attack-pattern",
			in:   `{"created":"2016-05-12T08:17:27.000Z","external_references":[{"external_id":"CAPEC-163","source_name":"capec"}],"id":"attack-pattern--0c7b5b88-8ff7-4a4d-aa9d-feb398cd0061","kill_chain_phases":[{"kill_chain_name":"lockheed-martin-cyber-kill-chain","phase_name":"reconnaissance"}],"modified":"2016-05-12T08:17:27.000Z","name":"Spear Phishing","spec_version":"2.1","type":"attack-pattern"}`,
		},
		{
			name: "campaign",
			in:   `{"aliases":["OLP"],"created":"2016-04-06T20:03:00.000Z","description":"Attack on automotive targets.","first_seen":"2016-02-01T00:00:00.000Z","id":"campaign--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","last_seen":"2016-06-30T00:00:00.000Z","modified":"2016-04-06T20:03:00.000Z","name":"Operation Loud Pedal","objective":"Credential theft","spec_version":"2.1","type":"campaign"}`,
		},
		{
			name: "course-of-action with marking core fields",
			in:   `{"created":"2016-04-06T20:03:48.000Z","created_by_ref":"identity--311b2d2d-f010-4473-83ec-1edf84858f4c","granular_markings":[{"marking_ref":"marking-definition--613f2e26-407d-48c7-9eca-b8e91df99dc9","selectors":["description"]}],"id":"course-of-action--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","modified":"2016-04-06T20:03:48.000Z","name":"Perimeter Blocking","object_marking_refs":["marking-definition--f88d31f6-486f-44da-b317-01333bde0b82"],"revoked":true,"spec_version":"2.1","type":"course-of-action"}`,
		},
		{
			name: "identity",
			in:   `{"contact_information":"soc@example.com","created":"2016-04-06T20:03:00.000Z","created_by_ref":"identity--311b2d2d-f010-4473-83ec-1edf84858f4c","id":"identity--311b2d2d-f010-4473-83ec-1edf84858f4c","identity_class":"organization","modified":"2016-04-06T20:03:00.000Z","name":"ACME Corp","roles":["cti-provider"],"sectors":["technology"],"spec_version":"2.1","type":"identity"}`,
		},
		{
			name: "indicator",
			in:   `{"confidence":85,"created":"2016-04-06T20:03:48.000Z","description":"C2 beacon address.","id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","indicator_types":["malicious-activity"],"kill_chain_phases":[{"kill_chain_name":"lockheed-martin-cyber-kill-chain","phase_name":"command-and-control"}],"labels":["network"],"lang":"en","modified":"2016-04-06T20:03:48.000Z","name":"Poison Ivy C2","pattern":"[ipv4-addr:value = '10.0.0.1']","pattern_type":"stix","spec_version":"2.1","type":"indicator","valid_from":"2016-04-06T20:03:48.000Z","valid_until":"2017-04-06T20:03:48.000Z"}`,
		},
		{
			name: "intrusion-set",
			in:   `{"aliases":["Zookeeper"],"created":"2016-04-06T20:03:48.000Z","first_seen":"2015-04-06T20:03:48.000Z","goals":["acquire-data"],"id":"intrusion-set--4e78f46f-a023-4e5f-bc24-71b3ca22ec29","modified":"2016-04-06T20:03:48.000Z","name":"Bobcat Breakin","primary_motivation":"organizational-gain","resource_level":"organization","secondary_motivations":["personal-satisfaction"],"spec_version":"2.1","type":"intrusion-set"}`,
		},
		{
			name: "malware",
			in:   `{"created":"2016-04-06T20:07:09.000Z","id":"malware--31b940d4-6f7f-459a-80ea-9c1f17b5891b","is_family":false,"malware_types":["remote-access-trojan"],"modified":"2016-04-06T20:07:09.000Z","name":"Poison Ivy","spec_version":"2.1","type":"malware"}`,
		},
		{
			name: "malware minimal",
			in:   `{"created":"2016-04-06T20:07:09.000Z","id":"malware--31b940d4-6f7f-459a-80ea-9c1f17b5891b","name":"Poison Ivy","type":"malware"}`,
		},
		{
			name: "observed-data with nested observables",
			in:   `{"created":"2016-04-06T19:58:16.000Z","first_observed":"2015-12-21T19:00:00.000Z","id":"observed-data--b67d30ff-02ac-498a-92f9-32f845f448cf","last_observed":"2015-12-21T19:00:00.000Z","modified":"2016-04-06T19:58:16.000Z","number_observed":50,"objects":{"0":{"hashes":{"SHA-256":"ef537f25c895bfa782526529a9b63d97aa631564d5d789c2b765448c8635fb6c"},"name":"evil.exe","type":"file"},"1":{"type":"ipv4-addr","value":"198.51.100.3"}},"spec_version":"2.1","type":"observed-data"}`,
		},
		{
			name: "report",
			in:   `{"created":"2015-12-21T19:59:11.000Z","id":"report--84e4d88f-44ea-4bcd-bbf3-b2c1c320bcb3","modified":"2015-12-21T19:59:11.000Z","name":"The Black Vine Cyberespionage Group","object_refs":["indicator--26ffb872-1dd9-446e-b6f5-d58527e5b5d2"],"published":"2016-01-20T17:00:00.000Z","report_types":["campaign"],"spec_version":"2.1","type":"report"}`,
		},
		{
			name: "threat-actor",
			in:   `{"aliases":["Viridian Shade"],"created":"2016-04-06T20:03:48.000Z","goals":["steal-credentials"],"id":"threat-actor--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","modified":"2016-04-06T20:03:48.000Z","name":"Evil Org","primary_motivation":"personal-gain","resource_level":"team","roles":["director"],"sophistication":"advanced","spec_version":"2.1","threat_actor_types":["crime-syndicate"],"type":"threat-actor"}`,
		},
		{
			name: "tool",
			in:   `{"created":"2016-04-06T20:03:48.000Z","id":"tool--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","kill_chain_phases":[{"kill_chain_name":"lockheed-martin-cyber-kill-chain","phase_name":"exploitation"}],"modified":"2016-04-06T20:03:48.000Z","name":"VNC","spec_version":"2.1","tool_types":["remote-access"],"tool_version":"6.0.3","type":"tool"}`,
		},
		{
			name: "vulnerability",
			in:   `{"created":"2016-05-12T08:17:27.000Z","external_references":[{"external_id":"CVE-2016-1234","source_name":"cve"}],"id":"vulnerability--0c7b5b88-8ff7-4a4d-aa9d-feb398cd0061","modified":"2016-05-12T08:17:27.000Z","name":"CVE-2016-1234","spec_version":"2.1","type":"vulnerability"}`,
		},
		{
			name: "language-content",
			in:   `{"contents":{"de":{"name":"Banküberfall"},"fr":{"name":"Braquage de banque"}},"created":"2017-02-08T21:31:22.007Z","id":"language-content--b86bd89f-98bb-4fa9-8cb2-9ad421da981d","modified":"2017-02-08T21:31:22.007Z","object_modified":"2017-02-08T21:31:22.007Z","object_ref":"campaign--12a111f0-b824-4baf-a224-83b80237a094","spec_version":"2.1","type":"language-content"}`,
		},
		{
			name: "relationship",
			in:   `{"created":"2016-04-06T20:06:37.000Z","description":"Indicator flags the beacon.","id":"relationship--44298a74-ba52-4f0c-87a3-1824e67d7fad","modified":"2016-04-06T20:06:37.000Z","relationship_type":"indicates","source_ref":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","start_time":"2016-04-06T20:06:37.000Z","stop_time":"2016-07-12T08:17:27.000Z","target_ref":"malware--31b940d4-6f7f-459a-80ea-9c1f17b5891b","type":"relationship"}`,
		},
		{
			name: "sighting",
			in:   `{"count":50,"created":"2016-04-06T20:08:31.000Z","first_seen":"2015-12-21T19:00:00.000Z","id":"sighting--ee20065d-2555-424f-ad9e-0f8428623c75","last_seen":"2015-12-21T19:00:00.000Z","modified":"2016-04-06T20:08:31.000Z","observed_data_refs":["observed-data--b67d30ff-02ac-498a-92f9-32f845f448cf"],"sighting_of_ref":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","spec_version":"2.1","summary":true,"type":"sighting","where_sighted_refs":["identity--b67d30ff-02ac-498a-92f9-32f845f448cf"]}`,
		},
		{
			name: "sighting minimal",
			in:   `{"created":"2016-04-06T20:08:31.000Z","id":"sighting--ee20065d-2555-424f-ad9e-0f8428623c75","modified":"2016-04-06T20:08:31.000Z","sighting_of_ref":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","spec_version":"2.1","type":"sighting"}`,
		},
		{
			name: "marking-definition tlp",
			in:   `{"created":"2017-01-20T00:00:00.000Z","definition":{"tlp":"amber"},"definition_type":"tlp","id":"marking-definition--f88d31f6-486f-44da-b317-01333bde0b82","spec_version":"2.1","type":"marking-definition"}`,
		},
		{
			name: "marking-definition statement",
			in:   `{"created":"2016-08-01T00:00:00.000Z","definition":{"statement":"Copyright 2019, Example Corp"},"definition_type":"statement","id":"marking-definition--089a6ecb-24b8-4c48-9f6f-f0c44d00a927","spec_version":"2.1","type":"marking-definition"}`,
		},
		{
			name: "custom object",
			in:   `{"id":"x-widget--f81d4fae-7dec-11d0-a765-00a0c91e6bf6","name":"thing","payload":{"a":[1,2.5,"x"],"b":null},"type":"x-widget"}`,
		},
		{
			name: "indicator with custom properties",
			in:   `{"created":"2016-04-06T20:03:48.000Z","id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","modified":"2016-04-06T20:03:48.000Z","pattern":"[domain-name:value = 'bad.example.com']","type":"indicator","valid_from":"2016-04-06T20:03:48.000Z","x_acme_confidence_basis":{"analyst":"jdoe","scores":[1e3,2.50]},"x_acme_org_id":7}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obj, err := reg.Object([]byte(tc.in))
			require.NoError(t, err)

			out, err := gostix.Marshal(obj)
			require.NoError(t, err)
			assert.Equal(t, tc.in, string(out))

			again, err := gostix.Marshal(obj)
			require.NoError(t, err)
			assert.Equal(t, string(out), string(again), "encoding must be deterministic")
		})
	}
}

// Optional fields set to null behave as absent: the decoded object drops
// them on re-encode. Empty lists are kept, they are present values.
func TestOptionalNullsAreDroppedOnReencode(t *testing.T) {
	reg := gostix.NewRegistry()
	in := `{"created":"2016-04-06T20:03:48.000Z","description":null,"id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","labels":[],"modified":"2016-04-06T20:03:48.000Z","name":null,"pattern":"[ipv4-addr:value = '10.0.0.1']","type":"indicator","valid_from":"2016-04-06T20:03:48.000Z","valid_until":null}`
	want := `{"created":"2016-04-06T20:03:48.000Z","id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","labels":[],"modified":"2016-04-06T20:03:48.000Z","pattern":"[ipv4-addr:value = '10.0.0.1']","type":"indicator","valid_from":"2016-04-06T20:03:48.000Z"}`

	obj, err := reg.Object([]byte(in))
	require.NoError(t, err)

	out, err := gostix.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, want, string(out))
}

func TestRequiredFieldRejectsNull(t *testing.T) {
	reg := gostix.NewRegistry()
	in := `{"created":"2016-04-06T20:03:48.000Z","id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","modified":"2016-04-06T20:03:48.000Z","pattern":null,"type":"indicator","valid_from":"2016-04-06T20:03:48.000Z"}`

	_, err := reg.Object([]byte(in))
	require.Error(t, err)
	assert.True(t, gostix.HasCode(err, gostix.CodeFieldTypeMismatch))

	iss, ok := gostix.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/pattern", iss[0].Path)
}

func TestObservedData_NestedObservablesAreTyped(t *testing.T) {
	reg := gostix.NewRegistry()
	in := `{"created":"2016-04-06T19:58:16.000Z","first_observed":"2015-12-21T19:00:00.000Z","id":"observed-data--b67d30ff-02ac-498a-92f9-32f845f448cf","last_observed":"2015-12-21T19:00:00.000Z","modified":"2016-04-06T19:58:16.000Z","number_observed":50,"objects":{"0":{"name":"evil.exe","type":"file"},"1":{"type":"x-sensor","weight":3}},"spec_version":"2.1","type":"observed-data"}`

	obj, err := reg.Object([]byte(in))
	require.NoError(t, err)
	od, ok := obj.(gostix.ObservedData)
	require.True(t, ok, "got %T", obj)

	f, ok := od.Objects["0"].(gostix.File)
	require.True(t, ok, "got %T", od.Objects["0"])
	assert.Equal(t, "evil.exe", f.Name)

	if _, ok := od.Objects["1"].(gostix.CustomObservable); !ok {
		t.Fatalf("unknown kinds inside objects must decode as CustomObservable, got %T", od.Objects["1"])
	}
}

func TestObservedData_NestedIssuePaths(t *testing.T) {
	reg := gostix.NewRegistry()
	in := `{"created":"2016-04-06T19:58:16.000Z","first_observed":"2015-12-21T19:00:00.000Z","id":"observed-data--b67d30ff-02ac-498a-92f9-32f845f448cf","last_observed":"2015-12-21T19:00:00.000Z","modified":"2016-04-06T19:58:16.000Z","number_observed":50,"objects":{"0":{"type":"domain-name"}},"spec_version":"2.1","type":"observed-data"}`

	_, err := reg.Object([]byte(in))
	require.Error(t, err)
	iss, ok := gostix.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/objects/0/value", iss[0].Path)
	assert.Equal(t, gostix.CodeMissingRequiredField, iss[0].Code)
}
