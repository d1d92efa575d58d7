package gostix

// Hashes maps a hash algorithm name (for example "SHA-256") to its value.
type Hashes = map[string]string

// ExternalReference points at non-STIX intelligence about an object.
type ExternalReference struct {
	SourceName  string
	Description string
	URL         string
	Hashes      Hashes
	ExternalID  string
}

func decodeExternalReference(r *objReader) ExternalReference {
	return ExternalReference{
		SourceName:  r.reqStr("source_name"),
		Description: r.str("description"),
		URL:         r.str("url"),
		Hashes:      r.strMap("hashes"),
		ExternalID:  r.str("external_id"),
	}
}

func (e ExternalReference) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("source_name", e.SourceName)
	w.str("description", e.Description)
	w.str("url", e.URL)
	w.strMap("hashes", e.Hashes)
	w.str("external_id", e.ExternalID)
	return w.done()
}

// KillChainPhase places an object within a named kill chain.
type KillChainPhase struct {
	KillChainName string
	PhaseName     string
}

func decodeKillChainPhase(r *objReader) KillChainPhase {
	return KillChainPhase{
		KillChainName: r.reqStr("kill_chain_name"),
		PhaseName:     r.reqStr("phase_name"),
	}
}

func (k KillChainPhase) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("kill_chain_name", k.KillChainName)
	w.reqStr("phase_name", k.PhaseName)
	return w.done()
}

// GranularMarking applies a marking or language to selected portions of an
// object.
type GranularMarking struct {
	Selectors  []string
	MarkingRef Identifier
	Lang       string
}

func decodeGranularMarking(r *objReader) GranularMarking {
	return GranularMarking{
		Selectors:  r.reqStrList("selectors"),
		MarkingRef: r.reqID("marking_ref"),
		Lang:       r.str("lang"),
	}
}

func (g GranularMarking) EncodeValue() map[string]any {
	w := newObjWriter()
	w.strList("selectors", g.Selectors)
	w.reqID("marking_ref", g.MarkingRef)
	w.str("lang", g.Lang)
	return w.done()
}
