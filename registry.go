package gostix

import "github.com/Sqooba/gostix/i18n"

// Per-family decoder shapes. Decoders receive the Registry so nested
// dispatch (observables inside observed-data, extensions inside
// observables) reuses the same tables.
type (
	domainDecoder       func(*Registry, *objReader) DomainObject
	relationshipDecoder func(*Registry, *objReader) RelationshipObject
	observableDecoder   func(*Registry, *objReader) Observable
	markingDecoder      func(*objReader) MarkingObject
	extensionDecoder    func(*objReader) Extension
)

// Registry resolves discriminators to per-kind codecs. Build one with
// NewRegistry and pass it explicitly to decode entry points; there is no
// hidden global table. Matching is case-sensitive exact string equality. A
// Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	domains       map[string]domainDecoder
	relationships map[string]relationshipDecoder
	observables   map[string]observableDecoder
	markings      map[string]markingDecoder
	extensions    map[string]extensionDecoder
}

// NewRegistry builds the dispatch tables covering every kind in this
// package.
func NewRegistry() *Registry {
	return &Registry{
		domains: map[string]domainDecoder{
			TypeAttackPattern:   decodeAttackPattern,
			TypeCampaign:        decodeCampaign,
			TypeCourseOfAction:  decodeCourseOfAction,
			TypeIdentity:        decodeIdentity,
			TypeIndicator:       decodeIndicator,
			TypeIntrusionSet:    decodeIntrusionSet,
			TypeMalware:         decodeMalware,
			TypeObservedData:    decodeObservedData,
			TypeReport:          decodeReport,
			TypeThreatActor:     decodeThreatActor,
			TypeTool:            decodeTool,
			TypeVulnerability:   decodeVulnerability,
			TypeLanguageContent: decodeLanguageContent,
		},
		relationships: map[string]relationshipDecoder{
			TypeRelationship: decodeRelationship,
			TypeSighting:     decodeSighting,
		},
		observables: map[string]observableDecoder{
			TypeArtifact:           decodeArtifact,
			TypeAutonomousSystem:   decodeAutonomousSystem,
			TypeDirectory:          decodeDirectory,
			TypeDomainName:         decodeDomainName,
			TypeEmailAddress:       decodeEmailAddress,
			TypeEmailMessage:       decodeEmailMessage,
			TypeFile:               decodeFile,
			TypeIPv4Address:        decodeIPv4Address,
			TypeIPv6Address:        decodeIPv6Address,
			TypeMACAddress:         decodeMACAddress,
			TypeMutex:              decodeMutex,
			TypeNetworkTraffic:     decodeNetworkTraffic,
			TypeProcess:            decodeProcess,
			TypeSoftware:           decodeSoftware,
			TypeURL:                decodeURL,
			TypeUserAccount:        decodeUserAccount,
			TypeWindowsRegistryKey: decodeWindowsRegistryKey,
			TypeX509Certificate:    decodeX509Certificate,
		},
		markings: map[string]markingDecoder{
			DefinitionTypeTLP:       decodeTLPMarking,
			DefinitionTypeStatement: decodeStatementMarking,
		},
		extensions: map[string]extensionDecoder{
			ExtArchive:          decodeArchiveExt,
			ExtNTFS:             decodeNTFSExt,
			ExtPDF:              decodePDFExt,
			ExtRasterImage:      decodeRasterImageExt,
			ExtWindowsPEBinary:  decodeWindowsPEBinaryExt,
			ExtHTTPRequest:      decodeHTTPRequestExt,
			ExtICMP:             decodeICMPExt,
			ExtSocket:           decodeSocketExt,
			ExtTCP:              decodeTCPExt,
			ExtWindowsProcess:   decodeWindowsProcessExt,
			ExtWindowsService:   decodeWindowsServiceExt,
			ExtUNIXAccount:      decodeUNIXAccountExt,
			ExtX509V3Extensions: decodeX509V3Extensions,
		},
	}
}

func unknownDiscriminator(path, value string) Issue {
	return Issue{
		Path:    path,
		Code:    CodeUnknownDiscriminator,
		Message: i18n.T(CodeUnknownDiscriminator, nil),
		Hint:    value,
		Params:  map[string]any{"discriminator": value},
	}
}

// DomainObject decodes one Domain Object from raw JSON bytes.
func (reg *Registry) DomainObject(data []byte) (DomainObject, error) {
	v, iss := parseValue(data)
	if iss != nil {
		return nil, iss
	}
	return reg.DomainObjectValue(v)
}

// DomainObjectValue decodes one Domain Object from a parsed value tree.
// Discriminators outside the table decode as CustomObject.
func (reg *Registry) DomainObjectValue(v any) (DomainObject, error) {
	disc, m, iss := discriminatorOf(v)
	if iss != nil {
		return nil, iss
	}
	dec, ok := reg.domains[disc]
	if !ok {
		dec = decodeCustomObject
	}
	r, iss := newObjReader("", m)
	if iss != nil {
		return nil, iss
	}
	obj := dec(reg, r)
	if err := r.err(); err != nil {
		return nil, err
	}
	return obj, nil
}

// RelationshipObject decodes one Relationship Object from raw JSON bytes.
func (reg *Registry) RelationshipObject(data []byte) (RelationshipObject, error) {
	v, iss := parseValue(data)
	if iss != nil {
		return nil, iss
	}
	return reg.RelationshipObjectValue(v)
}

// RelationshipObjectValue decodes one Relationship Object from a parsed
// value tree. The family has no catch-all.
func (reg *Registry) RelationshipObjectValue(v any) (RelationshipObject, error) {
	disc, m, iss := discriminatorOf(v)
	if iss != nil {
		return nil, iss
	}
	dec, ok := reg.relationships[disc]
	if !ok {
		return nil, Issues{unknownDiscriminator("/type", disc)}
	}
	r, iss := newObjReader("", m)
	if iss != nil {
		return nil, iss
	}
	obj := dec(reg, r)
	if err := r.err(); err != nil {
		return nil, err
	}
	return obj, nil
}

// Observable decodes one cyber observable from raw JSON bytes.
func (reg *Registry) Observable(data []byte) (Observable, error) {
	v, iss := parseValue(data)
	if iss != nil {
		return nil, iss
	}
	return reg.ObservableValue(v)
}

// ObservableValue decodes one cyber observable from a parsed value tree.
// Discriminators outside the table decode as CustomObservable.
func (reg *Registry) ObservableValue(v any) (Observable, error) {
	obs, iss := reg.decodeObservableValue("", v)
	if iss != nil {
		return nil, iss
	}
	return obs, nil
}

// decodeObservableValue decodes one observable rooted at path inside an
// enclosing document.
func (reg *Registry) decodeObservableValue(path string, v any) (Observable, Issues) {
	disc, m, iss := discriminatorOf(v)
	if iss != nil {
		return nil, rebase(iss, path)
	}
	dec, ok := reg.observables[disc]
	if !ok {
		dec = decodeCustomObservable
	}
	r, iss := newObjReader(path, m)
	if iss != nil {
		return nil, iss
	}
	obs := dec(reg, r)
	if len(r.iss) > 0 {
		return nil, r.iss
	}
	return obs, nil
}

// MarkingDefinition decodes one marking-definition from raw JSON bytes.
func (reg *Registry) MarkingDefinition(data []byte) (MarkingDefinition, error) {
	v, iss := parseValue(data)
	if iss != nil {
		return MarkingDefinition{}, iss
	}
	return reg.MarkingDefinitionValue(v)
}

// MarkingDefinitionValue decodes one marking-definition from a parsed value
// tree. The payload dispatches on definition_type; that family has no
// catch-all.
func (reg *Registry) MarkingDefinitionValue(v any) (MarkingDefinition, error) {
	disc, m, iss := discriminatorOf(v)
	if iss != nil {
		return MarkingDefinition{}, iss
	}
	if disc != TypeMarkingDefinition {
		return MarkingDefinition{}, Issues{unknownDiscriminator("/type", disc)}
	}
	r, iss := newObjReader("", m)
	if iss != nil {
		return MarkingDefinition{}, iss
	}
	md := decodeMarkingDefinition(reg, r)
	if err := r.err(); err != nil {
		return MarkingDefinition{}, err
	}
	return md, nil
}

// MarkingObject decodes a bare marking payload for the given
// definition_type.
func (reg *Registry) MarkingObject(definitionType string, v any) (MarkingObject, error) {
	dec, ok := reg.markings[definitionType]
	if !ok {
		return nil, Issues{unknownDiscriminator("/definition_type", definitionType)}
	}
	r, iss := newObjReader("", v)
	if iss != nil {
		return nil, iss
	}
	mo := dec(r)
	if err := r.err(); err != nil {
		return nil, err
	}
	return mo, nil
}

// Extension decodes a bare extension payload for the given extensions-map
// key. Unknown keys fail; there is no decode-side CustomExtension.
func (reg *Registry) Extension(key string, v any) (Extension, error) {
	ext, iss := reg.decodeExtensionValue("", key, v)
	if iss != nil {
		return nil, iss
	}
	return ext, nil
}

// decodeExtensionValue decodes one extension payload rooted at path inside
// an enclosing document.
func (reg *Registry) decodeExtensionValue(path, key string, v any) (Extension, Issues) {
	dec, ok := reg.extensions[key]
	if !ok {
		return nil, Issues{unknownDiscriminator(pathOrRoot(path), key)}
	}
	r, iss := newObjReader(path, v)
	if iss != nil {
		return nil, iss
	}
	ext := dec(r)
	if len(r.iss) > 0 {
		return nil, r.iss
	}
	return ext, nil
}

// Bundle decodes one transport envelope from raw JSON bytes.
func (reg *Registry) Bundle(data []byte) (Bundle, error) {
	v, iss := parseValue(data)
	if iss != nil {
		return Bundle{}, iss
	}
	return reg.BundleValue(v)
}

// BundleValue decodes one transport envelope from a parsed value tree.
// Member objects stay raw.
func (reg *Registry) BundleValue(v any) (Bundle, error) {
	disc, m, iss := discriminatorOf(v)
	if iss != nil {
		return Bundle{}, iss
	}
	if disc != TypeBundle {
		return Bundle{}, Issues{unknownDiscriminator("/type", disc)}
	}
	r, iss := newObjReader("", m)
	if iss != nil {
		return Bundle{}, iss
	}
	b := decodeBundle(r)
	if err := r.err(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// Object decodes any top-level object from raw JSON bytes.
func (reg *Registry) Object(data []byte) (Object, error) {
	v, iss := parseValue(data)
	if iss != nil {
		return nil, iss
	}
	return reg.ObjectValue(v)
}

// ObjectValue decodes any top-level object: bundle, marking-definition,
// relationship-family, or domain-family (whose catch-all absorbs every
// remaining discriminator). Observables are not top-level; they arrive
// inside observed-data or through Observable.
func (reg *Registry) ObjectValue(v any) (Object, error) {
	disc, _, iss := discriminatorOf(v)
	if iss != nil {
		return nil, iss
	}
	switch {
	case disc == TypeBundle:
		b, err := reg.BundleValue(v)
		if err != nil {
			return nil, err
		}
		return b, nil
	case disc == TypeMarkingDefinition:
		md, err := reg.MarkingDefinitionValue(v)
		if err != nil {
			return nil, err
		}
		return md, nil
	case reg.relationships[disc] != nil:
		return reg.RelationshipObjectValue(v)
	default:
		return reg.DomainObjectValue(v)
	}
}
