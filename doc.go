package gostix

// Package gostix provides:
//
// - Typed STIX 2.1 objects for the domain, relationship, observable, marking and extension families
// - A Registry that dispatches raw JSON to per-kind codecs by discriminator (Object/DomainObject/Observable/...)
// - A stable error model via Issues (JSON Pointer, code, message)
// - Bit-faithful round-trips: unknown properties, numeric literals and timestamp strings survive decode/encode
// - A Bundle envelope whose member objects stay raw for lossless transport
//
// Design policy:
// - Keep only public APIs in the root package; put value-tree plumbing under internal/.
// - Place message translation under i18n/ and the CLI under cmd/gostix.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  reg := gostix.NewRegistry()
//  obj, err := reg.Object(data)
//
//  ind := gostix.NewIndicator("[ipv4-addr:value = '10.0.0.1']", gostix.Now())
//  wire, err := gostix.Marshal(ind)
//
//  b, err := reg.Bundle(data)
//  out, err := gostix.Marshal(gostix.NewBundle(ind))
//
