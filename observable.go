package gostix

// Observable is the closed family of cyber observables carried inside
// observed-data. Observables have no identifier of their own; within an
// observed-data object they are keyed by opaque local handles. A
// discriminator without a table entry decodes as CustomObservable.
type Observable interface {
	Encodable
	ObservableType() string
	isObservable()
}

// ObservableBase is the shape every concrete observable shares: the
// discriminator, the predefined-extension map, and the custom carrier.
type ObservableBase struct {
	Type       string
	Extensions map[string]Extension
	Custom     CustomProperties
}

func newObservable(obsType string) ObservableBase { return ObservableBase{Type: obsType} }

// ObservableType returns the discriminator carried in the type field.
func (b ObservableBase) ObservableType() string { return b.Type }

// CustomProps returns the custom-property carrier.
func (b ObservableBase) CustomProps() CustomProperties { return b.Custom }

func (ObservableBase) isObservable() {}

// decodeObservableBase consumes type and the extensions map. Extension
// payloads dispatch on their map key; the kind codec reads its own fields
// afterwards and takes r.rest() as the custom map.
func decodeObservableBase(reg *Registry, r *objReader) ObservableBase {
	b := ObservableBase{Type: r.reqStr("type")}
	if m, ok := r.rawMap("extensions"); ok {
		exts := make(map[string]Extension, len(m))
		for _, k := range sortedKeys(m) {
			ext, iss := reg.decodeExtensionValue(r.joinPath("extensions")+"/"+k, k, m[k])
			if iss != nil {
				r.iss = AppendIssues(r.iss, iss...)
				continue
			}
			exts[k] = ext
		}
		b.Extensions = exts
	}
	return b
}

// writer seeds an objWriter with the discriminator.
func (b ObservableBase) writer() *objWriter {
	w := newObjWriter()
	w.reqStr("type", b.Type)
	return w
}

// finish emits the extension map (keyed by each entry's discriminator) and
// merges the custom carrier last.
func (b ObservableBase) finish(w *objWriter) map[string]any {
	if b.Extensions != nil {
		m := make(map[string]any, len(b.Extensions))
		for k, ext := range b.Extensions {
			m[k] = ext.EncodeValue()
		}
		w.set("extensions", m)
	}
	w.custom(b.Custom)
	return w.done()
}

// CustomObservable is the Observable catch-all: only the discriminator is
// typed. Any extensions map stays verbatim inside the custom carrier since
// an unknown kind's payloads cannot be interpreted reliably.
type CustomObservable struct {
	Type   string
	Custom CustomProperties
}

// NewCustomObservable mints a CustomObservable of the given type.
func NewCustomObservable(obsType string, custom CustomProperties) CustomObservable {
	return CustomObservable{Type: obsType, Custom: custom}
}

func (o CustomObservable) ObservableType() string { return o.Type }

func (CustomObservable) isObservable() {}

func decodeCustomObservable(_ *Registry, r *objReader) Observable {
	o := CustomObservable{Type: r.reqStr("type")}
	o.Custom = r.rest()
	return o
}

func (o CustomObservable) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("type", o.Type)
	w.custom(o.Custom)
	return w.done()
}
