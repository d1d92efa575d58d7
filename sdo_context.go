package gostix

// Discriminators of the contextual Domain Objects.
const (
	TypeCourseOfAction  = "course-of-action"
	TypeIdentity        = "identity"
	TypeObservedData    = "observed-data"
	TypeReport          = "report"
	TypeLanguageContent = "language-content"
)

// CourseOfAction recommends an action in response to a threat.
type CourseOfAction struct {
	Core
	Name        string
	Description string
}

func NewCourseOfAction(name string, opts ...ObjectOption) CourseOfAction {
	return CourseOfAction{Core: newCore(TypeCourseOfAction, opts...), Name: name}
}

func (CourseOfAction) isDomainObject() {}

func decodeCourseOfAction(_ *Registry, r *objReader) DomainObject {
	o := CourseOfAction{
		Core:        decodeCore(r),
		Name:        r.reqStr("name"),
		Description: r.str("description"),
	}
	o.Custom = r.rest()
	return o
}

func (o CourseOfAction) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.custom(o.Custom)
	return w.done()
}

// Identity names an individual, organization, or group.
type Identity struct {
	Core
	Name               string
	Description        string
	Roles              []string
	IdentityClass      string
	Sectors            []string
	ContactInformation string
}

func NewIdentity(name string, opts ...ObjectOption) Identity {
	return Identity{Core: newCore(TypeIdentity, opts...), Name: name}
}

func (Identity) isDomainObject() {}

func decodeIdentity(_ *Registry, r *objReader) DomainObject {
	o := Identity{
		Core:               decodeCore(r),
		Name:               r.reqStr("name"),
		Description:        r.str("description"),
		Roles:              r.strList("roles"),
		IdentityClass:      r.str("identity_class"),
		Sectors:            r.strList("sectors"),
		ContactInformation: r.str("contact_information"),
	}
	o.Custom = r.rest()
	return o
}

func (o Identity) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("roles", o.Roles)
	w.str("identity_class", o.IdentityClass)
	w.strList("sectors", o.Sectors)
	w.str("contact_information", o.ContactInformation)
	w.custom(o.Custom)
	return w.done()
}

// ObservedData conveys raw cyber observables seen during a window. The
// objects map decodes eagerly through the Observable dispatch table, keyed
// by opaque local handles.
type ObservedData struct {
	Core
	FirstObserved  Timestamp
	LastObserved   Timestamp
	NumberObserved int64
	Objects        map[string]Observable
}

func NewObservedData(first, last Timestamp, numberObserved int64, objects map[string]Observable, opts ...ObjectOption) ObservedData {
	return ObservedData{
		Core:           newCore(TypeObservedData, opts...),
		FirstObserved:  first,
		LastObserved:   last,
		NumberObserved: numberObserved,
		Objects:        objects,
	}
}

func (ObservedData) isDomainObject() {}

func decodeObservedData(reg *Registry, r *objReader) DomainObject {
	o := ObservedData{
		Core:           decodeCore(r),
		FirstObserved:  r.reqTS("first_observed"),
		LastObserved:   r.reqTS("last_observed"),
		NumberObserved: r.reqInt("number_observed"),
	}
	if m := r.reqRawMap("objects"); m != nil {
		objs := make(map[string]Observable, len(m))
		for _, k := range sortedKeys(m) {
			obs, iss := reg.decodeObservableValue(r.joinPath("objects")+"/"+k, m[k])
			if iss != nil {
				r.iss = AppendIssues(r.iss, iss...)
				continue
			}
			objs[k] = obs
		}
		o.Objects = objs
	}
	o.Custom = r.rest()
	return o
}

func (o ObservedData) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqTS("first_observed", o.FirstObserved)
	w.reqTS("last_observed", o.LastObserved)
	w.int("number_observed", o.NumberObserved)
	if o.Objects != nil {
		m := make(map[string]any, len(o.Objects))
		for k, obs := range o.Objects {
			m[k] = obs.EncodeValue()
		}
		w.set("objects", m)
	}
	w.custom(o.Custom)
	return w.done()
}

// Report collects threat intelligence about a topic into one publishable
// unit referencing its member objects.
type Report struct {
	Core
	Name        string
	Description string
	ReportTypes []string
	Published   Timestamp
	ObjectRefs  []Identifier
}

func NewReport(name string, published Timestamp, objectRefs []Identifier, opts ...ObjectOption) Report {
	return Report{
		Core:       newCore(TypeReport, opts...),
		Name:       name,
		Published:  published,
		ObjectRefs: objectRefs,
	}
}

func (Report) isDomainObject() {}

func decodeReport(_ *Registry, r *objReader) DomainObject {
	o := Report{
		Core:        decodeCore(r),
		Name:        r.reqStr("name"),
		Description: r.str("description"),
		ReportTypes: r.strList("report_types"),
		Published:   r.reqTS("published"),
		ObjectRefs:  r.reqIDList("object_refs"),
	}
	o.Custom = r.rest()
	return o
}

func (o Report) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("report_types", o.ReportTypes)
	w.reqTS("published", o.Published)
	w.idList("object_refs", o.ObjectRefs)
	w.custom(o.Custom)
	return w.done()
}

// LanguageContent carries translations of another object's text fields,
// keyed by language tag.
type LanguageContent struct {
	Core
	ObjectRef      Identifier
	ObjectModified Timestamp
	Contents       map[string]map[string]any
}

func NewLanguageContent(objectRef Identifier, contents map[string]map[string]any, opts ...ObjectOption) LanguageContent {
	return LanguageContent{
		Core:      newCore(TypeLanguageContent, opts...),
		ObjectRef: objectRef,
		Contents:  contents,
	}
}

func (LanguageContent) isDomainObject() {}

func decodeLanguageContent(_ *Registry, r *objReader) DomainObject {
	o := LanguageContent{
		Core:           decodeCore(r),
		ObjectRef:      r.reqID("object_ref"),
		ObjectModified: r.ts("object_modified"),
	}
	if m := r.reqRawMap("contents"); m != nil {
		contents := make(map[string]map[string]any, len(m))
		for _, k := range sortedKeys(m) {
			inner, ok := m[k].(map[string]any)
			if !ok {
				r.mismatch(r.joinPath("contents")+"/"+k, "object")
				continue
			}
			contents[k] = inner
		}
		o.Contents = contents
	}
	o.Custom = r.rest()
	return o
}

func (o LanguageContent) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqID("object_ref", o.ObjectRef)
	w.ts("object_modified", o.ObjectModified)
	if o.Contents != nil {
		m := make(map[string]any, len(o.Contents))
		for k, inner := range o.Contents {
			m[k] = inner
		}
		w.set("contents", m)
	}
	w.custom(o.Custom)
	return w.done()
}
