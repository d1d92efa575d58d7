package gostix

// Discriminators of the threat-descriptive Domain Objects.
const (
	TypeAttackPattern = "attack-pattern"
	TypeCampaign      = "campaign"
	TypeIndicator     = "indicator"
	TypeIntrusionSet  = "intrusion-set"
	TypeMalware       = "malware"
	TypeThreatActor   = "threat-actor"
	TypeTool          = "tool"
	TypeVulnerability = "vulnerability"
)

// AttackPattern describes a way adversaries attempt to compromise targets.
type AttackPattern struct {
	Core
	Name            string
	Description     string
	Aliases         []string
	KillChainPhases []KillChainPhase
}

func NewAttackPattern(name string, opts ...ObjectOption) AttackPattern {
	return AttackPattern{Core: newCore(TypeAttackPattern, opts...), Name: name}
}

func (AttackPattern) isDomainObject() {}

func decodeAttackPattern(_ *Registry, r *objReader) DomainObject {
	o := AttackPattern{
		Core:            decodeCore(r),
		Name:            r.reqStr("name"),
		Description:     r.str("description"),
		Aliases:         r.strList("aliases"),
		KillChainPhases: decodeList(r, "kill_chain_phases", decodeKillChainPhase),
	}
	o.Custom = r.rest()
	return o
}

func (o AttackPattern) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("aliases", o.Aliases)
	encodeList(w, "kill_chain_phases", o.KillChainPhases)
	w.custom(o.Custom)
	return w.done()
}

// Campaign groups adversarial behaviors over time against specific targets.
type Campaign struct {
	Core
	Name        string
	Description string
	Aliases     []string
	FirstSeen   Timestamp
	LastSeen    Timestamp
	Objective   string
}

func NewCampaign(name string, opts ...ObjectOption) Campaign {
	return Campaign{Core: newCore(TypeCampaign, opts...), Name: name}
}

func (Campaign) isDomainObject() {}

func decodeCampaign(_ *Registry, r *objReader) DomainObject {
	o := Campaign{
		Core:        decodeCore(r),
		Name:        r.reqStr("name"),
		Description: r.str("description"),
		Aliases:     r.strList("aliases"),
		FirstSeen:   r.ts("first_seen"),
		LastSeen:    r.ts("last_seen"),
		Objective:   r.str("objective"),
	}
	o.Custom = r.rest()
	return o
}

func (o Campaign) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("aliases", o.Aliases)
	w.ts("first_seen", o.FirstSeen)
	w.ts("last_seen", o.LastSeen)
	w.str("objective", o.Objective)
	w.custom(o.Custom)
	return w.done()
}

// Indicator carries a detection pattern for suspicious or malicious
// activity. valid_until stays optional; the engine does not impose the
// stricter reading.
type Indicator struct {
	Core
	Pattern         string
	PatternType     string
	ValidFrom       Timestamp
	ValidUntil      Timestamp
	Name            string
	Description     string
	IndicatorTypes  []string
	KillChainPhases []KillChainPhase
}

func NewIndicator(pattern string, validFrom Timestamp, opts ...ObjectOption) Indicator {
	return Indicator{
		Core:      newCore(TypeIndicator, opts...),
		Pattern:   pattern,
		ValidFrom: validFrom,
	}
}

func (Indicator) isDomainObject() {}

func decodeIndicator(_ *Registry, r *objReader) DomainObject {
	o := Indicator{
		Core:            decodeCore(r),
		Pattern:         r.reqStr("pattern"),
		PatternType:     r.str("pattern_type"),
		ValidFrom:       r.reqTS("valid_from"),
		ValidUntil:      r.ts("valid_until"),
		Name:            r.str("name"),
		Description:     r.str("description"),
		IndicatorTypes:  r.strList("indicator_types"),
		KillChainPhases: decodeList(r, "kill_chain_phases", decodeKillChainPhase),
	}
	o.Custom = r.rest()
	return o
}

func (o Indicator) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("pattern", o.Pattern)
	w.str("pattern_type", o.PatternType)
	w.reqTS("valid_from", o.ValidFrom)
	w.ts("valid_until", o.ValidUntil)
	w.str("name", o.Name)
	w.str("description", o.Description)
	w.strList("indicator_types", o.IndicatorTypes)
	encodeList(w, "kill_chain_phases", o.KillChainPhases)
	w.custom(o.Custom)
	return w.done()
}

// IntrusionSet groups adversarial behaviors and resources believed to share
// a common origin.
type IntrusionSet struct {
	Core
	Name                 string
	Description          string
	Aliases              []string
	FirstSeen            Timestamp
	LastSeen             Timestamp
	Goals                []string
	ResourceLevel        string
	PrimaryMotivation    string
	SecondaryMotivations []string
}

func NewIntrusionSet(name string, opts ...ObjectOption) IntrusionSet {
	return IntrusionSet{Core: newCore(TypeIntrusionSet, opts...), Name: name}
}

func (IntrusionSet) isDomainObject() {}

func decodeIntrusionSet(_ *Registry, r *objReader) DomainObject {
	o := IntrusionSet{
		Core:                 decodeCore(r),
		Name:                 r.reqStr("name"),
		Description:          r.str("description"),
		Aliases:              r.strList("aliases"),
		FirstSeen:            r.ts("first_seen"),
		LastSeen:             r.ts("last_seen"),
		Goals:                r.strList("goals"),
		ResourceLevel:        r.str("resource_level"),
		PrimaryMotivation:    r.str("primary_motivation"),
		SecondaryMotivations: r.strList("secondary_motivations"),
	}
	o.Custom = r.rest()
	return o
}

func (o IntrusionSet) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("aliases", o.Aliases)
	w.ts("first_seen", o.FirstSeen)
	w.ts("last_seen", o.LastSeen)
	w.strList("goals", o.Goals)
	w.str("resource_level", o.ResourceLevel)
	w.str("primary_motivation", o.PrimaryMotivation)
	w.strList("secondary_motivations", o.SecondaryMotivations)
	w.custom(o.Custom)
	return w.done()
}

// Malware characterizes a malicious program or family. is_family is kept
// optional; inputs predating the field still decode.
type Malware struct {
	Core
	Name            string
	Description     string
	MalwareTypes    []string
	IsFamily        *bool
	Aliases         []string
	KillChainPhases []KillChainPhase
}

func NewMalware(name string, opts ...ObjectOption) Malware {
	return Malware{Core: newCore(TypeMalware, opts...), Name: name}
}

func (Malware) isDomainObject() {}

func decodeMalware(_ *Registry, r *objReader) DomainObject {
	o := Malware{
		Core:            decodeCore(r),
		Name:            r.reqStr("name"),
		Description:     r.str("description"),
		MalwareTypes:    r.strList("malware_types"),
		IsFamily:        r.optBool("is_family"),
		Aliases:         r.strList("aliases"),
		KillChainPhases: decodeList(r, "kill_chain_phases", decodeKillChainPhase),
	}
	o.Custom = r.rest()
	return o
}

func (o Malware) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("malware_types", o.MalwareTypes)
	w.boolPtr("is_family", o.IsFamily)
	w.strList("aliases", o.Aliases)
	encodeList(w, "kill_chain_phases", o.KillChainPhases)
	w.custom(o.Custom)
	return w.done()
}

// ThreatActor describes an individual or group believed to act with
// malicious intent.
type ThreatActor struct {
	Core
	Name                 string
	Description          string
	ThreatActorTypes     []string
	Aliases              []string
	Roles                []string
	Goals                []string
	Sophistication       string
	ResourceLevel        string
	PrimaryMotivation    string
	SecondaryMotivations []string
	PersonalMotivations  []string
}

func NewThreatActor(name string, opts ...ObjectOption) ThreatActor {
	return ThreatActor{Core: newCore(TypeThreatActor, opts...), Name: name}
}

func (ThreatActor) isDomainObject() {}

func decodeThreatActor(_ *Registry, r *objReader) DomainObject {
	o := ThreatActor{
		Core:                 decodeCore(r),
		Name:                 r.reqStr("name"),
		Description:          r.str("description"),
		ThreatActorTypes:     r.strList("threat_actor_types"),
		Aliases:              r.strList("aliases"),
		Roles:                r.strList("roles"),
		Goals:                r.strList("goals"),
		Sophistication:       r.str("sophistication"),
		ResourceLevel:        r.str("resource_level"),
		PrimaryMotivation:    r.str("primary_motivation"),
		SecondaryMotivations: r.strList("secondary_motivations"),
		PersonalMotivations:  r.strList("personal_motivations"),
	}
	o.Custom = r.rest()
	return o
}

func (o ThreatActor) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("threat_actor_types", o.ThreatActorTypes)
	w.strList("aliases", o.Aliases)
	w.strList("roles", o.Roles)
	w.strList("goals", o.Goals)
	w.str("sophistication", o.Sophistication)
	w.str("resource_level", o.ResourceLevel)
	w.str("primary_motivation", o.PrimaryMotivation)
	w.strList("secondary_motivations", o.SecondaryMotivations)
	w.strList("personal_motivations", o.PersonalMotivations)
	w.custom(o.Custom)
	return w.done()
}

// Tool is legitimate software that can be used by threat actors.
type Tool struct {
	Core
	Name            string
	Description     string
	ToolTypes       []string
	Aliases         []string
	ToolVersion     string
	KillChainPhases []KillChainPhase
}

func NewTool(name string, opts ...ObjectOption) Tool {
	return Tool{Core: newCore(TypeTool, opts...), Name: name}
}

func (Tool) isDomainObject() {}

func decodeTool(_ *Registry, r *objReader) DomainObject {
	o := Tool{
		Core:            decodeCore(r),
		Name:            r.reqStr("name"),
		Description:     r.str("description"),
		ToolTypes:       r.strList("tool_types"),
		Aliases:         r.strList("aliases"),
		ToolVersion:     r.str("tool_version"),
		KillChainPhases: decodeList(r, "kill_chain_phases", decodeKillChainPhase),
	}
	o.Custom = r.rest()
	return o
}

func (o Tool) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.strList("tool_types", o.ToolTypes)
	w.strList("aliases", o.Aliases)
	w.str("tool_version", o.ToolVersion)
	encodeList(w, "kill_chain_phases", o.KillChainPhases)
	w.custom(o.Custom)
	return w.done()
}

// Vulnerability is a mistake in software usable to compromise it.
type Vulnerability struct {
	Core
	Name        string
	Description string
}

func NewVulnerability(name string, opts ...ObjectOption) Vulnerability {
	return Vulnerability{Core: newCore(TypeVulnerability, opts...), Name: name}
}

func (Vulnerability) isDomainObject() {}

func decodeVulnerability(_ *Registry, r *objReader) DomainObject {
	o := Vulnerability{
		Core:        decodeCore(r),
		Name:        r.reqStr("name"),
		Description: r.str("description"),
	}
	o.Custom = r.rest()
	return o
}

func (o Vulnerability) EncodeValue() map[string]any {
	w := o.Core.writer()
	w.reqStr("name", o.Name)
	w.str("description", o.Description)
	w.custom(o.Custom)
	return w.done()
}
