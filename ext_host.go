package gostix

// WindowsProcessExt carries Windows-specific process attributes.
type WindowsProcessExt struct {
	ASLREnabled *bool
	DEPEnabled  *bool
	Priority    string
	OwnerSID    string
	WindowTitle string
	StartupInfo map[string]string
}

func (WindowsProcessExt) ExtensionType() string { return ExtWindowsProcess }

func (WindowsProcessExt) isExtension() {}

func decodeWindowsProcessExt(r *objReader) Extension {
	return WindowsProcessExt{
		ASLREnabled: r.optBool("aslr_enabled"),
		DEPEnabled:  r.optBool("dep_enabled"),
		Priority:    r.str("priority"),
		OwnerSID:    r.str("owner_sid"),
		WindowTitle: r.str("window_title"),
		StartupInfo: r.strMap("startup_info"),
	}
}

func (e WindowsProcessExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.boolPtr("aslr_enabled", e.ASLREnabled)
	w.boolPtr("dep_enabled", e.DEPEnabled)
	w.str("priority", e.Priority)
	w.str("owner_sid", e.OwnerSID)
	w.str("window_title", e.WindowTitle)
	w.strMap("startup_info", e.StartupInfo)
	return w.done()
}

// WindowsServiceExt marks a process as a Windows service.
type WindowsServiceExt struct {
	ServiceName    string
	Descriptions   []string
	DisplayName    string
	GroupName      string
	StartType      string
	ServiceDLLRefs []string
	ServiceType    string
	ServiceStatus  string
}

func (WindowsServiceExt) ExtensionType() string { return ExtWindowsService }

func (WindowsServiceExt) isExtension() {}

func decodeWindowsServiceExt(r *objReader) Extension {
	return WindowsServiceExt{
		ServiceName:    r.str("service_name"),
		Descriptions:   r.strList("descriptions"),
		DisplayName:    r.str("display_name"),
		GroupName:      r.str("group_name"),
		StartType:      r.str("start_type"),
		ServiceDLLRefs: r.strList("service_dll_refs"),
		ServiceType:    r.str("service_type"),
		ServiceStatus:  r.str("service_status"),
	}
}

func (e WindowsServiceExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("service_name", e.ServiceName)
	w.strList("descriptions", e.Descriptions)
	w.str("display_name", e.DisplayName)
	w.str("group_name", e.GroupName)
	w.str("start_type", e.StartType)
	w.strList("service_dll_refs", e.ServiceDLLRefs)
	w.str("service_type", e.ServiceType)
	w.str("service_status", e.ServiceStatus)
	return w.done()
}

// UNIXAccountExt carries UNIX account fields for a user account.
type UNIXAccountExt struct {
	GID     *int64
	Groups  []string
	HomeDir string
	Shell   string
}

func (UNIXAccountExt) ExtensionType() string { return ExtUNIXAccount }

func (UNIXAccountExt) isExtension() {}

func decodeUNIXAccountExt(r *objReader) Extension {
	return UNIXAccountExt{
		GID:     r.optInt("gid"),
		Groups:  r.strList("groups"),
		HomeDir: r.str("home_dir"),
		Shell:   r.str("shell"),
	}
}

func (e UNIXAccountExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.intPtr("gid", e.GID)
	w.strList("groups", e.Groups)
	w.str("home_dir", e.HomeDir)
	w.str("shell", e.Shell)
	return w.done()
}

// X509V3Extensions carries the X.509 v3 extension fields. It doubles as the
// x509_v3_extensions inline field of the x509-certificate observable and as
// an extensions-map payload.
type X509V3Extensions struct {
	BasicConstraints               string
	NameConstraints                string
	PolicyConstraints              string
	KeyUsage                       string
	ExtendedKeyUsage               string
	SubjectKeyIdentifier           string
	AuthorityKeyIdentifier         string
	SubjectAlternativeName         string
	IssuerAlternativeName          string
	SubjectDirectoryAttributes     string
	CRLDistributionPoints          string
	InhibitAnyPolicy               string
	PrivateKeyUsagePeriodNotBefore Timestamp
	PrivateKeyUsagePeriodNotAfter  Timestamp
	CertificatePolicies            string
	PolicyMappings                 string
}

func (X509V3Extensions) ExtensionType() string { return ExtX509V3Extensions }

func (X509V3Extensions) isExtension() {}

func decodeX509V3ExtensionsFields(r *objReader) X509V3Extensions {
	return X509V3Extensions{
		BasicConstraints:               r.str("basic_constraints"),
		NameConstraints:                r.str("name_constraints"),
		PolicyConstraints:              r.str("policy_constraints"),
		KeyUsage:                       r.str("key_usage"),
		ExtendedKeyUsage:               r.str("extended_key_usage"),
		SubjectKeyIdentifier:           r.str("subject_key_identifier"),
		AuthorityKeyIdentifier:         r.str("authority_key_identifier"),
		SubjectAlternativeName:         r.str("subject_alternative_name"),
		IssuerAlternativeName:          r.str("issuer_alternative_name"),
		SubjectDirectoryAttributes:     r.str("subject_directory_attributes"),
		CRLDistributionPoints:          r.str("crl_distribution_points"),
		InhibitAnyPolicy:               r.str("inhibit_any_policy"),
		PrivateKeyUsagePeriodNotBefore: r.ts("private_key_usage_period_not_before"),
		PrivateKeyUsagePeriodNotAfter:  r.ts("private_key_usage_period_not_after"),
		CertificatePolicies:            r.str("certificate_policies"),
		PolicyMappings:                 r.str("policy_mappings"),
	}
}

func decodeX509V3Extensions(r *objReader) Extension {
	return decodeX509V3ExtensionsFields(r)
}

func (e X509V3Extensions) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("basic_constraints", e.BasicConstraints)
	w.str("name_constraints", e.NameConstraints)
	w.str("policy_constraints", e.PolicyConstraints)
	w.str("key_usage", e.KeyUsage)
	w.str("extended_key_usage", e.ExtendedKeyUsage)
	w.str("subject_key_identifier", e.SubjectKeyIdentifier)
	w.str("authority_key_identifier", e.AuthorityKeyIdentifier)
	w.str("subject_alternative_name", e.SubjectAlternativeName)
	w.str("issuer_alternative_name", e.IssuerAlternativeName)
	w.str("subject_directory_attributes", e.SubjectDirectoryAttributes)
	w.str("crl_distribution_points", e.CRLDistributionPoints)
	w.str("inhibit_any_policy", e.InhibitAnyPolicy)
	w.ts("private_key_usage_period_not_before", e.PrivateKeyUsagePeriodNotBefore)
	w.ts("private_key_usage_period_not_after", e.PrivateKeyUsagePeriodNotAfter)
	w.str("certificate_policies", e.CertificatePolicies)
	w.str("policy_mappings", e.PolicyMappings)
	return w.done()
}
