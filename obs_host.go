package gostix

// Discriminators of the host-side observables.
const (
	TypeArtifact           = "artifact"
	TypeDirectory          = "directory"
	TypeFile               = "file"
	TypeMutex              = "mutex"
	TypeProcess            = "process"
	TypeSoftware           = "software"
	TypeUserAccount        = "user-account"
	TypeWindowsRegistryKey = "windows-registry-key"
	TypeX509Certificate    = "x509-certificate"
)

// Artifact carries a payload either inline (base64) or by URL.
type Artifact struct {
	ObservableBase
	MimeType            string
	PayloadBin          string
	URL                 string
	Hashes              Hashes
	EncryptionAlgorithm string
	DecryptionKey       string
}

func NewArtifact() Artifact {
	return Artifact{ObservableBase: newObservable(TypeArtifact)}
}

func decodeArtifact(reg *Registry, r *objReader) Observable {
	o := Artifact{
		ObservableBase:      decodeObservableBase(reg, r),
		MimeType:            r.str("mime_type"),
		PayloadBin:          r.str("payload_bin"),
		URL:                 r.str("url"),
		Hashes:              r.strMap("hashes"),
		EncryptionAlgorithm: r.str("encryption_algorithm"),
		DecryptionKey:       r.str("decryption_key"),
	}
	o.Custom = r.rest()
	return o
}

func (o Artifact) EncodeValue() map[string]any {
	w := o.writer()
	w.str("mime_type", o.MimeType)
	w.str("payload_bin", o.PayloadBin)
	w.str("url", o.URL)
	w.strMap("hashes", o.Hashes)
	w.str("encryption_algorithm", o.EncryptionAlgorithm)
	w.str("decryption_key", o.DecryptionKey)
	return o.finish(w)
}

// Directory is a filesystem directory.
type Directory struct {
	ObservableBase
	Path         string
	PathEnc      string
	Ctime        Timestamp
	Mtime        Timestamp
	Atime        Timestamp
	ContainsRefs []string
}

func NewDirectory(path string) Directory {
	return Directory{ObservableBase: newObservable(TypeDirectory), Path: path}
}

func decodeDirectory(reg *Registry, r *objReader) Observable {
	o := Directory{
		ObservableBase: decodeObservableBase(reg, r),
		Path:           r.reqStr("path"),
		PathEnc:        r.str("path_enc"),
		Ctime:          r.ts("ctime"),
		Mtime:          r.ts("mtime"),
		Atime:          r.ts("atime"),
		ContainsRefs:   r.strList("contains_refs"),
	}
	o.Custom = r.rest()
	return o
}

func (o Directory) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("path", o.Path)
	w.str("path_enc", o.PathEnc)
	w.ts("ctime", o.Ctime)
	w.ts("mtime", o.Mtime)
	w.ts("atime", o.Atime)
	w.strList("contains_refs", o.ContainsRefs)
	return o.finish(w)
}

// File is a filesystem file. The predefined file extensions (archive-ext,
// ntfs-ext, pdf-ext, raster-image-ext, windows-pebinary-ext) ride in the
// extensions map.
type File struct {
	ObservableBase
	Hashes             Hashes
	Size               *int64
	Name               string
	NameEnc            string
	MagicNumberHex     string
	MimeType           string
	Ctime              Timestamp
	Mtime              Timestamp
	Atime              Timestamp
	ParentDirectoryRef string
	ContainsRefs       []string
	ContentRef         string
}

func NewFile() File {
	return File{ObservableBase: newObservable(TypeFile)}
}

func decodeFile(reg *Registry, r *objReader) Observable {
	o := File{
		ObservableBase:     decodeObservableBase(reg, r),
		Hashes:             r.strMap("hashes"),
		Size:               r.optInt("size"),
		Name:               r.str("name"),
		NameEnc:            r.str("name_enc"),
		MagicNumberHex:     r.str("magic_number_hex"),
		MimeType:           r.str("mime_type"),
		Ctime:              r.ts("ctime"),
		Mtime:              r.ts("mtime"),
		Atime:              r.ts("atime"),
		ParentDirectoryRef: r.str("parent_directory_ref"),
		ContainsRefs:       r.strList("contains_refs"),
		ContentRef:         r.str("content_ref"),
	}
	o.Custom = r.rest()
	return o
}

func (o File) EncodeValue() map[string]any {
	w := o.writer()
	w.strMap("hashes", o.Hashes)
	w.intPtr("size", o.Size)
	w.str("name", o.Name)
	w.str("name_enc", o.NameEnc)
	w.str("magic_number_hex", o.MagicNumberHex)
	w.str("mime_type", o.MimeType)
	w.ts("ctime", o.Ctime)
	w.ts("mtime", o.Mtime)
	w.ts("atime", o.Atime)
	w.str("parent_directory_ref", o.ParentDirectoryRef)
	w.strList("contains_refs", o.ContainsRefs)
	w.str("content_ref", o.ContentRef)
	return o.finish(w)
}

// Mutex is a named mutual-exclusion object.
type Mutex struct {
	ObservableBase
	Name string
}

func NewMutex(name string) Mutex {
	return Mutex{ObservableBase: newObservable(TypeMutex), Name: name}
}

func decodeMutex(reg *Registry, r *objReader) Observable {
	o := Mutex{
		ObservableBase: decodeObservableBase(reg, r),
		Name:           r.reqStr("name"),
	}
	o.Custom = r.rest()
	return o
}

func (o Mutex) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("name", o.Name)
	return o.finish(w)
}

// Process is a running program instance. References point at sibling
// observables by local handle.
type Process struct {
	ObservableBase
	IsHidden             *bool
	PID                  *int64
	CreatedTime          Timestamp
	Cwd                  string
	CommandLine          string
	EnvironmentVariables map[string]string
	OpenedConnectionRefs []string
	CreatorUserRef       string
	ImageRef             string
	ParentRef            string
	ChildRefs            []string
}

func NewProcess() Process {
	return Process{ObservableBase: newObservable(TypeProcess)}
}

func decodeProcess(reg *Registry, r *objReader) Observable {
	o := Process{
		ObservableBase:       decodeObservableBase(reg, r),
		IsHidden:             r.optBool("is_hidden"),
		PID:                  r.optInt("pid"),
		CreatedTime:          r.ts("created_time"),
		Cwd:                  r.str("cwd"),
		CommandLine:          r.str("command_line"),
		EnvironmentVariables: r.strMap("environment_variables"),
		OpenedConnectionRefs: r.strList("opened_connection_refs"),
		CreatorUserRef:       r.str("creator_user_ref"),
		ImageRef:             r.str("image_ref"),
		ParentRef:            r.str("parent_ref"),
		ChildRefs:            r.strList("child_refs"),
	}
	o.Custom = r.rest()
	return o
}

func (o Process) EncodeValue() map[string]any {
	w := o.writer()
	w.boolPtr("is_hidden", o.IsHidden)
	w.intPtr("pid", o.PID)
	w.ts("created_time", o.CreatedTime)
	w.str("cwd", o.Cwd)
	w.str("command_line", o.CommandLine)
	w.strMap("environment_variables", o.EnvironmentVariables)
	w.strList("opened_connection_refs", o.OpenedConnectionRefs)
	w.str("creator_user_ref", o.CreatorUserRef)
	w.str("image_ref", o.ImageRef)
	w.str("parent_ref", o.ParentRef)
	w.strList("child_refs", o.ChildRefs)
	return o.finish(w)
}

// Software is an installed software product.
type Software struct {
	ObservableBase
	Name      string
	CPE       string
	Languages []string
	Vendor    string
	Version   string
}

func NewSoftware(name string) Software {
	return Software{ObservableBase: newObservable(TypeSoftware), Name: name}
}

func decodeSoftware(reg *Registry, r *objReader) Observable {
	o := Software{
		ObservableBase: decodeObservableBase(reg, r),
		Name:           r.reqStr("name"),
		CPE:            r.str("cpe"),
		Languages:      r.strList("languages"),
		Vendor:         r.str("vendor"),
		Version:        r.str("version"),
	}
	o.Custom = r.rest()
	return o
}

func (o Software) EncodeValue() map[string]any {
	w := o.writer()
	w.reqStr("name", o.Name)
	w.str("cpe", o.CPE)
	w.strList("languages", o.Languages)
	w.str("vendor", o.Vendor)
	w.str("version", o.Version)
	return o.finish(w)
}

// UserAccount is an account on a system or service. Every field is
// optional; which subset is present depends on the account type.
type UserAccount struct {
	ObservableBase
	UserID                string
	Credential            string
	AccountLogin          string
	AccountType           string
	DisplayName           string
	IsServiceAccount      *bool
	IsPrivileged          *bool
	CanEscalatePrivs      *bool
	IsDisabled            *bool
	AccountCreated        Timestamp
	AccountExpires        Timestamp
	CredentialLastChanged Timestamp
	AccountFirstLogin     Timestamp
	AccountLastLogin      Timestamp
}

func NewUserAccount() UserAccount {
	return UserAccount{ObservableBase: newObservable(TypeUserAccount)}
}

func decodeUserAccount(reg *Registry, r *objReader) Observable {
	o := UserAccount{
		ObservableBase:        decodeObservableBase(reg, r),
		UserID:                r.str("user_id"),
		Credential:            r.str("credential"),
		AccountLogin:          r.str("account_login"),
		AccountType:           r.str("account_type"),
		DisplayName:           r.str("display_name"),
		IsServiceAccount:      r.optBool("is_service_account"),
		IsPrivileged:          r.optBool("is_privileged"),
		CanEscalatePrivs:      r.optBool("can_escalate_privs"),
		IsDisabled:            r.optBool("is_disabled"),
		AccountCreated:        r.ts("account_created"),
		AccountExpires:        r.ts("account_expires"),
		CredentialLastChanged: r.ts("credential_last_changed"),
		AccountFirstLogin:     r.ts("account_first_login"),
		AccountLastLogin:      r.ts("account_last_login"),
	}
	o.Custom = r.rest()
	return o
}

func (o UserAccount) EncodeValue() map[string]any {
	w := o.writer()
	w.str("user_id", o.UserID)
	w.str("credential", o.Credential)
	w.str("account_login", o.AccountLogin)
	w.str("account_type", o.AccountType)
	w.str("display_name", o.DisplayName)
	w.boolPtr("is_service_account", o.IsServiceAccount)
	w.boolPtr("is_privileged", o.IsPrivileged)
	w.boolPtr("can_escalate_privs", o.CanEscalatePrivs)
	w.boolPtr("is_disabled", o.IsDisabled)
	w.ts("account_created", o.AccountCreated)
	w.ts("account_expires", o.AccountExpires)
	w.ts("credential_last_changed", o.CredentialLastChanged)
	w.ts("account_first_login", o.AccountFirstLogin)
	w.ts("account_last_login", o.AccountLastLogin)
	return o.finish(w)
}

// WindowsRegistryValue is one name/data pair under a registry key.
type WindowsRegistryValue struct {
	Name     string
	Data     string
	DataType string
}

func decodeWindowsRegistryValue(r *objReader) WindowsRegistryValue {
	return WindowsRegistryValue{
		Name:     r.str("name"),
		Data:     r.str("data"),
		DataType: r.str("data_type"),
	}
}

func (v WindowsRegistryValue) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("name", v.Name)
	w.str("data", v.Data)
	w.str("data_type", v.DataType)
	return w.done()
}

// WindowsRegistryKey is a registry key with its values.
type WindowsRegistryKey struct {
	ObservableBase
	Key             string
	Values          []WindowsRegistryValue
	ModifiedTime    Timestamp
	CreatorUserRef  string
	NumberOfSubkeys *int64
}

func NewWindowsRegistryKey() WindowsRegistryKey {
	return WindowsRegistryKey{ObservableBase: newObservable(TypeWindowsRegistryKey)}
}

func decodeWindowsRegistryKey(reg *Registry, r *objReader) Observable {
	o := WindowsRegistryKey{
		ObservableBase:  decodeObservableBase(reg, r),
		Key:             r.str("key"),
		Values:          decodeList(r, "values", decodeWindowsRegistryValue),
		ModifiedTime:    r.ts("modified_time"),
		CreatorUserRef:  r.str("creator_user_ref"),
		NumberOfSubkeys: r.optInt("number_of_subkeys"),
	}
	o.Custom = r.rest()
	return o
}

func (o WindowsRegistryKey) EncodeValue() map[string]any {
	w := o.writer()
	w.str("key", o.Key)
	encodeList(w, "values", o.Values)
	w.ts("modified_time", o.ModifiedTime)
	w.str("creator_user_ref", o.CreatorUserRef)
	w.intPtr("number_of_subkeys", o.NumberOfSubkeys)
	return o.finish(w)
}

// X509Certificate is a public key certificate. The v3 extension block can
// appear inline here or as an extensions-map payload.
type X509Certificate struct {
	ObservableBase
	IsSelfSigned              *bool
	Hashes                    Hashes
	Version                   string
	SerialNumber              string
	SignatureAlgorithm        string
	Issuer                    string
	ValidityNotBefore         Timestamp
	ValidityNotAfter          Timestamp
	Subject                   string
	SubjectPublicKeyAlgorithm string
	SubjectPublicKeyModulus   string
	SubjectPublicKeyExponent  *int64
	X509V3Extensions          *X509V3Extensions
}

func NewX509Certificate() X509Certificate {
	return X509Certificate{ObservableBase: newObservable(TypeX509Certificate)}
}

func decodeX509Certificate(reg *Registry, r *objReader) Observable {
	o := X509Certificate{
		ObservableBase:            decodeObservableBase(reg, r),
		IsSelfSigned:              r.optBool("is_self_signed"),
		Hashes:                    r.strMap("hashes"),
		Version:                   r.str("version"),
		SerialNumber:              r.str("serial_number"),
		SignatureAlgorithm:        r.str("signature_algorithm"),
		Issuer:                    r.str("issuer"),
		ValidityNotBefore:         r.ts("validity_not_before"),
		ValidityNotAfter:          r.ts("validity_not_after"),
		Subject:                   r.str("subject"),
		SubjectPublicKeyAlgorithm: r.str("subject_public_key_algorithm"),
		SubjectPublicKeyModulus:   r.str("subject_public_key_modulus"),
		SubjectPublicKeyExponent:  r.optInt("subject_public_key_exponent"),
	}
	if raw, ok := r.raw("x509_v3_extensions"); ok {
		er, iss := newObjReader(r.joinPath("x509_v3_extensions"), raw)
		if iss != nil {
			r.iss = AppendIssues(r.iss, iss...)
		} else {
			ext := decodeX509V3ExtensionsFields(er)
			r.iss = AppendIssues(r.iss, er.iss...)
			o.X509V3Extensions = &ext
		}
	}
	o.Custom = r.rest()
	return o
}

func (o X509Certificate) EncodeValue() map[string]any {
	w := o.writer()
	w.boolPtr("is_self_signed", o.IsSelfSigned)
	w.strMap("hashes", o.Hashes)
	w.str("version", o.Version)
	w.str("serial_number", o.SerialNumber)
	w.str("signature_algorithm", o.SignatureAlgorithm)
	w.str("issuer", o.Issuer)
	w.ts("validity_not_before", o.ValidityNotBefore)
	w.ts("validity_not_after", o.ValidityNotAfter)
	w.str("subject", o.Subject)
	w.str("subject_public_key_algorithm", o.SubjectPublicKeyAlgorithm)
	w.str("subject_public_key_modulus", o.SubjectPublicKeyModulus)
	w.intPtr("subject_public_key_exponent", o.SubjectPublicKeyExponent)
	if o.X509V3Extensions != nil {
		w.set("x509_v3_extensions", o.X509V3Extensions.EncodeValue())
	}
	return o.finish(w)
}
