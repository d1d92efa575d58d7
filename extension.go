package gostix

// Extension-map keys of the predefined cyber-observable extensions. The key
// an extension rides under in an observable's extensions map is its
// discriminator.
const (
	ExtArchive          = "archive-ext"
	ExtNTFS             = "ntfs-ext"
	ExtPDF              = "pdf-ext"
	ExtRasterImage      = "raster-image-ext"
	ExtWindowsPEBinary  = "windows-pebinary-ext"
	ExtHTTPRequest      = "http-request-ext"
	ExtICMP             = "icmp-ext"
	ExtSocket           = "socket-ext"
	ExtTCP              = "tcp-ext"
	ExtWindowsProcess   = "windows-process-ext"
	ExtWindowsService   = "windows-service-ext"
	ExtUNIXAccount      = "unix-account-ext"
	ExtX509V3Extensions = "x509-v3-extensions-type"
)

// Extension is the closed family of predefined cyber-observable extensions.
// There is no decode catch-all: an extensions-map key without a table entry
// fails with unknown_discriminator. CustomExtension covers the write path
// only. Within a recognized extension body, keys outside the field table
// are ignored rather than carried.
type Extension interface {
	Encodable
	ExtensionType() string
	isExtension()
}

// CustomExtension is a write-side escape hatch for extension payloads
// outside the predefined set. The decode tables never produce one;
// constructing and encoding it is the only way it enters a document.
type CustomExtension struct {
	Type   string
	Fields map[string]any
}

// NewCustomExtension builds an extension payload for the given
// extensions-map key.
func NewCustomExtension(extType string, fields map[string]any) CustomExtension {
	return CustomExtension{Type: extType, Fields: fields}
}

func (e CustomExtension) ExtensionType() string { return e.Type }

func (CustomExtension) isExtension() {}

func (e CustomExtension) EncodeValue() map[string]any {
	out := make(map[string]any, len(e.Fields))
	for k, v := range e.Fields {
		out[k] = v
	}
	return out
}
