package gostix

// ArchiveExt marks a file as an archive holding other file observables.
type ArchiveExt struct {
	ContainsRefs []string
	Comment      string
}

func (ArchiveExt) ExtensionType() string { return ExtArchive }

func (ArchiveExt) isExtension() {}

func decodeArchiveExt(r *objReader) Extension {
	return ArchiveExt{
		ContainsRefs: r.reqStrList("contains_refs"),
		Comment:      r.str("comment"),
	}
}

func (e ArchiveExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.strList("contains_refs", e.ContainsRefs)
	w.str("comment", e.Comment)
	return w.done()
}

// AlternateDataStream is one NTFS alternate data stream of a file.
type AlternateDataStream struct {
	Name   string
	Hashes Hashes
	Size   *int64
}

func decodeAlternateDataStream(r *objReader) AlternateDataStream {
	return AlternateDataStream{
		Name:   r.reqStr("name"),
		Hashes: r.strMap("hashes"),
		Size:   r.optInt("size"),
	}
}

func (s AlternateDataStream) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("name", s.Name)
	w.strMap("hashes", s.Hashes)
	w.intPtr("size", s.Size)
	return w.done()
}

// NTFSExt carries NTFS-specific file attributes.
type NTFSExt struct {
	SID                  string
	AlternateDataStreams []AlternateDataStream
}

func (NTFSExt) ExtensionType() string { return ExtNTFS }

func (NTFSExt) isExtension() {}

func decodeNTFSExt(r *objReader) Extension {
	return NTFSExt{
		SID:                  r.str("sid"),
		AlternateDataStreams: decodeList(r, "alternate_data_streams", decodeAlternateDataStream),
	}
}

func (e NTFSExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("sid", e.SID)
	encodeList(w, "alternate_data_streams", e.AlternateDataStreams)
	return w.done()
}

// PDFExt carries PDF document metadata.
type PDFExt struct {
	Version          string
	IsOptimized      *bool
	DocumentInfoDict map[string]string
	PDFID0           string
	PDFID1           string
}

func (PDFExt) ExtensionType() string { return ExtPDF }

func (PDFExt) isExtension() {}

func decodePDFExt(r *objReader) Extension {
	return PDFExt{
		Version:          r.str("version"),
		IsOptimized:      r.optBool("is_optimized"),
		DocumentInfoDict: r.strMap("document_info_dict"),
		PDFID0:           r.str("pdfid0"),
		PDFID1:           r.str("pdfid1"),
	}
}

func (e PDFExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("version", e.Version)
	w.boolPtr("is_optimized", e.IsOptimized)
	w.strMap("document_info_dict", e.DocumentInfoDict)
	w.str("pdfid0", e.PDFID0)
	w.str("pdfid1", e.PDFID1)
	return w.done()
}

// RasterImageExt carries image metadata. exif_tags entries accept an
// integer or a string each and keep their decoded shape.
type RasterImageExt struct {
	ImageHeight  *int64
	ImageWidth   *int64
	BitsPerPixel *int64
	ExifTags     map[string]IntOrString
}

func (RasterImageExt) ExtensionType() string { return ExtRasterImage }

func (RasterImageExt) isExtension() {}

func decodeRasterImageExt(r *objReader) Extension {
	return RasterImageExt{
		ImageHeight:  r.optInt("image_height"),
		ImageWidth:   r.optInt("image_width"),
		BitsPerPixel: r.optInt("bits_per_pixel"),
		ExifTags:     r.flexMap("exif_tags"),
	}
}

func (e RasterImageExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.intPtr("image_height", e.ImageHeight)
	w.intPtr("image_width", e.ImageWidth)
	w.intPtr("bits_per_pixel", e.BitsPerPixel)
	w.flexMap("exif_tags", e.ExifTags)
	return w.done()
}

// WindowsPEOptionalHeader mirrors the PE optional header field for field.
type WindowsPEOptionalHeader struct {
	MagicHex                string
	MajorLinkerVersion      *int64
	MinorLinkerVersion      *int64
	SizeOfCode              *int64
	SizeOfInitializedData   *int64
	SizeOfUninitializedData *int64
	AddressOfEntryPoint     *int64
	BaseOfCode              *int64
	ImageBase               *int64
	SectionAlignment        *int64
	FileAlignment           *int64
	MajorOSVersion          *int64
	MinorOSVersion          *int64
	MajorImageVersion       *int64
	MinorImageVersion       *int64
	MajorSubsystemVersion   *int64
	MinorSubsystemVersion   *int64
	Win32VersionValueHex    string
	SizeOfImage             *int64
	SizeOfHeaders           *int64
	ChecksumHex             string
	SubsystemHex            string
	DLLCharacteristicsHex   string
	SizeOfStackReserve      *int64
	SizeOfStackCommit       *int64
	SizeOfHeapReserve       *int64
	SizeOfHeapCommit        *int64
	LoaderFlagsHex          string
	NumberOfRVAAndSizes     *int64
	Hashes                  Hashes
}

func decodeWindowsPEOptionalHeader(r *objReader) WindowsPEOptionalHeader {
	return WindowsPEOptionalHeader{
		MagicHex:                r.str("magic_hex"),
		MajorLinkerVersion:      r.optInt("major_linker_version"),
		MinorLinkerVersion:      r.optInt("minor_linker_version"),
		SizeOfCode:              r.optInt("size_of_code"),
		SizeOfInitializedData:   r.optInt("size_of_initialized_data"),
		SizeOfUninitializedData: r.optInt("size_of_uninitialized_data"),
		AddressOfEntryPoint:     r.optInt("address_of_entry_point"),
		BaseOfCode:              r.optInt("base_of_code"),
		ImageBase:               r.optInt("image_base"),
		SectionAlignment:        r.optInt("section_alignment"),
		FileAlignment:           r.optInt("file_alignment"),
		MajorOSVersion:          r.optInt("major_os_version"),
		MinorOSVersion:          r.optInt("minor_os_version"),
		MajorImageVersion:       r.optInt("major_image_version"),
		MinorImageVersion:       r.optInt("minor_image_version"),
		MajorSubsystemVersion:   r.optInt("major_subsystem_version"),
		MinorSubsystemVersion:   r.optInt("minor_subsystem_version"),
		Win32VersionValueHex:    r.str("win32_version_value_hex"),
		SizeOfImage:             r.optInt("size_of_image"),
		SizeOfHeaders:           r.optInt("size_of_headers"),
		ChecksumHex:             r.str("checksum_hex"),
		SubsystemHex:            r.str("subsystem_hex"),
		DLLCharacteristicsHex:   r.str("dll_characteristics_hex"),
		SizeOfStackReserve:      r.optInt("size_of_stack_reserve"),
		SizeOfStackCommit:       r.optInt("size_of_stack_commit"),
		SizeOfHeapReserve:       r.optInt("size_of_heap_reserve"),
		SizeOfHeapCommit:        r.optInt("size_of_heap_commit"),
		LoaderFlagsHex:          r.str("loader_flags_hex"),
		NumberOfRVAAndSizes:     r.optInt("number_of_rva_and_sizes"),
		Hashes:                  r.strMap("hashes"),
	}
}

func (h WindowsPEOptionalHeader) EncodeValue() map[string]any {
	w := newObjWriter()
	w.str("magic_hex", h.MagicHex)
	w.intPtr("major_linker_version", h.MajorLinkerVersion)
	w.intPtr("minor_linker_version", h.MinorLinkerVersion)
	w.intPtr("size_of_code", h.SizeOfCode)
	w.intPtr("size_of_initialized_data", h.SizeOfInitializedData)
	w.intPtr("size_of_uninitialized_data", h.SizeOfUninitializedData)
	w.intPtr("address_of_entry_point", h.AddressOfEntryPoint)
	w.intPtr("base_of_code", h.BaseOfCode)
	w.intPtr("image_base", h.ImageBase)
	w.intPtr("section_alignment", h.SectionAlignment)
	w.intPtr("file_alignment", h.FileAlignment)
	w.intPtr("major_os_version", h.MajorOSVersion)
	w.intPtr("minor_os_version", h.MinorOSVersion)
	w.intPtr("major_image_version", h.MajorImageVersion)
	w.intPtr("minor_image_version", h.MinorImageVersion)
	w.intPtr("major_subsystem_version", h.MajorSubsystemVersion)
	w.intPtr("minor_subsystem_version", h.MinorSubsystemVersion)
	w.str("win32_version_value_hex", h.Win32VersionValueHex)
	w.intPtr("size_of_image", h.SizeOfImage)
	w.intPtr("size_of_headers", h.SizeOfHeaders)
	w.str("checksum_hex", h.ChecksumHex)
	w.str("subsystem_hex", h.SubsystemHex)
	w.str("dll_characteristics_hex", h.DLLCharacteristicsHex)
	w.intPtr("size_of_stack_reserve", h.SizeOfStackReserve)
	w.intPtr("size_of_stack_commit", h.SizeOfStackCommit)
	w.intPtr("size_of_heap_reserve", h.SizeOfHeapReserve)
	w.intPtr("size_of_heap_commit", h.SizeOfHeapCommit)
	w.str("loader_flags_hex", h.LoaderFlagsHex)
	w.intPtr("number_of_rva_and_sizes", h.NumberOfRVAAndSizes)
	w.strMap("hashes", h.Hashes)
	return w.done()
}

// WindowsPESection is one section of a PE binary.
type WindowsPESection struct {
	Name    string
	Size    *int64
	Entropy *float64
	Hashes  Hashes
}

func decodeWindowsPESection(r *objReader) WindowsPESection {
	return WindowsPESection{
		Name:    r.reqStr("name"),
		Size:    r.optInt("size"),
		Entropy: r.optFloat("entropy"),
		Hashes:  r.strMap("hashes"),
	}
}

func (s WindowsPESection) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("name", s.Name)
	w.intPtr("size", s.Size)
	w.floatPtr("entropy", s.Entropy)
	w.strMap("hashes", s.Hashes)
	return w.done()
}

// WindowsPEBinaryExt carries PE header data for a file.
type WindowsPEBinaryExt struct {
	PEType                  string
	Imphash                 string
	MachineHex              string
	NumberOfSections        *int64
	TimeDateStamp           Timestamp
	PointerToSymbolTableHex string
	NumberOfSymbols         *int64
	SizeOfOptionalHeader    *int64
	CharacteristicsHex      string
	FileHeaderHashes        Hashes
	OptionalHeader          *WindowsPEOptionalHeader
	Sections                []WindowsPESection
}

func (WindowsPEBinaryExt) ExtensionType() string { return ExtWindowsPEBinary }

func (WindowsPEBinaryExt) isExtension() {}

func decodeWindowsPEBinaryExt(r *objReader) Extension {
	e := WindowsPEBinaryExt{
		PEType:                  r.reqStr("pe_type"),
		Imphash:                 r.str("imphash"),
		MachineHex:              r.str("machine_hex"),
		NumberOfSections:        r.optInt("number_of_sections"),
		TimeDateStamp:           r.ts("time_date_stamp"),
		PointerToSymbolTableHex: r.str("pointer_to_symbol_table_hex"),
		NumberOfSymbols:         r.optInt("number_of_symbols"),
		SizeOfOptionalHeader:    r.optInt("size_of_optional_header"),
		CharacteristicsHex:      r.str("characteristics_hex"),
		FileHeaderHashes:        r.strMap("file_header_hashes"),
		Sections:                decodeList(r, "sections", decodeWindowsPESection),
	}
	if raw, ok := r.raw("optional_header"); ok {
		hr, iss := newObjReader(r.joinPath("optional_header"), raw)
		if iss != nil {
			r.iss = AppendIssues(r.iss, iss...)
		} else {
			h := decodeWindowsPEOptionalHeader(hr)
			r.iss = AppendIssues(r.iss, hr.iss...)
			e.OptionalHeader = &h
		}
	}
	return e
}

func (e WindowsPEBinaryExt) EncodeValue() map[string]any {
	w := newObjWriter()
	w.reqStr("pe_type", e.PEType)
	w.str("imphash", e.Imphash)
	w.str("machine_hex", e.MachineHex)
	w.intPtr("number_of_sections", e.NumberOfSections)
	w.ts("time_date_stamp", e.TimeDateStamp)
	w.str("pointer_to_symbol_table_hex", e.PointerToSymbolTableHex)
	w.intPtr("number_of_symbols", e.NumberOfSymbols)
	w.intPtr("size_of_optional_header", e.SizeOfOptionalHeader)
	w.str("characteristics_hex", e.CharacteristicsHex)
	w.strMap("file_header_hashes", e.FileHeaderHashes)
	if e.OptionalHeader != nil {
		w.set("optional_header", e.OptionalHeader.EncodeValue())
	}
	encodeList(w, "sections", e.Sections)
	return w.done()
}
