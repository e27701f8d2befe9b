package model

// Kind classifies a filesystem entry
type Kind int

const (
	// Other covers devices, sockets and pipes; it never matches a filter
	Other Kind = iota
	File
	Symlink
	Directory
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Symlink:
		return "symlink"
	case Directory:
		return "directory"
	default:
		return "other"
	}
}

// Entry is one filesystem node discovered during a scan
type Entry struct {
	Path string
	Kind Kind
}
