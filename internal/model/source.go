package model

// Path represents a file system path.
type Path string

// File identifies an almanac input on disk.
type File struct {
	Path Path
	Hash string // sha256 of the contents, hex encoded
}
