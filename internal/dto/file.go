package dto

// FileListItem is one entry of GET /projects/:id/files. The storage path is
// deliberately not part of it.
type FileListItem struct {
	ID       uint64 `json:"id"`
	Filename string `json:"filename"`
}
