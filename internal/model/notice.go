package model

// NoticeKind classifies a user-facing notification.
type NoticeKind string

const (
	NoticeStoreWriteFailure NoticeKind = "STORE_WRITE_FAILURE"
)

// Notice is a single non-blocking notification for the user.
type Notice struct {
	Kind       NoticeKind `json:"kind"`
	Message    string     `json:"message"`
	DocumentID string     `json:"document_id"`
}
