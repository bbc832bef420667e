package models

// Store acknowledgements returned verbatim to the caller, mirroring the shape
// the document store reports for each write.

// InsertResult is the acknowledgement of an insert. InsertedID is null when
// nothing was inserted (e.g. a duplicate registration).
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
	Message      string      `json:"message,omitempty"`
}

// UpdateResult is the acknowledgement of an update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult is the acknowledgement of a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
