package models

// Routing fields select the target database and collection. They may appear
// in request bodies and are never stored.
const (
	NameDBField         = "name_db"
	NameCollectionField = "name_collection"
)

// CollectionRef names the database and collection a request reads or writes.
type CollectionRef struct {
	Database   string
	Collection string
}

// WithDefaults fills any empty side of the reference from defaults.
func (r CollectionRef) WithDefaults(defaults CollectionRef) CollectionRef {
	if r.Database == "" {
		r.Database = defaults.Database
	}
	if r.Collection == "" {
		r.Collection = defaults.Collection
	}
	return r
}

// Complete reports whether both sides of the reference are set.
func (r CollectionRef) Complete() bool {
	return r.Database != "" && r.Collection != ""
}

func (r CollectionRef) String() string {
	return r.Database + "." + r.Collection
}

// UpdateResult describes the outcome of a targeted update. Found is false when
// the target document did not exist; nothing was written in that case.
type UpdateResult struct {
	Found         bool
	ID            ID
	ModifiedCount int64
}
