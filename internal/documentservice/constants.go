package documentservice

const (
	// Error messages for document service operations
	ErrFailedToFindDocument   = "failed to find document"
	ErrFailedToListDocuments  = "failed to list documents"
	ErrFailedToInsertDocument = "failed to insert document"
	ErrFailedToDeleteDocument = "failed to delete document"
	ErrFailedToUpdateDocument = "failed to update document"
	ErrInvalidDocumentID      = "invalid document identifier"
	ErrInvalidItemID          = "invalid item identifier"
	ErrMissingItemName        = "attribute 'name' is required in every object of array '%s'"
	ErrDuplicateItemName      = "attribute 'name' must be unique within array '%s'"
	ErrNoFieldsToUpdate       = "no fields to update"
	ErrItemNotInDocument      = "item %s not found in document '%s'"
	ErrInvalidFieldName       = "invalid field name '%s'"
	ErrDatabaseNameRequired   = "database name (name_db) is required"
	ErrCollectionNameRequired = "collection name (name_collection) is required"
)
