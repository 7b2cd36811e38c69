package routes

const (
	// API route constants
	MongoRouteAPI        = "/mongo"
	MongoFindAllRouteAPI = "/mongo/findAll"
	ConfigRouteAPI       = "/config"
	ConfigInsertRouteAPI = "/config/insert"
	ConfigUpdateItemAPI  = "/config/update-item"
	ConfigItemsRouteAPI  = "/config/items"
	HealthRouteAPI       = "/health"
	MetricsRouteAPI      = "/metrics"

	// Query parameter constants
	ParamNameDB         = "name_db"
	ParamNameCollection = "name_collection"
	ParamDocument       = "document"
	ParamID             = "id"
	ParamObjectID       = "objectId"
	ParamField          = "field"
	ParamFilter         = "filter"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	MaxBodyBytes = 1 << 20

	// message constants
	MsgDocumentNotFoundFormat   = "Configuration with name %s not found."
	MsgDocumentIDNotFoundFormat = "Configuration with id %s not found."
	MsgDeleteNotFoundFormat     = "No document named %s was found to delete."
	MsgDeletedFormat            = "Document named %s deleted successfully."
	MsgDocumentUpdated          = "Document updated successfully"
	MsgDocumentNotFound         = "Document not found"
	MsgItemInserted             = "Item inserted successfully"
	MsgItemUpdated              = "Item updated successfully"
	MsgObjectDeleted            = "Object deleted successfully"
	MsgObjectNotDeleted         = "Object not found or could not be deleted"
	MsgNoMatchingItemsFormat    = "No item of %s matches %s=%s."
	MsgHealthy                  = "ok"
	MsgUnhealthy                = "unavailable"

	// Error messages
	ErrMethodNotAllowed         = "Method not allowed"
	ErrInvalidContentType       = "Content-Type must be application/json"
	ErrInvalidRequestBody       = "Invalid request body"
	ErrValidationFailed         = "Request validation failed"
	ErrMissingParameter         = "Missing required parameter"
	ErrBadRequest               = "Request rejected"
	ErrNotFound                 = "Resource not found"
	ErrStoreFailure             = "Document store operation failed"
	ErrInternal                 = "Internal server error"
	ErrInvalidRoutingField      = "routing field %s must be a string"
	ErrInvalidIDField           = "field id must be a non-empty string"
	ErrInvalidContentTypeFormat = "invalid content-type: %s"

	// operation labels for metrics
	OpFindByName     = "find_by_name"
	OpFindByID       = "find_by_id"
	OpFindAll        = "find_all"
	OpInsert         = "insert"
	OpDeleteByName   = "delete_by_name"
	OpReplaceFields  = "replace_fields"
	OpDeleteItemByID = "delete_item_by_id"
	OpInsertItem     = "insert_item"
	OpUpdateItem     = "update_item"
	OpQueryItems     = "query_items"
)
