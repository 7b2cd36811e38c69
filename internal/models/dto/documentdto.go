package dto

// RoutingDTO selects the target database and collection. Blank fields fall
// back to the configured defaults.
type RoutingDTO struct {
	NameDB         string `validate:"omitempty,max=64,excludesall=$/."`
	NameCollection string `validate:"omitempty,max=120,excludesall=$"`
}

// DocumentQueryDTO carries the query parameters of the /mongo routes.
type DocumentQueryDTO struct {
	RoutingDTO
	Document string `validate:"required"`
}

// ItemQueryDTO carries the query parameters of the /config routes.
type ItemQueryDTO struct {
	RoutingDTO
	ID       string `validate:"required"`
	ObjectID string `validate:"omitempty,hexadecimal,len=24"`
}

// ItemSearchDTO carries the query parameters of GET /config/items.
type ItemSearchDTO struct {
	RoutingDTO
	ID     string `validate:"required"`
	Field  string `validate:"required,excludesall=$."`
	Filter string `validate:"required"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}

type UpdateResponseDTO struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updatedCount"`
	ID           string `json:"_id,omitempty"`
}

type NotFoundResponseDTO struct {
	Message string `json:"message"`
	ID      string `json:"_id,omitempty"`
}

type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponseDTO struct {
	Status string `json:"status"`
}

type RateLimitResponse struct {
	Message string `json:"message"`
}
