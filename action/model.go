package action

// Metadata - descriptor document served to blink clients
type Metadata struct {
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Links       Links  `json:"links"`
}

// Links - linked actions a client can render as forms
type Links struct {
	Actions []LinkedAction `json:"actions"`
}

// LinkedAction - one fillable action with its templated href
type LinkedAction struct {
	Type       string      `json:"type"`
	Label      string      `json:"label"`
	Href       string      `json:"href"`
	Parameters []Parameter `json:"parameters"`
}

// Parameter - one input field declared by a linked action
type Parameter struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// PostRequest - build request body carrying the payer account
type PostRequest struct {
	Account string `json:"account"`
}

// PostResponse - base64 encoded unsigned transaction back to the client
type PostResponse struct {
	Type        string `json:"type"`
	Transaction string `json:"transaction"`
}

// APIError - uniform error body for every failure path
type APIError struct {
	Message string `json:"message"`
}
