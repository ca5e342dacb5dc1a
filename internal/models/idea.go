package models

const (
	// MaxIdeaLength is the maximum number of characters an idea may contain
	MaxIdeaLength = 1000
	// DefaultIdeaLimit is the page size used when a listing does not specify one
	DefaultIdeaLimit = 100
	// MaxIdeaLimit caps the page size of a listing
	MaxIdeaLimit = 1000
)

// Idea represents a short text note owned by a user
type Idea struct {
	ID        int    `json:"id"`
	Content   string `json:"idea"`
	UserID    int    `json:"user_id"`
	CreatedAt string `json:"created_at"`
	User      *User  `json:"user,omitempty"`
}

// CreateIdeaRequest represents a request to create an idea.
// Any owner supplied by the client is ignored, the idea always belongs to the caller.
type CreateIdeaRequest struct {
	Idea string `json:"idea" validate:"required,max=1000"`
}

// IdeaScope restricts which ideas a listing returns.
// A zero OwnerID together with All=true means every idea.
type IdeaScope struct {
	All     bool
	OwnerID int
}

// MessageResponse is a generic confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}
