package comment

import "github.com/heartmarshall/bizcrm-backend/internal/service/validate"

// PostInput holds the parameters for posting a comment. A zero UserID means
// the acting identity from the context.
type PostInput struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id" validate:"gt=0"`
	UserID     int64  `json:"user_id"   validate:"gte=0"`
	Content    string `json:"content"   validate:"notblank,nonul,max=5000"`
	ParentID   *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// Validate checks all fields and collects all errors. Content is stored as
// posted; only an all-blank body is rejected.
func (i PostInput) Validate() error {
	return validate.Struct(i)
}
