package followup

import (
	"strings"
	"time"

	"github.com/heartmarshall/bizcrm-backend/internal/service/validate"
)

// PostInput holds the parameters for logging a follow-up. A zero UserID
// means the acting identity from the context; an empty Method means 其他.
type PostInput struct {
	EntityType   string     `json:"entity_type"`
	EntityID     int64      `json:"entity_id"      validate:"gt=0"`
	UserID       int64      `json:"user_id"        validate:"gte=0"`
	Method       string     `json:"method"         validate:"omitempty,followup_method"`
	Content      string     `json:"content"        validate:"notblank,nonul,max=5000"`
	NextFollowAt *time.Time `json:"next_follow_at"`
}

// Validate checks all fields and collects all errors.
func (i PostInput) Validate() error {
	i.Method = strings.TrimSpace(i.Method)
	return validate.Struct(i)
}
