package domain

import "time"

// Comment is an immutable note attached to an entity record.
type Comment struct {
	ID          int64
	EntityType  Module
	EntityID    int64
	UserID      int64
	Username    *string
	DisplayName *string
	Content     string
	ParentID    *int64
	CreatedAt   time.Time
}

// FollowUpMethod is the channel used to contact a prospect.
type FollowUpMethod string

const (
	FollowUpPhone  FollowUpMethod = "电话"
	FollowUpWeChat FollowUpMethod = "微信"
	FollowUpEmail  FollowUpMethod = "邮件"
	FollowUpVisit  FollowUpMethod = "拜访"
	FollowUpOther  FollowUpMethod = "其他"
)

func (m FollowUpMethod) String() string { return string(m) }

func (m FollowUpMethod) IsValid() bool {
	switch m {
	case FollowUpPhone, FollowUpWeChat, FollowUpEmail, FollowUpVisit, FollowUpOther:
		return true
	}
	return false
}

// FollowUp records one contact attempt against an entity record.
type FollowUp struct {
	ID           int64
	EntityType   Module
	EntityID     int64
	UserID       int64
	Username     *string
	DisplayName  *string
	Method       FollowUpMethod
	Content      string
	NextFollowAt *time.Time
	CreatedAt    time.Time
}
