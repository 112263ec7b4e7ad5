package api

import (
	"net/url"
	"strconv"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Pagination is the paging metadata returned with every index response.
type Pagination struct {
	Current int `json:"current"`
	Limit   int `json:"limit"`
	Records int `json:"records"`
	Pages   int `json:"pages"`
}

// Page is one page of an index response.
type Page[T any] struct {
	Pagination Pagination `json:"pagination"`
	Data       []T        `json:"data"`
}

// PageParams are the optional paging parameters accepted by every index
// endpoint. Undefined values are simply omitted, letting the service apply
// its defaults.
type PageParams struct {
	Page  ldvalue.OptionalInt
	Limit ldvalue.OptionalInt
}

func (p PageParams) queryValues() url.Values {
	v := url.Values{}
	if p.Page.IsDefined() {
		v.Set("page", strconv.Itoa(p.Page.IntValue()))
	}
	if p.Limit.IsDefined() {
		v.Set("limit", strconv.Itoa(p.Limit.IntValue()))
	}
	return v
}

// TargetType says what kind of resource a vote or moderation action points
// at.
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

// Thread is a top-level discussion topic.
type Thread struct {
	ID        string     `json:"id"`
	AuthorID  string     `json:"author_id"`
	Title     string     `json:"title"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Post is an article inside a thread.
type Post struct {
	ID        string     `json:"id"`
	ThreadID  string     `json:"thread_id"`
	AuthorID  string     `json:"author_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Comment is a reply on a post, optionally nested under another comment.
type Comment struct {
	ID        string     `json:"id"`
	PostID    string     `json:"post_id"`
	AuthorID  string     `json:"author_id"`
	ParentID  *string    `json:"parent_id,omitempty"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// VoteValue is the direction of a vote.
type VoteValue string

const (
	VoteUp   VoteValue = "up"
	VoteDown VoteValue = "down"
)

// Vote is one member's reaction to a post or comment. At most one vote per
// (voter, target) exists at a time.
type Vote struct {
	ID         string     `json:"id"`
	VoterID    string     `json:"voter_id"`
	TargetType TargetType `json:"target_type"`
	TargetID   string     `json:"target_id"`
	Value      VoteValue  `json:"value"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ModerationActionType is what a moderator did to a target.
type ModerationActionType string

const (
	ModerationHide   ModerationActionType = "hide"
	ModerationLock   ModerationActionType = "lock"
	ModerationWarn   ModerationActionType = "warn"
	ModerationRemove ModerationActionType = "remove"
)

// ModerationAction records a moderator's intervention on a post or comment.
type ModerationAction struct {
	ID          string               `json:"id"`
	ModeratorID string               `json:"moderator_id"`
	TargetType  TargetType           `json:"target_type"`
	TargetID    string               `json:"target_id"`
	Action      ModerationActionType `json:"action"`
	Reason      string               `json:"reason"`
	CreatedAt   time.Time            `json:"created_at"`
}

// AppealStatus is the lifecycle state of an appeal.
type AppealStatus string

const (
	AppealPending  AppealStatus = "pending"
	AppealAccepted AppealStatus = "accepted"
	AppealRejected AppealStatus = "rejected"
)

// Appeal is a member's objection to a moderation action on their content.
type Appeal struct {
	ID          string       `json:"id"`
	AppellantID string       `json:"appellant_id"`
	ActionID    string       `json:"action_id"`
	Body        string       `json:"body"`
	Status      AppealStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
}

// AttendanceRecord is a member's daily check-in. At most one record per
// member per day exists.
type AttendanceRecord struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	OccurredOn string    `json:"occurred_on"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification is a message delivered to a member about activity on their
// content. Notifications are scoped to their recipient: other members cannot
// see them at all.
type Notification struct {
	ID          string     `json:"id"`
	RecipientID string     `json:"recipient_id"`
	Kind        string     `json:"kind"`
	ResourceID  string     `json:"resource_id"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
