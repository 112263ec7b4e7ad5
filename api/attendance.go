package api

import "context"

// AttendanceCreateRequest is the payload for a daily check-in. OccurredOn
// defaults to the service's current date when empty; a second check-in for
// the same day is a conflict.
type AttendanceCreateRequest struct {
	OccurredOn string `json:"occurred_on,omitempty"`
}

// AttendanceListParams are the search parameters for the attendance index.
// The index is self-scoped: members only ever see their own records.
type AttendanceListParams struct {
	PageParams
}

// CheckIn records the session member's attendance for a day.
func (c *Client) CheckIn(ctx context.Context, sess *Session, req AttendanceCreateRequest) (AttendanceRecord, error) {
	var out AttendanceRecord
	err := c.do(ctx, "POST", "/attendance", sess, nil, req, &out)
	return out, err
}

// AttendanceAt fetches one of the session member's attendance records.
func (c *Client) AttendanceAt(ctx context.Context, sess *Session, id string) (AttendanceRecord, error) {
	var out AttendanceRecord
	err := c.do(ctx, "GET", "/attendance/"+id, sess, nil, nil, &out)
	return out, err
}

// Attendance lists the session member's attendance records.
func (c *Client) Attendance(ctx context.Context, sess *Session, params AttendanceListParams) (Page[AttendanceRecord], error) {
	var out Page[AttendanceRecord]
	err := c.do(ctx, "GET", "/attendance", sess, params.queryValues(), nil, &out)
	return out, err
}
