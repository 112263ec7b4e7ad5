package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoAttendanceTests(t *T) {
	t.RequireCapability("attendance")

	t.Run("a member can check in once per day", func(t *T) {
		member := t.RegisterMember()

		record, err := t.Client().CheckIn(t.Context(), member.Session, api.AttendanceCreateRequest{})
		require.NoError(t, err)
		t.RequireShape("attendance_record", record)
		assert.Equal(t, member.Session.UserID, record.MemberID)

		_, err = t.Client().CheckIn(t.Context(), member.Session, api.AttendanceCreateRequest{})
		t.RequireErrorKind(api.ErrorKindConflict, err)
	})

	t.Run("checking in for an explicit past day", func(t *T) {
		member := t.RegisterMember()
		record, err := t.Client().CheckIn(t.Context(), member.Session,
			api.AttendanceCreateRequest{OccurredOn: "2026-01-05"})
		require.NoError(t, err)
		assert.Equal(t, "2026-01-05", record.OccurredOn)

		_, err = t.Client().CheckIn(t.Context(), member.Session,
			api.AttendanceCreateRequest{OccurredOn: "2026-01-05"})
		t.RequireErrorKind(api.ErrorKindConflict, err)
	})

	t.Run("a malformed date is invalid", func(t *T) {
		member := t.RegisterMember()
		_, err := t.Client().CheckIn(t.Context(), member.Session,
			api.AttendanceCreateRequest{OccurredOn: "January 5th"})
		t.RequireErrorKind(api.ErrorKindValidation, err)
	})

	t.Run("a guest cannot check in", func(t *T) {
		_, err := t.Client().CheckIn(t.Context(), nil, api.AttendanceCreateRequest{})
		t.RequireErrorKind(api.ErrorKindAuth, err)
	})

	t.Run("the index only shows the member's own records", func(t *T) {
		first := t.RegisterMember()
		firstRecord, err := t.Client().CheckIn(t.Context(), first.Session, api.AttendanceCreateRequest{})
		require.NoError(t, err)

		second := t.RegisterMember()
		_, err = t.Client().CheckIn(t.Context(), second.Session, api.AttendanceCreateRequest{})
		require.NoError(t, err)

		page, err := t.Client().Attendance(t.Context(), first.Session, api.AttendanceListParams{})
		require.NoError(t, err)
		t.RequirePageShape("attendance_record", page)
		require.Len(t, page.Data, 1)
		assert.Equal(t, firstRecord.ID, page.Data[0].ID)
	})

	t.Run("the index honors the pagination contract", func(t *T) {
		member := t.RegisterMember()
		days := []string{"2026-02-01", "2026-02-02", "2026-02-03", "2026-02-04"}
		for _, day := range days {
			_, err := t.Client().CheckIn(t.Context(), member.Session,
				api.AttendanceCreateRequest{OccurredOn: day})
			require.NoError(t, err)
		}

		page, err := t.Client().Attendance(t.Context(), member.Session, api.AttendanceListParams{
			PageParams: api.PageParams{
				Page:  ldvalue.NewOptionalInt(2),
				Limit: ldvalue.NewOptionalInt(3),
			},
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Data), 3)
		assert.Equal(t, 2, page.Pagination.Current)
		assert.Equal(t, len(days), page.Pagination.Records)
	})
}
