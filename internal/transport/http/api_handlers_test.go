package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advochat/advochat-server/internal/directory"
	"github.com/advochat/advochat-server/internal/scheduling"
)

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	var body map[string]bool
	status := getJSON(t, ts, "/health", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body["ok"])
}

func TestListAdvocates(t *testing.T) {
	ts := startTestServer(t)

	var advocates []directory.Advocate
	status := getJSON(t, ts, "/api/advocates", &advocates)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, advocates, 3)
	assert.Equal(t, "adv1", advocates[0].ID)
}

func TestGetAdvocate(t *testing.T) {
	ts := startTestServer(t)

	var adv directory.Advocate
	status := getJSON(t, ts, "/api/advocates/adv2", &adv)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Advocate B", adv.Name)

	status = getJSON(t, ts, "/api/advocates/adv9", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRoomHistoryUnknownRoomIsEmpty(t *testing.T) {
	ts := startTestServer(t)

	var events []json.RawMessage
	status := getJSON(t, ts, "/api/rooms/ghost/history", &events)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, events)
}

func postSchedule(t *testing.T, ts *httptest.Server, body string) (int, ScheduleResponse) {
	t.Helper()
	resp, err := ts.Client().Post(ts.URL+"/api/schedule", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestScheduleValidation(t *testing.T) {
	ts := startTestServer(t)

	status, out := postSchedule(t, ts, `{"advocate_id":"adv1","client_name":"Client A","date":"2026-09-15"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, out.OK)
	assert.Equal(t, "missing fields", out.Error)

	status, out = postSchedule(t, ts, `{"advocate_id":"adv1","client_name":"Client A","date":"15/09/2026","time":"2pm"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid datetime format", out.Error)

	status, out = postSchedule(t, ts, `{"advocate_id":"adv9","client_name":"Client A","date":"2026-09-15","time":"14:30"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, out.OK)
}

func TestScheduleSuccessAndMeetingListing(t *testing.T) {
	ts := startTestServer(t)

	status, out := postSchedule(t, ts, `{"advocate_id":"adv1","client_name":"Client A","date":"2026-09-15","time":"14:30","purpose":"contract review"}`)
	require.Equal(t, http.StatusOK, status)
	require.True(t, out.OK)
	require.NotNil(t, out.Meeting)
	assert.Equal(t, scheduling.StatusRequested, out.Meeting.Status)
	assert.NotEmpty(t, out.Meeting.ID)

	var meetings []scheduling.MeetingRequest
	code := getJSON(t, ts, "/api/advocates/adv1/meetings", &meetings)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, meetings, 1)
	assert.Equal(t, out.Meeting.ID, meetings[0].ID)

	code = getJSON(t, ts, "/api/advocates/adv9/meetings", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
