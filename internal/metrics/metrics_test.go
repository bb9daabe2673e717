package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSubmission(t *testing.T) {
	Register()
	Register() // second call is a no-op

	before := testutil.ToFloat64(submissions.WithLabelValues(OutcomeSuccess))
	guestsBefore := testutil.ToFloat64(submittedGuests)

	RecordSubmission(OutcomeSuccess, 3)
	RecordSubmission(OutcomeInvalid, 3)

	if got := testutil.ToFloat64(submissions.WithLabelValues(OutcomeSuccess)); got != before+1 {
		t.Errorf("success submissions = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(submittedGuests); got != guestsBefore+3 {
		t.Errorf("submitted guests = %v, want %v", got, guestsBefore+3)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest("site", "GET", "/kasiia", 200, 15*time.Millisecond)
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("site", "GET", "/kasiia", "200")); got < 1 {
		t.Errorf("requests_total = %v, want >= 1", got)
	}
}

func TestRecordRPC(t *testing.T) {
	before := testutil.ToFloat64(rpcRequests.WithLabelValues("/rsvp.v1.RSVPService/Submit", "aborted"))
	RecordRPC("/rsvp.v1.RSVPService/Submit", "aborted", time.Millisecond)
	if got := testutil.ToFloat64(rpcRequests.WithLabelValues("/rsvp.v1.RSVPService/Submit", "aborted")); got != before+1 {
		t.Errorf("rpc requests_total = %v, want %v", got, before+1)
	}
}
