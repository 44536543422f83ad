package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegisterAndRecordersAreSafe(t *testing.T) {
	Register()
	Register()

	RecordBytesReceived(20)
	RecordFrameSent("MOT_MOVE_ABSOLUTE")
	RecordFrameDecoded("MOT_MOVE_COMPLETED")
	RecordDecodeError("range")
	RecordCorrelation(OutcomeResolved)
	SetPendingRequests(0)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	for _, want := range []string{
		"apt_codec_frames_sent_total{message=\"MOT_MOVE_ABSOLUTE\"}",
		"apt_codec_decode_errors_total{kind=\"range\"}",
		"apt_correlation_replies_total{outcome=\"resolved\"}",
		"apt_correlation_pending_requests",
		"apt_transport_bytes_received_total",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("scrape missing %s", want)
		}
	}
}
