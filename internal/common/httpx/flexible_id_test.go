package httpx

import (
	"encoding/json"
	"testing"
)

func TestFlexibleID_Unmarshal(t *testing.T) {
	var body struct {
		PostID FlexibleID `json:"postId"`
	}
	cases := map[string]uint{
		`{"postId":12}`:   12,
		`{"postId":"34"}`: 34,
		`{"postId":null}`: 0,
		`{"postId":""}`:   0,
		`{}`:              0,
	}
	for raw, want := range cases {
		body.PostID = 0
		if err := json.Unmarshal([]byte(raw), &body); err != nil {
			t.Fatalf("%s: unexpected error %v", raw, err)
		}
		if body.PostID.Uint() != want {
			t.Fatalf("%s: got %d want %d", raw, body.PostID, want)
		}
	}

	for _, raw := range []string{`{"postId":"abc"}`, `{"postId":-1}`, `{"postId":1.5}`} {
		if err := json.Unmarshal([]byte(raw), &body); err == nil {
			t.Fatalf("%s: expected error", raw)
		}
	}
}
