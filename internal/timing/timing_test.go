package timing

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{61 * time.Second, "00:01:01"},
		{90 * time.Minute, "01:30:00"},
		{25*time.Hour + 2*time.Minute + 3*time.Second, "25:02:03"},
	}
	for _, tt := range tests {
		if got := Format(tt.d); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestStopwatchElapsed(t *testing.T) {
	s := Start()
	if s.Elapsed() < 0 {
		t.Error("elapsed time went backwards")
	}
}
