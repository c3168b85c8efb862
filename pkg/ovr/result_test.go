package ovr

import "testing"

func TestResultHelpers(t *testing.T) {
	tests := []struct {
		r           Result
		success     bool
		unqualified bool
	}{
		{Success, true, true},
		{SuccessNotVisible, true, false},
		{SuccessBoundaryInvalid, true, false},
		{SuccessDeviceUnavailable, true, false},
		{ErrorNotInitialized, false, false},
		{ErrorDisplayLost, false, false},
		{Result(-42424), false, false},
		{Result(7777), true, false},
	}
	for _, tt := range tests {
		if got := tt.r.IsSuccess(); got != tt.success {
			t.Errorf("Result(%d).IsSuccess() = %v, want %v", tt.r, got, tt.success)
		}
		if got := tt.r.IsUnqualifiedSuccess(); got != tt.unqualified {
			t.Errorf("Result(%d).IsUnqualifiedSuccess() = %v, want %v", tt.r, got, tt.unqualified)
		}
		if got := tt.r.IsFailure(); got == tt.success {
			t.Errorf("Result(%d).IsFailure() = %v, want %v", tt.r, got, !tt.success)
		}
	}
}

func TestResultValues(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		want int32
	}{
		{"Success", Success, 0},
		{"SuccessNotVisible", SuccessNotVisible, 1000},
		{"ErrorMemoryAllocationFailure", ErrorMemoryAllocationFailure, -1000},
		{"ErrorInvalidOperation", ErrorInvalidOperation, -1015},
		{"ErrorAudioComError", ErrorAudioComError, -2002},
		{"ErrorInitialize", ErrorInitialize, -3000},
		{"ErrorRemoteSession", ErrorRemoteSession, -3024},
		{"ErrorDisplayLost", ErrorDisplayLost, -6000},
		{"ErrorDisplayPluggedIncorrectly", ErrorDisplayPluggedIncorrectly, -6008},
		{"ErrorRuntimeException", ErrorRuntimeException, -7000},
		{"ErrorMisformattedBlock", ErrorMisformattedBlock, -9002},
	}
	for _, tt := range tests {
		if int32(tt.r) != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, int32(tt.r), tt.want)
		}
	}
}

func TestResultErr(t *testing.T) {
	if err := Success.Err(); err != nil {
		t.Errorf("Success.Err() = %v, want nil", err)
	}
	if err := SuccessNotVisible.Err(); err != nil {
		t.Errorf("SuccessNotVisible.Err() = %v, want nil", err)
	}
	err := ErrorDisplayLost.Err()
	if err == nil {
		t.Fatal("ErrorDisplayLost.Err() = nil, want error")
	}
	if got, want := err.Error(), "ovr: result -6000"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorInfoString(t *testing.T) {
	var e ErrorInfo
	copy(e.ErrorString[:], "display lost\x00garbage after nul")
	if got := e.String(); got != "display lost" {
		t.Errorf("String() = %q, want %q", got, "display lost")
	}

	var full ErrorInfo
	for i := range full.ErrorString {
		full.ErrorString[i] = 'x'
	}
	if got := full.String(); len(got) != len(full.ErrorString) {
		t.Errorf("unterminated string length = %d, want %d", len(got), len(full.ErrorString))
	}
}
