package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeInvalidIntent, codes.InvalidArgument},
		{CodeInvalidFilter, codes.InvalidArgument},
		{CodeSessionEnded, codes.FailedPrecondition},
		{CodeSessionNotFound, codes.NotFound},
		{CodeSessionExists, codes.AlreadyExists},
		{CodeCheckpointCorrupt, codes.DataLoss},
		{CodeStorage, codes.Unavailable},
		{CodeUnknown, codes.Internal},
		{Code("SOMETHING_NEW"), codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Fatalf("%s.GRPCCode() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	cause := stderrors.New("disk gone")
	err := fmt.Errorf("load: %w", Wrap(CodeStorage, "read checkpoint", cause))

	if !stderrors.Is(err, New(CodeStorage, "")) {
		t.Fatal("expected code match through wrapping")
	}
	if stderrors.Is(err, New(CodeSessionNotFound, "")) {
		t.Fatal("unexpected match for different code")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if got := CodeOf(err); got != CodeStorage {
		t.Fatalf("CodeOf() = %s, want %s", got, CodeStorage)
	}
	if got := CodeOf(cause); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %s, want %s", got, CodeUnknown)
	}
	if got := err.Error(); got != "load: read checkpoint: disk gone" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestToGRPCStatusAttachesDetails(t *testing.T) {
	domainErr := WithMetadata(CodeSessionNotFound, "session abc missing", map[string]string{"SessionID": "abc"})
	st, ok := status.FromError(domainErr.ToGRPCStatus("ru", "Бой не найден"))
	if !ok {
		t.Fatal("expected grpc status")
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("code = %v, want %v", st.Code(), codes.NotFound)
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.GetReason() != string(CodeSessionNotFound) || info.GetDomain() != Domain {
		t.Fatalf("error info = %v", info)
	}
	if info.GetMetadata()["SessionID"] != "abc" {
		t.Fatalf("metadata = %v", info.GetMetadata())
	}
	if localized == nil || localized.GetLocale() != "ru" || localized.GetMessage() != "Бой не найден" {
		t.Fatalf("localized = %v", localized)
	}
}
