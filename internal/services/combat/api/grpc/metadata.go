package grpc

import (
	"context"
	"strings"

	"github.com/louisbranch/duskmarch/internal/platform/id"
	"github.com/louisbranch/duskmarch/internal/services/combat/i18n"
	"golang.org/x/text/language"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-duskmarch-request-id"

// AcceptLanguageHeader selects the language of user-facing messages.
const AcceptLanguageHeader = "accept-language"

type contextKey string

const requestIDContextKey contextKey = "duskmarch-request-id"

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// LocaleFromContext resolves the caller language from incoming metadata.
func LocaleFromContext(ctx context.Context) language.Tag {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return i18n.Default()
	}
	return i18n.ResolveTag(FirstMetadataValue(md, AcceptLanguageHeader))
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
func FirstMetadataValue(md metadata.MD, key string) string {
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if isPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

func isPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// UnaryServerInterceptor gives every call a request ID, echoing it back as a
// response header. Caller-supplied IDs are kept.
func UnaryServerInterceptor(idGenerator func() (string, error)) gogrpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		var requestID string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			requestID = FirstMetadataValue(md, RequestIDHeader)
		}
		if requestID == "" {
			generated, err := idGenerator()
			if err != nil {
				return nil, status.Errorf(codes.Internal, "generate request id: %v", err)
			}
			requestID = generated
		}
		if err := gogrpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(WithRequestID(ctx, requestID), req)
	}
}
