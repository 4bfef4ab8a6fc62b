package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bfhl-hq/bfhl/pkg/classify"
)

// Attribute keys recorded on request spans.
const (
	AttrRequestID       = attribute.Key("bfhl.request_id")
	AttrTokenCount      = attribute.Key("bfhl.tokens.total")
	AttrNumberCount     = attribute.Key("bfhl.tokens.numbers")
	AttrAlphabetCount   = attribute.Key("bfhl.tokens.alphabets")
	AttrHighestAlphabet = attribute.Key("bfhl.highest_alphabet")
	AttrNumericPolicy   = attribute.Key("bfhl.numeric_policy")
	AttrErrorType       = attribute.Key("error.type")
)

// SetClassificationAttributes records a classification outcome on span.
func SetClassificationAttributes(span trace.Span, res classify.Result, total int, policy classify.NumericPolicy) {
	if !span.IsRecording() {
		return
	}
	attrs := []attribute.KeyValue{
		AttrTokenCount.Int(total),
		AttrNumberCount.Int(len(res.Numbers)),
		AttrAlphabetCount.Int(len(res.Alphabets)),
		AttrNumericPolicy.String(string(policy)),
	}
	if res.HasHighestAlphabet() {
		attrs = append(attrs, AttrHighestAlphabet.String(res.HighestAlphabet))
	}
	span.SetAttributes(attrs...)
}

// RecordError marks span as failed.
func RecordError(span trace.Span, err error, errorType string) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(AttrErrorType.String(errorType))
}
