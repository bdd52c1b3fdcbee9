package schema

import (
	"context"
	"io"
)

// ParseFrom decodes the Source into a value tree and delegates validation to
// the Schema.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	opt := lastOpt(opts)
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := src.Decode()
	if err != nil {
		return zero, decodeIssues(src, err)
	}
	return s.Parse(ctx, v)
}

// ParseFromWithMeta is ParseFrom with presence metadata.
func ParseFromWithMeta[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (Decoded[T], error) {
	var zero Decoded[T]
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	opt := lastOpt(opts)
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := src.Decode()
	if err != nil {
		return zero, decodeIssues(src, err)
	}
	return s.ParseWithMeta(ctx, v)
}

// StreamParse validates a JSON document read from r. When MaxBytes is set
// the input is capped and oversized documents fail with CodeTruncated.
func StreamParse[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (T, error) {
	var zero T
	src, err := limitedJSON(r, lastOpt(opts))
	if err != nil {
		return zero, err
	}
	return ParseFrom[T](ctx, s, src, opts...)
}

// StreamParseWithMeta is StreamParse with presence metadata.
func StreamParseWithMeta[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (Decoded[T], error) {
	var zero Decoded[T]
	src, err := limitedJSON(r, lastOpt(opts))
	if err != nil {
		return zero, err
	}
	return ParseFromWithMeta[T](ctx, s, src, opts...)
}

func limitedJSON(r io.Reader, opt ParseOpt) (Source, error) {
	if opt.MaxBytes <= 0 {
		return JSONReader(r), nil
	}
	data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
	if err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	if int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return JSONBytes(data), nil
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}

func decodeIssues(src Source, err error) Issues {
	return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Hint: src.Name(), Cause: err}}
}
