package store

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"

	"tableflip.dev/journal/pkg/collection"
	"tableflip.dev/journal/pkg/entry"
)

// FormatVersion is written as the first field of every storage file.
const FormatVersion = 1

// Field numbers of the storage file, protobuf wire format.
const (
	fieldVersion protowire.Number = 1
	fieldEntry   protowire.Number = 2

	fieldDescription protowire.Number = 1
	fieldSeconds     protowire.Number = 2
	fieldNanos       protowire.Number = 3
)

// Encode serializes c into the storage file format. Every timestamp is
// representable, the zero time included.
func Encode(c *collection.Collection) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil collection", ErrEncode)
	}
	b := protowire.AppendTag(nil, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, FormatVersion)

	var rec []byte
	for _, e := range c.Entries() {
		rec = encodeEntry(rec[:0], e)
		b = protowire.AppendTag(b, fieldEntry, protowire.BytesType)
		b = protowire.AppendBytes(b, rec)
	}
	return b, nil
}

func encodeEntry(b []byte, e entry.Entry) []byte {
	t := e.Timestamp.UTC()
	b = protowire.AppendTag(b, fieldDescription, protowire.BytesType)
	b = protowire.AppendString(b, e.Description)
	b = protowire.AppendTag(b, fieldSeconds, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(t.Unix()))
	if ns := t.Nanosecond(); ns != 0 {
		b = protowire.AppendTag(b, fieldNanos, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(ns))
	}
	return b
}

// Decode parses a storage file. Any deviation from the layout fails the
// whole decode.
func Decode(b []byte) (*collection.Collection, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return nil, decodeErr("header", protowire.ParseError(n))
	}
	if num != fieldVersion || typ != protowire.VarintType {
		return nil, fmt.Errorf("%w: missing format version", ErrDecode)
	}
	b = b[n:]
	version, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return nil, decodeErr("header", protowire.ParseError(n))
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrDecode, version)
	}
	b = b[n:]

	var entries []entry.Entry
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, decodeErr("entry tag", protowire.ParseError(n))
		}
		if num != fieldEntry || typ != protowire.BytesType {
			return nil, fmt.Errorf("%w: unexpected field %d (type %d)", ErrDecode, num, typ)
		}
		b = b[n:]
		rec, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, decodeErr("entry", protowire.ParseError(n))
		}
		b = b[n:]
		e, err := decodeEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrDecode, len(entries), err)
		}
		entries = append(entries, e)
	}
	return collection.New(entries...), nil
}

func decodeEntry(b []byte) (entry.Entry, error) {
	var (
		e          entry.Entry
		seconds    int64
		nanos      uint64
		hasSeconds bool
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return e, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == fieldDescription && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			e.Description = v
			b = b[n:]
		case num == fieldSeconds && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			seconds = protowire.DecodeZigZag(v)
			hasSeconds = true
			b = b[n:]
		case num == fieldNanos && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			if v >= uint64(time.Second) {
				return e, fmt.Errorf("nanoseconds %d out of range", v)
			}
			nanos = v
			b = b[n:]
		default:
			return e, fmt.Errorf("unexpected field %d (type %d)", num, typ)
		}
	}
	if !hasSeconds {
		return e, fmt.Errorf("missing timestamp")
	}
	e.Timestamp = entry.Timestamp{Time: time.Unix(seconds, int64(nanos)).UTC()}
	return e, nil
}

func decodeErr(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDecode, what, err)
}
