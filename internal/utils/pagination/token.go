package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const seqPrefix = "seq"

// EncodeSeqToken creates an opaque token pointing just past the given sequence number.
// Transaction listings page forward through the log in insertion order.
func EncodeSeqToken(seq int64) string {
	return EncodeMultiFieldToken(seqPrefix, strconv.FormatInt(seq, 10))
}

// DecodeSeqToken parses a token produced by EncodeSeqToken.
// An empty token decodes to zero, i.e. the start of the log.
func DecodeSeqToken(token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 || parts[0] != seqPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (seq parse): %w", err)
	}
	if seq < 0 {
		return 0, fmt.Errorf("invalid pagination token format (negative seq)")
	}
	return seq, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
