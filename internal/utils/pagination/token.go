package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor marks the last journal run of a page. Runs are listed newest first,
// ties on created_at broken by run id.
type Cursor struct {
	CreatedAt time.Time
	RunID     string
}

// EncodeToken creates an opaque page token from the last run of a page.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.CreatedAt.UTC().Format(timeFormat), c.RunID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a page token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return Cursor{CreatedAt: createdAt, RunID: parts[1]}, nil
}
