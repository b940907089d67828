package posts

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode/utf8"
)

// hex characters of the content digest kept on record
const contentHashLength = 16

// derives the stored metadata for post content: character count plus a
// truncated SHA-256 digest. The digest is enough to detect duplicates
// without being reversible to the original text.
func ContentMetadata(content string) (length int, hash string) {
	sum := sha256.Sum256([]byte(content))
	return utf8.RuneCountInString(content), hex.EncodeToString(sum[:])[:contentHashLength]
}
