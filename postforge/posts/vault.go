package posts

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrContentNotHeld = errors.New("post content not held")
	ErrContentExpired = errors.New("post content expired")
)

// grace period after the scheduled time during which held content
// remains retrievable
const vaultGracePeriod = 24 * time.Hour

type heldContent struct {
	content   string
	expiresAt time.Time
}

// ContentVault holds the text of scheduled posts in memory until the
// scheduler needs it. Post rows only ever carry length-and-hash
// metadata; the actual words live here, in RAM, and vanish on restart.
// A post whose content was lost is marked failed and must be
// resubmitted by its author.
type ContentVault struct {
	entries map[string]heldContent
	mu      sync.RWMutex
}

// returns a new content vault with its cleanup goroutine running
func NewContentVault() *ContentVault {
	v := &ContentVault{
		entries: make(map[string]heldContent),
	}

	go v.cleanupExpired()

	return v
}

// stores content for a scheduled post until shortly after its publish time
func (v *ContentVault) Hold(postID, content string, scheduledFor time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.entries[postID] = heldContent{
		content:   content,
		expiresAt: scheduledFor.Add(vaultGracePeriod),
	}
}

// retrieves and removes the content for a post
func (v *ContentVault) Take(postID string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	held, exists := v.entries[postID]
	if !exists {
		return "", ErrContentNotHeld
	}

	delete(v.entries, postID)

	if time.Now().After(held.expiresAt) {
		return "", ErrContentExpired
	}

	return held.content, nil
}

// removes held content without publishing, e.g. when a post is deleted
func (v *ContentVault) Discard(postID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.entries, postID)
}

// returns the number of posts whose content is currently held
func (v *ContentVault) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.entries)
}

// runs periodically to drop content that was never published
func (v *ContentVault) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		v.mu.Lock()
		now := time.Now()

		for id, held := range v.entries {
			if now.After(held.expiresAt) {
				delete(v.entries, id)
			}
		}

		v.mu.Unlock()
	}
}
