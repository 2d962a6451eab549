package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment on a campaign. Replies are one level deep.
type Comment struct {
	ID         uuid.UUID  `json:"id"`          // The comment id.
	CampaignID uuid.UUID  `json:"campaign_id"` // The campaign commented on.
	UserID     uuid.UUID  `json:"user_id"`     // The author.
	AuthorName string     `json:"author_name"` // Author display name, filled on reads.
	Content    string     `json:"content"`     // The comment text.
	ParentID   *uuid.UUID `json:"parent_id"`   // Set on replies; the parent is always top-level.
	Replies    []*Comment `json:"replies,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsReply reports whether the comment answers another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// BuildCommentTree nests replies under their parents.
// Top-level comments come newest first and replies oldest first.
// Replies whose parent is missing from the slice are dropped.
func BuildCommentTree(comments []*Comment) []*Comment {
	roots := make([]*Comment, 0, len(comments))
	byID := make(map[uuid.UUID]*Comment, len(comments))
	for _, c := range comments {
		if !c.IsReply() {
			c.Replies = nil
			roots = append(roots, c)
			byID[c.ID] = c
		}
	}

	for _, c := range comments {
		if !c.IsReply() {
			continue
		}
		if parent, ok := byID[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		}
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	for _, root := range roots {
		sort.SliceStable(root.Replies, func(i, j int) bool {
			return root.Replies[i].CreatedAt.Before(root.Replies[j].CreatedAt)
		})
	}

	return roots
}
